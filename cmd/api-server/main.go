package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uzmpro/event-panel-api/api/swagger"
	"github.com/uzmpro/event-panel-api/internal/handler"
	"github.com/uzmpro/event-panel-api/internal/middleware"
	"github.com/uzmpro/event-panel-api/internal/repository"
	"github.com/uzmpro/event-panel-api/internal/service"
	"github.com/uzmpro/event-panel-api/internal/session"
	"github.com/uzmpro/event-panel-api/pkg/cache"
	"github.com/uzmpro/event-panel-api/pkg/config"
	"github.com/uzmpro/event-panel-api/pkg/database"
	"github.com/uzmpro/event-panel-api/pkg/logger"
	corsmiddleware "github.com/uzmpro/event-panel-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uzmpro/event-panel-api/pkg/middleware/requestid"
)

// @title Event Invitation Panel API
// @version 1.0.0
// @description Session-authenticated record manager for the invitation grid
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	var sessionStore session.Store
	if cfg.Session.Store == "memory" {
		sessionStore = session.NewMemoryStore()
	} else {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient)
	}
	sessions := session.NewManager(cfg.Session, sessionStore)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	auditWriter := service.NewAuditWriter(auditRepo, logr, metricsSvc)
	authSvc := service.NewAuthService(userRepo, logr)
	eventSvc := service.NewEventService(eventRepo, auditWriter, metricsSvc, logr)
	lookupSvc := service.NewLookupService(lookupRepo)
	userSvc := service.NewUserService(userRepo, validate, logr)

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		exportSvc = service.NewExportService(eventSvc)
	}

	authHandler := handler.NewAuthHandler(authSvc, sessions)
	eventHandler := handler.NewEventHandler(eventSvc, exportSvc)
	lookupHandler := handler.NewLookupHandler(lookupSvc)
	userHandler := handler.NewUserHandler(userSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		// Logout is deliberately ungated: destroying a session you do not
		// have succeeds.
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/check", authHandler.Check)
	}

	protected := api.Group("", middleware.RequireSession(sessions))
	{
		protected.GET("/events", eventHandler.List)
		protected.GET("/events/export", eventHandler.Export)
		protected.GET("/events/:id", eventHandler.Get)
		protected.POST("/events", eventHandler.Create)
		protected.PUT("/events/:id", eventHandler.Update)

		protected.GET("/budgets", lookupHandler.Budgets)
		protected.GET("/salutations", lookupHandler.Salutations)
		protected.GET("/businesscards", lookupHandler.BusinessCards)

		admin := protected.Group("/users", middleware.RequireAdmin(cfg.Admin.Username))
		{
			admin.GET("", userHandler.List)
			admin.POST("", userHandler.Create)
			admin.PUT("/:userId", userHandler.Update)
			admin.DELETE("/:userId", userHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
