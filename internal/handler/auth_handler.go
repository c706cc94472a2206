package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzmpro/event-panel-api/internal/dto"
	"github.com/uzmpro/event-panel-api/internal/service"
	"github.com/uzmpro/event-panel-api/internal/session"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
	"github.com/uzmpro/event-panel-api/pkg/response"
)

// AuthHandler wires the login endpoints to the auth service and the
// session manager.
type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Manager
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{service: svc, sessions: sessions}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate by username and password, establishing a session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Failure
// @Failure 401 {object} response.Failure
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation("Username and password are required", "username", "password"))
		return
	}

	identity, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.Establish(c, *identity); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to establish session"))
		return
	}

	response.JSON(c, http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    *identity,
	})
}

// Logout godoc
// @Summary Logout current session
// @Description Destroy the caller's session; succeeds with or without one
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Failure 500 {object} response.Failure
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "Error during logout"))
		return
	}

	response.JSON(c, http.StatusOK, dto.LogoutResponse{Success: true, Message: "Logout successful"})
}

// Check godoc
// @Summary Check session state
// @Description Report whether the caller has a valid session; never errors
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.CheckAuthResponse
// @Router /auth/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	identity, err := h.sessions.Identity(c)
	if err != nil || identity == nil {
		response.JSON(c, http.StatusOK, dto.CheckAuthResponse{Success: true, Authenticated: false})
		return
	}

	response.JSON(c, http.StatusOK, dto.CheckAuthResponse{
		Success:       true,
		Authenticated: true,
		User:          identity,
	})
}
