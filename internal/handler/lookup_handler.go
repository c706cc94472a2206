package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzmpro/event-panel-api/internal/dto"
	"github.com/uzmpro/event-panel-api/internal/models"
	"github.com/uzmpro/event-panel-api/internal/service"
	"github.com/uzmpro/event-panel-api/pkg/response"
)

// LookupHandler serves the dropdown reference data.
type LookupHandler struct {
	service *service.LookupService
}

// NewLookupHandler creates a new handler.
func NewLookupHandler(svc *service.LookupService) *LookupHandler {
	return &LookupHandler{service: svc}
}

// Budgets godoc
// @Summary List active budgets
// @Tags Lookups
// @Produce json
// @Success 200 {object} dto.LookupResponse
// @Router /budgets [get]
func (h *LookupHandler) Budgets(c *gin.Context) {
	h.respond(c, h.service.Budgets)
}

// Salutations godoc
// @Summary List active message templates
// @Tags Lookups
// @Produce json
// @Success 200 {object} dto.LookupResponse
// @Router /salutations [get]
func (h *LookupHandler) Salutations(c *gin.Context) {
	h.respond(c, h.service.Salutations)
}

// BusinessCards godoc
// @Summary List active business cards
// @Tags Lookups
// @Produce json
// @Success 200 {object} dto.LookupResponse
// @Router /businesscards [get]
func (h *LookupHandler) BusinessCards(c *gin.Context) {
	h.respond(c, h.service.BusinessCards)
}

func (h *LookupHandler) respond(c *gin.Context, fetch func(context.Context) ([]models.LookupItem, error)) {
	items, err := fetch(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.LookupResponse{Success: true, Data: items})
}
