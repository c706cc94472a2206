package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzmpro/event-panel-api/internal/dto"
	"github.com/uzmpro/event-panel-api/internal/middleware"
	"github.com/uzmpro/event-panel-api/internal/service"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
	"github.com/uzmpro/event-panel-api/pkg/response"
)

// fallbackActor is stamped when no session identity is bound, e.g. for
// batch callers.
const fallbackActor = "system"

// EventHandler exposes the invitation grid endpoints.
type EventHandler struct {
	service *service.EventService
	exports *service.ExportService
}

// NewEventHandler creates a new handler. The export service may be nil
// when downloads are disabled.
func NewEventHandler(svc *service.EventService, exports *service.ExportService) *EventHandler {
	return &EventHandler{service: svc, exports: exports}
}

// List godoc
// @Summary List events
// @Description Full denormalized grid, no pagination
// @Tags Events
// @Produce json
// @Success 200 {object} dto.EventListResponse
// @Failure 401 {object} response.Failure
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.EventListResponse{
		Success: true,
		Data:    items,
		Total:   len(items),
	})
}

// Get godoc
// @Summary Get one event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} response.Failure
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.EventResponse{Success: true, Data: event})
}

// Create godoc
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.EventInput true "Event payload"
// @Success 201 {object} dto.EventCreatedResponse
// @Failure 400 {object} response.Failure
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var in dto.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}

	id, err := h.service.Create(c.Request.Context(), in, h.actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.EventCreatedResponse{
		Success: true,
		Message: "Event created successfully",
		EventID: id,
	})
}

// Update godoc
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param payload body dto.EventInput true "Event payload"
// @Success 200 {object} dto.EventUpdatedResponse
// @Failure 404 {object} response.Failure
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	var in dto.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), in, h.actor(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.EventUpdatedResponse{
		Success: true,
		Message: "Event updated successfully",
	})
}

// Export godoc
// @Summary Download the grid
// @Tags Events
// @Produce text/csv
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Failure
// @Router /events/export [get]
func (h *EventHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}

	result, err := h.exports.Render(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *EventHandler) actor(c *gin.Context) string {
	if identity := middleware.Identity(c); identity != nil {
		return identity.Username
	}
	return fallbackActor
}
