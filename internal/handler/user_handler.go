package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uzmpro/event-panel-api/internal/dto"
	"github.com/uzmpro/event-panel-api/internal/service"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
	"github.com/uzmpro/event-panel-api/pkg/response"
)

// UserHandler exposes the admin-only user management endpoints.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} dto.UserListResponse
// @Failure 403 {object} response.Failure
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.UserListResponse{Success: true, Users: users})
}

// Create godoc
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.CreateUserRequest true "User payload"
// @Success 200 {object} dto.UserCreatedResponse
// @Failure 400 {object} response.Failure
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation("Kullanıcı adı ve şifre zorunludur", "username", "password"))
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.UserCreatedResponse{
		Success: true,
		Message: "Kullanıcı başarıyla oluşturuldu",
		UserID:  id,
	})
}

// Update godoc
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path int true "User id"
// @Param payload body dto.UpdateUserRequest true "User payload"
// @Success 200 {object} dto.UserMutationResponse
// @Failure 404 {object} response.Failure
// @Router /users/{userId} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.Error(c, appErrors.Validation("invalid user id", "userId"))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload"))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.UserMutationResponse{
		Success: true,
		Message: "Kullanıcı başarıyla güncellendi",
	})
}

// Delete godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} dto.UserMutationResponse
// @Failure 403 {object} response.Failure
// @Router /users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.Error(c, appErrors.Validation("invalid user id", "userId"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.UserMutationResponse{
		Success: true,
		Message: "Kullanıcı başarıyla silindi",
	})
}
