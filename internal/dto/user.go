package dto

import "github.com/uzmpro/event-panel-api/internal/models"

// CreateUserRequest is the admin's new-user payload.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName"`
}

// UpdateUserRequest mutates an existing user. A blank password leaves the
// stored hash untouched.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	IsActive bool   `json:"isActive"`
}

// UserListResponse lists panel users for the admin screen.
type UserListResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}

// UserCreatedResponse reports the new user id.
type UserCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

// UserMutationResponse acknowledges an update or delete.
type UserMutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
