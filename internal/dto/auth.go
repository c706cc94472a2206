package dto

import "github.com/uzmpro/event-panel-api/internal/models"

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse mirrors the legacy login body.
type LoginResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	User    models.SessionIdentity `json:"user"`
}

// LogoutResponse acknowledges session teardown.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CheckAuthResponse reports session state without erroring.
type CheckAuthResponse struct {
	Success       bool                    `json:"success"`
	Authenticated bool                    `json:"authenticated"`
	User          *models.SessionIdentity `json:"user,omitempty"`
}
