package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
)

// Failure is the error body shared by every endpoint: a success flag, a
// human-readable message and, for validation failures, the missing fields.
type Failure struct {
	Success bool     `json:"success"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// JSON sends a payload as-is. Payloads are dto structs that carry their own
// `success` flag so each endpoint keeps its legacy response shape.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

// Error converts any error into the common failure body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Failure{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}
