package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
	"github.com/uzmpro/event-panel-api/pkg/response"
)

// RequireAdmin builds on RequireSession and only lets the distinguished
// administrative account through.
func RequireAdmin(adminUsername string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)
		if identity == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if identity.Username != adminUsername {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Bu işlem için admin yetkisi gereklidir"))
			c.Abort()
			return
		}
		c.Next()
	}
}
