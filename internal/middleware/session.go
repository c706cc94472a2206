package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/uzmpro/event-panel-api/internal/models"
	"github.com/uzmpro/event-panel-api/internal/session"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
	"github.com/uzmpro/event-panel-api/pkg/response"
)

// ContextUserKey is the gin context key storing the session identity.
const ContextUserKey = "currentUser"

// RequireSession gates routes behind a valid login session.
func RequireSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := manager.Identity(c)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "session store unavailable"))
			c.Abort()
			return
		}
		if identity == nil {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized. Please login first."))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, identity)
		c.Next()
	}
}

// Identity returns the session identity bound to the request, if any.
func Identity(c *gin.Context) *models.SessionIdentity {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.SessionIdentity)
	if !ok {
		return nil
	}
	return identity
}
