package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/uzmpro/event-panel-api/internal/models"
	"github.com/uzmpro/event-panel-api/pkg/config"
)

const tokenKey = "session_token"

// Manager binds an opaque session token to the browser via an encrypted
// cookie and resolves it back to an identity through the Store. The cookie
// carries only the token; identity data stays server-side.
type Manager struct {
	cookies    *sessions.CookieStore
	store      Store
	cookieName string
	ttl        time.Duration
}

// NewManager builds a session manager from the session configuration.
func NewManager(cfg config.SessionConfig, store Store) *Manager {
	cookies := sessions.NewCookieStore([]byte(cfg.Secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		cookies:    cookies,
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
	}
}

// Establish creates a fresh session for the identity and sets the cookie.
func (m *Manager) Establish(c *gin.Context, identity models.SessionIdentity) error {
	token := uuid.NewString()
	if err := m.store.Save(c.Request.Context(), token, identity, m.ttl); err != nil {
		return err
	}

	cookie, _ := m.cookies.Get(c.Request, m.cookieName)
	cookie.Values[tokenKey] = token
	return cookie.Save(c.Request, c.Writer)
}

// Identity resolves the caller's session, if any. A missing or expired
// session yields (nil, nil); only a store failure is an error.
func (m *Manager) Identity(c *gin.Context) (*models.SessionIdentity, error) {
	cookie, err := m.cookies.Get(c.Request, m.cookieName)
	if err != nil {
		// A cookie that fails to decode is treated as no session at all.
		return nil, nil
	}
	token, ok := cookie.Values[tokenKey].(string)
	if !ok || token == "" {
		return nil, nil
	}
	return m.store.Load(c.Request.Context(), token)
}

// Destroy tears down the caller's session. It is idempotent: with no
// active session it still succeeds.
func (m *Manager) Destroy(c *gin.Context) error {
	cookie, err := m.cookies.Get(c.Request, m.cookieName)
	if err == nil {
		if token, ok := cookie.Values[tokenKey].(string); ok && token != "" {
			if err := m.store.Delete(c.Request.Context(), token); err != nil {
				return err
			}
		}
	}

	cookie, _ = m.cookies.Get(c.Request, m.cookieName)
	cookie.Values = make(map[interface{}]interface{})
	cookie.Options.MaxAge = -1
	return cookie.Save(c.Request, c.Writer)
}
