package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/config"
)

const contextKey = "session"

// Manager binds sessions to a cookie.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
	logger     *zap.Logger
}

// NewManager creates a cookie session manager on top of store.
func NewManager(store Store, cfg config.SessionConfig, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.CookieSecure,
		now:        time.Now,
		logger:     logger,
	}
}

// New returns a fresh anonymous session. It is not persisted until Commit.
func (m *Manager) New() *Session {
	now := m.now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
}

// Load returns the session named by the request cookie, or a fresh anonymous
// session when there is none.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return m.New(), nil
	}

	s, err := m.store.Load(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return m.New(), nil
		}
		return nil, err
	}
	return s, nil
}

// Renew drops the stored entry for s and gives it a fresh id, so a
// privilege change never reuses an id the client arrived with.
func (m *Manager) Renew(ctx context.Context, s *Session) error {
	if s.ID != "" {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("renew session: %w", err)
		}
	}
	s.ID = uuid.NewString()
	s.CreatedAt = m.now().UTC()
	return nil
}

// Commit persists s and refreshes the cookie.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.ExpiresAt = m.now().UTC().Add(m.ttl)

	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.ExpiresAt,
	})
	return nil
}

// Destroy clears s, removes it from the store and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	s.Clear()
	if err := m.store.Delete(ctx, s.ID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Middleware loads the session for every request and exposes it through
// FromContext.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := m.Load(c.Request.Context(), c.Request)
		if err != nil {
			m.logger.Error("failed to load session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
			return
		}
		c.Set(contextKey, s)
		c.Next()
	}
}

// FromContext returns the session loaded by Middleware, or nil.
func FromContext(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}

// Principal adapts FromContext for access.Guard.
func Principal(c *gin.Context) access.Principal {
	if s := FromContext(c); s != nil {
		return s
	}
	return nil
}
