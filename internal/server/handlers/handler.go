package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/users"
	"github.com/mamadbah2/stockdesk/internal/session"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

// Handler renders the dashboard screens as JSON view models. Services are
// built per request over a client bound to the caller's session.
type Handler struct {
	api      *inventoryapi.Client
	sessions *session.Manager
	logger   *zap.Logger
}

// NewHandler constructs the HTTP handler adapter.
func NewHandler(api *inventoryapi.Client, sessions *session.Manager, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{api: api, sessions: sessions, logger: logger}
}

// caller returns the API client authenticated as the request's session.
func (h *Handler) caller(c *gin.Context) inventoryapi.Caller {
	return h.api.As(session.FromContext(c))
}

// page is the layout envelope around every view model.
type page struct {
	User *session.Identity `json:"user,omitempty"`
	Nav  []access.NavItem  `json:"nav,omitempty"`
	Data any               `json:"data"`
}

func (h *Handler) render(c *gin.Context, status int, data any) {
	p := page{Data: data}
	if sess := session.FromContext(c); sess.IsAuthenticated() {
		user := sess.User
		p.User = &user
		p.Nav = access.NavItems(sess.Role())
	}
	c.JSON(status, p)
}

// fail reports err as a short notification. Client-side rejections become
// 422 and anything that went wrong upstream becomes 502.
func (h *Handler) fail(c *gin.Context, notice string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": notice, "fields": verr.Fields})
	case errors.Is(err, users.ErrUnsupportedRole):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": notice, "fields": gin.H{"role": err.Error()}})
	default:
		h.logger.Error(notice, zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusBadGateway, gin.H{"error": notice})
	}
}

// bind decodes the JSON body into v, answering 400 when it cannot.
func (h *Handler) bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// renderResult answers 204 when the server sent no body.
func renderResult[T any](h *Handler, c *gin.Context, status int, v *T) {
	if v == nil {
		c.Status(http.StatusNoContent)
		return
	}
	h.render(c, status, v)
}
