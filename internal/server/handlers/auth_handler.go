package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/auth"
	"github.com/mamadbah2/stockdesk/internal/session"
)

// LoginForm is the view model of the login page.
type LoginForm struct {
	Fields        []string `json:"fields"`
	Authenticated bool     `json:"authenticated"`
	Dashboard     string   `json:"dashboard,omitempty"`
}

// LoginPage renders the login form.
func (h *Handler) LoginPage(c *gin.Context) {
	sess := session.FromContext(c)
	form := LoginForm{Fields: []string{"userName", "password"}}
	if sess.IsAuthenticated() {
		form.Authenticated = true
		form.Dashboard = access.DefaultDashboardPath(sess.Role())
	}
	h.render(c, http.StatusOK, form)
}

// Login exchanges credentials for a token and sends the user to their
// dashboard.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.bind(c, &req) {
		return
	}

	sess := session.FromContext(c)
	svc := auth.NewService(h.caller(c), h.logger.Named("auth"))
	if _, err := svc.Login(c.Request.Context(), sess, req); err != nil {
		if models.IsValidationError(err) {
			h.fail(c, "Username and password are required", err)
			return
		}
		h.logger.Info("login rejected", zap.String("user", req.UserName), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please try again."})
		return
	}

	err := h.sessions.Renew(c.Request.Context(), sess)
	if err == nil {
		err = h.sessions.Commit(c.Request.Context(), c.Writer, sess)
	}
	if err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
		return
	}
	c.Redirect(http.StatusSeeOther, svc.DefaultDashboardPath(sess))
}

// Logout forgets the token and returns to the login page.
func (h *Handler) Logout(c *gin.Context) {
	sess := session.FromContext(c)
	if err := h.sessions.Destroy(c.Request.Context(), c.Writer, sess); err != nil {
		h.logger.Warn("failed to delete session", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, access.PathLogin)
}

// Register creates an account through the public registration endpoint.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.bind(c, &req) {
		return
	}
	if err := auth.NewService(h.caller(c), h.logger.Named("auth")).Register(c.Request.Context(), req); err != nil {
		h.fail(c, "Registration failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"next": access.PathLogin})
}
