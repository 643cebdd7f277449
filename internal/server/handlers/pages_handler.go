package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/session"
)

// LandingView backs the public home and contact pages.
type LandingView struct {
	Title         string `json:"title"`
	Authenticated bool   `json:"authenticated"`
	// PrimaryAction is the dashboard for signed-in visitors and the login
	// page otherwise.
	PrimaryAction string `json:"primaryAction"`
}

// ContactView adds the support details shown on the contact page.
type ContactView struct {
	LandingView
	Email string `json:"email"`
	Phone string `json:"phone"`
	Hours string `json:"hours"`
}

func landing(c *gin.Context, title string) LandingView {
	sess := session.FromContext(c)
	v := LandingView{Title: title, PrimaryAction: access.PathLogin}
	if sess.IsAuthenticated() {
		v.Authenticated = true
		v.PrimaryAction = access.DefaultDashboardPath(sess.Role())
	}
	return v
}

// Home renders the public landing page.
func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, landing(c, "Inventory & Order Management"))
}

// Contact renders the public contact page.
func (h *Handler) Contact(c *gin.Context) {
	h.render(c, http.StatusOK, ContactView{
		LandingView: landing(c, "Contact us"),
		Email:       "support@stockdesk.example",
		Phone:       "+1 (555) 010-2030",
		Hours:       "Mon-Fri 9:00-17:00",
	})
}

// Unauthorized is where the guard sends callers whose role does not allow a route.
func (h *Handler) Unauthorized(c *gin.Context) {
	sess := session.FromContext(c)
	h.render(c, http.StatusForbidden, gin.H{
		"message": "You do not have permission to view this page.",
		"home":    access.DefaultDashboardPath(sess.Role()),
	})
}

// NotFound answers every unmatched path.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "page not found", "path": c.Request.URL.Path})
}
