package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/service/dashboard"
	"github.com/mamadbah2/stockdesk/internal/session"
)

// Dashboard sends the caller to the dashboard of their role. Users without a
// known role get the generic view with their navigation only.
func (h *Handler) Dashboard(c *gin.Context) {
	sess := session.FromContext(c)
	if target := access.DefaultDashboardPath(sess.Role()); target != access.PathDashboard {
		c.Redirect(http.StatusFound, target)
		return
	}
	h.render(c, http.StatusOK, gin.H{"message": "No dashboard is available for your role."})
}

// AdminDashboard renders the server-side admin summary.
func (h *Handler) AdminDashboard(c *gin.Context) {
	summary, err := h.dashboards(c).AdminSummary(c.Request.Context())
	if err != nil {
		h.fail(c, "Error loading dashboard", err)
		return
	}
	h.render(c, http.StatusOK, summary)
}

// ManagerDashboard renders the inventory manager panels. Panels that failed
// carry their own error.
func (h *Handler) ManagerDashboard(c *gin.Context) {
	h.render(c, http.StatusOK, h.dashboards(c).ManagerView(c.Request.Context()))
}

// CashierDashboard renders the cashier panels.
func (h *Handler) CashierDashboard(c *gin.Context) {
	h.render(c, http.StatusOK, h.dashboards(c).CashierView(c.Request.Context()))
}

func (h *Handler) dashboards(c *gin.Context) *dashboard.Service {
	return dashboard.NewService(h.caller(c), h.logger.Named("dashboard"))
}
