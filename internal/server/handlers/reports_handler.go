package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/reports"
)

const defaultReportWindow = 30 * 24 * time.Hour

// ReportsPage renders the filter form prefilled with the last 30 days.
func (h *Handler) ReportsPage(c *gin.Context) {
	to := time.Now().UTC().Truncate(time.Second)
	h.render(c, http.StatusOK, gin.H{
		"filter": models.InventoryReportFilter{
			FromUTC: to.Add(-defaultReportWindow).Format(time.RFC3339),
			ToUTC:   to.Format(time.RFC3339),
		},
	})
}

// InventoryReport runs the report for the posted filter and renders the
// server's document as is.
func (h *Handler) InventoryReport(c *gin.Context) {
	var filter models.InventoryReportFilter
	if !h.bind(c, &filter) {
		return
	}
	report, err := reports.NewService(h.caller(c), h.logger.Named("reports")).InventoryReport(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "Error generating report", err)
		return
	}
	if report == nil {
		c.Status(http.StatusNoContent)
		return
	}
	h.render(c, http.StatusOK, report)
}
