package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/inventory"
	"github.com/mamadbah2/stockdesk/internal/service/products"
	"github.com/mamadbah2/stockdesk/internal/service/suppliers"
)

// SupplyForm is the reference data needed to record a delivery.
type SupplyForm struct {
	Products  []models.Product  `json:"products"`
	Suppliers []models.Supplier `json:"suppliers"`
}

func (h *Handler) inventory(c *gin.Context) *inventory.Service {
	return inventory.NewService(h.caller(c), h.logger.Named("inventory"))
}

// InventoryPage loads products and suppliers for the supply form.
func (h *Handler) InventoryPage(c *gin.Context) {
	api := h.caller(c)
	var form SupplyForm
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() (err error) {
		form.Products, err = products.NewService(api, h.logger).List(ctx)
		return err
	})
	g.Go(func() (err error) {
		form.Suppliers, err = suppliers.NewService(api, h.logger).List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.fail(c, "Error loading inventory data", err)
		return
	}
	h.render(c, http.StatusOK, form)
}

// RecordSupply logs a delivery.
func (h *Handler) RecordSupply(c *gin.Context) {
	var req models.SupplyRecordRequest
	if !h.bind(c, &req) {
		return
	}
	rec, err := h.inventory(c).RecordSupply(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Error recording supply", err)
		return
	}
	renderResult(h, c, http.StatusCreated, rec)
}

// InventoryHistory renders the stock movements of a product.
func (h *Handler) InventoryHistory(c *gin.Context) {
	items, err := h.inventory(c).History(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.fail(c, "Error loading inventory history", err)
		return
	}
	h.render(c, http.StatusOK, items)
}
