package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/customers"
	"github.com/mamadbah2/stockdesk/internal/service/orders"
	"github.com/mamadbah2/stockdesk/internal/service/products"
)

// OrderForm is the reference data needed to place an order.
type OrderForm struct {
	Customers []models.Customer `json:"customers"`
	Products  []models.Product  `json:"products"`
}

func (h *Handler) orders(c *gin.Context) *orders.Service {
	return orders.NewService(h.caller(c), h.logger.Named("orders"))
}

// ListOrders renders the most recent orders. The optional limit query
// parameter defaults to 25.
func (h *Handler) ListOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
			return
		}
		limit = n
	}

	items, err := h.orders(c).List(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "Error loading orders", err)
		return
	}
	h.render(c, http.StatusOK, items)
}

// NewOrderForm loads customers and active products for the order form.
func (h *Handler) NewOrderForm(c *gin.Context) {
	api := h.caller(c)
	var form OrderForm
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		items, err := customers.NewService(api, h.logger).List(ctx)
		form.Customers = items
		return err
	})
	g.Go(func() error {
		items, err := products.NewService(api, h.logger).List(ctx)
		for _, p := range items {
			if p.IsActive {
				form.Products = append(form.Products, p)
			}
		}
		return err
	})

	if err := g.Wait(); err != nil {
		h.fail(c, "Error loading order form", err)
		return
	}
	if form.Products == nil {
		form.Products = []models.Product{}
	}
	h.render(c, http.StatusOK, form)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !h.bind(c, &req) {
		return
	}
	o, err := h.orders(c).Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Error creating order", err)
		return
	}
	renderResult(h, c, http.StatusCreated, o)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.orders(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Error loading order", err)
		return
	}
	renderResult(h, c, http.StatusOK, o)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	if err := h.orders(c).Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Error cancelling order", err)
		return
	}
	c.Status(http.StatusNoContent)
}
