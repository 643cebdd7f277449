package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/products"
)

func (h *Handler) products(c *gin.Context) *products.Service {
	return products.NewService(h.caller(c), h.logger.Named("products"))
}

// ListProducts renders the product catalogue.
func (h *Handler) ListProducts(c *gin.Context) {
	items, err := h.products(c).List(c.Request.Context())
	if err != nil {
		h.fail(c, "Error loading products", err)
		return
	}
	h.render(c, http.StatusOK, items)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.products(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Error loading product", err)
		return
	}
	renderResult(h, c, http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req models.UpsertProductRequest
	if !h.bind(c, &req) {
		return
	}
	p, err := h.products(c).Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Error creating product", err)
		return
	}
	renderResult(h, c, http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req models.UpsertProductRequest
	if !h.bind(c, &req) {
		return
	}
	p, err := h.products(c).Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, "Error updating product", err)
		return
	}
	renderResult(h, c, http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.products(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Error deleting product", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdjustStock applies a manual stock correction.
func (h *Handler) AdjustStock(c *gin.Context) {
	var req models.AdjustStockRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.products(c).AdjustStock(c.Request.Context(), req); err != nil {
		h.fail(c, "Error adjusting stock", err)
		return
	}
	c.Status(http.StatusNoContent)
}
