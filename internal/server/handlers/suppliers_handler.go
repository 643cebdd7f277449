package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/suppliers"
)

func (h *Handler) suppliers(c *gin.Context) *suppliers.Service {
	return suppliers.NewService(h.caller(c), h.logger.Named("suppliers"))
}

func (h *Handler) ListSuppliers(c *gin.Context) {
	items, err := h.suppliers(c).List(c.Request.Context())
	if err != nil {
		h.fail(c, "Error loading suppliers", err)
		return
	}
	h.render(c, http.StatusOK, items)
}

func (h *Handler) GetSupplier(c *gin.Context) {
	sup, err := h.suppliers(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Error loading supplier", err)
		return
	}
	renderResult(h, c, http.StatusOK, sup)
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var req models.UpsertSupplierRequest
	if !h.bind(c, &req) {
		return
	}
	sup, err := h.suppliers(c).Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Error creating supplier", err)
		return
	}
	renderResult(h, c, http.StatusCreated, sup)
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	var req models.UpsertSupplierRequest
	if !h.bind(c, &req) {
		return
	}
	sup, err := h.suppliers(c).Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, "Error updating supplier", err)
		return
	}
	renderResult(h, c, http.StatusOK, sup)
}

func (h *Handler) DeleteSupplier(c *gin.Context) {
	if err := h.suppliers(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Error deleting supplier", err)
		return
	}
	c.Status(http.StatusNoContent)
}
