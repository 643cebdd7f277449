package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/customers"
)

func (h *Handler) customers(c *gin.Context) *customers.Service {
	return customers.NewService(h.caller(c), h.logger.Named("customers"))
}

func (h *Handler) ListCustomers(c *gin.Context) {
	items, err := h.customers(c).List(c.Request.Context())
	if err != nil {
		h.fail(c, "Error loading customers", err)
		return
	}
	h.render(c, http.StatusOK, items)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	cust, err := h.customers(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Error loading customer", err)
		return
	}
	renderResult(h, c, http.StatusOK, cust)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req models.UpsertCustomerRequest
	if !h.bind(c, &req) {
		return
	}
	cust, err := h.customers(c).Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Error creating customer", err)
		return
	}
	renderResult(h, c, http.StatusCreated, cust)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	var req models.UpsertCustomerRequest
	if !h.bind(c, &req) {
		return
	}
	cust, err := h.customers(c).Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, "Error updating customer", err)
		return
	}
	renderResult(h, c, http.StatusOK, cust)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	if err := h.customers(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Error deleting customer", err)
		return
	}
	c.Status(http.StatusNoContent)
}
