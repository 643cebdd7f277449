package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/service/users"
)

// StaffView lists the managed accounts by role.
type StaffView struct {
	Managers []models.UserSummary `json:"managers"`
	Cashiers []models.UserSummary `json:"cashiers"`
}

func (h *Handler) users(c *gin.Context) *users.Service {
	return users.NewService(h.caller(c), h.logger.Named("users"))
}

// ListUsers loads managers and cashiers in parallel.
func (h *Handler) ListUsers(c *gin.Context) {
	svc := h.users(c)
	var view StaffView
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() (err error) {
		view.Managers, err = svc.Managers(ctx)
		return err
	})
	g.Go(func() (err error) {
		view.Cashiers, err = svc.Cashiers(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.fail(c, "Error loading users", err)
		return
	}
	h.render(c, http.StatusOK, view)
}

func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.users(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Error loading user", err)
		return
	}
	renderResult(h, c, http.StatusOK, u)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !h.bind(c, &req) {
		return
	}
	u, err := h.users(c).Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Error creating user", err)
		return
	}
	renderResult(h, c, http.StatusCreated, u)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if !h.bind(c, &req) {
		return
	}
	u, err := h.users(c).Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, "Error updating user", err)
		return
	}
	renderResult(h, c, http.StatusOK, u)
}

// SetLockout locks or unlocks an account.
func (h *Handler) SetLockout(c *gin.Context) {
	var req models.LockoutRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.users(c).SetLockout(c.Request.Context(), c.Param("id"), req); err != nil {
		h.fail(c, "Error updating lockout", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.users(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Error deleting user", err)
		return
	}
	c.Status(http.StatusNoContent)
}
