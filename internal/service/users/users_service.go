package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const usersEndpoint = "/admin/users"

// ErrUnsupportedRole is returned when an admin tries to assign a role other
// than InventoryManager or Cashier.
var ErrUnsupportedRole = errors.New("only InventoryManager and Cashier roles are supported")

// Service manages staff accounts through the admin API.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new user management service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

func userPath(id string) string {
	return usersEndpoint + "/" + url.PathEscape(id)
}

// validateRole accepts the managed roles only, normalizing their spelling.
func validateRole(role *string) error {
	r := access.ParseRole(*role)
	if !access.IsManagedRole(r) {
		return ErrUnsupportedRole
	}
	*role = r.String()
	return nil
}

// Create provisions an account.
func (s *Service) Create(ctx context.Context, req models.CreateUserRequest) (*models.UserSummary, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	if err := validateRole(&req.Role); err != nil {
		return nil, err
	}
	u, err := inventoryapi.Post[models.UserSummary](ctx, s.api, usersEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info("user created", zap.String("user_name", req.UserName), zap.String("role", req.Role))
	return u, nil
}

// Managers lists inventory manager accounts.
func (s *Service) Managers(ctx context.Context) ([]models.UserSummary, error) {
	items, err := inventoryapi.List[models.UserSummary](ctx, s.api, usersEndpoint+"/managers")
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	return items, nil
}

// Cashiers lists cashier accounts.
func (s *Service) Cashiers(ctx context.Context) ([]models.UserSummary, error) {
	items, err := inventoryapi.List[models.UserSummary](ctx, s.api, usersEndpoint+"/cashiers")
	if err != nil {
		return nil, fmt.Errorf("list cashiers: %w", err)
	}
	return items, nil
}

// Get returns the detail view of an account.
func (s *Service) Get(ctx context.Context, id string) (*models.UserDetail, error) {
	u, err := inventoryapi.Get[models.UserDetail](ctx, s.api, userPath(id))
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// Update edits an account.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateUserRequest) (*models.UserSummary, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	if err := validateRole(&req.Role); err != nil {
		return nil, err
	}
	u, err := inventoryapi.Put[models.UserSummary](ctx, s.api, userPath(id), req)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return u, nil
}

// SetLockout locks or unlocks an account.
func (s *Service) SetLockout(ctx context.Context, id string, req models.LockoutRequest) error {
	if err := models.Validate(req); err != nil {
		return err
	}
	err := inventoryapi.Exec(ctx, s.api, http.MethodPut, userPath(id)+"/lockout", req)
	if err != nil {
		return fmt.Errorf("set lockout of %s: %w", id, err)
	}
	s.logger.Info("user lockout changed", zap.String("user_id", id), zap.Bool("lockout", *req.Lockout))
	return nil
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := inventoryapi.Exec(ctx, s.api, http.MethodDelete, userPath(id), nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
