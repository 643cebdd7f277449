package auth

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/access"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
	"github.com/mamadbah2/stockdesk/internal/session"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

const (
	loginEndpoint    = "/Auth/login"
	registerEndpoint = "/Auth/register"
)

// Service signs users in and out of a session.
type Service struct {
	api    inventoryapi.Caller
	logger *zap.Logger
}

// NewService wires a new auth service instance.
func NewService(api inventoryapi.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// Login posts the credentials and, when the server answers with a token,
// stores it in sess. The caller commits the session.
func (s *Service) Login(ctx context.Context, sess *session.Session, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	resp, err := inventoryapi.Post[models.LoginResponse](ctx, s.api, loginEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp == nil {
		return &models.LoginResponse{}, nil
	}

	if resp.Token != "" {
		if err := sess.SetToken(resp.Token); err != nil {
			s.logger.Warn("bearer token carries no readable identity", zap.Error(err))
		}
		s.logger.Info("user signed in",
			zap.String("user", sess.User.UserName),
			zap.String("role", sess.Role().String()))
	}
	return resp, nil
}

// Register creates an account through the public registration endpoint.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := models.Validate(req); err != nil {
		return err
	}
	if err := inventoryapi.Exec(ctx, s.api, http.MethodPost, registerEndpoint, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout forgets the token held by sess.
func (s *Service) Logout(sess *session.Session) {
	sess.Clear()
}

// IsAuthenticated reports whether sess holds a token.
func (s *Service) IsAuthenticated(sess *session.Session) bool {
	return sess.IsAuthenticated()
}

// CurrentUser returns the identity decoded from the stored token.
func (s *Service) CurrentUser(sess *session.Session) (session.Identity, bool) {
	if !sess.IsAuthenticated() {
		return session.Identity{}, false
	}
	return sess.User, true
}

// DefaultDashboardPath is where sess lands after login.
func (s *Service) DefaultDashboardPath(sess *session.Session) string {
	return access.DefaultDashboardPath(sess.Role())
}
