// Package session keeps the bearer token and decoded identity of each
// dashboard visitor. A Session is an explicit value: it is loaded at the
// start of a request, handed to the API client as its token source, and
// committed or destroyed by the handlers that change it.
package session

import (
	"context"
	"time"

	"github.com/mamadbah2/stockdesk/internal/access"
)

// Session is the per-visitor state. The zero value is anonymous.
type Session struct {
	ID          string    `json:"id" bson:"_id"`
	BearerToken string    `json:"token" bson:"token"`
	User        Identity  `json:"user" bson:"user"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	ExpiresAt   time.Time `json:"expiresAt" bson:"expires_at"`
}

// Token implements inventoryapi.TokenSource.
func (s *Session) Token(context.Context) (string, error) {
	if s == nil {
		return "", nil
	}
	return s.BearerToken, nil
}

// IsAuthenticated reports whether a token is present.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.BearerToken != ""
}

// Role is the caller's primary role, RoleNone when anonymous.
func (s *Session) Role() access.Role {
	if !s.IsAuthenticated() {
		return access.RoleNone
	}
	return s.User.Role()
}

// SetToken stores token and the identity decoded from it. A token that is not
// a JWT is kept with an empty identity, and the decode error is returned so
// the caller can log it.
func (s *Session) SetToken(token string) error {
	s.BearerToken = token
	identity, err := DecodeIdentity(token)
	s.User = identity
	return err
}

// Clear drops the token and identity.
func (s *Session) Clear() {
	s.BearerToken = ""
	s.User = Identity{}
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
