package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mamadbah2/stockdesk/internal/access"
)

// Claim names used by ASP.NET Identity alongside their short JWT forms.
const (
	claimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimName           = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	claimEmail          = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimRole           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

// Identity is who the bearer token says the user is.
type Identity struct {
	UserID   string   `json:"userId" bson:"user_id"`
	UserName string   `json:"userName" bson:"user_name"`
	Email    string   `json:"email" bson:"email"`
	Roles    []string `json:"roles" bson:"roles"`
}

// Role is the most privileged known role in the identity.
func (i Identity) Role() access.Role {
	return access.PrimaryRole(i.Roles)
}

// DecodeIdentity reads the claims of a JWT without verifying its signature:
// the inventory API issued the token and verifies it on every call.
func DecodeIdentity(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("decode bearer token: %w", err)
	}

	return Identity{
		UserID:   firstString(claims, "sub", "nameid", claimNameIdentifier),
		UserName: firstString(claims, "unique_name", "name", "preferred_username", claimName),
		Email:    firstString(claims, "email", claimEmail),
		Roles:    allStrings(claims, "role", "roles", claimRole),
	}, nil
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if values := stringsOf(claims[key]); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func allStrings(claims jwt.MapClaims, keys ...string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, key := range keys {
		for _, v := range stringsOf(claims[key]) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// stringsOf accepts a single string claim or an array of strings.
func stringsOf(value interface{}) []string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
