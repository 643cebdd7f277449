package testutil

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// RoleToken returns a signed JWT carrying the given user name and role claims.
// The signature is never checked by the dashboard.
func RoleToken(t *testing.T, userName, role string) string {
	t.Helper()
	return SignedToken(t, jwt.MapClaims{
		"sub":         userName + "-id",
		"unique_name": userName,
		"email":       userName + "@example.com",
		"role":        role,
	})
}

// SignedToken signs claims with a throwaway key.
func SignedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
