package access

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Principal is what the guard needs to know about the caller.
type Principal interface {
	IsAuthenticated() bool
	Role() Role
}

// PrincipalFunc resolves the caller of the current request. A nil Principal
// is treated as anonymous.
type PrincipalFunc func(c *gin.Context) Principal

// Decision is the outcome of evaluating a route for a principal.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionLogin
	DecisionUnauthorized
)

// Evaluate decides whether p may open route.
func Evaluate(route Route, p Principal) Decision {
	if p == nil || !p.IsAuthenticated() {
		return DecisionLogin
	}
	if !Allowed(route, p.Role()) {
		return DecisionUnauthorized
	}
	return DecisionAllow
}

// Guard protects route: anonymous callers are redirected to the login page and
// callers whose role is not allowed to the unauthorized page. The decision is
// taken afresh on every request.
func Guard(principal PrincipalFunc, route Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Evaluate(route, principal(c)) {
		case DecisionLogin:
			c.Redirect(http.StatusFound, PathLogin)
			c.Abort()
		case DecisionUnauthorized:
			c.Redirect(http.StatusFound, PathUnauthorized)
			c.Abort()
		default:
			c.Next()
		}
	}
}
