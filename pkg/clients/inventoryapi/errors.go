package inventoryapi

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedJSON is returned when a body declared as JSON does not parse.
	ErrMalformedJSON = errors.New("malformed json response")
	// ErrUnexpectedText is returned when a typed call receives a non-JSON body.
	ErrUnexpectedText = errors.New("unexpected text response")
	// ErrEmpty is returned by Result.Decode for an absent value.
	ErrEmpty = errors.New("empty response")
)

// StatusError reports a non-2xx response. The body is deliberately not
// inspected: 4xx and 5xx are reported the same way.
type StatusError struct {
	Code       int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error: %s", e.StatusText)
}

// IsStatusError reports whether err wraps a *StatusError.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
