package inventoryapi

import (
	"context"
	"errors"
	"net/http"
)

// Get fetches endpoint and decodes the JSON body into a T. A nil pointer with
// a nil error is the absent value.
func Get[T any](ctx context.Context, c Caller, endpoint string, opts ...RequestOption) (*T, error) {
	return call[T](ctx, c, http.MethodGet, endpoint, opts...)
}

// Post sends body as JSON and decodes the response into a T.
func Post[T any](ctx context.Context, c Caller, endpoint string, body any) (*T, error) {
	return call[T](ctx, c, http.MethodPost, endpoint, WithBody(body))
}

// Put sends body as JSON and decodes the response into a T.
func Put[T any](ctx context.Context, c Caller, endpoint string, body any) (*T, error) {
	return call[T](ctx, c, http.MethodPut, endpoint, WithBody(body))
}

// Delete issues a DELETE and decodes the response into a T.
func Delete[T any](ctx context.Context, c Caller, endpoint string) (*T, error) {
	return call[T](ctx, c, http.MethodDelete, endpoint)
}

// Exec performs a call whose response body is ignored.
func Exec(ctx context.Context, c Caller, method, endpoint string, body any) error {
	var opts []RequestOption
	if body != nil {
		opts = append(opts, WithBody(body))
	}
	_, err := c.Request(ctx, method, endpoint, opts...)
	return err
}

func call[T any](ctx context.Context, c Caller, method, endpoint string, opts ...RequestOption) (*T, error) {
	res, err := c.Request(ctx, method, endpoint, opts...)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := res.Decode(out); err != nil {
		if errors.Is(err, ErrEmpty) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// List fetches a JSON array. An absent body yields an empty slice.
func List[T any](ctx context.Context, c Caller, endpoint string, opts ...RequestOption) ([]T, error) {
	items, err := Get[[]T](ctx, c, endpoint, opts...)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return *items, nil
}
