package inventoryapi

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// Kind tags the shape of a successful response body.
type Kind int

const (
	// KindEmpty is a 204 or a zero-length body: the absent value.
	KindEmpty Kind = iota
	// KindJSON is a syntactically valid JSON document.
	KindJSON
	// KindText is a non-empty body that is not JSON.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindJSON:
		return "json"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is a classified 2xx response.
type Result struct {
	Kind       Kind
	StatusCode int
	// JSON holds the raw document when Kind is KindJSON.
	JSON json.RawMessage
	// Text holds the body when Kind is KindText.
	Text string
}

// IsEmpty reports whether the response carried no value.
func (r Result) IsEmpty() bool { return r.Kind == KindEmpty }

// Decode unmarshals a JSON result into v. Empty results leave v untouched
// and return ErrEmpty; text results return ErrUnexpectedText.
func (r Result) Decode(v any) error {
	switch r.Kind {
	case KindEmpty:
		return ErrEmpty
	case KindText:
		return fmt.Errorf("%w: %q", ErrUnexpectedText, truncate(r.Text, 64))
	}
	if err := json.Unmarshal(r.JSON, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// negotiate classifies a 2xx body. A 204 or empty body is always empty. A
// body declared as JSON must parse. Anything else is parsed as JSON first and
// falls back to text.
func negotiate(status int, contentType string, body []byte) (Result, error) {
	if status == http.StatusNoContent || len(body) == 0 {
		return Result{Kind: KindEmpty, StatusCode: status}, nil
	}

	if isJSONContentType(contentType) {
		if !json.Valid(body) {
			return Result{}, ErrMalformedJSON
		}
		return Result{Kind: KindJSON, StatusCode: status, JSON: json.RawMessage(body)}, nil
	}

	if json.Valid(body) {
		return Result{Kind: KindJSON, StatusCode: status, JSON: json.RawMessage(body)}, nil
	}
	return Result{Kind: KindText, StatusCode: status, Text: string(body)}, nil
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
