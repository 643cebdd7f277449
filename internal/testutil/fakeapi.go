// Package testutil provides a fake inventory API for package tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/mamadbah2/stockdesk/internal/config"
	"github.com/mamadbah2/stockdesk/pkg/clients/inventoryapi"
)

// Call is a request received by the fake.
type Call struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          []byte
}

// DecodeBody unmarshals the JSON body of the call into v.
func (c Call) DecodeBody(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(c.Body, v); err != nil {
		t.Fatalf("decode body of %s %s: %v", c.Method, c.Path, err)
	}
}

type reply struct {
	status      int
	contentType string
	body        string
}

// FakeAPI serves canned responses under /api and records every call.
// Unregistered routes answer 404.
type FakeAPI struct {
	t      *testing.T
	srv    *httptest.Server
	mu     sync.Mutex
	routes map[string]reply
	calls  []Call
}

// NewFakeAPI starts a fake server that is closed with the test.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{t: t, routes: make(map[string]reply)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

// On registers the reply for method and path (relative to /api). A string
// body is sent verbatim, anything else is JSON-encoded; a nil body sends
// nothing.
func (f *FakeAPI) On(method, path string, status int, body any) *FakeAPI {
	f.t.Helper()
	r := reply{status: status}
	switch v := body.(type) {
	case nil:
	case string:
		r.body = v
		r.contentType = "text/plain; charset=utf-8"
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			f.t.Fatalf("encode fake reply: %v", err)
		}
		r.body = string(raw)
		r.contentType = "application/json; charset=utf-8"
	}

	f.mu.Lock()
	f.routes[method+" "+path] = r
	f.mu.Unlock()
	return f
}

// BaseURL is the API root to configure a client with.
func (f *FakeAPI) BaseURL() string {
	return f.srv.URL + "/api"
}

// Client returns an unauthenticated client pointed at the fake.
func (f *FakeAPI) Client() *inventoryapi.Client {
	return inventoryapi.New(config.APIConfig{BaseURL: f.BaseURL()}, zaptest.NewLogger(f.t))
}

// Calls returns a copy of the recorded calls.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many requests reached the fake.
func (f *FakeAPI) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// LastCall returns the most recent call, failing the test if there is none.
func (f *FakeAPI) LastCall() Call {
	f.t.Helper()
	calls := f.Calls()
	if len(calls) == 0 {
		f.t.Fatal("fake api received no calls")
	}
	return calls[len(calls)-1]
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")

	f.mu.Lock()
	f.calls = append(f.calls, Call{
		Method:        r.Method,
		Path:          path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	rep, ok := f.routes[r.Method+" "+path]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	if rep.contentType != "" {
		w.Header().Set("Content-Type", rep.contentType)
	}
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}
