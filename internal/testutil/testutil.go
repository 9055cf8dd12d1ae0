// Package testutil provides test utilities for indexifyui
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// ComputeGraphsPath is the hardcoded listing path the loaders query.
const ComputeGraphsPath = "/namespaces/default/compute_graphs"

// FakeService is an in-process stand-in for an Indexify server.
// Responses are raw JSON so tests control the exact bytes on the wire.
type FakeService struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []string
}

type route struct {
	status int
	body   string
}

// NewFakeService starts a fake server that is closed when the test ends.
// Unknown paths answer 404.
func NewFakeService(t *testing.T) *FakeService {
	t.Helper()

	f := &FakeService{routes: make(map[string]route)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the base URL of the server.
func (f *FakeService) URL() string {
	return f.Server.URL
}

// Handle makes GET path answer with status and body.
func (f *FakeService) Handle(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = route{status: status, body: body}
}

// HandleJSON makes GET path answer 200 with v encoded as JSON.
func (f *FakeService) HandleJSON(t *testing.T, path string, v any) {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to encode fake response: %v", err)
	}
	f.Handle(path, http.StatusOK, string(b))
}

// Requests returns the paths requested so far, in order.
func (f *FakeService) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeService) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.Path)
	rt, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	if !ok || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rt.status)
	_, _ = w.Write([]byte(rt.body))
}

// UnreachableURL returns the URL of a server that has already been shut down,
// so every request to it fails at the transport level.
func UnreachableURL(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	return u
}
