// Package testutil provides testing utilities for the hydrate library.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock origin endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockDocument mirrors the webfetch document wire format.
type MockDocument struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	AssetIDs []string `json:"asset_ids"`
}

// MockAsset mirrors the webfetch asset wire format.
type MockAsset struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// MockOrigin is a configurable mock document API server for testing.
type MockOrigin struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount int
	PathCounts   map[string]int
}

// NewMockOrigin creates a new mock document API server.
func NewMockOrigin() *MockOrigin {
	mock := &MockOrigin{
		handlers:   make(map[string]func(w http.ResponseWriter, r *http.Request)),
		PathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.PathCounts[r.URL.Path]++
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Unconfigured paths don't exist
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "not found"}`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockOrigin) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockOrigin) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockOrigin) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.PathCounts = make(map[string]int)
}

// SetHandler sets a custom handler for a specific path.
func (m *MockOrigin) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockOrigin) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetDocument serves doc as JSON under /documents/{id}.
// The optional delay skews completion timing for ordering tests.
func (m *MockOrigin) SetDocument(doc MockDocument, delay time.Duration) {
	body, _ := json.Marshal(doc)
	m.SetResponse("/documents/"+doc.ID, MockResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
		Headers:    jsonHeaders(),
		Delay:      delay,
	})
}

// SetAsset serves asset as JSON under /assets/{id}.
func (m *MockOrigin) SetAsset(asset MockAsset, delay time.Duration) {
	body, _ := json.Marshal(asset)
	m.SetResponse("/assets/"+asset.ID, MockResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
		Headers:    jsonHeaders(),
		Delay:      delay,
	})
}

// SetFailure serves an error status under the given path.
func (m *MockOrigin) SetFailure(path string, statusCode int) {
	m.SetResponse(path, MockResponse{
		StatusCode: statusCode,
		Body:       `{"error": "induced failure"}`,
		Headers:    jsonHeaders(),
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockOrigin) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetPathCount returns the number of requests made to one path.
func (m *MockOrigin) GetPathCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.PathCounts[path]
}

func jsonHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json; charset=utf-8",
	}
}
