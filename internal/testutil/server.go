package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// GenerateCall records one request received by a GeneratorServer.
type GenerateCall struct {
	Method      string
	Path        string
	ContentType string
	Topic       string
}

// GeneratorServer is an in-memory stand-in for the question generation API.
type GeneratorServer struct {
	BaseURL string

	mu      sync.Mutex
	calls   []GenerateCall
	handler http.HandlerFunc
}

// StartGeneratorServer launches a stub generator that answers with respond.
func StartGeneratorServer(t *testing.T, respond http.HandlerFunc) *GeneratorServer {
	t.Helper()
	gs := &GeneratorServer{handler: respond}
	server := httptest.NewServer(http.HandlerFunc(gs.serve))
	t.Cleanup(server.Close)
	gs.BaseURL = server.URL
	return gs
}

// Calls returns the requests seen so far.
func (gs *GeneratorServer) Calls() []GenerateCall {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	out := make([]GenerateCall, len(gs.calls))
	copy(out, gs.calls)
	return out
}

func (gs *GeneratorServer) serve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topic string `json:"topic"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	gs.mu.Lock()
	gs.calls = append(gs.calls, GenerateCall{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Topic:       body.Topic,
	})
	gs.mu.Unlock()
	gs.handler(w, r)
}

// RespondJSON returns a handler that writes status and a raw JSON body.
func RespondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// OceansPayload is a two-question generate response used across tests.
const OceansPayload = `{"questions": [
  {"question": "Q1", "options": ["A", "B"], "answer": 0},
  {"question": "Q2", "options": ["X", "Y"], "answer": "Y"}
]}`
