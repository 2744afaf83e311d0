// Package registrytest runs an in-process fake of the RubyGems gem API for
// tests. It serves GET <URL>/<gem>.json from fixtures registered on the
// Registry and counts requests per gem.
package registrytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Dep is a runtime dependency as it appears in a gem document.
type Dep struct {
	Name         string `json:"name"`
	Requirements string `json:"requirements"`
}

type fixture struct {
	status int
	body   []byte
}

// Registry is a fake gem registry backed by httptest.Server.
type Registry struct {
	server *httptest.Server

	mu       sync.Mutex
	gems     map[string]fixture
	requests map[string]int
}

// New starts a Registry and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Registry {
	t.Helper()
	reg := &Registry{
		gems:     make(map[string]fixture),
		requests: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/api/v1/gems/{file}", reg.serveGem)
	reg.server = httptest.NewServer(r)
	t.Cleanup(reg.server.Close)
	return reg
}

// URL returns the base URL to pass to the client, without a trailing slash.
func (r *Registry) URL() string {
	return r.server.URL + "/api/v1/gems"
}

// AddGem registers a gem whose document lists deps under dependencies.runtime.
func (r *Registry) AddGem(name string, deps ...Dep) {
	if deps == nil {
		deps = []Dep{}
	}
	doc := map[string]any{
		"name":    name,
		"version": "1.0.0",
		"dependencies": map[string]any{
			"development": []Dep{},
			"runtime":     deps,
		},
	}
	body, _ := json.Marshal(doc)
	r.SetRaw(name, http.StatusOK, string(body))
}

// SetRaw registers a verbatim response for name.
func (r *Registry) SetRaw(name string, status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gems[name] = fixture{status: status, body: []byte(body)}
}

// Requests returns how many times the document for name was requested.
func (r *Registry) Requests(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[name]
}

// TotalRequests returns the number of gem document requests served.
func (r *Registry) TotalRequests() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.requests {
		n += c
	}
	return n
}

func (r *Registry) serveGem(w http.ResponseWriter, req *http.Request) {
	file := chi.URLParam(req, "file")
	name, ok := strings.CutSuffix(file, ".json")
	if !ok {
		http.NotFound(w, req)
		return
	}

	r.mu.Lock()
	r.requests[name]++
	f, found := r.gems[name]
	r.mu.Unlock()

	if !found {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("This rubygem could not be found."))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	w.Write(f.body)
}

// Sinatra registers the sinatra 1.x dependency set:
//
//	sinatra -> rack, rack-protection, tilt
//	rack-protection -> rack
func Sinatra(r *Registry) {
	r.AddGem("sinatra",
		Dep{Name: "rack", Requirements: "~> 1.5"},
		Dep{Name: "rack-protection", Requirements: "~> 1.4"},
		Dep{Name: "tilt", Requirements: "< 3, >= 1.3"},
	)
	r.AddGem("rack-protection", Dep{Name: "rack", Requirements: ">= 0"})
	r.AddGem("rack")
	r.AddGem("tilt")
}
