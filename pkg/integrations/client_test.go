package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	gterrors "github.com/matzehuels/gemtree/pkg/errors"
	"github.com/matzehuels/gemtree/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"X-Test": "1"}
	client := NewClient(time.Second, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.http.GetClient().Timeout != time.Second {
		t.Errorf("timeout = %v, want 1s", client.http.GetClient().Timeout)
	}
	if client.headers["X-Test"] != "1" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewHTTPClientDefaultTimeout(t *testing.T) {
	c := NewHTTPClient(0)
	if c.GetClient().Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.GetClient().Timeout, DefaultTimeout)
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		userAgent = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(time.Second, nil)

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
	if userAgent != UserAgent() {
		t.Errorf("User-Agent = %q, want %q", userAgent, UserAgent())
	}
}

func TestClientGetDefaultHeaders(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get("X-Default")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(time.Second, map[string]string{"X-Default": "default"})

	var resp map[string]any
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if received != "default" {
		t.Errorf("header = %q, want %q", received, "default")
	}
}

func TestClientGetErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		code     gterrors.Code
		sentinel error
	}{
		{"not found", http.StatusNotFound, "This rubygem could not be found.", gterrors.ErrCodePackageNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, "", gterrors.ErrCodeNetwork, ErrNetwork},
		{"forbidden", http.StatusForbidden, "", gterrors.ErrCodeNetwork, ErrNetwork},
		{"malformed json", http.StatusOK, "{not json", gterrors.ErrCodeDecode, nil},
		{"trailing data", http.StatusOK, `{"a":1} <html>`, gterrors.ErrCodeDecode, nil},
		{"second document", http.StatusOK, `{"a":1}{"b":2}`, gterrors.ErrCodeDecode, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(time.Second, nil)
			var resp map[string]any
			err := client.Get(context.Background(), server.URL, &resp)
			if err == nil {
				t.Fatal("expected error")
			}
			if !gterrors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", gterrors.GetCode(err), tt.code)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("expected %v in chain, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestClientGetTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(time.Second, nil)
	var resp map[string]any
	err := client.Get(context.Background(), url, &resp)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if !gterrors.Is(err, gterrors.ErrCodeNetwork) {
		t.Errorf("code = %v, want NETWORK_ERROR", gterrors.GetCode(err))
	}
}

func TestClientGetTrailingWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{\"a\":1}\n\n"))
	}))
	defer server.Close()

	var resp map[string]any
	if err := NewClient(time.Second, nil).Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if resp["a"] != float64(1) {
		t.Errorf("resp = %v", resp)
	}
}

func TestClientGetCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	var resp map[string]any
	err := NewClient(time.Second, nil).Get(ctx, server.URL, &resp)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork in chain, got %v", err)
	}
}

func TestClientGetReportsHooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	hooks := &recordingHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	client := NewClient(time.Second, nil)
	var resp map[string]any
	if err := client.Get(context.Background(), server.URL+"/gems/rack.json", &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if len(hooks.events) != 2 {
		t.Fatalf("events = %v, want request and response", hooks.events)
	}
	if hooks.events[0] != "request /gems/rack.json" {
		t.Errorf("events[0] = %q", hooks.events[0])
	}
	if !strings.HasPrefix(hooks.events[1], "response 200") {
		t.Errorf("events[1] = %q", hooks.events[1])
	}
}

type recordingHooks struct {
	observability.NoopHTTPHooks
	events []string
}

func (h *recordingHooks) OnRequest(_ context.Context, _, _, path string) {
	h.events = append(h.events, "request "+path)
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.events = append(h.events, "response "+strconv.Itoa(status))
}
