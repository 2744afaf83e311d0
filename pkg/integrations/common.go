package integrations

import (
	"errors"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/matzehuels/gemtree/pkg/buildinfo"
)

// DefaultTimeout bounds a single registry request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (connection errors, timeouts, non-2xx responses).
	ErrNetwork = errors.New("network error")
)

// UserAgent is sent with every registry request.
func UserAgent() string {
	return "gemtree/" + buildinfo.Version
}

// NewHTTPClient creates a resty client with the given request timeout.
// A non-positive timeout falls back to [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent()).
		SetHeader("Accept", "application/json")
}
