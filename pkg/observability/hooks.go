// Package observability provides hooks for tracing and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The CLI registers hooks
// at startup to receive events about tree expansion, memo cache lookups and
// registry requests; library code only ever calls the registered hooks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Expand().OnExpandStart(ctx, gem)
//	// ... expand ...
//	observability.Expand().OnExpandComplete(ctx, gem, edgeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Expand Hooks
// =============================================================================

// ExpandHooks receives events from dependency tree expansion.
type ExpandHooks interface {
	OnExpandStart(ctx context.Context, gem string)
	OnExpandComplete(ctx context.Context, gem string, edgeCount int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the memo cache.
type CacheHooks interface {
	// OnCacheHit records a lookup answered from the cache.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a lookup that requires a fetch.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write of size entries.
	OnCacheSet(ctx context.Context, key string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExpandHooks is a no-op implementation of ExpandHooks.
type NoopExpandHooks struct{}

func (NoopExpandHooks) OnExpandStart(context.Context, string)                               {}
func (NoopExpandHooks) OnExpandComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	expandHooks ExpandHooks = NoopExpandHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetExpandHooks registers custom expansion hooks.
// This should be called once at application startup.
func SetExpandHooks(h ExpandHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		expandHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Expand returns the registered expansion hooks.
func Expand() ExpandHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return expandHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	expandHooks = NoopExpandHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
