package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports registry requests and memo cache activity at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, _, _, path string, status int, d time.Duration) {
	h.logger.Debug("response", "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, _, _, path string, err error) {
	h.logger.Debug("request failed", "path", path, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("memo hit", "gem", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("memo miss", "gem", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("memo store", "gem", key, "deps", size)
}
