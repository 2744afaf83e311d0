package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopExpandHooks{}
	e.OnExpandStart(ctx, "sinatra")
	e.OnExpandComplete(ctx, "sinatra", 4, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "rack")
	c.OnCacheMiss(ctx, "tilt")
	c.OnCacheSet(ctx, "tilt", 0)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "rubygems.org", "/api/v1/gems/rack.json")
	h.OnResponse(ctx, "GET", "rubygems.org", "/api/v1/gems/rack.json", 200, time.Second)
	h.OnError(ctx, "GET", "rubygems.org", "/api/v1/gems/rack.json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Expand().(NoopExpandHooks); !ok {
		t.Error("Expand() should return NoopExpandHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customExpand := &testExpandHooks{}
	SetExpandHooks(customExpand)
	if Expand() != customExpand {
		t.Error("SetExpandHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Expand().(NoopExpandHooks); !ok {
		t.Error("Reset() should restore NoopExpandHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)
	SetHTTPHooks(nil)

	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}

	Reset()
}

type testExpandHooks struct{ NoopExpandHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
