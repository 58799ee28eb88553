package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnParseStart(ctx, 512)
	p.OnParseComplete(ctx, 12, time.Millisecond)
	p.OnLayoutStart(ctx, "radial", 12)
	p.OnLayoutComplete(ctx, "radial", time.Millisecond, nil)
	p.OnRenderStart(ctx, []string{"svg", "png"})
	p.OnRenderComplete(ctx, []string{"svg", "png"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "layout", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/api/v1/generate")
	h.OnResponse(ctx, "POST", "/api/v1/generate", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should default to the no-op hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to the no-op hooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should default to the no-op hooks")
	}

	pipeline := &countingPipelineHooks{}
	SetPipelineHooks(pipeline)
	if Pipeline() != pipeline {
		t.Error("SetPipelineHooks should install the custom hooks")
	}

	cacheHooks := &countingCacheHooks{}
	SetCacheHooks(cacheHooks)
	if Cache() != cacheHooks {
		t.Error("SetCacheHooks should install the custom hooks")
	}

	httpHooks := &countingHTTPHooks{}
	SetHTTPHooks(httpHooks)
	if HTTP() != httpHooks {
		t.Error("SetHTTPHooks should install the custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore the no-op hooks")
	}
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	ctx := context.Background()
	pipeline := &countingPipelineHooks{}
	cacheHooks := &countingCacheHooks{}
	SetPipelineHooks(pipeline)
	SetCacheHooks(cacheHooks)

	Pipeline().OnLayoutStart(ctx, "horizontal", 7)
	Pipeline().OnLayoutComplete(ctx, "horizontal", time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "layout")
	Cache().OnCacheMiss(ctx, "artifact")

	if pipeline.layouts != 2 {
		t.Errorf("layout events = %d, want 2", pipeline.layouts)
	}
	if cacheHooks.hits != 1 || cacheHooks.misses != 1 {
		t.Errorf("cache events = %d hits / %d misses, want 1/1", cacheHooks.hits, cacheHooks.misses)
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &countingPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

type countingPipelineHooks struct {
	NoopPipelineHooks
	layouts int
}

func (h *countingPipelineHooks) OnLayoutStart(context.Context, string, int) { h.layouts++ }

func (h *countingPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error) {
	h.layouts++
}

type countingCacheHooks struct {
	NoopCacheHooks
	hits, misses int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string) { h.misses++ }

type countingHTTPHooks struct{ NoopHTTPHooks }
