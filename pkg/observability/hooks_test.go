package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "defects.csv")
	p.OnLoadComplete(ctx, "defects.csv", 10, time.Second, nil)
	p.OnBuildStart(ctx, 10)
	p.OnBuildComplete(ctx, 10, 100, time.Second, nil)
	p.OnProjectStart(ctx, 10)
	p.OnProjectComplete(ctx, time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "points")
	c.OnCacheMiss(ctx, "geometry")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/api/render")
	h.OnResponse(ctx, "POST", "/api/render", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Register custom hooks
	custom := &countingCacheHooks{}
	SetCacheHooks(custom)
	Cache().OnCacheHit(context.Background(), "points")
	Cache().OnCacheMiss(context.Background(), "points")
	Cache().OnCacheSet(context.Background(), "points", 64)

	if custom.hits != 1 || custom.misses != 1 || custom.sets != 1 {
		t.Errorf("counting hooks = %d/%d/%d, want 1/1/1", custom.hits, custom.misses, custom.sets)
	}

	// Nil registration keeps the current hooks
	SetCacheHooks(nil)
	Cache().OnCacheHit(context.Background(), "points")
	if custom.hits != 2 {
		t.Error("SetCacheHooks(nil) should keep the registered hooks")
	}

	// Reset restores noops
	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

type countingCacheHooks struct {
	hits, misses, sets int
}

func (c *countingCacheHooks) OnCacheHit(context.Context, string)      { c.hits++ }
func (c *countingCacheHooks) OnCacheMiss(context.Context, string)     { c.misses++ }
func (c *countingCacheHooks) OnCacheSet(context.Context, string, int) { c.sets++ }
