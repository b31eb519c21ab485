package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnSerializeStart(ctx, 0, []string{"rf", "co"})
	r.OnSerializeComplete(ctx, 0, 512, time.Millisecond)
	r.OnRenderStart(ctx, "svg")
	r.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	SetRenderHooks(nil)
	if Render() != custom {
		t.Error("SetRenderHooks(nil) should keep previous hooks")
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should keep noop hooks")
	}
}

func TestHooksRecordEvents(t *testing.T) {
	Reset()
	defer Reset()

	ctx := context.Background()
	rh := &testRenderHooks{}
	ch := &testCacheHooks{}
	SetRenderHooks(rh)
	SetCacheHooks(ch)

	Render().OnSerializeStart(ctx, 1, []string{"rf"})
	Render().OnRenderComplete(ctx, "png", 10, time.Second, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")

	if rh.serializeStarts != 1 {
		t.Errorf("serializeStarts = %d, want 1", rh.serializeStarts)
	}
	if rh.renderCompletes != 1 {
		t.Errorf("renderCompletes = %d, want 1", rh.renderCompletes)
	}
	if ch.hits != 1 || ch.misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", ch.hits, ch.misses)
	}
}

// testRenderHooks counts render events for assertions.
type testRenderHooks struct {
	serializeStarts int
	renderCompletes int
}

func (h *testRenderHooks) OnSerializeStart(context.Context, int, []string) { h.serializeStarts++ }
func (h *testRenderHooks) OnSerializeComplete(context.Context, int, int, time.Duration) {
}
func (h *testRenderHooks) OnRenderStart(context.Context, string) {}
func (h *testRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
	h.renderCompletes++
}

// testCacheHooks counts cache events for assertions.
type testCacheHooks struct {
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }
