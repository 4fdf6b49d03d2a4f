package osmesa

import (
	"errors"
	"runtime"
	"testing"

	"github.com/osmesa-go/osmesa/pkg/osmesa/mesa"
)

// Context operations below need the real rasterizer.
func requireMesa(t *testing.T) {
	t.Helper()
	if err := mesa.Load(); err != nil {
		t.Skipf("OSMesa is not available: %v", err)
	}
}

func newAnyContext(t *testing.T) *Context {
	t.Helper()
	// llvmpipe does 3.3 core; swrast builds may only take a legacy context
	ctx, err := New(Config{Profile: ProfileCore, Version: Version{3, 3}})
	if err != nil {
		ctx, err = New(Config{Version: Version{2, 1}})
	}
	if err != nil {
		t.Fatalf("context creation failed: %v", err)
	}
	return ctx
}

func TestSharingPanics(t *testing.T) {
	requireMesa(t)
	defer func() {
		if recover() == nil {
			t.Error("a sharing request should panic, not create a context")
		}
	}()
	_, _ = New(Config{Share: &Context{}, Version: Version{3, 3}})
}

func TestRobustnessRejected(t *testing.T) {
	requireMesa(t)
	for _, r := range []Robustness{RobustNoResetNotification, RobustLoseContextOnReset} {
		if _, err := New(Config{Robustness: r, Version: Version{2, 1}}); !errors.Is(err, ErrRobustnessNotSupported) {
			t.Errorf("robustness %v: got %v, want ErrRobustnessNotSupported", r, err)
		}
	}
}

func TestContextLifecycle(t *testing.T) {
	requireMesa(t)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	buf := NewBuffer(64, 64)
	if len(buf.Bytes()) != 64*64*4 {
		t.Fatalf("buffer storage is %v bytes", len(buf.Bytes()))
	}

	ctx := newAnyContext(t)
	defer ctx.Destroy()

	if ctx.IsCurrent() {
		t.Error("a fresh context shouldn't be current")
	}
	if err := ctx.MakeNotCurrent(); err != nil {
		t.Errorf("unbinding a never-bound context should be a no-op, got %v", err)
	}

	ctx.MakeCurrent(buf)
	if !ctx.IsCurrent() {
		t.Error("the context should be current after bind")
	}
	if ctx.Raw() == nil {
		t.Error("nil raw handle on a live context")
	}

	p, err := ctx.ProcAddress("glGetString")
	if err != nil {
		t.Errorf("proc address on a current context: %v", err)
	}
	if p == nil {
		t.Error("glGetString resolved to nil")
	}

	if err := ctx.MakeNotCurrent(); err != nil {
		// older gallium drivers can't clear the current context
		if errors.Is(err, ErrClearCurrentUnsupported) {
			t.Logf("driver gap: %v", err)
			return
		}
		t.Fatalf("unbind failed: %v", err)
	}
	if ctx.IsCurrent() {
		t.Error("the context should not be current after unbind")
	}
}

func TestProcAddressNotCurrent(t *testing.T) {
	if !debugChecks {
		t.Skip("precondition checks are enabled with the gldebug tag")
	}
	requireMesa(t)

	ctx := newAnyContext(t)
	defer ctx.Destroy()

	if _, err := ctx.ProcAddress("glGetString"); !errors.Is(err, ErrNotCurrent) {
		t.Errorf("got %v, want ErrNotCurrent", err)
	}
}

func TestDestroyTwice(t *testing.T) {
	requireMesa(t)
	ctx := newAnyContext(t)
	ctx.Destroy()
	// only the first call may reach the rasterizer
	ctx.Destroy()
}
