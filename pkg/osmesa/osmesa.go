// Package osmesa manages off-screen OpenGL rendering contexts backed by the
// OSMesa software rasterizer, for hosts without a display server.
//
// A Context owns a native rendering context; a Buffer owns the CPU-resident
// pixel storage a context renders into. The two are independent until
// MakeCurrent binds them on the calling thread. "Current" is a per-thread
// slot kept by the native layer: at most one context can be current on a
// thread, and a context must not be made current on two threads at once.
// That discipline is on the caller, the package doesn't enforce it.
package osmesa

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/osmesa-go/osmesa/pkg/logger"
	"github.com/osmesa-go/osmesa/pkg/osmesa/mesa"
)

// Config carries the negotiated capability preferences for a new Context.
type Config struct {
	Profile    Profile
	Robustness Robustness
	Version    Version
	// Share requests resource sharing with another context. OSMesa has no
	// mechanism for it, so a non-nil value is a hard abort.
	Share *Context
	// Log, when set, traces the creation path. Nil is silent.
	Log *logger.Logger
}

// Context wraps a native OSMesa rendering context. The handle stays valid
// until Destroy. Safe to share across goroutines for queries; see the
// package comment for the binding discipline.
type Context struct {
	ctx mesa.Context
}

// New negotiates and creates a native context.
//
// The rasterizer library is loaded lazily on the first call and the result
// is cached process-wide. Robustness requests the backend can't honor come
// back as ErrRobustnessNotSupported; a rejected attribute set comes back as
// a plain creation error the caller may retry with different parameters.
func New(cfg Config) (*Context, error) {
	if err := mesa.Load(); err != nil {
		return nil, fmt.Errorf("osmesa: library load: %w", err)
	}

	if cfg.Share != nil {
		panic("osmesa: context sharing is not possible with OSMesa")
	}

	if err := checkRobustness(cfg.Robustness); err != nil {
		return nil, err
	}

	attribs := buildAttribs(cfg.Profile, cfg.Version)
	ctx := mesa.CreateContextAttribs(attribs, nil)
	if ctx == nil {
		return nil, errors.New("osmesa: OSMesaCreateContextAttribs failed")
	}

	if cfg.Log != nil {
		cfg.Log.Debug().
			Str("profile", cfg.Profile.String()).
			Uint("major", cfg.Version.Major).
			Uint("minor", cfg.Version.Minor).
			Msg("context created")
	}
	return &Context{ctx: ctx}, nil
}

// MakeCurrent binds the context's rendering output to b's storage on the
// calling thread, as unsigned-byte RGBA with b's dimensions.
//
// Caller contract: nothing else may race for this thread's current-context
// slot, and b must outlive the binding. A failure of the native call can
// only mean invalid parameters built here, so it panics instead of
// returning an error.
func (c *Context) MakeCurrent(b *Buffer) {
	ok := mesa.MakeCurrent(c.ctx, b.Ptr(), mesa.UnsignedByte,
		int32(b.Width()), int32(b.Height()))
	if !ok {
		panic("osmesa: OSMesaMakeCurrent failed")
	}
}

// MakeNotCurrent clears the thread's current context if it is this one.
// Calling it on a context that is not current is a no-op.
//
// Older gallium-based drivers reject clearing the current context; that
// surfaces as ErrClearCurrentUnsupported rather than silently leaving the
// context bound. See
// https://gitlab.freedesktop.org/mesa/mesa/merge_requests/533.
func (c *Context) MakeNotCurrent() error {
	if mesa.GetCurrentContext() != c.ctx {
		return nil
	}
	if ok := mesa.MakeCurrent(nil, nil, 0, 0, 0); !ok {
		return ErrClearCurrentUnsupported
	}
	return nil
}

// IsCurrent reports whether this context is the calling thread's current
// context.
func (c *Context) IsCurrent() bool { return mesa.GetCurrentContext() == c.ctx }

// Raw exposes the native handle for interop. Valid exactly as long as the
// Context is alive.
func (c *Context) Raw() unsafe.Pointer { return unsafe.Pointer(c.ctx) }

// ProcAddress resolves a GL entry point by name. The context must be
// current on the calling thread, since the native resolver returns garbage
// otherwise; this is checked only in gldebug builds. A nil result for an
// unknown symbol passes through, matching GL convention.
func (c *Context) ProcAddress(name string) (unsafe.Pointer, error) {
	if debugChecks && !c.IsCurrent() {
		return nil, ErrNotCurrent
	}
	return mesa.GetProcAddress(name), nil
}

// Destroy releases the native context. Safe to call more than once; only
// the first call reaches the rasterizer. The context must not be current
// on any thread when destroyed.
func (c *Context) Destroy() {
	if c.ctx == nil {
		return
	}
	mesa.DestroyContext(c.ctx)
	c.ctx = nil
}
