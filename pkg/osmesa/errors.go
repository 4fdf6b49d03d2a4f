package osmesa

import "errors"

var (
	// ErrRobustnessNotSupported is returned when context creation asks for a
	// reset-robustness guarantee OSMesa cannot provide.
	ErrRobustnessNotSupported = errors.New("osmesa: robustness is not supported")

	// ErrNotCurrent is returned by ProcAddress when the context is not
	// current on the calling thread and debug checks are enabled.
	ErrNotCurrent = errors.New("osmesa: context is not current on this thread")

	// ErrClearCurrentUnsupported is returned by MakeNotCurrent on older
	// gallium-based drivers that reject clearing the current context.
	ErrClearCurrentUnsupported = errors.New("osmesa: driver can't clear the current context")
)
