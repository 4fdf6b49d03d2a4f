// Package mesa binds the OSMesa off-screen rasterizer at runtime.
//
// The shared library is resolved with dlopen on first use and kept for the
// whole process. Every call goes through a C bridge (mesa.c), so the
// resolved symbols stay plain pointers on the Go side.
package mesa

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unsafe"
)

/*
#cgo LDFLAGS: -ldl
#include <stdlib.h>
#include <dlfcn.h>
#include "mesa.h"
*/
import "C"

// Context is an opaque native OSMesa context handle.
type Context unsafe.Pointer

// OSMesa context-creation attribute keys and values.
const (
	Profile             = 0x33
	CoreProfile         = 0x34
	CompatProfile       = 0x35
	ContextMajorVersion = 0x36
	ContextMinorVersion = 0x37

	// UnsignedByte is GL_UNSIGNED_BYTE, the channel type for RGBA8 buffers.
	UnsignedByte = 0x1401
)

// LibEnv overrides library discovery with an explicit path.
const LibEnv = "OSMESA_LIBRARY"

// Probed in order when LibEnv is not set.
var libNames = []string{"libOSMesa.so.8", "libOSMesa.so.6", "libOSMesa.so"}

var (
	loadOnce sync.Once
	loadErr  error

	fnCreate      unsafe.Pointer
	fnMakeCurrent unsafe.Pointer
	fnGetCurrent  unsafe.Pointer
	fnGetProc     unsafe.Pointer
	fnDestroy     unsafe.Pointer
)

// Load resolves the OSMesa shared library and its entry points.
// The first result is cached for the rest of the process, failure included,
// so repeated calls never re-probe the filesystem.
func Load() error {
	loadOnce.Do(func() { loadErr = load() })
	return loadErr
}

func load() error {
	var handle unsafe.Pointer
	if lib := os.Getenv(LibEnv); lib != "" {
		h, err := open(lib)
		if err != nil {
			return fmt.Errorf("mesa: %s: %w", lib, err)
		}
		handle = h
	} else {
		for _, name := range libNames {
			if h, err := open(name); err == nil {
				handle = h
				break
			}
		}
		if handle == nil {
			return fmt.Errorf("mesa: no OSMesa library found (tried %s)",
				strings.Join(libNames, ", "))
		}
	}

	for _, s := range []struct {
		name string
		ptr  *unsafe.Pointer
	}{
		{"OSMesaCreateContextAttribs", &fnCreate},
		{"OSMesaMakeCurrent", &fnMakeCurrent},
		{"OSMesaGetCurrentContext", &fnGetCurrent},
		{"OSMesaGetProcAddress", &fnGetProc},
		{"OSMesaDestroyContext", &fnDestroy},
	} {
		p, err := lookup(handle, s.name)
		if err != nil {
			return err
		}
		*s.ptr = p
	}
	return nil
}

func open(file string) (unsafe.Pointer, error) {
	cs := C.CString(file)
	defer C.free(unsafe.Pointer(cs))
	h := C.dlopen(cs, C.RTLD_LAZY)
	if h == nil {
		if e := C.dlerror(); e != nil {
			return nil, errors.New(C.GoString(e))
		}
		return nil, errors.New("couldn't load the lib")
	}
	return unsafe.Pointer(h), nil
}

func lookup(handle unsafe.Pointer, name string) (unsafe.Pointer, error) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	p := C.dlsym(handle, cs)
	if p == nil {
		return nil, fmt.Errorf("mesa: symbol not found: %s", name)
	}
	return p, nil
}

// CreateContextAttribs creates a native context from a zero-terminated
// attribute list. A nil return means the rasterizer rejected the attributes.
func CreateContextAttribs(attribs []int32, share Context) Context {
	return Context(C.bridge_osmesa_create(fnCreate,
		(*C.int)(unsafe.Pointer(&attribs[0])), unsafe.Pointer(share)))
}

// MakeCurrent binds ctx to buf on the calling thread. Passing a nil ctx and
// buf with zero dimensions clears the thread's current context.
func MakeCurrent(ctx Context, buf unsafe.Pointer, channelType uint32, w, h int32) bool {
	return C.bridge_osmesa_make_current(fnMakeCurrent, unsafe.Pointer(ctx), buf,
		C.uint(channelType), C.int(w), C.int(h)) != 0
}

// GetCurrentContext returns the calling thread's current context, or nil.
func GetCurrentContext() Context {
	return Context(C.bridge_osmesa_get_current(fnGetCurrent))
}

// GetProcAddress resolves a GL symbol against the current context.
func GetProcAddress(name string) unsafe.Pointer {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return C.bridge_osmesa_get_proc(fnGetProc, cs)
}

func DestroyContext(ctx Context) {
	C.bridge_osmesa_destroy(fnDestroy, unsafe.Pointer(ctx))
}
