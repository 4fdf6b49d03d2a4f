// This package is used for locking rendering work to one OS thread.
// The rasterizer keeps its "current context" per thread, so everything
// touching a binding has to stay on the same thread.
// See: https://github.com/golang/go/wiki/LockOSThread
package thread

import "github.com/faiface/mainthread"

// MainWrap runs f with the main OS thread reserved for Main calls.
// Call it once, from main.
func MainWrap(f func()) { mainthread.Run(f) }

// Main calls f on the locked main thread and waits for it to finish.
func Main(f func()) { mainthread.Call(f) }
