package osmesa

import "unsafe"

// Buffer is a CPU-resident RGBA8 pixel storage region a Context renders
// into. It is plain host memory; no rasterizer calls are involved in its
// construction. Contents are meaningless until a bound context renders
// into them.
type Buffer struct {
	w, h uint32
	data []byte
}

// NewBuffer allocates storage of exactly w*h*4 bytes.
func NewBuffer(w, h uint32) *Buffer {
	return &Buffer{w: w, h: h, data: make([]byte, int(w)*int(h)*4)}
}

func (b *Buffer) Width() uint32  { return b.w }
func (b *Buffer) Height() uint32 { return b.h }

// Bytes exposes the raw storage. The rasterizer writes rows bottom-up.
func (b *Buffer) Bytes() []byte { return b.data }

// Ptr is the storage address handed to the native bind call. The Buffer
// must stay alive for as long as a context is bound to it.
func (b *Buffer) Ptr() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.data[0])
}
