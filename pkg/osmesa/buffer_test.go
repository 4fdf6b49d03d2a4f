package osmesa

import "testing"

func TestBufferSize(t *testing.T) {
	tests := []struct {
		w, h uint32
		size int
	}{
		{1, 1, 4},
		{64, 64, 16384},
		{640, 480, 1228800},
		{1, 4096, 16384},
	}

	for _, tt := range tests {
		b := NewBuffer(tt.w, tt.h)
		if got := len(b.Bytes()); got != tt.size {
			t.Errorf("buffer %vx%v: storage is %v bytes, want %v", tt.w, tt.h, got, tt.size)
		}
		if b.Width() != tt.w || b.Height() != tt.h {
			t.Errorf("buffer %vx%v: dimensions are %vx%v", tt.w, tt.h, b.Width(), b.Height())
		}
		if b.Ptr() == nil {
			t.Errorf("buffer %vx%v: nil storage pointer", tt.w, tt.h)
		}
	}
}

func TestEmptyBuffer(t *testing.T) {
	b := NewBuffer(0, 128)
	if len(b.Bytes()) != 0 {
		t.Errorf("zero-width buffer has %v bytes of storage", len(b.Bytes()))
	}
	if b.Ptr() != nil {
		t.Error("zero-width buffer should have a nil storage pointer")
	}
}
