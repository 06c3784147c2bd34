package image

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func uniformRGB(w, h int, v byte) []byte {
	return bytes.Repeat([]byte{v}, w*h*3)
}

// TestResizeIdentity checks a 1:1 resize reproduces the source exactly in
// both edge modes.
func TestResizeIdentity(t *testing.T) {
	const w, h = 7, 5
	src := make([]byte, w*h*3)
	for i := range src {
		src[i] = byte(i*37 + 11)
	}

	for _, edge := range []EdgeMode{EdgeZero, EdgeClamp} {
		t.Run(edge.String(), func(t *testing.T) {
			dst, err := Resize(src, w, h, w, h, WithEdge(edge))
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if !bytes.Equal(dst, src) {
				t.Errorf("identity resize changed pixels:\n got %v\nwant %v", dst, src)
			}
		})
	}
}

func TestResizeLinearRamp(t *testing.T) {
	// One row ramp 0, 40, 80, 120, 160 in every channel.
	const w = 5
	src := make([]byte, w*3)
	for x := range w {
		for k := range 3 {
			src[x*3+k] = byte(x * 40)
		}
	}

	dst, err := Resize(src, w, 1, 2*w, 1, WithEdge(EdgeClamp))
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	// Interior samples of a linear ramp stay on the ramp.
	for j := 2; j <= 5; j++ {
		want := byte(j * 20)
		if got := dst[j*3]; got != want {
			t.Errorf("dst[%d] = %d, want %d", j, got, want)
		}
	}
}

// TestResizeEdgeModes compares the border behaviour of the two modes on a
// uniform image.
func TestResizeEdgeModes(t *testing.T) {
	src := uniformRGB(4, 4, 200)

	zero, err := Resize(src, 4, 4, 8, 8)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	clamped, err := Resize(src, 4, 4, 8, 8, WithEdge(EdgeClamp))
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	// dst (7, 4) samples source x=3.5 on row 2: half of its window is
	// outside the image.
	off := (4*8 + 7) * 3
	if got := zero[off]; got != 100 {
		t.Errorf("EdgeZero border = %d, want 100", got)
	}
	if got := clamped[off]; got != 200 {
		t.Errorf("EdgeClamp border = %d, want 200", got)
	}

	// Clamped resize of a uniform image is uniform everywhere.
	for i, v := range clamped {
		if v != 200 {
			t.Fatalf("clamped[%d] = %d, want 200", i, v)
		}
	}
}

func TestResizeDownscale(t *testing.T) {
	src := uniformRGB(8, 8, 90)
	dst, err := Resize(src, 8, 8, 4, 4, WithEdge(EdgeClamp))
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if len(dst) != 4*4*3 {
		t.Fatalf("len(dst) = %d, want %d", len(dst), 4*4*3)
	}
	for i, v := range dst {
		if v != 90 {
			t.Fatalf("dst[%d] = %d, want 90", i, v)
		}
	}
}

func TestResizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		dst     []byte
		src     []byte
		sw, sh  int
		dw, dh  int
		wantErr error
	}{
		{"zero width", make([]byte, 12), make([]byte, 12), 0, 2, 2, 2, ErrInvalidDimensions},
		{"negative target", make([]byte, 12), make([]byte, 12), 2, 2, -1, 2, ErrInvalidDimensions},
		{"short source", make([]byte, 12), make([]byte, 5), 2, 2, 2, 2, ErrResizeBuffer},
		{"short destination", make([]byte, 5), make([]byte, 12), 2, 2, 2, 2, ErrResizeBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ResizeInto(tt.dst, tt.src, tt.sw, tt.sh, tt.dw, tt.dh)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResizeInto() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCubicInterpolates(t *testing.T) {
	// The cubic passes through p(0) at t=0 and p(1) at t=1.
	a0, p1 := float32(50), float32(80)
	if got := cubic(a0, -10, p1-a0, 30, 0); got != a0 {
		t.Errorf("cubic at 0 = %v, want %v", got, a0)
	}
	if got := cubic(a0, -10, p1-a0, 30, 1); got < p1-1e-3 || got > p1+1e-3 {
		t.Errorf("cubic at 1 = %v, want %v", got, p1)
	}
}

func BenchmarkResize(b *testing.B) {
	src := uniformRGB(256, 256, 128)
	dst := make([]byte, 128*128*3)
	b.ReportAllocs()
	for b.Loop() {
		_ = ResizeInto(dst, src, 256, 256, 128, 128)
	}
}
