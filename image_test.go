package fbtext

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/ffnt/fbtext/internal/image"
)

func TestDrawImageFormats(t *testing.T) {
	tests := []struct {
		format ImageFormat
		pix    []byte
		want   Color
	}{
		{FormatRGB24, []byte{10, 20, 30}, RGB(10, 20, 30)},
		{FormatBGR24, []byte{30, 20, 10}, RGB(10, 20, 30)},
		{FormatRGBA32, []byte{10, 20, 30, 0xFF}, RGB(10, 20, 30)},
		{FormatABGR32, []byte{0xFF, 30, 20, 10}, RGB(10, 20, 30)},
		{FormatRGBA32, []byte{10, 20, 30, 0}, Black},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			dc := newTestContext(t, 4, 4)
			dc.DrawImage(2, 1, 1, 1, tt.pix, tt.format)
			wantPixel(t, dc, 2, 1, tt.want)
		})
	}
}

func TestDrawImageOffCanvas(t *testing.T) {
	dc := newTestContext(t, 4, 4)
	pix := make([]byte, 3*3*3)
	for i := range pix {
		pix[i] = 0xFF
	}

	dc.DrawImage(-1, -1, 3, 3, pix, FormatRGB24)
	dc.DrawImage(3, 3, 3, 3, pix, FormatRGB24)

	wantPixel(t, dc, 0, 0, White)
	wantPixel(t, dc, 1, 1, White)
	wantPixel(t, dc, 2, 2, Black)
	wantPixel(t, dc, 3, 3, White)
}

func TestResizeImageIdentity(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	for _, edge := range []EdgeMode{EdgeZero, EdgeClamp} {
		got, err := ResizeImage(src, 2, 2, 2, 2, edge)
		if err != nil {
			t.Fatalf("ResizeImage(%v): %v", edge, err)
		}
		if string(got) != string(src) {
			t.Errorf("ResizeImage(%v) = %v, want %v", edge, got, src)
		}
	}
}

func TestDrawImageScaledCaches(t *testing.T) {
	dc := newTestContext(t, 16, 16)
	pix := make([]byte, 4*4*3)
	for i := range pix {
		pix[i] = 200
	}
	src, err := NewImage(pix, 4, 4, FormatRGB24)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	for range 3 {
		if err := dc.DrawImageScaled("logo", src, 0, 0, 8, 8); err != nil {
			t.Fatalf("DrawImageScaled: %v", err)
		}
	}
	if n := dc.images.Len(); n != 1 {
		t.Errorf("cache holds %d images, want 1", n)
	}
	if err := dc.DrawImageScaled("logo", src, 0, 0, 6, 6); err != nil {
		t.Fatalf("DrawImageScaled: %v", err)
	}
	if n := dc.images.Len(); n != 2 {
		t.Errorf("cache holds %d images, want 2", n)
	}

	dc.ForgetImage("logo")
	if n := dc.images.Len(); n != 0 {
		t.Errorf("cache holds %d images after ForgetImage, want 0", n)
	}
}

func TestDrawImageScaledEvicts(t *testing.T) {
	dc := newTestContext(t, 16, 16, WithImageCache(8*8*3))
	src, _ := NewImage(make([]byte, 4*4*3), 4, 4, FormatRGB24)

	_ = dc.DrawImageScaled("a", src, 0, 0, 8, 8)
	_ = dc.DrawImageScaled("b", src, 0, 0, 8, 8)

	if _, ok := dc.images.Get(scaledKey{name: "a", width: 8, height: 8}); ok {
		t.Error("least recently used image was not evicted")
	}
	if n := dc.images.Len(); n != 1 {
		t.Errorf("cache holds %d images, want 1", n)
	}
}

func TestDrawImageScaledRejectsFormat(t *testing.T) {
	dc := newTestContext(t, 8, 8)
	src, _ := NewImage(make([]byte, 2*2*4), 2, 2, FormatRGBA32)

	err := dc.DrawImageScaled("x", src, 0, 0, 4, 4)
	if !errors.Is(err, image.ErrInvalidFormat) {
		t.Errorf("DrawImageScaled error = %v, want ErrInvalidFormat", err)
	}
}

func TestNewImageTooSmall(t *testing.T) {
	if _, err := NewImage(make([]byte, 5), 2, 1, FormatRGB24); !errors.Is(err, image.ErrDataTooSmall) {
		t.Errorf("NewImage error = %v, want ErrDataTooSmall", err)
	}
}
