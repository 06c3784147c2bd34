package color

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA8
		ok   bool
	}{
		{"#fff", RGBA8{255, 255, 255, 255}, true},
		{"#0f08", RGBA8{0, 255, 0, 136}, true},
		{"27A3C7", RGBA8{0x27, 0xA3, 0xC7, 0xFF}, true},
		{"#27a3c780", RGBA8{0x27, 0xA3, 0xC7, 0x80}, true},
		{"#12345", RGBA8{}, false},
		{"#zzzzzz", RGBA8{}, false},
		{"", RGBA8{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseHex(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPacked(t *testing.T) {
	c := RGBA8{R: 0x11, G: 0x22, B: 0x33, A: 0x10}
	if got := c.Packed(); got != 0xFF332211 {
		t.Errorf("Packed() = %#08x, want 0xff332211", got)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	c := RGBA8{R: 10, G: 20, B: 30, A: 255}
	if got := FromColor(c.NRGBA()); got != c {
		t.Errorf("FromColor(NRGBA()) = %v, want %v", got, c)
	}
	if got := FromColor(color.Black); got != (RGBA8{0, 0, 0, 255}) {
		t.Errorf("FromColor(Black) = %v", got)
	}
}
