package raster

import (
	"image/color"
	"testing"
)

func TestChannels(t *testing.T) {
	c := Color(0x12345678)
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Fatalf("channels of %v: got (%#x, %#x, %#x, %#x)", c, c.R(), c.G(), c.B(), c.A())
	}
	if got := RGBA(0x12, 0x34, 0x56, 0x78); got != c {
		t.Errorf("RGBA: got %v, want %v", got, c)
	}
}

func TestBlendComponent(t *testing.T) {
	tests := []struct {
		name            string
		fg, bg, a, want uint8
	}{
		{"opaque", 255, 0, 255, 255},
		{"opaque dark", 0, 255, 255, 0},
		{"transparent", 255, 0, 0, 0},
		{"transparent light", 0, 255, 0, 255},
		{"low alpha up", 255, 100, 10, 106},
		{"low alpha down", 100, 255, 10, 248},
		{"high alpha up", 255, 100, 245, 248},
		{"high alpha down", 100, 255, 245, 106},
		{"half up", 255, 0, 128, 128},
		{"half down truncates", 0, 255, 128, 127},
		{"forty percent", 100, 200, 100, 160},
		{"eighty percent", 100, 200, 200, 121},
		{"same opaque", 123, 123, 255, 123},
		{"same transparent", 123, 123, 0, 123},
		{"same half", 123, 123, 128, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendComponent(tt.fg, tt.bg, tt.a); got != tt.want {
				t.Errorf("BlendComponent(%d, %d, %d) = %d, want %d", tt.fg, tt.bg, tt.a, got, tt.want)
			}
		})
	}
}

func TestBlendComponentExtremes(t *testing.T) {
	for fg := range 256 {
		for bg := range 256 {
			if got := BlendComponent(uint8(fg), uint8(bg), 255); got != uint8(fg) {
				t.Fatalf("BlendComponent(%d, %d, 255) = %d, want fg", fg, bg, got)
			}
			if got := BlendComponent(uint8(fg), uint8(bg), 0); got != uint8(bg) {
				t.Fatalf("BlendComponent(%d, %d, 0) = %d, want bg", fg, bg, got)
			}
		}
	}
}

func TestBlendColorsIsOpaque(t *testing.T) {
	colors := []Color{Transparent, Black, White, 0x0000FF80, 0xFF000001, 0x12345678, 0xFFFFFF00}
	for _, fg := range colors {
		for _, bg := range colors {
			if got := BlendColors(fg, bg); got.A() != 0xFF {
				t.Errorf("BlendColors(%v, %v) = %v, alpha not 255", fg, bg, got)
			}
		}
	}

	if got := BlendColors(0x0000FF80, 0xFF0000FF); got != 0x7F0080FF {
		t.Errorf("half blue over red: got %v, want #7f0080ff", got)
	}
}

func TestColorModel(t *testing.T) {
	c := Color(0x80402080)
	if got := FromColor(c.NRGBA()); got != c {
		t.Errorf("FromColor(NRGBA): got %v, want %v", got, c)
	}
	if got := FromColor(color.RGBA{R: 0xFF, A: 0xFF}); got != 0xFF0000FF {
		t.Errorf("FromColor(RGBA red): got %v", got)
	}

	img := NewImage(2, 1)
	img.Data[1] = 0x11223344
	if got := FromColor(img.At(1, 0)); got != 0x11223344 {
		t.Errorf("At: got %v, want #11223344", got)
	}
	if got := img.Pixel(5, 0); got != 0 {
		t.Errorf("Pixel out of bounds: got %v, want 0", got)
	}
}
