package raster

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) RGBA value packed as
// 0xRRGGBBAA.
type Color uint32

const (
	Black       Color = 0x000000FF
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000
)

var _ color.Color = Color(0)

// RGBA packs four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// FromColor converts any color.Color to a packed straight-alpha Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// NRGBA returns c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// BlendComponent mixes one channel of fg over bg with the given opacity.
// Division truncates, so BlendComponent(0, 255, 128) is 127.
func BlendComponent(fg, bg, alpha uint8) uint8 {
	a := uint32(alpha)
	return uint8((a*uint32(fg) + (255-a)*uint32(bg)) / 255)
}

// BlendColors composites fg over bg using fg's alpha. The result is always
// opaque.
func BlendColors(fg, bg Color) Color {
	a := fg.A()
	return RGBA(
		BlendComponent(fg.R(), bg.R(), a),
		BlendComponent(fg.G(), bg.G(), a),
		BlendComponent(fg.B(), bg.B(), a),
		0xFF,
	)
}
