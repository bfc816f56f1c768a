// Package raster draws pixels, rectangles, discs, tiles and sprites into
// packed RGBA pixel buffers.
package raster

import (
	"image"
	"image/color"
)

// Image is a packed RGBA pixel buffer. The pixel at (x, y) is
// Data[y*Width+x] and len(Data) is always Width*Height.
type Image struct {
	Width  int32
	Height int32
	Data   []uint32
}

// Rect is a region in pixel coordinates. It may extend past the image it
// refers to; consumers clip it.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

var _ image.Image = &Image{}

// NewImage allocates a width x height image filled with opaque black.
func NewImage(width, height int32) *Image {
	img := &Image{
		Width:  width,
		Height: height,
		Data:   make([]uint32, int(width)*int(height)),
	}
	img.Fill(Black)
	return img
}

// Fill overwrites every pixel with c, without blending.
func (img *Image) Fill(c Color) {
	for i := range img.Data {
		img.Data[i] = uint32(c)
	}
}

// Pixel returns the stored color at (x, y), or 0 outside the image.
func (img *Image) Pixel(x, y int32) Color {
	idx, ok := Index(img, x, y)
	if !ok {
		return 0
	}
	return Color(img.Data[idx])
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(img.Width), int(img.Height))
}

func (img *Image) At(x, y int) color.Color {
	return img.Pixel(int32(x), int32(y)).NRGBA()
}

// Rectangle converts r to an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}
