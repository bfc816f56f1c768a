package raster

// SetPixel composites c over the pixel stored at index. Indices outside
// the buffer are ignored.
func SetPixel(img *Image, index int, c Color) {
	if index < 0 || index >= int(img.Width)*int(img.Height) {
		return
	}
	img.Data[index] = uint32(BlendColors(c, Color(img.Data[index])))
}

// DrawPixel composites c over the pixel at (x, y). Coordinates outside the
// image are ignored.
func DrawPixel(img *Image, x, y int32, c Color) {
	if idx, ok := Index(img, x, y); ok {
		SetPixel(img, idx, c)
	}
}

// DrawRect fills r, clipped to the image, blending c over each pixel.
func DrawRect(img *Image, r Rect, c Color) {
	x0 := Clamp(r.X, 0, img.Width)
	y0 := Clamp(r.Y, 0, img.Height)
	x1 := clamp64(int64(r.X)+int64(r.Width), img.Width)
	y1 := clamp64(int64(r.Y)+int64(r.Height), img.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			DrawPixel(img, x, y, c)
		}
	}
}

// DrawCircle fills the closed disc of radius r centered at (cx, cy).
func DrawCircle(img *Image, cx, cy, r int32, c Color) {
	if r <= 0 {
		return
	}

	// The bounding box is clipped to the image in 64 bits so it cannot
	// wrap near the int32 limits.
	rr := int64(r)
	x0 := max(int64(cx)-rr, 0)
	y0 := max(int64(cy)-rr, 0)
	x1 := min(int64(cx)+rr, int64(img.Width)-1)
	y1 := min(int64(cy)+rr, int64(img.Height)-1)

	r2 := square(rr)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if squareDist(x, y, int64(cx), int64(cy)) <= r2 {
				DrawPixel(img, int32(x), int32(y), c)
			}
		}
	}
}

// Contains reports whether r lies entirely inside img.
func Contains(img *Image, r Rect) bool {
	return r.X >= 0 && r.Y >= 0 &&
		int64(r.X)+int64(r.Width) <= int64(img.Width) &&
		int64(r.Y)+int64(r.Height) <= int64(img.Height)
}

// blit walks the tile region of src placed at (x, y) in dst and calls fn
// with the destination index and source color of every visible pixel.
// Nothing is visited unless tile lies entirely inside src.
func blit(dst *Image, x, y int32, src *Image, tile Rect, fn func(idx int, c Color)) {
	if !Contains(src, tile) {
		return
	}

	for i := int32(0); i < tile.Height; i++ {
		for j := int32(0); j < tile.Width; j++ {
			dstIdx, ok := Index(dst, x+j, y+i)
			if !ok {
				continue
			}
			srcIdx, _ := Index(src, tile.X+j, tile.Y+i)
			fn(dstIdx, Color(src.Data[srcIdx]))
		}
	}
}

// DrawTile copies the tile region of tilemap to (x, y) in img verbatim.
// If tile is not entirely inside tilemap nothing is drawn.
func DrawTile(img *Image, x, y int32, tilemap *Image, tile Rect) {
	blit(img, x, y, tilemap, tile, func(idx int, c Color) {
		img.Data[idx] = uint32(c)
	})
}

// DrawSprite composites the sprite region of spritemap over img at (x, y).
// Fully transparent source pixels leave the destination untouched. If
// sprite is not entirely inside spritemap nothing is drawn.
func DrawSprite(img *Image, x, y int32, spritemap *Image, sprite Rect) {
	blit(img, x, y, spritemap, sprite, func(idx int, c Color) {
		if c.A() == 0 {
			return
		}
		img.Data[idx] = uint32(BlendColors(c, Color(img.Data[idx])))
	})
}
