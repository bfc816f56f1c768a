package raster

// InBounds reports whether (x, y) addresses a pixel of img.
func InBounds(img *Image, x, y int32) bool {
	return x >= 0 && x < img.Width && y >= 0 && y < img.Height
}

// Index returns the offset of (x, y) in img.Data. ok is false when the
// coordinates are outside the image, in which case idx is meaningless.
func Index(img *Image, x, y int32) (idx int, ok bool) {
	if !InBounds(img, x, y) {
		return 0, false
	}
	return int(y)*int(img.Width) + int(x), true
}

// Clamp constrains val to [lo, hi]. lo must not exceed hi.
func Clamp(val, lo, hi int32) int32 {
	if val < lo {
		return lo
	} else if val > hi {
		return hi
	}
	return val
}

// clamp64 constrains val to [0, hi] and narrows it.
func clamp64(val int64, hi int32) int32 {
	return int32(min(max(val, 0), int64(hi)))
}

func square(x int64) int64 {
	return x * x
}

// squareDist is the squared euclidean distance between two points.
func squareDist(x1, y1, x2, y2 int64) int64 {
	return square(x2-x1) + square(y2-y1)
}
