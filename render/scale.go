package render

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"
)

func upscale(logger *slog.Logger, img image.Image, factor int) image.Image {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor)

	logger.Info("scaling", "factor", factor, "width", dr.Dx(), "height", dr.Dy())
	dest := image.NewNRGBA(dr)
	draw.NearestNeighbor.Scale(dest, dr, img, sr, draw.Src, nil)

	return dest
}
