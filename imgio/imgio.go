package imgio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pixdraw/raster"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Formats lists the encodings Save can produce, the first being the default.
var Formats = []string{"png", "gif", "jpeg", "bmp", "tiff"}

// Load decodes the image file at path into a new raster.Image. The second
// return value is the decoder's format name.
func Load(path string) (*raster.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}

	slog.Debug("loaded image", "file", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return FromImage(img), format, nil
}

// FromImage converts img to straight-alpha packed pixels. The result's
// origin is img.Bounds().Min.
func FromImage(img image.Image) *raster.Image {
	b := img.Bounds()
	out := &raster.Image{
		Width:  int32(b.Dx()),
		Height: int32(b.Dy()),
		Data:   make([]uint32, b.Dx()*b.Dy()),
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		for y := range b.Dy() {
			for x := range b.Dx() {
				out.Data[y*b.Dx()+x] = uint32(raster.FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
			}
		}
		return out
	}

	for y := range b.Dy() {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+b.Dx()*4]
		for x := range b.Dx() {
			p := row[x*4 : x*4+4]
			out.Data[y*b.Dx()+x] = uint32(raster.RGBA(p[0], p[1], p[2], p[3]))
		}
	}
	return out
}

// FormatFromPath derives an output format from the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "gif", "bmp":
		return ext, nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "tif", "tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}

// Extension returns the file extension used for format.
func Extension(format string) string {
	return "." + format
}
