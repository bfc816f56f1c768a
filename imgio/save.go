package imgio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Save encodes img as format into path. The data is written to a temporary
// file next to path and renamed into place once fully flushed.
func Save(img image.Image, format, path string) (err error) {
	encode, ok := encoders[format]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	outFile, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", outFile.Name(), defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", outFile.Name(), defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", path, defErr)
			}
		} else {
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = encode(outFile, img); err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", format, path, err)
	}

	canRename = true
	return nil
}

type encodeFunc func(*os.File, image.Image) error

var encoders = map[string]encodeFunc{
	"gif": func(f *os.File, img image.Image) error {
		return gif.Encode(f, img, nil)
	},
	"jpeg": func(f *os.File, img image.Image) error {
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	},
	"png": func(f *os.File, img image.Image) error {
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(f, img)
	},
	"bmp": func(f *os.File, img image.Image) error {
		return bmp.Encode(f, img)
	},
	"tiff": func(f *os.File, img image.Image) error {
		return tiff.Encode(f, img, nil)
	},
}

// pngBuffers lets concurrent saves reuse PNG encoder scratch space.
type pngBuffers struct {
	sync.Pool
}

var _ png.EncoderBufferPool = (*pngBuffers)(nil)

func (b *pngBuffers) Get() *png.EncoderBuffer {
	if buf, ok := b.Pool.Get().(*png.EncoderBuffer); ok {
		return buf
	}
	return new(png.EncoderBuffer)
}

func (b *pngBuffers) Put(buf *png.EncoderBuffer) {
	b.Pool.Put(buf)
}

var pngPool = &pngBuffers{}
