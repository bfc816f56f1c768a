package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"pixdraw/imgio"
	"pixdraw/palette"
	"pixdraw/parallel"
	"pixdraw/raster"
	"pixdraw/script"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scripts []string      `arg:"" help:"Drawing scripts to render"`
	Out     string        `help:"Destination folder for rendered images, or an image file when rendering a single script" default:"." type:"path"`
	Format  string        `help:"Output image format (png, gif, jpeg, bmp, tiff). Defaults to the --out extension, else png"`
	Scale   int           `help:"Integer upscale factor applied with nearest neighbour sampling" default:"1"`
	Palette string        `help:"Palette name (bw, gray16, vga16, pico8) or PAL file in RIFF format to quantize to"`
	Dither  bool          `help:"Apply dithering when quantizing" default:"false"`
	Pal     color.Palette `kong:"-"`
	OutFile string        `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	if format, err := imgio.FormatFromPath(c.Out); err == nil {
		if len(c.Scripts) != 1 {
			return fmt.Errorf("output file %q needs exactly one script, got %d", c.Out, len(c.Scripts))
		}
		c.OutFile = c.Out
		if c.Format == "" {
			c.Format = format
		}
	}
	if c.Format == "" {
		c.Format = imgio.Formats[0]
	}
	if !slices.Contains(imgio.Formats, c.Format) {
		return fmt.Errorf("%w: %s", imgio.ErrUnsupportedFormat, c.Format)
	}

	for i, path := range c.Scripts {
		abs, err := filepath.Abs(path)
		var info os.FileInfo
		if err == nil {
			if info, err = os.Stat(abs); err == nil && info.IsDir() {
				err = fmt.Errorf("is a directory")
			}
		}
		if err != nil {
			return fmt.Errorf("invalid script %q: %w", path, err)
		}
		c.Scripts[i] = abs
	}

	if c.Scale < 1 {
		return fmt.Errorf("invalid scale factor: %d", c.Scale)
	}

	if c.Palette != "" {
		if c.Pal, err = palette.Load(c.Palette); err != nil {
			return err
		}
	} else if c.Dither {
		return fmt.Errorf("dithering requires a palette")
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	destDir := c.Out
	if c.OutFile != "" {
		destDir = filepath.Dir(c.OutFile)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", destDir, err)
	}

	var renderedCount, errCount atomic.Uint64
	for _, path := range c.Scripts {
		pool.Do(func() {
			logger := slog.Default().With("script", path)
			if err := c.renderFile(logger, path); err != nil {
				errCount.Add(1)
				logger.Error("could not render script", "error", err)
				return
			}
			renderedCount.Add(1)
		})
	}

	pool.Wait()

	rendered := renderedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "rendered", rendered, "errors", errors,
		"total", rendered+errors)

	if errors > 0 {
		return fmt.Errorf("error rendering %d scripts", errors)
	}
	return nil
}

func (c *CLICmd) renderFile(logger *slog.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open script: %w", err)
	}
	s, err := script.Parse(f)
	if closeErr := f.Close(); closeErr != nil {
		logger.Error("could not close script", "error", closeErr)
	}
	if err != nil {
		return fmt.Errorf("could not parse script: %w", err)
	}

	dir := filepath.Dir(path)
	canvas, err := s.Run(logger, func(name string) (*raster.Image, error) {
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		img, _, err := imgio.Load(name)
		return img, err
	})
	if err != nil {
		return err
	}

	var img image.Image = canvas
	if c.Scale > 1 {
		img = upscale(logger, img, c.Scale)
	}
	if c.Pal != nil {
		logger.Info("applying palette", "palette", c.Palette, "colors", len(c.Pal))
		img = palette.Apply(img, c.Pal, c.Dither)
	}

	dest := c.OutFile
	if dest == "" {
		base := filepath.Base(path)
		dest = filepath.Join(c.Out, strings.TrimSuffix(base, filepath.Ext(base))+imgio.Extension(c.Format))
	}
	if err = imgio.Save(img, c.Format, dest); err != nil {
		return err
	}

	logger.Info("rendered", "dest", dest, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
