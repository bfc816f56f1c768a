package script

import (
	"fmt"
	"log/slog"

	"pixdraw/raster"
)

// Loader resolves a tile or sprite sheet name to an image.
type Loader func(name string) (*raster.Image, error)

// Run allocates the canvas and replays every command onto it. Sheets are
// requested from load once per distinct name. A nil logger means
// slog.Default().
func (s *Script) Run(logger *slog.Logger, load Loader) (*raster.Image, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(s.Commands) == 0 || s.Commands[0].Op != OpCanvas {
		return nil, ErrNoCanvas
	}

	sheets := make(map[string]*raster.Image)
	sheet := func(name string) (*raster.Image, error) {
		if img, ok := sheets[name]; ok {
			return img, nil
		}
		if load == nil {
			return nil, fmt.Errorf("no loader for sheet %q", name)
		}
		img, err := load(name)
		if err != nil {
			return nil, err
		}
		sheets[name] = img
		return img, nil
	}

	var img *raster.Image
	for _, cmd := range s.Commands {
		a := cmd.Ints
		switch cmd.Op {
		case OpCanvas:
			img = &raster.Image{Width: a[0], Height: a[1], Data: make([]uint32, int(a[0])*int(a[1]))}
			img.Fill(cmd.Color)
		case OpPixel:
			raster.DrawPixel(img, a[0], a[1], cmd.Color)
		case OpRect:
			raster.DrawRect(img, raster.Rect{X: a[0], Y: a[1], Width: a[2], Height: a[3]}, cmd.Color)
		case OpCircle:
			raster.DrawCircle(img, a[0], a[1], a[2], cmd.Color)
		case OpTile, OpSprite:
			src, err := sheet(cmd.File)
			if err != nil {
				return nil, fmt.Errorf("line %d: could not load %q: %w", cmd.Line, cmd.File, err)
			}
			r := raster.Rect{X: a[2], Y: a[3], Width: a[4], Height: a[5]}
			if !raster.Contains(src, r) {
				logger.Warn("region outside sheet, skipped", "line", cmd.Line, "op", cmd.Op,
					"sheet", cmd.File, "region", r.Rectangle())
			}
			if cmd.Op == OpTile {
				raster.DrawTile(img, a[0], a[1], src, r)
			} else {
				raster.DrawSprite(img, a[0], a[1], src, r)
			}
		}
		logger.Debug("applied", "line", cmd.Line, "op", cmd.Op)
	}

	return img, nil
}
