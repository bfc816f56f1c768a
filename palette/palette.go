package palette

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/image/draw"
)

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

func ramp(n int) color.Palette {
	pal := make(color.Palette, n)
	for i := range pal {
		y := uint8(i * 255 / (n - 1))
		pal[i] = color.RGBA{R: y, G: y, B: y, A: 0xFF}
	}
	return pal
}

var named = map[string]color.Palette{
	"bw":     {rgb(0x000000), rgb(0xFFFFFF)},
	"gray16": ramp(16),
	"vga16": {
		rgb(0x000000), rgb(0x0000AA), rgb(0x00AA00), rgb(0x00AAAA),
		rgb(0xAA0000), rgb(0xAA00AA), rgb(0xAA5500), rgb(0xAAAAAA),
		rgb(0x555555), rgb(0x5555FF), rgb(0x55FF55), rgb(0x55FFFF),
		rgb(0xFF5555), rgb(0xFF55FF), rgb(0xFFFF55), rgb(0xFFFFFF),
	},
	"pico8": {
		rgb(0x000000), rgb(0x1D2B53), rgb(0x7E2553), rgb(0x008751),
		rgb(0xAB5236), rgb(0x5F574F), rgb(0xC2C3C7), rgb(0xFFF1E8),
		rgb(0xFF004D), rgb(0xFFA300), rgb(0xFFEC27), rgb(0x00E436),
		rgb(0x29ADFF), rgb(0x83769C), rgb(0xFF77A8), rgb(0xFFCCAA),
	},
}

// Names lists the built-in palettes.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Named returns a copy of a built-in palette.
func Named(name string) (color.Palette, bool) {
	pal, ok := named[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(pal), true
}

// Load returns the built-in palette called nameOrPath, or else reads it as
// a RIFF PAL file and concatenates every palette it holds.
func Load(nameOrPath string) (color.Palette, error) {
	if pal, ok := Named(nameOrPath); ok {
		return pal, nil
	}

	f, err := os.Open(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q: %w", nameOrPath, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette file", "file", nameOrPath, "error", closeErr)
		}
	}()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", nameOrPath, err)
	}

	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", nameOrPath)
	}
	return res, nil
}

// Apply maps img onto pal, optionally with Floyd-Steinberg dithering.
func Apply(img image.Image, pal color.Palette, dither bool) *image.Paletted {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	dest := image.NewPaletted(dr, pal)

	if dither {
		draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
	} else {
		draw.Draw(dest, dr, img, sr.Min, draw.Src)
	}
	return dest
}
