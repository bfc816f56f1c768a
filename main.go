package main

import (
	"log/slog"
	"os"

	"pixdraw/palette"
	"pixdraw/parallel"
	"pixdraw/render"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool `help:"Enable debug logging" short:"v"`
	Workers int  `help:"Number of scripts rendered in parallel, 0 uses every CPU" default:"0"`

	Render  render.CLICmd  `cmd:"" help:"Render drawing scripts to image files"`
	Palette palette.CLICmd `cmd:"" help:"List, inspect or export palettes as RIFF PAL files"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("pixdraw"),
		kong.Description("Draw pixels, rectangles, circles, tiles and sprites onto RGBA images."),
		kong.UsageOnError(),
	)

	if c.Verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pool := parallel.Start(c.Workers)
	kctx.FatalIfErrorf(kctx.Run(pool))
}
