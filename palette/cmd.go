package palette

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"
)

type CLICmd struct {
	Name string `arg:"" optional:"" help:"Palette name or PAL file. Lists built-in palettes when omitted"`
	Out  string `help:"Destination PAL file" type:"path"`
}

func (c *CLICmd) Run() error {
	if c.Name == "" {
		slog.Info("built-in palettes", "names", strings.Join(Names(), ", "))
		return nil
	}

	pal, err := Load(c.Name)
	if err != nil {
		return err
	}
	if c.Out == "" {
		slog.Info("palette", "name", c.Name, "colors", len(pal))
		return nil
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.Out, err)
	}

	n, err := WriteTo(f, []color.Palette{pal})
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("could not close palette file %q: %w", c.Out, closeErr)
	}
	if err != nil {
		return err
	}

	slog.Info("palette written", "name", c.Name, "file", c.Out, "colors", len(pal), "bytes", n)
	return nil
}
