// Package script reads line-oriented drawing scripts and replays them onto
// a raster.Image.
//
//	# comment
//	canvas 64 48 #202040
//	rect 4 4 16 8 #ff000080
//	circle 32 24 10 #0f0
//	pixel 1 1 0xffffffff
//	tile 0 32 tiles.png 16 0 16 16
//	sprite 40 8 "hero sheet.png" 0 0 16 16
//
// Arguments are split with shell quoting rules. The first command must be
// canvas.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pixdraw/raster"

	"github.com/google/shlex"
)

var ErrNoCanvas = errors.New("script does not start with a canvas command")

// MaxCanvasPixels bounds the area of a canvas, 64 megapixels or 256 MiB
// of pixel data.
const MaxCanvasPixels = 1 << 26

type Op string

const (
	OpCanvas Op = "canvas"
	OpPixel  Op = "pixel"
	OpRect   Op = "rect"
	OpCircle Op = "circle"
	OpTile   Op = "tile"
	OpSprite Op = "sprite"
)

// Command is one parsed script line. Ints holds the numeric arguments in
// the order they appear; File is only set for tile and sprite.
type Command struct {
	Line  int
	Op    Op
	Ints  []int32
	Color raster.Color
	File  string
}

type Script struct {
	Commands []Command
}

// Parse reads a whole script. Errors name the offending line.
func Parse(r io.Reader) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields, err := shlex.Split(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmd, err := parseCommand(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmd.Line = line

		if (len(s.Commands) == 0) != (cmd.Op == OpCanvas) {
			if cmd.Op == OpCanvas {
				return nil, fmt.Errorf("line %d: canvas may only appear once, as the first command", line)
			}
			return nil, fmt.Errorf("line %d: %w", line, ErrNoCanvas)
		}
		s.Commands = append(s.Commands, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read script: %w", err)
	}

	if len(s.Commands) == 0 {
		return nil, ErrNoCanvas
	}
	return s, nil
}

func parseCommand(fields []string) (Command, error) {
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	cmd := Command{Op: Op(fields[0])}
	args := fields[1:]

	switch cmd.Op {
	case OpCanvas:
		if len(args) != 2 && len(args) != 3 {
			return cmd, fmt.Errorf("canvas takes W H [COLOR], got %d arguments", len(args))
		}
		cmd.Color = raster.Black
		if len(args) == 3 {
			c, err := ParseColor(args[2])
			if err != nil {
				return cmd, err
			}
			cmd.Color = c
		}
		ints, err := parseInts(args[:2])
		if err != nil {
			return cmd, err
		}
		if ints[0] <= 0 || ints[1] <= 0 {
			return cmd, fmt.Errorf("invalid canvas size %dx%d", ints[0], ints[1])
		}
		if int64(ints[0])*int64(ints[1]) > MaxCanvasPixels {
			return cmd, fmt.Errorf("canvas %dx%d exceeds %d pixels", ints[0], ints[1], MaxCanvasPixels)
		}
		cmd.Ints = ints
	case OpPixel, OpRect, OpCircle:
		want := map[Op]int{OpPixel: 2, OpRect: 4, OpCircle: 3}[cmd.Op]
		if len(args) != want+1 {
			return cmd, fmt.Errorf("%s takes %d numbers and a color, got %d arguments", cmd.Op, want, len(args))
		}
		ints, err := parseInts(args[:want])
		if err != nil {
			return cmd, err
		}
		c, err := ParseColor(args[want])
		if err != nil {
			return cmd, err
		}
		cmd.Ints, cmd.Color = ints, c
	case OpTile, OpSprite:
		if len(args) != 7 {
			return cmd, fmt.Errorf("%s takes X Y FILE SX SY SW SH, got %d arguments", cmd.Op, len(args))
		}
		ints, err := parseInts(append([]string{args[0], args[1]}, args[3:]...))
		if err != nil {
			return cmd, err
		}
		cmd.Ints, cmd.File = ints, args[2]
	default:
		return cmd, fmt.Errorf("unknown command %q", fields[0])
	}

	return cmd, nil
}

func parseInts(args []string) ([]int32, error) {
	res := make([]int32, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		res[i] = int32(v)
	}
	return res, nil
}
