package script

import (
	"fmt"
	"strconv"
	"strings"

	"pixdraw/raster"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads #RGB, #RGBA, #RRGGBB, #RRGGBBAA or 0xRRGGBBAA.
func ParseColor(s string) (raster.Color, error) {
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		if len(hex) != 8 {
			return 0, fmt.Errorf("invalid color %q: 0x form needs 8 hex digits", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return raster.Color(v), nil
	}

	rgb, alpha := s, "ff"
	switch len(s) {
	case 4, 7:
	case 5:
		rgb, alpha = s[:4], strings.Repeat(s[4:], 2)
	case 9:
		rgb, alpha = s[:7], s[7:]
	default:
		return 0, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB, #RRGGBBAA or 0xRRGGBBAA", s)
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha in color %q: %w", s, err)
	}

	r, g, b, _ := c.RGBA()
	return raster.RGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a)), nil
}
