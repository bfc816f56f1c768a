package raster

import (
	"strings"
	"testing"
)

const (
	smallW = 8
	smallH = 6
	largeW = 24
	largeH = 20
)

// picture describes an expected image as rows of characters, each mapped
// to a color through key.
type picture struct {
	key  map[byte]Color
	rows []string
}

func checkPicture(t *testing.T, img *Image, p picture) {
	t.Helper()

	if len(p.rows) != int(img.Height) {
		t.Fatalf("picture has %d rows, image has height %d", len(p.rows), img.Height)
	}
	for y, row := range p.rows {
		if len(row) != int(img.Width) {
			t.Fatalf("picture row %d has %d columns, image has width %d", y, len(row), img.Width)
		}
		for x := range len(row) {
			want, ok := p.key[row[x]]
			if !ok {
				t.Fatalf("picture uses unknown key %q", row[x])
			}
			if got := img.Pixel(int32(x), int32(y)); got != want {
				t.Errorf("pixel (%d, %d): got %v, want %v\n%s", x, y, got, want, render(img, p.key))
				return
			}
		}
	}
}

// render draws img back into picture form, for failure messages.
func render(img *Image, key map[byte]Color) string {
	var sb strings.Builder
	for y := range img.Height {
		for x := range img.Width {
			ch := byte('?')
			for k, c := range key {
				if c == img.Pixel(x, y) {
					ch = k
					break
				}
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func snapshot(img *Image) []uint32 {
	return append([]uint32(nil), img.Data...)
}

func assertUnchanged(t *testing.T, img *Image, before []uint32) {
	t.Helper()
	for i, v := range img.Data {
		if v != before[i] {
			t.Fatalf("pixel index %d changed: got %#08x, want %#08x", i, v, before[i])
		}
	}
}
