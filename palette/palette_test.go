package palette

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"pixdraw/raster"
)

func TestNamed(t *testing.T) {
	for _, name := range Names() {
		pal, ok := Named(name)
		if !ok || len(pal) < 2 {
			t.Errorf("Named(%q) = %d colors, %v", name, len(pal), ok)
		}
	}

	if _, ok := Named("nope"); ok {
		t.Error("Named(nope) should fail")
	}

	gray, _ := Named("gray16")
	if gray[0] != (color.RGBA{A: 0xFF}) || gray[15] != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("gray16 ends: %v, %v", gray[0], gray[15])
	}

	gray[0] = color.RGBA{R: 1}
	if again, _ := Named("gray16"); again[0] == gray[0] {
		t.Error("Named returned a shared palette")
	}
}

func TestRIFFRoundTrip(t *testing.T) {
	vga, _ := Named("vga16")
	bw, _ := Named("bw")

	var buf bytes.Buffer
	n, err := WriteTo(&buf, []color.Palette{vga, bw})
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, buffer has %d", n, buf.Len())
	}

	pals, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(pals) != 2 || len(pals[0]) != 16 || len(pals[1]) != 2 {
		t.Fatalf("got %d palettes", len(pals))
	}
	for i, c := range vga {
		if pals[0][i] != c {
			t.Errorf("color %d: got %v, want %v", i, pals[0][i], c)
		}
	}
}

func TestReadFromRejectsOtherForms(t *testing.T) {
	data := []byte("RIFF\x04\x00\x00\x00WAVE")
	if _, err := ReadFrom(bytes.NewReader(data)); err == nil {
		t.Error("expected error for WAVE form")
	}
}

func TestReadFromRejectsVersion(t *testing.T) {
	data := []byte("RIFF\x10\x00\x00\x00PAL data\x04\x00\x00\x00\x00\x02\x00\x00")
	if _, err := ReadFrom(bytes.NewReader(data)); err == nil {
		t.Error("expected error for palette version 0x0200")
	}
}

func TestLoad(t *testing.T) {
	if pal, err := Load("pico8"); err != nil || len(pal) != 16 {
		t.Fatalf("Load(pico8) = %d colors, %v", len(pal), err)
	}

	path := filepath.Join(t.TempDir(), "two.pal")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	bw, _ := Named("bw")
	if _, err := WriteTo(f, []color.Palette{bw, bw}); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	pal, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q): %v", path, err)
	}
	if len(pal) != 4 {
		t.Errorf("got %d colors, want 4", len(pal))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.pal")); err == nil {
		t.Error("expected error for missing palette")
	}
}

func TestApply(t *testing.T) {
	img := raster.NewImage(4, 2)
	raster.DrawRect(img, raster.Rect{X: 2, Y: 0, Width: 2, Height: 2}, 0xF0F0F0FF)

	bw, _ := Named("bw")
	out := Apply(img, bw, false)
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds: got %v, want %v", out.Bounds(), img.Bounds())
	}
	for x := range 4 {
		want := uint8(0)
		if x >= 2 {
			want = 1
		}
		if got := out.ColorIndexAt(x, 1); got != want {
			t.Errorf("index at (%d, 1): got %d, want %d", x, got, want)
		}
	}

	if d := Apply(img, bw, true); d.Bounds() != img.Bounds() {
		t.Errorf("dithered bounds: got %v", d.Bounds())
	}
}

func TestCLIExport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vga.pal")
	cmd := &CLICmd{Name: "vga16", Out: out}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	pal, err := Load(out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want, _ := Named("vga16")
	if len(pal) != len(want) || pal[9] != want[9] {
		t.Errorf("exported palette differs: %v", pal)
	}

	if err := (&CLICmd{}).Run(); err != nil {
		t.Errorf("listing palettes: %v", err)
	}
}
