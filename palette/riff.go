package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

// A RIFF PAL file holds one or more "data" chunks, each a LOGPALETTE:
//
//	WORD palVersion     (0x0300)
//	WORD palNumEntries
//	PALETTEENTRY[palNumEntries] { BYTE red, green, blue, flags }

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// ReadFrom parses every palette stored in a RIFF PAL stream.
func ReadFrom(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %q", string(formType[:]))
	}

	return readChunks(rd, "PAL", nil)
}

func readChunks(r *riff.Reader, ident string, res []color.Palette) ([]color.Palette, error) {
	for {
		id, size, data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("could not read chunk %s#%d: %w", ident, len(res), err)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("could not read list %s#%d: %w", ident, len(res), err)
			} else if listType != palType {
				return res, fmt.Errorf("list %s#%d has unsupported type: %q", ident, len(res), string(listType[:]))
			}
			if res, err = readChunks(list, fmt.Sprintf("%s#%d", ident, len(res)), res); err != nil {
				return res, err
			}
		case dataType:
			pal, err := readPalette(data)
			if err != nil {
				return res, fmt.Errorf("could not read palette %s#%d: %w", ident, len(res), err)
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("unsupported chunk type in %s#%d: %q", ident, len(res), string(id[:]))
		}
	}
}

func readPalette(r io.Reader) (color.Palette, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}

	if ver := binary.LittleEndian.Uint16(hdr[:2]); ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version: %#04x", ver)
	}

	count := binary.LittleEndian.Uint16(hdr[2:])
	entries := make([]byte, int(count)*4)
	if _, err := io.ReadFull(r, entries); err != nil {
		return nil, fmt.Errorf("could not read %d colors: %w", count, err)
	}

	pal := make(color.Palette, count)
	for i := range pal {
		e := entries[i*4 : i*4+4]
		pal[i] = color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xFF}
	}
	return pal, nil
}

// WriteTo stores pals as a RIFF PAL stream, one data chunk per palette.
// Alpha is dropped. It returns the number of bytes written.
func WriteTo(w io.Writer, pals []color.Palette) (int64, error) {
	size := 4
	for _, pal := range pals {
		size += 8 + 4 + len(pal)*4
	}

	buf := make([]byte, 0, 8+size)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	buf = append(buf, palType[:]...)

	for i, pal := range pals {
		if len(pal) > 0xFFFF {
			return 0, fmt.Errorf("palette %d has too many colors: %d", i, len(pal))
		}
		buf = append(buf, dataType[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(4+len(pal)*4))
		buf = binary.LittleEndian.AppendUint16(buf, palVersion)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(pal)))
		for _, col := range pal {
			c := color.RGBAModel.Convert(col).(color.RGBA)
			buf = append(buf, c.R, c.G, c.B, 0)
		}
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("could not write palette: %w", err)
	} else if n != len(buf) {
		return int64(n), fmt.Errorf("wrote only %d/%d bytes", n, len(buf))
	}
	return int64(n), nil
}
