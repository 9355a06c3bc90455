package labelraster

import "fmt"

// Bitmap is a 1-bit monochrome raster: width and height in pixels and a
// row-major pixel buffer, most-significant-bit first within each byte, with
// 1 meaning ink (black). Width is always a multiple of 8.
//
// A Bitmap exposes exactly one canonical representation (Bytes) and derives
// every other view (rows, hex, bit access) from it on demand rather than
// caching them.
type Bitmap struct {
	width  int
	height int
	buf    []byte
}

// NewBitmap builds a Bitmap from a row-major, MSB-first, 1=ink byte buffer.
// width must be a positive multiple of 8; height must be positive; len(buf)
// must equal height*(width/8).
func NewBitmap(width, height int, buf []byte) (*Bitmap, error) {
	if width <= 0 || width%8 != 0 {
		return nil, fmt.Errorf("labelraster: width %d must be a positive multiple of 8", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("labelraster: height %d must be positive", height)
	}
	widthBytes := width / 8
	if len(buf) != widthBytes*height {
		return nil, fmt.Errorf("labelraster: buffer length %d does not match %d x %d bitmap", len(buf), width, height)
	}
	cp := make([]byte, len(buf))
	copy(cp, buf)
	return &Bitmap{width: width, height: height, buf: cp}, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// WidthBytes returns the number of bytes per row (Width/8).
func (b *Bitmap) WidthBytes() int { return b.width / 8 }

// Bytes returns the canonical row-major, MSB-first, 1=ink byte buffer. The
// caller must not mutate the returned slice.
func (b *Bitmap) Bytes() []byte { return b.buf }

// Row returns the bytes of row i (0-indexed, top to bottom). The caller must
// not mutate the returned slice.
func (b *Bitmap) Row(i int) []byte {
	wb := b.WidthBytes()
	return b.buf[i*wb : (i+1)*wb]
}

// Rows calls fn for every row in top-to-bottom order. Rows are computed on
// demand; nothing is cached between calls.
func (b *Bitmap) Rows(fn func(row []byte)) {
	wb := b.WidthBytes()
	for i := 0; i < b.height; i++ {
		fn(b.buf[i*wb : (i+1)*wb])
	}
}

// InvertedBytes returns a new buffer with every bit flipped, i.e. the view
// in which 1 means white rather than ink. Neither codec in this package
// needs it for its own wire format (both ZPL and Brother emit 1=ink bytes
// directly), but it is exposed for consumers that bridge to
// an imaging library using the opposite convention.
func (b *Bitmap) InvertedBytes() []byte {
	out := make([]byte, len(b.buf))
	for i, v := range b.buf {
		out[i] = ^v
	}
	return out
}

// BitAt reports whether the pixel at (x, y) is ink.
func (b *Bitmap) BitAt(x, y int) bool {
	row := b.Row(y)
	return row[x/8]&(0x80>>uint(x%8)) != 0
}

// HexRows returns each row as an uppercase hex string of WidthBytes*2 chars.
func (b *Bitmap) HexRows() []string {
	const hexDigits = "0123456789ABCDEF"
	wb := b.WidthBytes()
	rows := make([]string, b.height)
	for i := 0; i < b.height; i++ {
		row := b.Row(i)
		out := make([]byte, 0, wb*2)
		for _, v := range row {
			out = append(out, hexDigits[v>>4], hexDigits[v&0xf])
		}
		rows[i] = string(out)
	}
	return rows
}

// Equal reports whether two bitmaps have identical dimensions and pixels.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if other == nil {
		return false
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	if len(b.buf) != len(other.buf) {
		return false
	}
	for i := range b.buf {
		if b.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// Rotate180 returns a new bitmap rotated 180 degrees.
func (b *Bitmap) Rotate180() *Bitmap {
	wb := b.WidthBytes()
	out := make([]byte, len(b.buf))
	for y := 0; y < b.height; y++ {
		srcRow := b.Row(y)
		dstY := b.height - 1 - y
		dst := out[dstY*wb : (dstY+1)*wb]
		for x := 0; x < b.width; x++ {
			if srcRow[x/8]&(0x80>>uint(x%8)) != 0 {
				dstX := b.width - 1 - x
				dst[dstX/8] |= 0x80 >> uint(dstX%8)
			}
		}
	}
	return &Bitmap{width: b.width, height: b.height, buf: out}
}

// PadRightToByteWidth pads the bitmap on the right with white pixels until
// its width is a multiple of 8. It is a no-op if the width already is.
func PadRightToByteWidth(width, height int, rows func(y int) []bool) *Bitmap {
	widthBytes := (width + 7) / 8
	paddedWidth := widthBytes * 8
	buf := make([]byte, widthBytes*height)
	for y := 0; y < height; y++ {
		row := rows(y)
		dst := buf[y*widthBytes : (y+1)*widthBytes]
		for x := 0; x < width && x < paddedWidth; x++ {
			if row[x] {
				dst[x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	bm, _ := NewBitmap(paddedWidth, height, buf)
	return bm
}

// PadOrCropToByteWidth centre-pads (with white) or centre-crops the bitmap
// so each row is exactly targetBytes bytes wide, matching the Brother head
// width. The extra or missing bytes are split left/right with the larger
// share on the right, mirroring the Python driver's diff//2 split.
func (b *Bitmap) PadOrCropToByteWidth(targetBytes int) *Bitmap {
	wb := b.WidthBytes()
	if wb == targetBytes {
		return b
	}
	out := make([]byte, targetBytes*b.height)
	if wb < targetBytes {
		diff := targetBytes - wb
		left := diff / 2
		for y := 0; y < b.height; y++ {
			src := b.Row(y)
			dst := out[y*targetBytes+left : y*targetBytes+left+wb]
			copy(dst, src)
		}
	} else {
		diff := wb - targetBytes
		left := diff / 2
		for y := 0; y < b.height; y++ {
			src := b.Row(y)[left : left+targetBytes]
			dst := out[y*targetBytes : (y+1)*targetBytes]
			copy(dst, src)
		}
	}
	bm, _ := NewBitmap(targetBytes*8, b.height, out)
	return bm
}
