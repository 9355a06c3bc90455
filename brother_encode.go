package labelraster

import "encoding/binary"

// PrinterRaster is one page's worth of encoded Brother raster lines, ready
// to be wrapped in SimpleBrotherPrinter or a caller's own command sequence.
type PrinterRaster struct {
	Compression bool
	Data        []byte
	NumLines    int
}

// EncodeBrotherRaster renders bm as Brother raster-line commands. Rows
// narrower than printerBytesWidth are centre-padded with white; wider rows
// are centre-cropped. rasterCommand selects the line-length byte order:
// 0x47 (little-endian, the documented default) or 0x67 (big-endian).
func EncodeBrotherRaster(bm *Bitmap, compression bool, printerBytesWidth int, rasterCommand byte) PrinterRaster {
	fitted := bm.PadOrCropToByteWidth(printerBytesWidth)

	var rows [][]byte
	fitted.Rows(func(row []byte) {
		r := make([]byte, len(row))
		copy(r, row)
		rows = append(rows, r)
	})

	encoded := make([][]byte, 0, len(rows))
	for _, row := range rows {
		encoded = append(encoded, encodeBrotherLine(row, compression, printerBytesWidth, rasterCommand))
	}

	reverseRows(encoded)

	if compression && len(encoded) > 0 && len(encoded[0]) == 1 && encoded[0][0] == 0x5A {
		encoded[0] = []byte{rasterCommand, 0x02, 0x00, 0xFF - byte(printerBytesWidth-2), 0x00}
	}

	var data []byte
	for _, e := range encoded {
		data = append(data, e...)
	}
	return PrinterRaster{Compression: compression, Data: data, NumLines: len(encoded)}
}

func encodeBrotherLine(row []byte, compression bool, printerBytesWidth int, rasterCommand byte) []byte {
	byteOrder := littleEndianOrder
	if rasterCommand == 0x67 {
		byteOrder = bigEndianOrder
	}

	if !compression {
		out := []byte{rasterCommand}
		out = append(out, encodeUint16(uint16(printerBytesWidth), byteOrder)...)
		return append(out, row...)
	}

	allZero := true
	for _, b := range row {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return []byte{0x5A}
	}

	compressedRow := encodePackbitsLine(row)
	out := []byte{rasterCommand}
	out = append(out, encodeUint16(uint16(len(compressedRow)), byteOrder)...)
	return append(out, compressedRow...)
}

type byteOrder int

const (
	littleEndianOrder byteOrder = iota
	bigEndianOrder
)

func encodeUint16(v uint16, order byteOrder) []byte {
	b := make([]byte, 2)
	if order == bigEndianOrder {
		binary.BigEndian.PutUint16(b, v)
	} else {
		binary.LittleEndian.PutUint16(b, v)
	}
	return b
}

// BrotherPrintOptions configures SimpleBrotherPrinter's command wrapping.
type BrotherPrintOptions struct {
	AutoCut           bool
	ChainPrinting     bool
	Draft             bool
	HalfCut           bool
	MediaWidth        int // required (nonzero) if any raster is uncompressed
	MirrorPrinting    bool
	NoBufferClearing  bool
	SpecialTape       bool
}

// SimpleBrotherPrinter wraps one or more encoded rasters in the invalidate/
// initialise/raster-mode commands a Brother printer needs to produce output,
// the minimal sequence that works over both USB and network transports. It
// intentionally does not expose every printer setting; build the command
// stream directly for anything more elaborate.
func SimpleBrotherPrinter(rasters []PrinterRaster, opts BrotherPrintOptions) ([]byte, error) {
	var out []byte
	out = append(out, make([]byte, 100)...)
	out = append(out, ESC, 0x40)

	anyUncompressed := false
	for _, r := range rasters {
		if !r.Compression {
			anyUncompressed = true
			break
		}
	}
	if anyUncompressed {
		if opts.MediaWidth == 0 {
			return nil, ErrMediaWidthRequired
		}
		numLines := 0
		for _, r := range rasters {
			numLines += r.NumLines
		}
		info := []byte{ESC, 0x69, 0x7A, 0x84, 0x00, byte(opts.MediaWidth), 0x00}
		info = append(info, encodeUint32LE(uint32(numLines))...)
		info = append(info, 0x00, 0x00)
		out = append(out, info...)
	}

	for idx, raster := range rasters {
		var modeBits byte
		if opts.MirrorPrinting {
			modeBits |= 0x80
		}
		if opts.AutoCut {
			modeBits |= 0x40
		}
		var advancedBits byte
		if opts.NoBufferClearing {
			advancedBits |= 0x80
		}
		if opts.SpecialTape {
			advancedBits |= 0x10
		}
		if !opts.ChainPrinting {
			advancedBits |= 0x08
		}
		if opts.HalfCut {
			advancedBits |= 0x04
		}
		if opts.Draft {
			advancedBits |= 0x01
		}

		out = append(out, ESC, 0x69, 0x61, 0x01)
		out = append(out, ESC, 0x69, 0x4D, modeBits)
		out = append(out, ESC, 0x69, 0x4B, advancedBits)
		compByte := byte(0x00)
		if raster.Compression {
			compByte = 0x02
		}
		out = append(out, 0x4D, compByte)
		out = append(out, raster.Data...)
		if idx == len(rasters)-1 {
			out = append(out, SUB)
		} else {
			out = append(out, FF)
		}
	}

	return out, nil
}

func encodeUint32LE(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
