package labelraster

import "encoding/binary"

// ExtractBrotherRasters walks a raw Brother raster command stream and
// decodes every page it prints into a Bitmap, in print order. Unknown
// "ESC i <op>" commands are skipped using the table in opts (default
// {0x55: 15}) and reported through WithWarnFunc if still unrecognised.
func ExtractBrotherRasters(data []byte, opts ...BrotherDecodeOption) ([]*Bitmap, error) {
	cfg := defaultBrotherDecodeConfig()
	for _, o := range opts {
		o.apply(&cfg)
	}

	var bitmaps []*Bitmap
	var current [][]byte
	numRasterLines := 0
	expectedRasterLines := 0
	compressed := true
	highRes := false

	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == 0x47 || b == 0x67:
			if i+3 > len(data) {
				i = len(data)
				break
			}
			var numBytes int
			if b == 0x67 {
				numBytes = int(binary.BigEndian.Uint16(data[i+1 : i+3]))
			} else {
				numBytes = int(binary.LittleEndian.Uint16(data[i+1 : i+3]))
			}
			start := i + 3
			end := start + numBytes
			if end > len(data) {
				end = len(data)
			}
			lineData := data[start:end]
			i += numBytes + 2

			if !compressed {
				line := make([]byte, len(lineData))
				copy(line, lineData)
				current = append(current, line)
			} else {
				current = append(current, decodePackbitsLine(lineData))
			}

		case b == 0x5A && len(current) > 0:
			current = append(current, make([]byte, len(current[0])))

		case (b == 0x0C || b == 0x1A) && len(current) > 0:
			numRasterLines += len(current)
			reverseRows(current)
			rows := current
			if highRes {
				rows = stretchRows(current)
			}
			widthBytes := len(rows[0])
			buf := make([]byte, 0, widthBytes*len(rows))
			for _, r := range rows {
				buf = append(buf, r...)
			}
			bm, err := NewBitmap(widthBytes*8, len(rows), buf)
			if err != nil {
				return nil, err
			}
			bitmaps = append(bitmaps, bm)
			current = nil

		case b == 0x4D:
			if i+1 < len(data) {
				compressed = data[i+1] == 0x02
			}
			i++

		case b == NUL:
			i += 99

		case b == ESC:
			if i+1 >= len(data) {
				break
			}
			switch data[i+1] {
			case 0x40:
				i++
			case 0x69:
				if i+2 >= len(data) {
					i += 2
					break
				}
				cmd := data[i+2]
				i += 2
				switch cmd {
				case 0x21, 0x41, 0x4D, 0x53:
					i++
				case 0x4B:
					if i+1 < len(data) {
						highRes = data[i+1]&0x40 != 0
					}
					i++
				case 0x61:
					if i+1 < len(data) && data[i+1] != 0x01 {
						return nil, ErrNonRasterMode
					}
					i++
				case 0x64:
					i += 2
				case 0x7A:
					if i+9 <= len(data) {
						expectedRasterLines += int(binary.LittleEndian.Uint32(data[i+5 : i+9]))
					}
					i += 10
				default:
					if skip, ok := cfg.skipUndocumented[cmd]; ok {
						i += skip
					} else {
						i++
						cfg.warnf("labelraster: undocumented Brother command 0x%02x", cmd)
					}
				}
			}
		}
		i++
	}

	if expectedRasterLines != 0 && numRasterLines != expectedRasterLines {
		return nil, ErrLineCountMismatch
	}
	return bitmaps, nil
}

func reverseRows(rows [][]byte) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

// stretchRows doubles each row's pixel width by duplicating every bit
// horizontally, matching the "high resolution" Brother mode which prints
// twice as many dots per line as a normal-resolution raster declares.
func stretchRows(rows [][]byte) [][]byte {
	out := make([][]byte, len(rows))
	for r, row := range rows {
		stretched := make([]byte, 0, len(row)*2)
		for _, b := range row {
			var hi, lo byte
			for bit := 0; bit < 4; bit++ {
				v := (b >> uint(7-bit)) & 1
				hi |= v << uint(7-2*bit)
				hi |= v << uint(6-2*bit)
			}
			for bit := 4; bit < 8; bit++ {
				v := (b >> uint(7-bit)) & 1
				lo |= v << uint(7-2*(bit-4))
				lo |= v << uint(6-2*(bit-4))
			}
			stretched = append(stretched, hi, lo)
		}
		out[r] = stretched
	}
	return out
}
