package labelraster

// Brother's raster compression is a packbits variant: a control byte < 128
// introduces (control+1) literal bytes copied verbatim; a control byte >= 128
// introduces a single byte repeated (257-control) times. Runs and literals
// are not capped at 128/129 bytes; a longer run simply produces a control
// byte outside the valid range on encode, mirroring the reference driver
// rather than guarding against it.

// decodePackbitsLine expands one compressed Brother raster line.
func decodePackbitsLine(line []byte) []byte {
	out := make([]byte, 0, len(line)*2)
	i := 0
	for i < len(line) {
		b := line[i]
		i++
		if b < 128 {
			count := int(b) + 1
			end := i + count
			if end > len(line) {
				end = len(line)
			}
			out = append(out, line[i:end]...)
			i = end
		} else {
			n := 257 - int(b)
			if i < len(line) {
				val := line[i]
				for k := 0; k < n; k++ {
					out = append(out, val)
				}
				i++
			}
		}
	}
	return out
}

// encodePackbitsLine compresses one Brother raster line, matching the
// reference driver's run/literal split byte for byte.
func encodePackbitsLine(row []byte) []byte {
	var out []byte
	i := 0
	for i < len(row) {
		start := i
		for i+1 < len(row) && row[i+1] == row[i] {
			i++
		}
		if i-start > 0 {
			length := i - start + 1
			expr := length - 257
			if expr < 0 {
				expr = -expr
			}
			out = append(out, byte(expr), row[start])
		} else {
			for i+2 < len(row) && row[i+1] != row[i+2] {
				i++
			}
			chunk := row[start : i+1]
			out = append(out, byte(len(chunk)-1))
			out = append(out, chunk...)
		}
		i++
	}
	return out
}
