package labelraster

import "encoding/hex"

// ZPL's ASCII-hex run-length scheme prefixes a repeated character with a
// count code built from the letters G-Z/g-z and z. The source implementation
// finds runs with a regex and replaces longest-match-first to avoid
// aliasing; here a single left-to-right scan both finds and rewrites runs,
// which sidesteps the aliasing problem entirely because nothing already
// written is ever rescanned.

func isRLEPrefixByte(c byte) bool {
	return (c >= 'G' && c <= 'Z') || (c >= 'g' && c <= 'z')
}

// expandRLE expands the `[G-Zg-z]+.` run-length codes in data, returning the
// plain hex/separator text they stand for.
func expandRLE(data string) string {
	out := make([]byte, 0, len(data)*2)
	i, n := 0, len(data)
	for i < n {
		if !isRLEPrefixByte(data[i]) {
			out = append(out, data[i])
			i++
			continue
		}
		start := i
		for i < n && isRLEPrefixByte(data[i]) {
			i++
		}
		if i >= n {
			// A prefix run with nothing following it is undefined; emit it
			// verbatim rather than guess.
			out = append(out, data[start:i]...)
			break
		}
		literal := data[i]
		i++
		repeat := 0
		for j := start; j < i-1; j++ {
			c := data[j]
			if c == 'z' {
				repeat += 400
				continue
			}
			upper := c
			if upper >= 'a' && upper <= 'z' {
				upper -= 'a' - 'A'
			}
			value := int(upper) - int('F')
			if c >= 'a' && c <= 'z' {
				repeat += value * 20
			} else {
				repeat += value
			}
		}
		for k := 0; k < repeat; k++ {
			out = append(out, literal)
		}
	}
	return string(out)
}

// rleCode returns the shortest prefix code for repeating a character n
// times: floor(n/400) 'z's, then a single lowercase letter standing for all
// remaining whole blocks of 20, then one uppercase letter for the final 1-19.
func rleCode(n int) string {
	var out []byte
	for n >= 400 {
		out = append(out, 'z')
		n -= 400
	}
	if n >= 20 {
		value := n / 20
		n -= value * 20
		out = append(out, byte('F'+value)+('a'-'A'))
	}
	if n > 0 {
		out = append(out, byte('F'+n))
	}
	return string(out)
}

// compressRLE replaces every maximal run of 2+ identical bytes in data with
// its rleCode prefix followed by one copy of the byte.
func compressRLE(data string) string {
	out := make([]byte, 0, len(data))
	i, n := 0, len(data)
	for i < n {
		j := i + 1
		for j < n && data[j] == data[i] {
			j++
		}
		runLen := j - i
		if runLen >= 2 {
			out = append(out, rleCode(runLen)...)
		}
		out = append(out, data[i])
		i = j
	}
	return string(out)
}

// assembleASCIIHexRows consumes the expanded ASCII-hex text described in
// spec 4.4: hex digits accumulate into a row of widthBytes*2 chars; ',' pads
// the current row to full width with '0' and commits it; ':' commits a copy
// of the previous row.
func assembleASCIIHexRows(expanded string, widthBytes int) ([]byte, error) {
	rowHexLen := widthBytes * 2
	var rows [][]byte
	row := make([]byte, 0, rowHexLen)

	commit := func() error {
		decoded := make([]byte, widthBytes)
		if _, err := hex.Decode(decoded, row); err != nil {
			return err
		}
		rows = append(rows, decoded)
		row = row[:0]
		return nil
	}

	for i := 0; i < len(expanded); i++ {
		c := expanded[i]
		switch c {
		case ':':
			if len(rows) == 0 {
				return nil, ErrNoPreviousRow
			}
			rows = append(rows, rows[len(rows)-1])
			continue
		case ',':
			for len(row) < rowHexLen {
				row = append(row, '0')
			}
		default:
			row = append(row, c)
		}
		if len(row) == rowHexLen {
			if err := commit(); err != nil {
				return nil, err
			}
		}
	}

	out := make([]byte, 0, len(rows)*widthBytes)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out, nil
}
