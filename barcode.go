package labelraster

import (
	"fmt"
	"regexp"
	"strings"
)

// OptimiseBarcodes looks for tall, narrow vertical bars and wide, short
// horizontal bars in bm (the signature of a 1D barcode rendered at a DPI too
// low to keep every module a clean multiple of a pixel) and widens any
// 1-pixel gap inside a run back to 2 pixels so the pattern still scans.
// Solid shapes and text are excluded by the bar-count and density options.
func OptimiseBarcodes(bm *Bitmap, opts ...BarcodeOption) *Bitmap {
	p := defaultBarcodeParams()
	for _, o := range opts {
		o.apply(&p)
	}

	rows := bitmapToBinRows(bm)
	rows = optimiseBarcodeRows(rows, p)

	rows = rotateRowsCW(rows)
	rows = optimiseBarcodeRows(rows, p)
	rows = rotateRowsCCW(rows)

	out, err := binRowsToBitmap(rows)
	if err != nil {
		// optimiseBarcodeRows only ever replaces characters in place and the
		// two rotations are exact inverses, so the result always has the
		// same dimensions bm started with.
		panic(fmt.Sprintf("labelraster: barcode optimisation produced an invalid bitmap: %v", err))
	}
	return out
}

func bitmapToBinRows(bm *Bitmap) []string {
	rows := make([]string, bm.Height())
	for y := 0; y < bm.Height(); y++ {
		b := make([]byte, bm.Width())
		for x := 0; x < bm.Width(); x++ {
			if bm.BitAt(x, y) {
				b[x] = '1'
			} else {
				b[x] = '0'
			}
		}
		rows[y] = string(b)
	}
	return rows
}

func binRowsToBitmap(rows []string) (*Bitmap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("labelraster: cannot build a bitmap from zero rows")
	}
	width := len(rows[0])
	return PadRightToByteWidth(width, len(rows), func(y int) []bool {
		row := rows[y]
		out := make([]bool, width)
		for x := 0; x < width; x++ {
			out[x] = row[x] == '1'
		}
		return out
	}), nil
}

// rotateRowsCW rotates a character matrix 90 degrees clockwise.
func rotateRowsCW(rows []string) []string {
	h := len(rows)
	w := len(rows[0])
	out := make([]string, w)
	for c := 0; c < w; c++ {
		b := make([]byte, h)
		for y := 0; y < h; y++ {
			b[y] = rows[h-1-y][c]
		}
		out[c] = string(b)
	}
	return out
}

// rotateRowsCCW rotates a character matrix 90 degrees counter-clockwise,
// the exact inverse of rotateRowsCW.
func rotateRowsCCW(rows []string) []string {
	h := len(rows)
	w := len(rows[0])
	transposed := make([]string, w)
	for c := 0; c < w; c++ {
		b := make([]byte, h)
		for y := 0; y < h; y++ {
			b[y] = rows[y][c]
		}
		transposed[c] = string(b)
	}
	out := make([]string, w)
	for i := 0; i < w; i++ {
		out[i] = transposed[w-1-i]
	}
	return out
}

type barSpan struct {
	start, end int
}

// optimiseBarcodeRows finds runs of ink at least minBarHeight long in each
// row, groups the rows where the same run span recurs (a gap of more than
// maxGapSize rows starts a new group), keeps groups that look bar-shaped
// (enough rows, plausible density), and widens 1-pixel gaps within each
// surviving bar.
func optimiseBarcodeRows(data []string, p barcodeParams) []string {
	rows := append([]string(nil), data...)
	barRe := regexp.MustCompile(fmt.Sprintf("1{%d,}", p.minBarHeight))

	seenAt := map[barSpan][]int{}
	for i, line := range rows {
		for _, loc := range barRe.FindAllStringIndex(line, -1) {
			span := barSpan{loc[0], loc[1]}
			seenAt[span] = append(seenAt[span], i)
		}
	}

	type group struct {
		span barSpan
		rows []int
	}
	var groups []group
	for span, coords := range seenAt {
		var cur []int
		for _, c := range coords {
			if len(cur) > 0 && c-cur[len(cur)-1] > p.maxGapSize {
				groups = append(groups, group{span, cur})
				cur = nil
			}
			cur = append(cur, c)
		}
		if len(cur) > 0 {
			groups = append(groups, group{span, cur})
		}
	}

	for _, g := range groups {
		if len(g.rows) < p.minBarCount {
			continue
		}
		first, last := g.rows[0], g.rows[len(g.rows)-1]
		span := last - first
		if span == 0 {
			continue
		}
		density := float64(len(g.rows)) / float64(span)
		if density < p.minPercentWhite || density > p.maxPercentWhite {
			continue
		}

		width := g.span.end - g.span.start
		var col []byte
		for i := first; i <= last; i++ {
			col = append(col, rows[i][g.span.start])
		}
		optimised := optimiseBarcode(string(col))

		for i := last; i >= first; i-- {
			c := optimised[len(optimised)-1]
			optimised = optimised[:len(optimised)-1]
			line := rows[i]
			rows[i] = line[:g.span.start] + strings.Repeat(string(c), width) + line[g.span.end:]
		}
	}

	return rows
}

// optimiseBarcode widens 1-pixel-wide white gaps in a run of 1/0 characters
// representing a single bar's thickness along consecutive rows, then
// shrinks the longest run of '1's (see longestRun) one character at a time
// to restore the original length.
func optimiseBarcode(barcode string) string {
	if !strings.Contains(barcode, "101") {
		return barcode
	}
	barcode = strings.ReplaceAll(barcode, "110", "100")
	if !strings.Contains(barcode, "101") {
		return barcode
	}

	originalLength := len(barcode)
	barcode = strings.ReplaceAll(barcode, "101", "1001")

	var longest string
	for len(barcode) > originalLength {
		if longest == "" || !strings.Contains(barcode, longest) {
			longest = longestRun(barcode)
		}
		barcode = replaceFirst(barcode, longest, longest[:len(longest)-1])
	}
	return barcode
}

// longestRun returns the maximal same-character run that sorts highest,
// i.e. the longest run of '1's if any exist, else the longest run of '0's.
func longestRun(s string) string {
	var best string
	i := 0
	for i < len(s) {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		run := s[i:j]
		if run > best {
			best = run
		}
		i = j
	}
	return best
}

func replaceFirst(s, old, new string) string {
	idx := strings.Index(s, old)
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}
