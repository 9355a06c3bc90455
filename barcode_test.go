package labelraster

import "testing"

func testBarcodeParams() barcodeParams {
	return barcodeParams{
		minBarHeight:    3,
		minBarCount:     3,
		maxGapSize:      2,
		minPercentWhite: 0,
		maxPercentWhite: 1.0,
	}
}

func TestOptimiseBarcodeRowsWidensOnePixelGap(t *testing.T) {
	// A vertical bar at columns 2-4, ten rows tall, with a single blank
	// row at index 4 breaking the run.
	rows := []string{
		"00111000",
		"00111000",
		"00111000",
		"00111000",
		"00000000",
		"00111000",
		"00111000",
		"00111000",
		"00111000",
		"00111000",
	}
	out := optimiseBarcodeRows(rows, testBarcodeParams())

	if out[4] != "00000000" {
		t.Fatalf("row 4 should stay blank, got %q", out[4])
	}
	if out[3] == rows[3] {
		t.Fatalf("expected the bar pixel adjacent to the gap to be cleared, row 3 unchanged: %q", out[3])
	}
	if out[3][2:5] != "000" {
		t.Fatalf("expected columns 2-4 of row 3 to be cleared, got %q", out[3][2:5])
	}
	// Rows far from the gap are untouched.
	if out[0] != rows[0] || out[9] != rows[9] {
		t.Fatalf("rows away from the gap should be unchanged, got %q / %q", out[0], out[9])
	}
}

func TestOptimiseBarcodeRowsRejectsLowDensityGroup(t *testing.T) {
	// The same span recurs every other row, so the rows form one group,
	// but 4 rows over a span of 6 is below the density minimum, so
	// nothing should change.
	p := testBarcodeParams()
	p.maxGapSize = 2 // bridge the one-row gaps
	p.minPercentWhite = 0.9
	rows := []string{
		"00111000",
		"00000000",
		"00111000",
		"00000000",
		"00111000",
		"00000000",
		"00111000",
	}
	out := optimiseBarcodeRows(rows, p)
	for i := range rows {
		if out[i] != rows[i] {
			t.Fatalf("row %d changed despite failing the density filter: %q -> %q", i, rows[i], out[i])
		}
	}
}

func TestOptimiseBarcodeRowsIgnoresShortRuns(t *testing.T) {
	p := testBarcodeParams()
	p.minBarHeight = 10 // longer than any run present
	rows := []string{"0011100", "0011100", "0011100"}
	out := optimiseBarcodeRows(rows, p)
	for i := range rows {
		if out[i] != rows[i] {
			t.Fatalf("row %d changed even though no run meets minBarHeight", i)
		}
	}
}

func TestRotateRowsCWThenCCWIsIdentity(t *testing.T) {
	rows := []string{
		"101010",
		"010101",
		"111000",
		"000111",
	}
	rotated := rotateRowsCW(rows)
	back := rotateRowsCCW(rotated)
	if len(back) != len(rows) {
		t.Fatalf("got %d rows back, want %d", len(back), len(rows))
	}
	for i := range rows {
		if back[i] != rows[i] {
			t.Fatalf("row %d = %q after round trip, want %q", i, back[i], rows[i])
		}
	}
}

func TestOptimiseBarcodePreservesLength(t *testing.T) {
	cases := []string{
		"1111011111",
		"111100011111",
		"10101",
		"0000000000",
		"1111111111",
	}
	for _, c := range cases {
		got := optimiseBarcode(c)
		if len(got) != len(c) {
			t.Errorf("optimiseBarcode(%q) changed length: got %q (%d), want length %d", c, got, len(got), len(c))
		}
	}
}

func TestOptimiseBarcodesPreservesBitmapDimensions(t *testing.T) {
	bm := sampleBitmap(t)
	out := OptimiseBarcodes(bm)
	if out.Width() != bm.Width() || out.Height() != bm.Height() {
		t.Fatalf("dimensions changed: got %dx%d, want %dx%d", out.Width(), out.Height(), bm.Width(), bm.Height())
	}
}
