package labelraster

import "testing"

func TestPackbitsRoundTrip(t *testing.T) {
	cases := [][]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0xFF, 0x00, 0xFF, 0x00, 0xFF},
		{0x01, 0x02, 0x03, 0x04, 0x05},
		{},
		{0xAA},
	}
	for _, row := range cases {
		encoded := encodePackbitsLine(row)
		decoded := decodePackbitsLine(encoded)
		if string(decoded) != string(row) {
			t.Errorf("round trip of %v through packbits = %v", row, decoded)
		}
	}
}

func TestEncodeDecodeBrotherRasterRoundTrip(t *testing.T) {
	bm := sampleBitmap(t) // 16x4, 2 bytes/row
	raster := EncodeBrotherRaster(bm, true, bm.WidthBytes(), 0x47)

	var stream []byte
	stream = append(stream, 0x00) // discarded: replaced by the full invalidate below
	stream = make([]byte, 100)    // invalidate
	stream = append(stream, ESC, 0x40)
	stream = append(stream, ESC, 0x69, 0x61, 0x01)
	stream = append(stream, 0x4D, 0x02)
	stream = append(stream, raster.Data...)
	stream = append(stream, SUB)

	bitmaps, err := ExtractBrotherRasters(stream)
	if err != nil {
		t.Fatal(err)
	}
	if len(bitmaps) != 1 {
		t.Fatalf("got %d rasters, want 1", len(bitmaps))
	}
	if !bitmaps[0].Equal(bm) {
		t.Fatalf("decoded raster differs from original bitmap")
	}
}

func TestSimpleBrotherPrinterRequiresMediaWidthWhenUncompressed(t *testing.T) {
	bm := sampleBitmap(t)
	raster := EncodeBrotherRaster(bm, false, bm.WidthBytes(), 0x47)
	_, err := SimpleBrotherPrinter([]PrinterRaster{raster}, BrotherPrintOptions{})
	if err != ErrMediaWidthRequired {
		t.Fatalf("expected ErrMediaWidthRequired, got %v", err)
	}
}

func TestSimpleBrotherPrinterRoundTrip(t *testing.T) {
	bm := sampleBitmap(t)
	raster := EncodeBrotherRaster(bm, true, bm.WidthBytes(), 0x47)
	out, err := SimpleBrotherPrinter([]PrinterRaster{raster}, BrotherPrintOptions{AutoCut: true, HalfCut: true})
	if err != nil {
		t.Fatal(err)
	}
	bitmaps, err := ExtractBrotherRasters(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(bitmaps) != 1 || !bitmaps[0].Equal(bm) {
		t.Fatal("expected SimpleBrotherPrinter output to decode back to the original bitmap")
	}
}

func TestExtractBrotherRastersRejectsNonRasterMode(t *testing.T) {
	stream := []byte{ESC, 0x69, 0x61, 0x00}
	if _, err := ExtractBrotherRasters(stream); err != ErrNonRasterMode {
		t.Fatalf("expected ErrNonRasterMode, got %v", err)
	}
}

func TestExtractBrotherRastersLineCountMismatch(t *testing.T) {
	var stream []byte
	stream = append(stream, ESC, 0x69, 0x7A, 0x84, 0x00, 0x00, 0x00)
	stream = append(stream, 5, 0, 0, 0) // expects 5 lines, little-endian
	stream = append(stream, 0, 0)
	stream = append(stream, 0x5A) // blank-line marker with no raster started: no-op
	stream = append(stream, SUB)
	if _, err := ExtractBrotherRasters(stream); err != ErrLineCountMismatch {
		t.Fatalf("expected ErrLineCountMismatch, got %v", err)
	}
}
