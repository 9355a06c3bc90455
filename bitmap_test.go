package labelraster

import "testing"

func TestNewBitmapRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		buf           []byte
	}{
		{"width not multiple of 8", 10, 2, make([]byte, 4)},
		{"zero height", 8, 0, nil},
		{"buffer length mismatch", 16, 2, make([]byte, 3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewBitmap(c.width, c.height, c.buf); err == nil {
				t.Fatalf("expected an error for %s", c.name)
			}
		})
	}
}

func TestBitmapRowAndBitAt(t *testing.T) {
	// 16x2 bitmap, first row 0xFF00, second row 0x00FF.
	buf := []byte{0xFF, 0x00, 0x00, 0xFF}
	bm, err := NewBitmap(16, 2, buf)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 8; x++ {
		if !bm.BitAt(x, 0) {
			t.Fatalf("expected bit (%d,0) to be ink", x)
		}
		if bm.BitAt(x, 1) {
			t.Fatalf("expected bit (%d,1) to be white", x)
		}
	}
	for x := 8; x < 16; x++ {
		if bm.BitAt(x, 0) {
			t.Fatalf("expected bit (%d,0) to be white", x)
		}
		if !bm.BitAt(x, 1) {
			t.Fatalf("expected bit (%d,1) to be ink", x)
		}
	}
}

func TestBitmapHexRowsRoundTripsBytes(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	bm, err := NewBitmap(16, 2, buf)
	if err != nil {
		t.Fatal(err)
	}
	rows := bm.HexRows()
	want := []string{"DEAD", "BEEF"}
	for i, w := range want {
		if rows[i] != w {
			t.Fatalf("row %d = %q, want %q", i, rows[i], w)
		}
	}
}

func TestBitmapRotate180(t *testing.T) {
	// single black pixel in the top-left corner of an 8x2 bitmap.
	buf := []byte{0x80, 0x00}
	bm, err := NewBitmap(8, 2, buf)
	if err != nil {
		t.Fatal(err)
	}
	rotated := bm.Rotate180()
	if rotated.BitAt(0, 0) {
		t.Fatal("top-left should be white after 180 rotation")
	}
	if !rotated.BitAt(7, 1) {
		t.Fatal("bottom-right should be ink after 180 rotation")
	}
}

func TestBitmapEqual(t *testing.T) {
	a, _ := NewBitmap(8, 1, []byte{0xAA})
	b, _ := NewBitmap(8, 1, []byte{0xAA})
	c, _ := NewBitmap(8, 1, []byte{0x55})
	if !a.Equal(b) {
		t.Fatal("expected equal bitmaps to compare equal")
	}
	if a.Equal(c) {
		t.Fatal("expected differing bitmaps to compare unequal")
	}
	if a.Equal(nil) {
		t.Fatal("expected a nil comparison to be unequal")
	}
}

func TestPadOrCropToByteWidth(t *testing.T) {
	bm, _ := NewBitmap(8, 1, []byte{0xFF})
	padded := bm.PadOrCropToByteWidth(3)
	if padded.WidthBytes() != 3 {
		t.Fatalf("padded width bytes = %d, want 3", padded.WidthBytes())
	}
	cropped := padded.PadOrCropToByteWidth(1)
	if !cropped.Equal(bm) {
		t.Fatal("pad then crop back to the original width should round-trip")
	}
}
