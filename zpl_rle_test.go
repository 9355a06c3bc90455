package labelraster

import "testing"

func TestRLECodeThresholds(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "G"},
		{19, "Y"},
		{20, "g"},
		{39, "gY"},
		{400, "z"},
		{419, "zY"},
	}
	for _, c := range cases {
		if got := rleCode(c.n); got != c.want {
			t.Errorf("rleCode(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestCompressExpandRoundTrip(t *testing.T) {
	cases := []string{
		"0000000000",
		"F0F0F0F0",
		"",
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		"ABABABAB",
	}
	for _, data := range cases {
		compressed := compressRLE(data)
		expanded := expandRLE(compressed)
		if expanded != data {
			t.Errorf("round trip of %q through RLE = %q", data, expanded)
		}
	}
}

func TestAssembleASCIIHexRows(t *testing.T) {
	// Two 1-byte-wide rows: 0xFF then a duplicate of the previous row.
	expanded := "FF:"
	data, err := assembleASCIIHexRows(expanded, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0xFF}
	if string(data) != string(want) {
		t.Fatalf("got %v, want %v", data, want)
	}
}

func TestAssembleASCIIHexRowsPadsShortRow(t *testing.T) {
	// A row terminated early by ',' pads with '0' up to the declared width.
	data, err := assembleASCIIHexRows("FF,", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0x00}
	if string(data) != string(want) {
		t.Fatalf("got %v, want %v", data, want)
	}
}

func TestAssembleASCIIHexRowsNoPreviousRow(t *testing.T) {
	if _, err := assembleASCIIHexRows(":", 1); err != ErrNoPreviousRow {
		t.Fatalf("expected ErrNoPreviousRow, got %v", err)
	}
}
