package labelraster

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestImageToBitmapThresholdsAndPads(t *testing.T) {
	// 10x1 image: first 5 pixels black, last 5 white. Width pads to 16.
	img := image.NewGray(image.Rect(0, 0, 10, 1))
	for x := 0; x < 10; x++ {
		v := uint8(255)
		if x < 5 {
			v = 0
		}
		img.SetGray(x, 0, color.Gray{Y: v})
	}
	bm := ImageToBitmap(img, 127)
	if bm.Width() != 16 {
		t.Fatalf("width = %d, want 16 (padded up from 10)", bm.Width())
	}
	for x := 0; x < 5; x++ {
		if !bm.BitAt(x, 0) {
			t.Fatalf("pixel %d should be ink", x)
		}
	}
	for x := 5; x < 16; x++ {
		if bm.BitAt(x, 0) {
			t.Fatalf("pixel %d should be white", x)
		}
	}
}

func TestImageToBitmapTransparentIsWhite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 0}) // fully transparent black
	bm := ImageToBitmap(img, 127)
	if bm.BitAt(0, 0) {
		t.Fatal("a fully transparent pixel should decode as white regardless of colour")
	}
}

func TestBitmapPNGRoundTrip(t *testing.T) {
	bm := sampleBitmap(t)
	var buf bytes.Buffer
	if err := bm.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodePNGToBitmap(buf.Bytes(), 127)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(bm) {
		t.Fatal("PNG round trip produced a different bitmap")
	}
}
