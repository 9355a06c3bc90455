package labelraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

const defaultInkThreshold uint8 = 127

// grayLevel reports whether a pixel should be treated as ink: pixels whose
// alpha is below threshold are white, otherwise it thresholds the greyscale
// luminance.
func grayLevel(c color.Color, threshold uint8) bool {
	if color.AlphaModel.Convert(c).(color.Alpha).A < threshold {
		return false
	}
	return color.GrayModel.Convert(c).(color.Gray).Y < threshold
}

// ImageToBitmap thresholds img to 1-bit ink/white and pads its width up to
// a multiple of 8 with white on the right, matching the padding convention
// every printer wire format in this package expects.
func ImageToBitmap(img image.Image, threshold uint8) *Bitmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return PadRightToByteWidth(w, h, func(y int) []bool {
		row := make([]bool, w)
		for x := 0; x < w; x++ {
			row[x] = grayLevel(img.At(b.Min.X+x, b.Min.Y+y), threshold)
		}
		return row
	})
}

// ToImage renders b as a 1-bit image.Image for display, PNG
// encoding, or comparison against a reference render.
func (b *Bitmap) ToImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v := color.Gray{Y: 255}
			if b.BitAt(x, y) {
				v = color.Gray{Y: 0}
			}
			img.SetGray(x, y, v)
		}
	}
	return img
}

// EncodePNG renders bm as a PNG image.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// DecodePNGToBitmap decodes a PNG and thresholds it to a Bitmap.
func DecodePNGToBitmap(data []byte, threshold uint8) (*Bitmap, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ImageToBitmap(img, threshold), nil
}

// ScaleImage resizes img to exactly width x height pixels using a bilinear
// filter, for fitting a rasterised PDF page to the printer's declared dot
// dimensions before thresholding.
func ScaleImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
