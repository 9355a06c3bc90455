package labelraster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
)

// Rasterizer turns a PDF label into one monochrome image per page. It is
// the only seam through which this package shells out to anything; every
// other operation is pure.
type Rasterizer interface {
	Render(ctx context.Context, pdf []byte, opts RenderOptions) ([]image.Image, error)
}

// RenderOptions controls a PDF-to-image rasterisation pass. WidthPoints and
// HeightPoints are in PostScript points (1/72in); DPI is dots per inch.
// Zero values pick the rasterizer's own defaults.
type RenderOptions struct {
	WidthPoints  int
	HeightPoints int
	DPI          int
	FontPath     string
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.WidthPoints == 0 {
		o.WidthPoints = 288
	}
	if o.HeightPoints == 0 {
		o.HeightPoints = 432
	}
	if o.DPI == 0 {
		o.DPI = 203
	}
	return o
}

// GhostscriptRasterizer shells out to the "gs" binary to rasterise a PDF to
// 1-bit PNGs, the same device and page-setup flags a label printer driver
// passes to get unantialiased, unscaled output at the printer's native DPI.
type GhostscriptRasterizer struct {
	// Path overrides the "gs" binary name; useful in tests or when gs is
	// not on PATH.
	Path string
}

func (g GhostscriptRasterizer) binary() string {
	if g.Path != "" {
		return g.Path
	}
	return "gs"
}

func (g GhostscriptRasterizer) Render(ctx context.Context, pdf []byte, opts RenderOptions) ([]image.Image, error) {
	opts = opts.withDefaults()

	setpagedevice := "<</.HWMargins[0.000000 0.000000 0.000000 0.000000] /Margins[0 0]>>setpagedevice"
	args := []string{
		"-dQUIET",
		"-dPARANOIDSAFER",
		"-dNOPAUSE",
		"-dBATCH",
		"-dNOINTERPOLATE",
		"-sDEVICE=pngmono",
		"-dAdvanceDistance=1000",
		"-r" + strconv.Itoa(opts.DPI),
		"-dDEVICEWIDTHPOINTS=" + strconv.Itoa(opts.WidthPoints),
		"-dDEVICEHEIGHTPOINTS=" + strconv.Itoa(opts.HeightPoints),
		"-dFIXEDMEDIA",
		"-dPDFFitPage",
		"-sstdout=%stderr",
		"-sOutputFile=%stdout",
		"-c", setpagedevice,
	}
	if opts.FontPath != "" {
		args = append(args, "-I"+opts.FontPath)
	}
	args = append(args, "-f", "-")

	cmd := exec.CommandContext(ctx, g.binary(), args...)
	cmd.Stdin = bytes.NewReader(pdf)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExternalRenderFailure, stderr.String())
	}
	if stderr.Len() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrExternalRenderFailure, stderr.String())
	}

	return splitPNGStream(stdout.Bytes())
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// splitPNGStream decodes a concatenated run of PNG files, one per
// Ghostscript page, into individual images.
func splitPNGStream(data []byte) ([]image.Image, error) {
	var offsets []int
	for i := 0; i+len(pngSignature) <= len(data); i++ {
		if bytes.Equal(data[i:i+len(pngSignature)], pngSignature) {
			offsets = append(offsets, i)
		}
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: no PNG output from renderer", ErrExternalRenderFailure)
	}

	images := make([]image.Image, 0, len(offsets))
	for i, start := range offsets {
		end := len(data)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		img, err := png.Decode(bytes.NewReader(data[start:end]))
		if err != nil {
			return nil, fmt.Errorf("labelraster: decoding rasterised page %d: %w", i, err)
		}
		images = append(images, img)
	}
	return images, nil
}
