package labelraster

import (
	"context"
	"image"
)

// Pages is an ordered collection of per-page bitmaps, the unit a multi-page
// PDF label job is rasterised and printed as.
type Pages struct {
	Bitmaps []*Bitmap
}

// Rotate rotates every page 180 degrees and reverses page order, so the
// last page to print ends up first, matching how a printer that cuts and
// ejects face-down needs its job reordered.
func (p *Pages) Rotate() {
	for i, j := 0, len(p.Bitmaps)-1; i < j; i, j = i+1, j-1 {
		p.Bitmaps[i], p.Bitmaps[j] = p.Bitmaps[j], p.Bitmaps[i]
	}
	for i, bm := range p.Bitmaps {
		p.Bitmaps[i] = bm.Rotate180()
	}
}

// RenderPDFToPages rasterises pdf with r, scales each page to the requested
// pixel dimensions, and thresholds it into a Pages collection ready for
// either wire codec.
func RenderPDFToPages(ctx context.Context, r Rasterizer, pdf []byte, opts RenderOptions, widthPx, heightPx int, threshold uint8) (*Pages, error) {
	images, err := r.Render(ctx, pdf, opts)
	if err != nil {
		return nil, err
	}

	pages := &Pages{Bitmaps: make([]*Bitmap, 0, len(images))}
	for _, img := range images {
		var scaled image.Image = img
		if widthPx > 0 && heightPx > 0 {
			b := img.Bounds()
			if b.Dx() != widthPx || b.Dy() != heightPx {
				scaled = ScaleImage(img, widthPx, heightPx)
			}
		}
		pages.Bitmaps = append(pages.Bitmaps, ImageToBitmap(scaled, threshold))
	}
	return pages, nil
}
