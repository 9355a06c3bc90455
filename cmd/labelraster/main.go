// Command labelraster renders a PDF label through Ghostscript and prints it
// to stdout as either a ZPL or Brother raster command stream.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/zplraster/labelraster"
)

func main() {
	format := flag.String("format", "zpl", "output format: zpl or brother")
	widthPoints := flag.Int("width-points", 288, "page width in PostScript points")
	heightPoints := flag.Int("height-points", 432, "page height in PostScript points")
	dpi := flag.Int("dpi", 203, "rasterisation DPI")
	compression := flag.Int("compression", labelraster.CompressionZ64, "ZPL GRF compression: 1=B64, 2=hex, 3=Z64")
	printerBytesWidth := flag.Int("brother-width-bytes", 16, "Brother printhead width in bytes")
	optimiseBarcodes := flag.Bool("optimise-barcodes", true, "widen 1px barcode gaps before encoding")
	gsPath := flag.String("gs", "gs", "path to the Ghostscript binary")
	flag.Parse()

	pdf, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("labelraster: reading stdin: %v", err)
	}

	widthPx := *widthPoints * *dpi / 72
	heightPx := *heightPoints * *dpi / 72

	rasterizer := labelraster.GhostscriptRasterizer{Path: *gsPath}
	pages, err := labelraster.RenderPDFToPages(
		context.Background(),
		rasterizer,
		pdf,
		labelraster.RenderOptions{WidthPoints: *widthPoints, HeightPoints: *heightPoints, DPI: *dpi},
		widthPx, heightPx, 127,
	)
	if err != nil {
		log.Fatalf("labelraster: rendering pdf: %v", err)
	}

	for i, bm := range pages.Bitmaps {
		if *optimiseBarcodes {
			bm = labelraster.OptimiseBarcodes(bm)
		}

		switch *format {
		case "zpl":
			zpl, err := labelraster.SimpleZebraPrinter(bm, *compression)
			if err != nil {
				log.Fatalf("labelraster: encoding page %d: %v", i, err)
			}
			if _, err := fmt.Fprintln(os.Stdout, zpl); err != nil {
				log.Fatalf("labelraster: writing page %d: %v", i, err)
			}
		case "brother":
			raster := labelraster.EncodeBrotherRaster(bm, true, *printerBytesWidth, 0x47)
			out, err := labelraster.SimpleBrotherPrinter([]labelraster.PrinterRaster{raster}, labelraster.BrotherPrintOptions{AutoCut: true, HalfCut: true})
			if err != nil {
				log.Fatalf("labelraster: encoding page %d: %v", i, err)
			}
			if _, err := os.Stdout.Write(out); err != nil {
				log.Fatalf("labelraster: writing page %d: %v", i, err)
			}
		default:
			log.Fatalf("labelraster: unknown -format %q", *format)
		}
	}
}
