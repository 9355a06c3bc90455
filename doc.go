// Package labelraster converts rendered label bitmaps to and from the
// printer wire formats used by Zebra ZPL and Brother P-touch/QL thermal
// label printers, and rewrites barcode regions of a bitmap so that narrow
// bars survive printing at low DPI.
//
// The package has three independent halves that share the Bitmap value
// type: zpl_*.go implement the ZPL GRF codec, brother_*.go implement the
// Brother raster stream codec, and barcode.go implements the barcode
// optimisation pass. PDF rasterisation and PNG decoding are reached only
// through the Rasterizer interface and the standard image package; the only
// code that shells out is GhostscriptRasterizer, which runs "gs", and the
// package never touches a filesystem on its own.
package labelraster
