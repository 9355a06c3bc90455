package labelraster

import "errors"

// Sentinel errors for the fatal conditions the ZPL and Brother codecs can
// hit. Callers compare with errors.Is; wrapping with fmt.Errorf("...: %w")
// is expected at each call site that adds context (row number, command
// offset, and so on).
var (
	// ErrInvalidName means a GRF name failed the 1-8 alphanumeric rule.
	ErrInvalidName = errors.New("labelraster: invalid GRF name")

	// ErrBadCRC means a base64 GRF payload's trailing CRC did not match.
	ErrBadCRC = errors.New("labelraster: CRC mismatch")

	// ErrBadFileSize means a decoded GRF payload's length did not match its
	// declared filesize.
	ErrBadFileSize = errors.New("labelraster: file size mismatch")

	// ErrUnsupportedGraphicFormat means a ~DY command named a graphic format
	// other than G.
	ErrUnsupportedGraphicFormat = errors.New("labelraster: unsupported graphic format")

	// ErrUnsupportedCompression means a ^GF command named a kind other than A.
	ErrUnsupportedCompression = errors.New("labelraster: unsupported ^GF compression kind")

	// ErrNonRasterMode means a Brother dynamic command mode switch selected
	// anything other than raster mode.
	ErrNonRasterMode = errors.New("labelraster: printer switched to non-raster mode")

	// ErrLineCountMismatch means a Brother stream's declared and observed
	// raster line counts disagreed.
	ErrLineCountMismatch = errors.New("labelraster: raster line count mismatch")

	// ErrMediaWidthRequired means an uncompressed Brother emission was
	// requested without a caller-supplied media width.
	ErrMediaWidthRequired = errors.New("labelraster: media width required for uncompressed output")

	// ErrExternalRenderFailure means the external PDF rasteriser produced
	// output on stderr.
	ErrExternalRenderFailure = errors.New("labelraster: external renderer failed")

	// ErrNoPreviousRow means a ZPL ASCII-hex payload used ':' (repeat
	// previous row) before any row had been committed.
	ErrNoPreviousRow = errors.New("labelraster: ':' with no previous row")
)
