package labelraster

// BarcodeOption customises a single call to OptimiseBarcodes. Options follow
// a functional apply-to-a-config pattern so new tunables don't grow the
// function signature.
type BarcodeOption interface {
	apply(*barcodeParams)
}

type barcodeOptionFunc func(*barcodeParams)

func (f barcodeOptionFunc) apply(p *barcodeParams) { f(p) }

type barcodeParams struct {
	minBarHeight    int
	minBarCount     int
	maxGapSize      int
	minPercentWhite float64
	maxPercentWhite float64
}

func defaultBarcodeParams() barcodeParams {
	return barcodeParams{
		minBarHeight:    20,
		minBarCount:     100,
		maxGapSize:      30,
		minPercentWhite: 0.2,
		maxPercentWhite: 0.8,
	}
}

// WithMinBarHeight sets the minimum run of black pixels along a row, in
// pixels, that is considered a candidate barcode bar. Too low picks up text and data
// matrices; too high misses real bars.
func WithMinBarHeight(n int) BarcodeOption {
	return barcodeOptionFunc(func(p *barcodeParams) { p.minBarHeight = n })
}

// WithMinBarCount sets the minimum number of rows sharing a bar span before
// the group is considered a potential barcode.
func WithMinBarCount(n int) BarcodeOption {
	return barcodeOptionFunc(func(p *barcodeParams) { p.minBarCount = n })
}

// WithMaxGapSize sets the largest run gap, in rows, allowed within one bar
// group before it is split into two groups.
func WithMaxGapSize(n int) BarcodeOption {
	return barcodeOptionFunc(func(p *barcodeParams) { p.maxGapSize = n })
}

// WithPercentWhiteRange sets the accepted density range (rows present over
// row span) for a bar group. Too dense is a solid shape; too sparse is noise.
func WithPercentWhiteRange(min, max float64) BarcodeOption {
	return barcodeOptionFunc(func(p *barcodeParams) {
		p.minPercentWhite = min
		p.maxPercentWhite = max
	})
}

// BrotherDecodeOption customises ExtractBrotherRasters.
type BrotherDecodeOption interface {
	apply(*brotherDecodeConfig)
}

type brotherDecodeOptionFunc func(*brotherDecodeConfig)

func (f brotherDecodeOptionFunc) apply(c *brotherDecodeConfig) { f(c) }

type brotherDecodeConfig struct {
	skipUndocumented map[byte]int
	warnf            func(format string, args ...any)
}

func defaultBrotherDecodeConfig() brotherDecodeConfig {
	return brotherDecodeConfig{
		skipUndocumented: map[byte]int{0x55: 15},
		warnf:            func(string, ...any) {},
	}
}

// WithSkipUndocumented overrides the table of undocumented "ESC i <op>"
// commands and how many argument bytes to skip for each. The printer
// protocol default is {0x55: 15}.
func WithSkipUndocumented(skip map[byte]int) BrotherDecodeOption {
	return brotherDecodeOptionFunc(func(c *brotherDecodeConfig) { c.skipUndocumented = skip })
}

// WithWarnFunc sets the callback invoked for unrecognised "ESC i <op>"
// commands outside the skip table; the default discards the warning.
func WithWarnFunc(warnf func(format string, args ...any)) BrotherDecodeOption {
	return brotherDecodeOptionFunc(func(c *brotherDecodeConfig) { c.warnf = warnf })
}
