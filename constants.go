package labelraster

// Control bytes used by the Brother raster protocol and the ZPL tokeniser.
const (
	NUL byte = 0x00
	LF  byte = 0x0A
	FF  byte = 0x0C
	CR  byte = 0x0D
	ESC byte = 0x1B
	SUB byte = 0x1A
)
