package labelraster

import "sync"

// crcCCITTTable is the XModem CRC-CCITT lookup table: polynomial 0x1021, no
// reflection. Built once and reused.
var (
	crcCCITTTable     [256]uint16
	crcCCITTTableOnce sync.Once
)

func initCRCCCITTTable() {
	for i := 0; i < 256; i++ {
		crc := uint16(0)
		c := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if (crc^c)&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc = crc << 1
			}
			c <<= 1
		}
		crcCCITTTable[i] = crc
	}
}

// crcCCITT computes the CRC-CCITT (XModem: poly 0x1021, init 0x0000, no
// reflection, no final XOR) of data.
func crcCCITT(data []byte) uint16 {
	crcCCITTTableOnce.Do(initCRCCCITTTable)

	var crc uint16
	for _, b := range data {
		tmp := (crc>>8)&0xff ^ uint16(b)
		crc = (crc << 8) ^ crcCCITTTable[tmp]
	}
	return crc
}

// CRCCCITT returns the CRC-CCITT of data as 4 uppercase hex digits, the form
// ZPL embeds at the end of a base64 GRF payload.
func CRCCCITT(data []byte) string {
	const hexDigits = "0123456789ABCDEF"
	crc := crcCCITT(data)
	return string([]byte{
		hexDigits[(crc>>12)&0xf],
		hexDigits[(crc>>8)&0xf],
		hexDigits[(crc>>4)&0xf],
		hexDigits[crc&0xf],
	})
}
