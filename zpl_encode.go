package labelraster

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"strings"
)

// Compression levels accepted by EncodeGRF, named after the ZPL printer
// driver's own "GRAPHIC-TYPE" codes: 1 is an uncompressed base64 envelope
// (":B64:"), 2 is ASCII-hex run-length text, 3 is a deflate-then-base64
// envelope (":Z64:").
const (
	CompressionB64 = 1
	CompressionHex = 2
	CompressionZ64 = 3
)

// EncodeGRF renders bm as a "~DGR:<name>.GRF,<filesize>,<width_bytes>,
// <payload>" download-graphic command using the given compression level.
func EncodeGRF(name string, bm *Bitmap, compression int) (string, error) {
	canonical, err := validateGRFName(name)
	if err != nil {
		return "", err
	}

	var payload string
	switch compression {
	case CompressionB64:
		payload = encodeBase64Envelope(bm, false)
	case CompressionZ64:
		payload = encodeBase64Envelope(bm, true)
	case CompressionHex:
		payload = encodeASCIIHexRows(bm)
	default:
		return "", ErrUnsupportedCompression
	}

	filesize := len(bm.Bytes())
	widthBytes := bm.WidthBytes()
	return fmt.Sprintf("~DGR:%s.GRF,%d,%d,%s", canonical, filesize, widthBytes, payload), nil
}

// encodeBase64Envelope builds a ":Z64:<base64>:<crc>" (deflate) or
// ":B64:<base64>:<crc>" (uncompressed) payload. The CRC covers the base64
// text itself, matching decodeGRFPayload.
func encodeBase64Envelope(bm *Bitmap, deflated bool) string {
	raw := bm.Bytes()
	tag := "B64"
	body := raw
	if deflated {
		tag = "Z64"
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		_, _ = w.Write(raw)
		_ = w.Close()
		body = buf.Bytes()
	}
	inner := base64.StdEncoding.EncodeToString(body)
	crc := CRCCCITT([]byte(inner))
	return ":" + tag + ":" + inner + ":" + crc
}

// encodeASCIIHexRows renders bm row by row: a row identical to the one
// before it collapses to ':'. Otherwise, only if its hex ends in "00" are
// the trailing zero bytes trimmed (undeclared bytes default to white on
// decode) and a ',' terminator appended. A row not ending in "00" is
// emitted verbatim with no trim and no terminator.
func encodeASCIIHexRows(bm *Bitmap) string {
	var buf strings.Builder
	rows := bm.HexRows()
	var prev string
	for i, rowHex := range rows {
		if i > 0 && rowHex == prev {
			buf.WriteByte(':')
			prev = rowHex
			continue
		}
		if strings.HasSuffix(rowHex, "00") {
			trimmed := strings.TrimRight(rowHex, "0")
			if len(trimmed)%2 != 0 {
				trimmed += "0"
			}
			buf.WriteString(compressRLE(trimmed))
			buf.WriteByte(',')
		} else {
			buf.WriteString(compressRLE(rowHex))
		}
		prev = rowHex
	}
	return buf.String()
}
