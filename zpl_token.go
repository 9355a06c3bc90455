package labelraster

import "strings"

// TokenizeZPL normalises a ZPL document by stripping CR/LF and splitting it
// into an ordered sequence of commands, cut immediately before every '^' and
// '~'. Only "~DG", "~DY" and "^GF" tokens carry graphic payloads; every
// other token is returned verbatim so a caller can reassemble the document,
// minus its CR/LF characters, around edited graphics.
func TokenizeZPL(zpl string) []string {
	stripped := make([]byte, 0, len(zpl))
	for i := 0; i < len(zpl); i++ {
		c := zpl[i]
		if c == CR || c == LF {
			continue
		}
		stripped = append(stripped, c)
	}

	var tokens []string
	var cur []byte
	for _, c := range stripped {
		if (c == '^' || c == '~') && len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 {
		tokens = append(tokens, string(cur))
	}
	return tokens
}

// isGRFCommand reports whether token carries a "~DG" download-graphic
// payload.
func isGRFCommand(token string) bool {
	return strings.HasPrefix(token, "~DG")
}

// isDYCommand reports whether token carries a "~DY" download-object payload.
func isDYCommand(token string) bool {
	return strings.HasPrefix(token, "~DY")
}

// isGFCommand reports whether token carries an inline "^GF" graphic field.
func isGFCommand(token string) bool {
	return strings.HasPrefix(token, "^GF")
}
