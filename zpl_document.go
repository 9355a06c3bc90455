package labelraster

import "strings"

// ReplaceGRFsInZPL decodes every "~DG" graphic resource in zpl, passes each
// through edit (which may run barcode optimisation, re-scale, or leave it
// untouched), re-encodes the result at the given compression level, and
// splices the rewritten commands back into the document in place. Every
// other token, including "~DY" and "^GF" fields, passes through unchanged.
//
// edit may be nil, in which case every "~DG" resource is simply re-encoded
// at the requested compression level; this is useful for normalising a
// document to a single encoding without otherwise touching its graphics.
func ReplaceGRFsInZPL(zpl string, compression int, edit func(name string, bm *Bitmap) (*Bitmap, error)) (string, error) {
	tokens := TokenizeZPL(zpl)
	rewritten := make(map[string]string, len(tokens))

	for _, token := range tokens {
		if !isGRFCommand(token) {
			continue
		}
		grf, err := DecodeZPLGRF(token)
		if err != nil {
			return "", err
		}
		bm := grf.Bitmap
		if edit != nil {
			bm, err = edit(grf.Name, bm)
			if err != nil {
				return "", err
			}
		}
		out, err := EncodeGRF(grf.Name, bm, compression)
		if err != nil {
			return "", err
		}
		rewritten[grf.Name] = out
	}

	var out strings.Builder
	for _, token := range tokens {
		if isGRFCommand(token) {
			name := grfTokenName(token)
			if replacement, ok := rewritten[name]; ok {
				out.WriteString(replacement)
				continue
			}
		}
		out.WriteString(token)
	}
	return out.String(), nil
}

// grfTokenName extracts the resource name from a raw "~DG<mem>:<name>.GRF,..."
// token without fully decoding its payload, for matching against an already
// decoded GRF map.
func grfTokenName(token string) string {
	rest := token[3:]
	if len(rest) < 2 || rest[1] != ':' {
		return ""
	}
	rest = rest[2:]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return ""
	}
	nameField := strings.TrimSuffix(rest[:comma], ".GRF")
	name, err := validateGRFName(nameField)
	if err != nil {
		return ""
	}
	return name
}

// SimpleZebraPrinter renders a single label as a complete ZPL document: a
// start-format command, one "~DGR:" download of the label bitmap under a
// fixed resource name, a "^FO0,0^XG" field recalling it at the origin, and
// an end-format command. It is a minimal driver for callers that just want one
// bitmap printed without hand-assembling ZPL.
func SimpleZebraPrinter(bm *Bitmap, compression int) (string, error) {
	grfCmd, err := EncodeGRF("LABEL", bm, compression)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	out.WriteString("^XA\n")
	out.WriteString(grfCmd)
	out.WriteString("\n^FO0,0^XGR:LABEL.GRF,1,1^FS\n")
	out.WriteString("^XZ")
	return out.String(), nil
}
