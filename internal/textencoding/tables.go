/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "github.com/jrmuizel/pdf-extract/common"

// EncodingTable is a 256-entry byte->UTF-16-code-unit map (§3 "Encoding
// table"). Slot i gives the Unicode value single byte i decodes to absent a
// ToUnicode map; zero means undefined.
type EncodingTable [256]uint16

// Clone returns an independent copy, so callers that overlay Differences
// (§4.B.4) never mutate a shared base table.
func (t EncodingTable) Clone() EncodingTable {
	return t
}

// ErrUnknownEncoding is returned by EncodingToUnicodeTable for a name that
// isn't one of the four standard encodings.
type ErrUnknownEncoding string

func (e ErrUnknownEncoding) Error() string { return "textencoding: unknown encoding " + string(e) }

// EncodingToUnicodeTable resolves one of the four named standard encodings
// (§4.A). ZapfDingbats is deliberately not reachable through this function:
// the spec requires a separate lookup that callers must opt into explicitly.
func EncodingToUnicodeTable(name string) (EncodingTable, error) {
	switch name {
	case "WinAnsiEncoding":
		return winAnsiTable(), nil
	case "MacRomanEncoding":
		return macRomanTable(), nil
	case "MacExpertEncoding":
		return macExpertTable(), nil
	case "PDFDocEncoding", "StandardEncoding":
		return pdfDocTable(), nil
	default:
		common.Log.Debug("textencoding: unknown encoding name %q", name)
		return EncodingTable{}, ErrUnknownEncoding(name)
	}
}
