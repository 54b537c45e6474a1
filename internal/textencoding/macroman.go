/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "golang.org/x/text/encoding/charmap"

// macRomanTable builds MacRomanEncoding from classic Mac OS Roman, the code
// page golang.org/x/text/encoding/charmap ships as charmap.Macintosh. PDF's
// MacRomanEncoding agrees with Mac OS Roman everywhere except a small block
// of typographic/currency glyphs Adobe's Appendix D reassigns; those are
// patched in afterward rather than hand-authoring the whole table.
func macRomanTable() EncodingTable {
	var t EncodingTable
	patch := map[byte]rune{
		0xDB: 0x00A4, // currency sign, not the Apple logo Mac OS Roman puts here
		0xD8: 0x00F7, // division sign
	}
	for i := int(' '); i < 256; i++ {
		b := byte(i)
		r := charmap.Macintosh.DecodeByte(b)
		if rp, ok := patch[b]; ok {
			r = rp
		}
		t[b] = uint16(r)
	}
	return t
}
