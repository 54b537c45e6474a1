/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "golang.org/x/text/encoding/charmap"

// winAnsiTable builds WinAnsiEncoding from the Windows-1252 code page,
// the same base the reference implementation uses (CP1252 and WinAnsi
// agree on every printable position that PDF actually exercises). A
// handful of codes PDF's Appendix D reassigns to the generic "bullet"
// glyph, or maps to the visually closest ASCII character, are patched in
// afterward.
func winAnsiTable() EncodingTable {
	var t EncodingTable
	const bullet = '•'
	patch := map[byte]rune{
		127: bullet,
		129: bullet,
		141: bullet,
		143: bullet,
		144: bullet,
		157: bullet,
		160: ' ',  // non-breaking space -> space
		173: '-',  // soft hyphen -> hyphen
	}
	for i := int(' '); i < 256; i++ {
		b := byte(i)
		r := charmap.Windows1252.DecodeByte(b)
		if rp, ok := patch[b]; ok {
			r = rp
		}
		t[b] = uint16(r)
	}
	return t
}
