/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"golang.org/x/image/font/sfnt"

	"github.com/jrmuizel/pdf-extract/common"
	"github.com/jrmuizel/pdf-extract/internal/textencoding"
)

// sfntEncodingHint opens an embedded TrueType program and consults its cmap
// table for a code->glyph hint (§4.B.4's TrueType enrichment path, SPEC_FULL
// §11). It is best-effort: a parse failure, or a font exposing neither an
// ordinary Unicode cmap nor a Windows Symbol (0xF000+code) cmap, returns
// ok=false and the caller falls back to WinAnsiEncoding.
func sfntEncodingHint(data []byte, baseFont string) (table textencoding.EncodingTable, ok bool) {
	f, err := sfnt.Parse(data)
	if err != nil {
		common.Log.Trace("font: %q FontFile2 sfnt.Parse failed: %v", baseFont, err)
		return textencoding.EncodingTable{}, false
	}

	base, _ := textencoding.EncodingToUnicodeTable("WinAnsiEncoding")
	var buf sfnt.Buffer
	found := false
	for code := 0x20; code <= 0xFF; code++ {
		r := rune(base[code])
		if r != 0 {
			if idx, err := f.GlyphIndex(&buf, r); err == nil && idx != 0 {
				found = true
				continue
			}
		}
		if idx, err := f.GlyphIndex(&buf, rune(0xF000+code)); err == nil && idx != 0 {
			base[code] = uint16(0xF000 + code)
			found = true
		}
	}
	if !found {
		common.Log.Trace("font: %q FontFile2 has no usable Unicode or Symbol cmap; falling back to WinAnsiEncoding", baseFont)
		return textencoding.EncodingTable{}, false
	}
	return base, true
}
