/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

// CharCode is a character code in whatever width a font's encoding uses: one
// byte for Simple/Type3 fonts, 1-4 bytes (per the codespace range that
// matched) for CID fonts (§3 "CharCode").
type CharCode uint32

// GlyphName is a PostScript glyph name as it appears in a /Differences array
// or a font program's internal encoding.
type GlyphName string

// MissingCodeRune is what SimpleEncoding's decoder substitutes for a byte
// whose table entry is zero, so its callers always get a string back rather
// than an error. ToUTF8 does not use it: a zero entry decodes as U+0000.
const MissingCodeRune = '�'

// ToUnicodeMap is the result of ingesting a font's ToUnicode CMap (§4.B
// "ToUnicode CMap ingestion"): character code to decoded UTF-8 string,
// since a bfrange/bfchar target can be a multi-rune ligature expansion.
type ToUnicodeMap map[CharCode]string
