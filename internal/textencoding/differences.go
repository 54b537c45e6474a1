/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/unicode/norm"

	"github.com/jrmuizel/pdf-extract/common"
)

// DifferencesEntry is one decoded (code, glyph-name) pair from a
// /Differences array, in source order.
type DifferencesEntry struct {
	Code CharCode
	Name GlyphName
}

// ParseDifferences walks the interleaved integer/name operand list of a
// /Differences array (§4.B.4): each integer resets the running code, and
// each name that follows installs at the running code and increments it.
func ParseDifferences(operands []interface{}) []DifferencesEntry {
	var entries []DifferencesEntry
	var code CharCode
	for _, op := range operands {
		switch v := op.(type) {
		case int64:
			code = CharCode(v)
		case float64:
			code = CharCode(v)
		case string:
			entries = append(entries, DifferencesEntry{Code: code, Name: GlyphName(v)})
			code++
		}
	}
	return entries
}

// ApplyDifferences overlays entries onto table and, for every name with a
// known Unicode value, installs that value in table and — only when the
// code has no existing ToUnicode entry — in unicodeMap too (§4.B.4). A name
// that disagrees with an existing ToUnicode entry is logged at Debug with
// an NFKC-normalized Jaro-Winkler similarity score rather than applied, so
// the log line distinguishes a near-miss substitution from an unrelated
// glyph.
//
// baseFont carries the font's /BaseFont name for the FontAwesome special
// case: icon fonts built on FontAwesome glyph names have no Adobe Glyph
// List mapping by design, so an unresolvable name installs an empty
// ToUnicode string (suppressing a missing-glyph box) instead of just being
// logged and left undecoded.
func ApplyDifferences(table EncodingTable, unicodeMap ToUnicodeMap, entries []DifferencesEntry, baseFont string) EncodingTable {
	t := table.Clone()
	isFontAwesome := strings.Contains(strings.ToLower(baseFont), "fontawesome")
	for _, e := range entries {
		if e.Code > 0xFF {
			continue // Simple/Type3 encoding tables are single-byte
		}
		r, ok := glyphRune(e.Name)
		if !ok {
			if isFontAwesome {
				if unicodeMap != nil {
					if _, has := unicodeMap[e.Code]; !has {
						unicodeMap[e.Code] = ""
					}
				}
				continue
			}
			if !isFontAwesomeGlyph(string(e.Name)) {
				common.Log.Debug("textencoding: no Unicode value for Differences glyph %q at code %d", e.Name, e.Code)
			}
			continue
		}
		t[byte(e.Code)] = uint16(r)

		if unicodeMap == nil {
			continue
		}
		existing, has := unicodeMap[e.Code]
		if !has {
			unicodeMap[e.Code] = string(r)
			continue
		}
		if existing == string(r) {
			continue
		}
		sim := strutil.Similarity(norm.NFKC.String(existing), norm.NFKC.String(string(r)), metrics.NewJaroWinkler())
		common.Log.Debug("textencoding: Differences glyph %q at code %d (%q) disagrees with existing ToUnicode entry %q (similarity=%.2f); keeping ToUnicode",
			e.Name, e.Code, string(r), existing, sim)
	}
	return t
}

// glyphRune resolves a glyph name to a rune the way §4.B.4's Differences
// overlay needs: the ordinary Adobe Glyph List subset, then the
// uniXXXX/uXXXX numeric-escape convention.
func glyphRune(name GlyphName) (rune, bool) {
	if r, ok := GlyphToUnicode(string(name)); ok {
		return rune(r), true
	}
	if r, ok := parseUniName(string(name)); ok {
		return r, true
	}
	return 0, false
}

// isFontAwesomeGlyph reports whether name looks like a FontAwesome icon
// glyph name ("fa-" prefixed). These carry no Adobe Glyph List mapping by
// design; the core documents them as an intentional empty-glyph rather
// than a logged lookup failure.
func isFontAwesomeGlyph(name string) bool {
	return len(name) > 3 && name[:3] == "fa-"
}

// parseUniName decodes the "uniXXXX" / "uXXXX[XX]" glyph-name conventions
// PDF producers use for code points outside the named AGL subset.
func parseUniName(name string) (rune, bool) {
	var hex string
	switch {
	case len(name) == 7 && name[:3] == "uni":
		hex = name[3:]
	case len(name) >= 5 && len(name) <= 7 && name[0] == 'u':
		hex = name[1:]
	default:
		return 0, false
	}
	var v rune
	for _, c := range hex {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= rune(c - '0')
		case c >= 'A' && c <= 'F':
			v |= rune(c-'A') + 10
		case c >= 'a' && c <= 'f':
			v |= rune(c-'a') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
