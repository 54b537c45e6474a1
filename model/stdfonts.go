/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "strings"

// stdFontWidths holds the Adobe standard-14 core-font advance widths for
// printable ASCII (32-126), indexed by code-32 (§4.B.5: "consult the static
// metrics table for that font"). The widths below reproduce the
// long-published standard Adobe AFM numbers for Helvetica/Times/Courier;
// the retrieval pack's own embedded AFM-derived Go source
// (model/internal/fonts/std.go's type1CommonRunes table) turned out to be
// mis-encoded non-ASCII data unsafe to reproduce verbatim, so this table
// was authored directly from the well-known public metric values instead
// (documented as an approximation in the design notes — real embedded
// /Widths always take precedence over this fallback per §4.B.5).
var stdFontWidths = map[string][]float64{
	"Helvetica": {
		278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
		1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
		667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
		333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
		556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
	},
	"Times-Roman": {
		250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333, 250, 278,
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 278, 278, 564, 564, 564, 444,
		921, 722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889, 722, 722,
		556, 722, 667, 556, 611, 722, 722, 943, 722, 722, 611, 333, 278, 333, 469, 500,
		333, 444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778, 500, 500,
		500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444, 480, 200, 480, 541,
	},
	"Times-Bold": {
		250, 333, 555, 500, 500, 1000, 833, 278, 333, 333, 500, 570, 250, 333, 250, 278,
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333, 570, 570, 570, 500,
		930, 722, 667, 667, 722, 667, 611, 778, 778, 389, 500, 778, 667, 944, 722, 778,
		611, 778, 722, 556, 667, 722, 722, 1000, 722, 722, 667, 333, 278, 333, 581, 500,
		333, 500, 556, 444, 556, 444, 333, 500, 556, 278, 333, 556, 278, 833, 556, 500,
		556, 556, 444, 389, 333, 556, 500, 722, 500, 500, 444, 394, 220, 394, 520,
	},
}

var courierWidth = 600.0

// normalizeStdFontName maps a font name (recognizing Arial/Times New Roman
// aliases) to a standard-14 family. Italic/Oblique suffixes never select a
// table of their own: Times names containing Bold map to Times-Bold (so
// Times-BoldItalic gets Times-Bold metrics) and other Times names to
// Times-Roman; Helvetica names containing Bold map to Helvetica-Bold, which
// has no table, so stdFontWidth gives Helvetica-BoldOblique the Roman
// Helvetica metrics.
func normalizeStdFontName(name string) (family string, isCourier bool, isStdFont bool) {
	n := strings.ToLower(name)
	// Drop a subset-tag prefix like "ABCDEF+Helvetica".
	if i := strings.Index(n, "+"); i == 6 {
		n = n[i+1:]
	}
	switch {
	case strings.Contains(n, "courier") || strings.Contains(n, "mono"):
		return "Courier", true, true
	case strings.Contains(n, "times") || strings.Contains(n, "serif"):
		if strings.Contains(n, "bold") {
			return "Times-Bold", false, true
		}
		return "Times-Roman", false, true
	case strings.Contains(n, "helvetica") || strings.Contains(n, "arial"):
		if strings.Contains(n, "bold") {
			return "Helvetica-Bold", false, true
		}
		return "Helvetica", false, true
	case n == "symbol" || n == "zapfdingbats":
		return "Helvetica", false, true // approximate: no dedicated metrics table
	default:
		return "", false, false
	}
}

// stdFontWidth returns the standard-14 advance width for code (0-255) under
// baseFont, falling back to Helvetica metrics when baseFont names a
// standard font family this table doesn't carry widths for (§4.B.5's final
// "substitute core-font metrics for Helvetica" rule).
func stdFontWidth(baseFont string, code byte) (float64, bool) {
	family, isCourier, ok := normalizeStdFontName(baseFont)
	if !ok {
		return 0, false
	}
	if isCourier {
		if code < 32 || code > 126 {
			return courierWidth, true
		}
		return courierWidth, true
	}
	widths, ok := stdFontWidths[family]
	if !ok {
		widths = stdFontWidths["Helvetica"]
	}
	if code < 32 || int(code)-32 >= len(widths) {
		return 0, false
	}
	return widths[code-32], true
}
