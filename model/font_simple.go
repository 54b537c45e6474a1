/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/jrmuizel/pdf-extract/common"
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/errkit"
	"github.com/jrmuizel/pdf-extract/internal/textencoding"
)

// simpleFont is a Simple (Type1/TrueType/MMType1) or Type3 font record
// (§3 "Font record", *Simple* variant).
type simpleFont struct {
	table        textencoding.EncodingTable
	unicodeMap   textencoding.ToUnicodeMap
	widths       map[uint32]float64
	missingWidth float64
	isType3      bool
	baseFont     string
}

func (f *simpleFont) Width(code uint32) float64 {
	if w, ok := f.widths[code]; ok {
		return w
	}
	return f.missingWidth
}

func (f *simpleFont) NextChar(data []byte, pos int) (uint32, int, bool) {
	if pos >= len(data) {
		return 0, 0, false
	}
	return uint32(data[pos]), 1, true
}

func (f *simpleFont) IsSimpleSpace(code uint32, byteLen int) bool {
	return byteLen == 1 && code == 32
}

// DecodeChar prefers the ToUnicode entry, then falls back to the encoding
// table (§4.B "decode_char"). A code with neither yields an empty string and
// no error for both variants; a Type3 font logs it at Debug, a Simple font
// at Trace.
func (f *simpleFont) DecodeChar(code uint32) string {
	if f.unicodeMap != nil {
		if s, ok := f.unicodeMap[textencoding.CharCode(code)]; ok {
			return s
		}
	}
	if code < 256 && f.table[code] != 0 {
		s, err := textencoding.ToUTF8(f.table, []byte{byte(code)})
		if err == nil {
			return s
		}
	}
	if f.isType3 {
		common.Log.Debug("font: Type3 font %q has no ToUnicode or encoding entry for code %d", f.baseFont, code)
		return ""
	}
	common.Log.Trace("font: %q falling back to empty string for undecodable code %d", f.baseFont, code)
	return ""
}

// buildSimpleFont implements §4.B's Simple-font (and, with isType3, Type3)
// construction algorithm.
func (b *Builder) buildSimpleFont(fontDict *core.Dictionary, isType3 bool) (Font, error) {
	baseFont, _ := core.GetNameVal(b.Doc.Resolve(fontDict.Get("BaseFont")))
	subtype, _ := core.GetNameVal(b.Doc.Resolve(fontDict.Get("Subtype")))

	unicodeMap, err := b.parseToUnicode(fontDict)
	if err != nil {
		return nil, err
	}
	if unicodeMap == nil {
		unicodeMap = make(textencoding.ToUnicodeMap)
	}

	table, err := b.buildSimpleEncodingTable(fontDict, subtype, baseFont, unicodeMap)
	if err != nil {
		return nil, err
	}

	widths, missingWidth, err := b.buildSimpleWidths(fontDict, baseFont, table, isType3)
	if err != nil {
		return nil, err
	}

	return &simpleFont{
		table:        table,
		unicodeMap:   unicodeMap,
		widths:       widths,
		missingWidth: missingWidth,
		isType3:      isType3,
		baseFont:     baseFont,
	}, nil
}

// buildSimpleEncodingTable implements §4.B.4.
func (b *Builder) buildSimpleEncodingTable(fontDict *core.Dictionary, subtype, baseFont string, unicodeMap textencoding.ToUnicodeMap) (textencoding.EncodingTable, error) {
	encObj := b.Doc.Resolve(fontDict.Get("Encoding"))

	switch enc := encObj.(type) {
	case nil, core.Null:
		return b.defaultEncodingTable(fontDict, subtype, baseFont)
	case core.Name:
		return textencoding.EncodingToUnicodeTable(string(enc))
	}

	dict, ok := core.GetDict(encObj)
	if !ok {
		return b.defaultEncodingTable(fontDict, subtype, baseFont)
	}
	var base textencoding.EncodingTable
	if baseName, ok := core.GetNameVal(b.Doc.Resolve(dict.Get("BaseEncoding"))); ok {
		t, err := textencoding.EncodingToUnicodeTable(baseName)
		if err != nil {
			return textencoding.EncodingTable{}, err
		}
		base = t
	} else {
		t, _ := textencoding.EncodingToUnicodeTable("PDFDocEncoding")
		base = t
	}

	diffArr, ok := core.GetArray(b.Doc.Resolve(dict.Get("Differences")))
	if !ok {
		return base, nil
	}
	entries := textencoding.ParseDifferences(differencesOperands(diffArr))
	return textencoding.ApplyDifferences(base, unicodeMap, entries, baseFont), nil
}

// defaultEncodingTable implements §4.B.4's no-/Encoding path: recover a
// Type1 internal encoding from an embedded FontFile when possible, a
// TrueType cmap hint from an embedded FontFile2 next, otherwise
// WinAnsi for TrueType or PDFDoc for anything else.
func (b *Builder) defaultEncodingTable(fontDict *core.Dictionary, subtype, baseFont string) (textencoding.EncodingTable, error) {
	descriptor, _ := core.GetDict(b.Doc.Resolve(fontDict.Get("FontDescriptor")))
	if descriptor == nil {
		if subtype == "TrueType" {
			return textencoding.EncodingToUnicodeTable("WinAnsiEncoding")
		}
		return textencoding.EncodingToUnicodeTable("PDFDocEncoding")
	}

	if subtype == "Type1" && b.Type1Parser != nil {
		if stream, ok := core.GetStream(b.Doc.Resolve(descriptor.Get("FontFile"))); ok {
			names, err := b.Type1Parser.GetEncodingMap(stream.Bytes)
			if err != nil {
				common.Log.Debug("font: Type1 internal encoding parse failed: %v", err)
			} else {
				base, _ := textencoding.EncodingToUnicodeTable("PDFDocEncoding")
				entries := make([]textencoding.DifferencesEntry, 0, len(names))
				for code, name := range names {
					entries = append(entries, textencoding.DifferencesEntry{
						Code: textencoding.CharCode(code), Name: textencoding.GlyphName(name),
					})
				}
				return textencoding.ApplyDifferences(base, nil, entries, baseFont), nil
			}
		}
		// FontFile3/Type1C: CFF charset/encoding recovery is out of scope
		// (no CFF parser collaborator is specified) — degrade silently.
		if stream, ok := core.GetStream(b.Doc.Resolve(descriptor.Get("FontFile3"))); ok {
			common.Log.Trace("font: %q has an embedded FontFile3 (%d bytes); CFF charset recovery not supported, falling back to PDFDocEncoding", baseFont, len(stream.Bytes))
		}
	}

	if subtype == "TrueType" {
		if stream, ok := core.GetStream(b.Doc.Resolve(descriptor.Get("FontFile2"))); ok {
			if table, ok := sfntEncodingHint(stream.Bytes, baseFont); ok {
				return table, nil
			}
		}
		return textencoding.EncodingToUnicodeTable("WinAnsiEncoding")
	}
	return textencoding.EncodingToUnicodeTable("PDFDocEncoding")
}

// buildSimpleWidths implements §4.B.5/.6.
func (b *Builder) buildSimpleWidths(fontDict *core.Dictionary, baseFont string, table textencoding.EncodingTable, isType3 bool) (map[uint32]float64, float64, error) {
	missingWidth := 0.0
	if mw, ok := core.GetNumberAsFloat(b.Doc.Resolve(fontDict.Get("MissingWidth"))); ok {
		missingWidth = mw
	}

	firstChar, hasFirst := core.GetIntVal(b.Doc.Resolve(fontDict.Get("FirstChar")))
	lastChar, hasLast := core.GetIntVal(b.Doc.Resolve(fontDict.Get("LastChar")))
	widthsArr, hasWidths := core.GetArray(b.Doc.Resolve(fontDict.Get("Widths")))

	if hasFirst && hasLast && hasWidths {
		expected := int(lastChar-firstChar) + 1
		if widthsArr.Len() != expected {
			common.Log.Debug("font: %q /Widths length %d does not match FirstChar/LastChar range %d (non-fatal)",
				baseFont, widthsArr.Len(), expected)
		}
		widths := make(map[uint32]float64, widthsArr.Len())
		for i, elem := range widthsArr.Elements {
			w, ok := core.GetNumberAsFloat(elem)
			if !ok {
				continue
			}
			widths[uint32(firstChar)+uint32(i)] = w
		}
		return widths, missingWidth, nil
	}

	if isType3 {
		return nil, 0, errkit.Format("font: Type3 font %q has no /Widths (mandatory)", baseFont)
	}

	if family, _, ok := normalizeStdFontName(baseFont); ok {
		_ = family
		widths := make(map[uint32]float64)
		for code := 32; code <= 126; code++ {
			if w, ok := stdFontWidth(baseFont, byte(code)); ok {
				widths[uint32(code)] = w
			}
		}
		return widths, missingWidth, nil
	}

	common.Log.Debug("font: %q has no /Widths and is not a standard-14 name; substituting Helvetica metrics", baseFont)
	widths := make(map[uint32]float64)
	for code := 32; code <= 126; code++ {
		if w, ok := stdFontWidth("Helvetica", byte(code)); ok {
			widths[uint32(code)] = w
		}
	}
	return widths, missingWidth, nil
}

// differencesOperands converts a /Differences array's elements to the
// generic integer/name sequence textencoding.ParseDifferences expects.
func differencesOperands(arr *core.Array) []interface{} {
	out := make([]interface{}, 0, arr.Len())
	for _, e := range arr.Elements {
		if v, ok := core.GetIntVal(e); ok {
			out = append(out, v)
			continue
		}
		if v, ok := core.GetNameVal(e); ok {
			out = append(out, v)
			continue
		}
	}
	return out
}
