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

// cidFont is a Type0 composite font record (§3 "Font record", *CID* variant).
type cidFont struct {
	codespace  []core.CodeRange
	cidRanges  []core.CIDRange
	widths     map[uint32]float64
	defaultW   float64
	unicodeMap textencoding.ToUnicodeMap
	baseFont   string
}

func (f *cidFont) cidFor(code uint32) uint32 {
	for _, r := range f.cidRanges {
		if code >= r.SrcLo && code <= r.SrcHi {
			return r.DstLo + (code - r.SrcLo)
		}
	}
	return code
}

func (f *cidFont) Width(code uint32) float64 {
	cid := f.cidFor(code)
	if w, ok := f.widths[cid]; ok {
		return w
	}
	return f.defaultW
}

// NextChar implements §4.B's codespace-range scan: try byte lengths 1..4,
// accumulating big-endian, and accept the first that falls within a
// declared codespace range of that width. Identity-H/V fonts declare a
// single 2-byte range covering the whole space.
func (f *cidFont) NextChar(data []byte, pos int) (uint32, int, bool) {
	if pos >= len(data) {
		return 0, 0, false
	}
	var code uint32
	for width := 1; width <= 4 && pos+width <= len(data); width++ {
		code = code<<8 | uint32(data[pos+width-1])
		for _, cr := range f.codespace {
			if cr.Width == width && code >= cr.Low && code <= cr.High {
				return code, width, true
			}
		}
	}
	// No declared codespace range matched any width: stop rather than
	// guess, matching the original's None-on-no-match behavior.
	return 0, 0, false
}

func (f *cidFont) IsSimpleSpace(code uint32, byteLen int) bool {
	return false // word_spacing never applies to multi-byte codes (§4.G).
}

func (f *cidFont) DecodeChar(code uint32) string {
	if f.unicodeMap != nil {
		if s, ok := f.unicodeMap[textencoding.CharCode(code)]; ok {
			return s
		}
	}
	common.Log.Trace("font: CID font %q has no ToUnicode entry for code %d", f.baseFont, code)
	return ""
}

// buildCIDFont implements §4.B's CID (Type0) font construction algorithm.
func (b *Builder) buildCIDFont(fontDict *core.Dictionary) (Font, error) {
	baseFont, _ := core.GetNameVal(b.Doc.Resolve(fontDict.Get("BaseFont")))

	descFonts, ok := core.GetArray(b.Doc.Resolve(fontDict.Get("DescendantFonts")))
	if !ok || descFonts.Len() == 0 {
		return nil, errkit.Format("font: Type0 font %q has no /DescendantFonts", baseFont)
	}
	cidDict, ok := core.GetDict(b.Doc.Resolve(descFonts.Elements[0]))
	if !ok {
		return nil, errkit.Format("font: Type0 font %q's DescendantFonts[0] is not a dictionary", baseFont)
	}

	codespace, cidRanges, err := b.buildCIDByteMapping(fontDict)
	if err != nil {
		return nil, err
	}

	unicodeMap, err := b.parseToUnicode(fontDict)
	if err != nil {
		return nil, err
	}

	widths, defaultW := buildCIDWidths(b.Doc, cidDict)

	return &cidFont{
		codespace:  codespace,
		cidRanges:  cidRanges,
		widths:     widths,
		defaultW:   defaultW,
		unicodeMap: unicodeMap,
		baseFont:   baseFont,
	}, nil
}

// buildCIDByteMapping implements §4.B construction step 2: Identity-H/V
// synthesize a single 2-byte codespace with a 1:1 CID mapping; any other
// named stream is handed to the CMap parser.
func (b *Builder) buildCIDByteMapping(fontDict *core.Dictionary) ([]core.CodeRange, []core.CIDRange, error) {
	encObj := b.Doc.Resolve(fontDict.Get("Encoding"))

	if name, ok := core.GetNameVal(encObj); ok {
		if name == "Identity-H" || name == "Identity-V" {
			return identityByteMapping()
		}
	}
	stream, ok := core.GetStream(encObj)
	if !ok {
		common.Log.Debug("font: Type0 /Encoding is neither Identity-H/V nor an embedded CMap stream; assuming Identity")
		return identityByteMapping()
	}
	mapping, err := b.CMapParser.GetByteMapping(stream.Bytes)
	if err != nil {
		return nil, nil, errkit.Wrap(errkit.KindFormat, "font: CID /Encoding CMap parse failed", err)
	}
	return mapping.Codespace, mapping.CID, nil
}

func identityByteMapping() ([]core.CodeRange, []core.CIDRange, error) {
	return []core.CodeRange{{Width: 2, Low: 0x0000, High: 0xFFFF}},
		[]core.CIDRange{{SrcLo: 0x0000, SrcHi: 0xFFFF, DstLo: 0x0000}},
		nil
}

// buildCIDWidths implements §4.B's /DW + /W parsing. /W entries come in two
// forms: `c [w0 w1 ...]` (widths for consecutive CIDs starting at c) and
// `c_first c_last w` (one width applied to the inclusive CID range).
func buildCIDWidths(doc core.Document, cidDict *core.Dictionary) (map[uint32]float64, float64) {
	defaultW := 1000.0
	if dw, ok := core.GetNumberAsFloat(doc.Resolve(cidDict.Get("DW"))); ok {
		defaultW = dw
	}

	widths := make(map[uint32]float64)
	wArr, ok := core.GetArray(doc.Resolve(cidDict.Get("W")))
	if !ok {
		return widths, defaultW
	}

	elems := wArr.Elements
	for i := 0; i < len(elems); {
		first, ok := core.GetIntVal(doc.Resolve(elems[i]))
		if !ok {
			i++
			continue
		}
		if i+1 >= len(elems) {
			break
		}
		if sub, ok := core.GetArray(doc.Resolve(elems[i+1])); ok {
			for j, elem := range sub.Elements {
				if w, ok := core.GetNumberAsFloat(elem); ok {
					widths[uint32(first)+uint32(j)] = w
				}
			}
			i += 2
			continue
		}
		if i+2 >= len(elems) {
			break
		}
		last, lok := core.GetIntVal(doc.Resolve(elems[i+1]))
		w, wok := core.GetNumberAsFloat(doc.Resolve(elems[i+2]))
		if lok && wok {
			for c := first; c <= last; c++ {
				widths[uint32(c)] = w
			}
		}
		i += 3
	}
	return widths, defaultW
}
