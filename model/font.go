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

// Font is the capability set §4.B calls the "Font trait": everything the
// content interpreter's show_text algorithm needs from a resolved font
// resource, regardless of whether it is Simple, Type3 or CID underneath.
type Font interface {
	// Width returns the unscaled (per-1000-em) advance width for code.
	Width(code uint32) float64

	// NextChar consumes one character code starting at data[pos] (§4.B
	// "next_char"). ok is false once data is exhausted; a CID font that
	// runs out of bytes mid-code also reports ok=false for that trailing
	// fragment.
	NextChar(data []byte, pos int) (code uint32, byteLen int, ok bool)

	// DecodeChar returns the Unicode string code decodes to (§4.B
	// "decode_char").
	DecodeChar(code uint32) string

	// IsSimpleSpace reports whether code is the single-byte space (0x20)
	// under a single-byte encoding, the condition §4.G's show_text uses to
	// decide whether word_spacing applies in addition to character_spacing.
	IsSimpleSpace(code uint32, byteLen int) bool
}

// Builder constructs Font values from font resource dictionaries, using
// the collaborators named in §6: a CMap parser for ToUnicode/CID byte
// mappings and a Type1 encoding parser for embedded FontFile programs.
type Builder struct {
	Doc          core.Document
	CMapParser   core.CMapParser
	Type1Parser  core.Type1EncodingParser
}

// Build resolves a /Font resource dictionary into a Font, dispatching on
// /Subtype (§4.B).
func (b *Builder) Build(fontDict *core.Dictionary) (Font, error) {
	subtype, _ := core.GetNameVal(b.Doc.Resolve(fontDict.Get("Subtype")))
	switch subtype {
	case "Type0":
		return b.buildCIDFont(fontDict)
	case "Type3":
		return b.buildSimpleFont(fontDict, true)
	default: // Type1, TrueType, MMType1 and anything else share the Simple path.
		return b.buildSimpleFont(fontDict, false)
	}
}

// parseToUnicode reads and parses a font's /ToUnicode stream, if present
// (§4.B "ToUnicode CMap ingestion"). A missing stream is not an error:
// callers fall back to the encoding table.
func (b *Builder) parseToUnicode(fontDict *core.Dictionary) (textencoding.ToUnicodeMap, error) {
	obj := b.Doc.Resolve(fontDict.Get("ToUnicode"))
	stream, ok := core.GetStream(obj)
	if !ok {
		return nil, nil
	}
	raw, err := b.CMapParser.GetUnicodeMap(stream.Bytes)
	if err != nil {
		return nil, errkit.Wrap(errkit.KindFormat, "font: ToUnicode CMap parse failed", err)
	}
	out := make(textencoding.ToUnicodeMap, len(raw))
	for code, value := range raw {
		if len(value)%2 != 0 {
			return nil, errkit.Format("font: ToUnicode entry for code %d has odd byte length %d", code, len(value))
		}
		s, err := textencoding.ToUTF8Lenient(value)
		if err != nil {
			common.Log.Debug("font: ToUnicode entry for code %d failed to decode: %v", code, err)
			continue
		}
		if s == "" {
			continue // surrogate-only value, skipped per §4.A/§4.B
		}
		out[textencoding.CharCode(code)] = s
	}
	return out, nil
}
