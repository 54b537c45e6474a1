/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"testing"

	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
	"github.com/stretchr/testify/require"
)

// fakeDoc is a no-op core.Document: these tests build font/resource
// dictionaries directly and never need indirect-reference resolution.
type fakeDoc struct{}

func (fakeDoc) Resolve(obj core.Object) core.Object {
	if obj == nil {
		return core.Null{}
	}
	return obj
}
func (fakeDoc) IsEncrypted() bool                                 { return false }
func (fakeDoc) Decrypt(password []byte) error                     { return nil }
func (fakeDoc) Pages() []core.Object                              { return nil }
func (fakeDoc) PageContent(streamRef core.Object) ([]byte, error) { return nil, nil }
func (fakeDoc) Info() core.Object                                 { return core.Null{} }

// fakeCMapParser returns a canned unicode map regardless of the CMap
// stream's bytes, letting scenario tests stand in for an embedded CMap
// program without round-tripping real CMap syntax.
type fakeCMapParser struct {
	unicode map[uint32][]byte
}

func (f fakeCMapParser) GetUnicodeMap(data []byte) (map[uint32][]byte, error) {
	return f.unicode, nil
}
func (f fakeCMapParser) GetByteMapping(data []byte) (core.ByteMapping, error) {
	return core.ByteMapping{}, nil
}

func utf16be(r rune) []byte {
	u := uint16(r)
	return []byte{byte(u >> 8), byte(u)}
}

func helveticaFontDict(encoding core.Object) *core.Dictionary {
	d := core.MakeDict()
	d.Set("Subtype", core.Name("Type1"))
	d.Set("BaseFont", core.Name("Helvetica"))
	if encoding != nil {
		d.Set("Encoding", encoding)
	}
	return d
}

func resourcesWithFont(name string, fontDict *core.Dictionary) *model.Resources {
	fonts := core.MakeDict()
	fonts.Set(core.Name(name), fontDict)
	resDict := core.MakeDict()
	resDict.Set("Font", fonts)
	return model.NewResources(resDict)
}

func runText(t *testing.T, e *Extractor, content string, resources *model.Resources) string {
	t.Helper()
	sink := newTextSink()
	sink.BeginPage(1, model.Rectangle{URX: 612, URY: 792}, nil)
	proc := e.newProcessor(fakeDoc{}, sink)
	err := proc.Run([]byte(content), resources)
	require.NoError(t, err)
	return sink.String()
}

func TestScenario1MinimalHelveticaPage(t *testing.T) {
	e := New(nil, nil, nil, nil)
	resources := resourcesWithFont("F1", helveticaFontDict(core.Name("WinAnsiEncoding")))

	out := runText(t, e, `BT /F1 12 Tf 100 700 Td (Test Content) Tj ET`, resources)

	require.Contains(t, out, "Test Content")
}

func TestScenario2TJSmallKerningGapStaysJoined(t *testing.T) {
	e := New(nil, nil, nil, nil)
	resources := resourcesWithFont("F1", helveticaFontDict(core.Name("WinAnsiEncoding")))

	out := runText(t, e, `BT /F1 10 Tf 0 0 Td [(Hel) 100 (lo)] TJ ET`, resources)

	require.Contains(t, out, "Hello")
}

func TestScenario3TJLargeNegativeKerningInsertsSpace(t *testing.T) {
	e := New(nil, nil, nil, nil)
	resources := resourcesWithFont("F1", helveticaFontDict(core.Name("WinAnsiEncoding")))

	out := runText(t, e, `BT /F1 10 Tf 0 0 Td [(Hel)-600(lo)] TJ ET`, resources)

	require.Contains(t, out, "Hel lo")
}

func TestScenario4VerticalJumpInsertsNewline(t *testing.T) {
	e := New(nil, nil, nil, nil)
	resources := resourcesWithFont("F1", helveticaFontDict(core.Name("WinAnsiEncoding")))

	out := runText(t, e,
		`BT /F1 12 Tf 1 0 0 1 100 700 Tm (A) Tj 1 0 0 1 100 600 Tm (B) Tj ET`,
		resources)

	require.Contains(t, out, "A\nB")
}

func TestScenario5ToUnicodeOverridesDifferences(t *testing.T) {
	encDict := core.MakeDict()
	encDict.Set("BaseEncoding", core.Name("WinAnsiEncoding"))
	encDict.Set("Differences", core.MakeArray(core.Integer(65), core.Name(".notdef")))

	fontDict := helveticaFontDict(encDict)
	toUnicode := &core.Stream{Dictionary: core.MakeDict(), Bytes: nil}
	fontDict.Set("ToUnicode", toUnicode)

	e := New(nil, nil, fakeCMapParser{unicode: map[uint32][]byte{65: utf16be('Ω')}}, nil)
	resources := resourcesWithFont("F1", fontDict)

	out := runText(t, e, "BT /F1 12 Tf 0 0 Td (\x41) Tj ET", resources)

	require.Equal(t, "\nΩ", out)
}

func cidFontDict() *core.Dictionary {
	descFont := core.MakeDict()
	descFont.Set("DW", core.Integer(1000))

	d := core.MakeDict()
	d.Set("Subtype", core.Name("Type0"))
	d.Set("BaseFont", core.Name("Identity-CID"))
	d.Set("Encoding", core.Name("Identity-H"))
	d.Set("DescendantFonts", core.MakeArray(descFont))

	toUnicode := &core.Stream{Dictionary: core.MakeDict(), Bytes: nil}
	d.Set("ToUnicode", toUnicode)
	return d
}

func TestScenario6CIDIdentityHTwoByteCodes(t *testing.T) {
	unicode := map[uint32][]byte{
		0x4E2D: utf16be('中'),
		0x6587: utf16be('文'),
	}
	cmapParser := fakeCMapParser{unicode: unicode}
	fontDict := cidFontDict()

	e := New(nil, nil, cmapParser, nil)
	resources := resourcesWithFont("F1", fontDict)

	var glyphCount int
	sink := newCountingTextSink(&glyphCount)
	sink.BeginPage(1, model.Rectangle{URX: 612, URY: 792}, nil)
	proc := e.newProcessor(fakeDoc{}, sink)
	err := proc.Run([]byte("BT /F1 12 Tf 0 0 Td <4E2D6587> Tj ET"), resources)
	require.NoError(t, err)

	require.Equal(t, "\n中文", sink.String())
	require.Equal(t, 2, glyphCount)
}

// countingTextSink wraps textSink to additionally count OutputCharacter
// calls, for scenario 6's "two output_character events" assertion.
type countingTextSink struct {
	*textSink
	count *int
}

func newCountingTextSink(count *int) *countingTextSink {
	return &countingTextSink{textSink: newTextSink(), count: count}
}

func (s *countingTextSink) OutputCharacter(trm transform.Matrix, w0, spacing, fontSize float64, glyph string) {
	*s.count++
	s.textSink.OutputCharacter(trm, w0, spacing, fontSize, glyph)
}

func TestEmptyContentStreamProducesNoGlyphEvents(t *testing.T) {
	e := New(nil, nil, nil, nil)
	out := runText(t, e, ``, nil)
	require.Empty(t, out)
}
