/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
	"github.com/stretchr/testify/require"
)

// recordingSink is a test double for the §4.H capability set: it records
// every call instead of rendering anything, so tests can assert on the
// exact sequence the interpreter drove.
type recordingSink struct {
	glyphs     []string
	words      int
	strokes    int
	fills      int
	beginCalls int
	endCalls   int
}

func (s *recordingSink) BeginPage(pageNum int, mediaBox model.Rectangle, artBox *model.Rectangle) {
	s.beginCalls++
}
func (s *recordingSink) EndPage() { s.endCalls++ }

func (s *recordingSink) BeginWord() { s.words++ }
func (s *recordingSink) EndWord()   {}
func (s *recordingSink) EndLine()   {}

func (s *recordingSink) OutputCharacter(trm transform.Matrix, w0, spacing, fontSize float64, glyph string) {
	s.glyphs = append(s.glyphs, glyph)
}

func (s *recordingSink) Stroke(path *Path, ctm transform.Matrix) { s.strokes++ }
func (s *recordingSink) Fill(path *Path, ctm transform.Matrix)   { s.fills++ }

// fakeDoc is a no-op core.Document: every test fixture in this file builds
// font/resource dictionaries directly, with no indirect references to
// resolve.
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

// simpleFontResources builds a one-font /Font resource dictionary backing
// a Helvetica-ish WinAnsi simple font named F1, with explicit widths for
// 'H' and 'i' so show_text's advance math is exact in assertions.
func simpleFontResources() *model.Resources {
	fontDict := core.MakeDict()
	fontDict.Set("Subtype", core.Name("Type1"))
	fontDict.Set("BaseFont", core.Name("Helvetica"))
	fontDict.Set("Encoding", core.Name("WinAnsiEncoding"))
	fontDict.Set("FirstChar", core.Integer('H'))
	fontDict.Set("LastChar", core.Integer('i'))
	widths := make([]core.Object, int('i')-int('H')+1)
	for i := range widths {
		widths[i] = core.Integer(500)
	}
	fontDict.Set("Widths", core.MakeArray(widths...))

	fonts := core.MakeDict()
	fonts.Set("F1", fontDict)
	resDict := core.MakeDict()
	resDict.Set("Font", fonts)
	return model.NewResources(resDict)
}

func newTestProcessor(sink Sink) *Processor {
	builder := &model.Builder{Doc: fakeDoc{}}
	return NewProcessor(fakeDoc{}, Tokenizer{}, builder, sink)
}

func TestProcessorRunsTextShowingContentStream(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)
	resources := simpleFontResources()

	content := []byte(`BT /F1 12 Tf 100 700 Td (Hi) Tj ET`)
	err := p.Run(content, resources)
	require.NoError(t, err)

	require.Equal(t, []string{"H", "i"}, sink.glyphs)
	require.Equal(t, 1, sink.words) // one BeginWord per show_text call, not per glyph
}

func TestProcessorTJArrayAdjustsPositionWithoutEmittingSpacing(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)
	resources := simpleFontResources()

	content := []byte(`BT /F1 12 Tf 0 0 Td [(Hi) -250 (Hi)] TJ ET`)
	err := p.Run(content, resources)
	require.NoError(t, err)

	// Both runs show through show_text; the numeric adjustment only moves
	// the text matrix, it never reaches Sink as a glyph of its own.
	require.Equal(t, []string{"H", "i", "H", "i"}, sink.glyphs)
	require.Equal(t, 2, sink.words)
}

func TestProcessorPathPaintingOperators(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)

	content := []byte(`q 1 0 0 1 10 10 cm 0 0 100 100 re f Q 0 0 50 50 re S`)
	err := p.Run(content, nil)
	require.NoError(t, err)

	require.Equal(t, 1, sink.fills)
	require.Equal(t, 1, sink.strokes)
}

func TestProcessorFormXObjectRecursionRespectsMaxDepth(t *testing.T) {
	formDict := core.MakeDict()
	formDict.Set("Subtype", core.Name("Form"))
	formStream := &core.Stream{Dictionary: formDict, Bytes: []byte(`/F2 Do`)}

	xobjs := core.MakeDict()
	xobjs.Set("F2", formStream)
	resDict := core.MakeDict()
	resDict.Set("XObject", xobjs)
	resources := model.NewResources(resDict)

	sink := &recordingSink{}
	p := newTestProcessor(sink)
	p.MaxFormDepth = 3

	err := p.Run([]byte(`/F2 Do`), resources)
	require.Error(t, err)
	require.Contains(t, err.Error(), "recursion")
}

func TestProcessorUnknownOperatorIsIgnoredNotFatal(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)

	err := p.Run([]byte(`1 2 3 totallyMadeUpOperator`), nil)
	require.NoError(t, err)
}

func TestProcessorTextShowingWithNoFontSetIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)

	err := p.Run([]byte(`BT (hello) Tj ET`), nil)
	require.NoError(t, err)
	require.Empty(t, sink.glyphs)
}

func TestProcessorInlineImageIsSkippedWithoutDesync(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)
	resources := simpleFontResources()

	content := []byte("BI /W 1 /H 1 /BPC 8 /CS /G ID " + string([]byte{0xFF}) + " EI BT /F1 12 Tf 0 0 Td (Hi) Tj ET")
	err := p.Run(content, resources)
	require.NoError(t, err)
	require.Equal(t, []string{"H", "i"}, sink.glyphs)
}

func TestProcessorGraphicsStateStackSaveRestore(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)

	err := p.Run([]byte(`2 w q 5 w Q 0 0 10 10 re S`), nil)
	require.NoError(t, err)
	require.Equal(t, 2.0, p.gs.LineWidth)
}

func TestTokenizerDecodeMatchesProcessorOperandCount(t *testing.T) {
	ops, err := Tokenizer{}.Decode([]byte(`1 0 0 1 5 5 cm`))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, "cm", ops[0].Operator)
	require.Len(t, ops[0].Operands, 6)
}

func TestProcessorRunToleratesMixedWhitespace(t *testing.T) {
	sink := &recordingSink{}
	p := newTestProcessor(sink)
	resources := simpleFontResources()

	content := []byte("BT\t/F1\n12\rTf\n0 0 Td (Hi)Tj\nET")
	err := p.Run(content, resources)
	require.NoError(t, err)
	require.Equal(t, []string{"H", "i"}, sink.glyphs)
}
