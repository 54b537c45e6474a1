/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/jrmuizel/pdf-extract/core"
	"github.com/stretchr/testify/require"
)

func simpleFontDict(encoding core.Object) *core.Dictionary {
	d := core.MakeDict()
	d.Set("Subtype", core.Name("Type1"))
	d.Set("BaseFont", core.Name("Arial"))
	if encoding != nil {
		d.Set("Encoding", encoding)
	}
	return d
}

func TestBuildSimpleFontExplicitWidths(t *testing.T) {
	d := simpleFontDict(core.Name("WinAnsiEncoding"))
	d.Set("FirstChar", core.Integer(65))
	d.Set("LastChar", core.Integer(67))
	d.Set("Widths", core.MakeArray(core.Integer(700), core.Integer(710), core.Integer(720)))
	d.Set("MissingWidth", core.Integer(250))

	b := &Builder{Doc: fakeDoc{}}
	font, err := b.Build(d)
	require.NoError(t, err)

	require.Equal(t, 700.0, font.Width('A'))
	require.Equal(t, 710.0, font.Width('B'))
	require.Equal(t, 720.0, font.Width('C'))
	require.Equal(t, 250.0, font.Width('Z')) // outside FirstChar/LastChar: MissingWidth
}

func TestBuildSimpleFontFallsBackToHelveticaMetrics(t *testing.T) {
	d := simpleFontDict(core.Name("WinAnsiEncoding"))
	d.Set("BaseFont", core.Name("SomeRandomEmbeddedFontName"))

	b := &Builder{Doc: fakeDoc{}}
	font, err := b.Build(d)
	require.NoError(t, err)

	want, ok := stdFontWidth("Helvetica", 'A')
	require.True(t, ok)
	require.Equal(t, want, font.Width('A'))
}

func TestBuildSimpleFontStandard14UsesOwnMetrics(t *testing.T) {
	d := simpleFontDict(core.Name("WinAnsiEncoding"))
	d.Set("BaseFont", core.Name("Times-Bold"))

	b := &Builder{Doc: fakeDoc{}}
	font, err := b.Build(d)
	require.NoError(t, err)

	want, ok := stdFontWidth("Times-Bold", 'A')
	require.True(t, ok)
	require.Equal(t, want, font.Width('A'))
}

func TestBuildSimpleFontDifferencesOverridesBaseEncoding(t *testing.T) {
	encDict := core.MakeDict()
	encDict.Set("BaseEncoding", core.Name("WinAnsiEncoding"))
	encDict.Set("Differences", core.MakeArray(core.Integer(65), core.Name("bullet")))

	d := simpleFontDict(encDict)

	b := &Builder{Doc: fakeDoc{}}
	font, err := b.Build(d)
	require.NoError(t, err)

	// Code 65 is remapped from 'A' to bullet (U+2022) by the Differences
	// entry; DecodeChar should reflect the override, not plain WinAnsi 'A'.
	require.Equal(t, "•", font.DecodeChar(65))
}

func TestSimpleFontNextCharIsAlwaysOneByte(t *testing.T) {
	f := &simpleFont{widths: map[uint32]float64{}, missingWidth: 0}

	code, n, ok := f.NextChar([]byte("AB"), 0)
	require.True(t, ok)
	require.Equal(t, uint32('A'), code)
	require.Equal(t, 1, n)

	_, _, ok = f.NextChar([]byte("AB"), 2)
	require.False(t, ok)
}

func TestSimpleFontIsSimpleSpace(t *testing.T) {
	f := &simpleFont{}
	require.True(t, f.IsSimpleSpace(0x20, 1))
	require.False(t, f.IsSimpleSpace(0x20, 2)) // multi-byte code never counts, even if it equals 0x20
	require.False(t, f.IsSimpleSpace('A', 1))
}

func identityCIDFontDict() *core.Dictionary {
	descFont := core.MakeDict()
	descFont.Set("DW", core.Integer(1000))
	descFont.Set("W", core.MakeArray(
		core.Integer(3), core.MakeArray(core.Integer(250), core.Integer(500)),
		core.Integer(10), core.Integer(12), core.Integer(600),
	))

	d := core.MakeDict()
	d.Set("Subtype", core.Name("Type0"))
	d.Set("BaseFont", core.Name("Identity-Font"))
	d.Set("Encoding", core.Name("Identity-H"))
	d.Set("DescendantFonts", core.MakeArray(descFont))
	return d
}

func TestBuildCIDFontIdentityEncodingWidths(t *testing.T) {
	b := &Builder{Doc: fakeDoc{}}
	font, err := b.Build(identityCIDFontDict())
	require.NoError(t, err)

	require.Equal(t, 250.0, font.Width(3))
	require.Equal(t, 500.0, font.Width(4))
	require.Equal(t, 600.0, font.Width(11))
	require.Equal(t, 1000.0, font.Width(999)) // falls back to /DW
}

func TestBuildCIDFontNextCharConsumesTwoBytes(t *testing.T) {
	b := &Builder{Doc: fakeDoc{}}
	font, err := b.Build(identityCIDFontDict())
	require.NoError(t, err)

	code, n, ok := font.NextChar([]byte{0x00, 0x03, 0x00, 0x0A}, 0)
	require.True(t, ok)
	require.Equal(t, uint32(3), code)
	require.Equal(t, 2, n)
}

func TestCIDFontNextCharStopsOnNoCodespaceMatch(t *testing.T) {
	// A narrow codespace that only recognizes 0x00xx, mirroring a CMap
	// whose declared ranges don't cover every possible byte pair.
	f := &cidFont{
		codespace: []core.CodeRange{{Width: 2, Low: 0x0000, High: 0x00FF}},
		widths:    map[uint32]float64{},
		defaultW:  1000,
	}

	code, n, ok := f.NextChar([]byte{0xFF, 0xFF}, 0)
	require.False(t, ok)
	require.Equal(t, uint32(0), code)
	require.Equal(t, 0, n)
}

func TestCIDFontIsSimpleSpaceIsAlwaysFalse(t *testing.T) {
	f := &cidFont{}
	require.False(t, f.IsSimpleSpace(0x20, 2))
}
