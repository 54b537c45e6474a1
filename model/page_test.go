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

func TestResolvePageInheritsMediaBoxAndResourcesFromParent(t *testing.T) {
	resources := core.MakeDict()
	resources.Set("Font", core.MakeDict())

	parent := core.MakeDict()
	parent.Set("MediaBox", floatArray([]float64{0, 0, 612, 792}))
	parent.Set("Resources", resources)

	page := core.MakeDict()
	page.Set("Parent", parent)

	p, err := ResolvePage(fakeDoc{}, page, 1)
	require.NoError(t, err)
	require.Equal(t, Rectangle{LLX: 0, LLY: 0, URX: 612, URY: 792}, p.MediaBox)
	require.NotNil(t, p.Resources)
	require.Nil(t, p.ArtBox) // ArtBox is not inheritable and wasn't set anywhere
}

func TestResolvePagePrefersOwnMediaBoxOverParent(t *testing.T) {
	parent := core.MakeDict()
	parent.Set("MediaBox", floatArray([]float64{0, 0, 612, 792}))

	page := core.MakeDict()
	page.Set("Parent", parent)
	page.Set("MediaBox", floatArray([]float64{0, 0, 200, 300}))
	page.Set("ArtBox", floatArray([]float64{10, 10, 190, 290}))

	p, err := ResolvePage(fakeDoc{}, page, 1)
	require.NoError(t, err)
	require.Equal(t, Rectangle{LLX: 0, LLY: 0, URX: 200, URY: 300}, p.MediaBox)
	require.NotNil(t, p.ArtBox)
	require.Equal(t, Rectangle{LLX: 10, LLY: 10, URX: 190, URY: 290}, *p.ArtBox)
}

func TestResolvePageMissingMediaBoxIsAnError(t *testing.T) {
	page := core.MakeDict()
	_, err := ResolvePage(fakeDoc{}, page, 1)
	require.Error(t, err)
}

func TestResolvePageRejectsNonDictionaryPageObject(t *testing.T) {
	_, err := ResolvePage(fakeDoc{}, core.Integer(1), 1)
	require.Error(t, err)
}

func TestResolvePageParentCycleDoesNotInfiniteLoop(t *testing.T) {
	a := core.MakeDict()
	b := core.MakeDict()
	a.Set("Parent", b)
	b.Set("Parent", a) // cyclic /Parent chain: must not hang

	_, err := ResolvePage(fakeDoc{}, a, 1)
	require.Error(t, err) // neither dict ever declares /MediaBox
}

func TestRectangleWidthAndHeight(t *testing.T) {
	r := Rectangle{LLX: 10, LLY: 20, URX: 110, URY: 170}
	require.Equal(t, 100.0, r.Width())
	require.Equal(t, 150.0, r.Height())
}
