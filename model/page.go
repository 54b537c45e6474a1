/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/errkit"
)

// Rectangle is a PDF rectangle (llx, lly, urx, ury), used for both MediaBox
// and ArtBox (§3 "MediaBox").
type Rectangle struct {
	LLX, LLY, URX, URY float64
}

// Width and Height are the rectangle's extents; §3 requires both be >= 0.
func (r Rectangle) Width() float64  { return r.URX - r.LLX }
func (r Rectangle) Height() float64 { return r.URY - r.LLY }

func rectangleFromArray(arr *core.Array) (Rectangle, bool) {
	if arr == nil || arr.Len() != 4 {
		return Rectangle{}, false
	}
	vals, err := arr.ToFloat64Array()
	if err != nil {
		return Rectangle{}, false
	}
	return Rectangle{LLX: vals[0], LLY: vals[1], URX: vals[2], URY: vals[3]}, true
}

// Page is one entry in the document's page tree, with inherited attributes
// already resolved (§4.I).
type Page struct {
	Number    int
	Dict      *core.Dictionary
	Resources *Resources
	MediaBox  Rectangle
	ArtBox    *Rectangle
}

// ResolvePage walks the page tree's /Parent chain to resolve inherited
// /Resources and /MediaBox (§4.I, steps 1-3). ArtBox is read from the page
// dictionary itself only — it is not an inheritable attribute.
func ResolvePage(doc core.Document, pageObj core.Object, pageNumber int) (*Page, error) {
	dict, ok := core.GetDict(doc.Resolve(pageObj))
	if !ok {
		return nil, errkit.Format("page %d: page object is not a dictionary", pageNumber)
	}

	resDict := inheritedDict(doc, dict, "Resources")
	mediaBoxArr := inheritedArray(doc, dict, "MediaBox")
	mediaBox, ok := rectangleFromArray(mediaBoxArr)
	if !ok {
		return nil, errkit.Format("page %d: missing or malformed /MediaBox", pageNumber)
	}

	var artBox *Rectangle
	if arr, ok := core.GetArray(doc.Resolve(dict.Get("ArtBox"))); ok {
		if rect, ok := rectangleFromArray(arr); ok {
			artBox = &rect
		}
	}

	return &Page{
		Number:    pageNumber,
		Dict:      dict,
		Resources: NewResources(resDict),
		MediaBox:  mediaBox,
		ArtBox:    artBox,
	}, nil
}

// inheritedDict walks /Parent references looking for the first ancestor
// (including the page itself) that declares key as a dictionary.
func inheritedDict(doc core.Document, dict *core.Dictionary, key core.Name) *core.Dictionary {
	seen := map[*core.Dictionary]bool{}
	for d := dict; d != nil && !seen[d]; d = parentOf(doc, d) {
		seen[d] = true
		if v, ok := core.GetDict(doc.Resolve(d.Get(key))); ok {
			return v
		}
	}
	return nil
}

// inheritedArray is inheritedDict's counterpart for array-valued attributes
// like /MediaBox.
func inheritedArray(doc core.Document, dict *core.Dictionary, key core.Name) *core.Array {
	seen := map[*core.Dictionary]bool{}
	for d := dict; d != nil && !seen[d]; d = parentOf(doc, d) {
		seen[d] = true
		if v, ok := core.GetArray(doc.Resolve(d.Get(key))); ok {
			return v
		}
	}
	return nil
}

func parentOf(doc core.Document, dict *core.Dictionary) *core.Dictionary {
	parent := dict.Get("Parent")
	if parent == nil {
		return nil
	}
	d, _ := core.GetDict(doc.Resolve(parent))
	return d
}
