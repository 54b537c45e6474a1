/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "github.com/jrmuizel/pdf-extract/core"

// Resources is a page (or Form XObject) resource dictionary, narrowed to
// the four sub-dictionaries the content interpreter actually consults
// (§4.G): Font, ColorSpace, ExtGState, XObject.
type Resources struct {
	dict *core.Dictionary
}

// NewResources wraps a resolved /Resources dictionary. A nil dict yields a
// Resources that resolves every lookup to "not found" rather than panicking,
// matching §4.I's "fall back to an empty dictionary" rule.
func NewResources(dict *core.Dictionary) *Resources {
	return &Resources{dict: dict}
}

func (r *Resources) sub(doc core.Document, name core.Name) *core.Dictionary {
	if r == nil || r.dict == nil {
		return nil
	}
	d, _ := core.GetDict(doc.Resolve(r.dict.Get(name)))
	return d
}

// Font resolves a /Font resource by its page-local name, e.g. "F1".
func (r *Resources) Font(doc core.Document, name string) (core.Object, bool) {
	fonts := r.sub(doc, "Font")
	if fonts == nil {
		return nil, false
	}
	obj := doc.Resolve(fonts.Get(core.Name(name)))
	if obj == nil {
		return nil, false
	}
	return obj, true
}

// ColorSpaceDict returns the whole resource dictionary; BuildColorSpace
// looks up its /ColorSpace entry itself.
func (r *Resources) ColorSpaceDict() *core.Dictionary {
	if r == nil {
		return nil
	}
	return r.dict
}

// ExtGState resolves a /ExtGState resource by its page-local name.
func (r *Resources) ExtGState(doc core.Document, name string) (*core.Dictionary, bool) {
	states := r.sub(doc, "ExtGState")
	if states == nil {
		return nil, false
	}
	d, ok := core.GetDict(doc.Resolve(states.Get(core.Name(name))))
	return d, ok
}

// XObject resolves a /XObject resource by its page-local name.
func (r *Resources) XObject(doc core.Document, name string) (*core.Stream, bool) {
	xobjs := r.sub(doc, "XObject")
	if xobjs == nil {
		return nil, false
	}
	return core.GetStream(doc.Resolve(xobjs.Get(core.Name(name))))
}

// Dict exposes the underlying dictionary, e.g. for a Form XObject that
// inherits the caller's resources verbatim.
func (r *Resources) Dict() *core.Dictionary {
	if r == nil {
		return nil
	}
	return r.dict
}
