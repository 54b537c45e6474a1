/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/errkit"
)

// ColorSpaceKind tags a ColorSpace variant (§3 "ColorSpace").
type ColorSpaceKind int

const (
	DeviceGray ColorSpaceKind = iota
	DeviceRGB
	DeviceCMYK
	DeviceN
	Pattern
	CalGray
	CalRGB
	Lab
	Separation
	ICCBased
)

// ColorSpace is a resolved color-space descriptor (§3, §4.D). Only the
// fields relevant to the variant in Kind are populated.
type ColorSpace struct {
	Kind ColorSpaceKind

	// CalGray/CalRGB/Lab attributes.
	WhitePoint, BlackPoint, Gamma, Matrix, Range []float64

	// Separation.
	Name      string
	Alternate *ColorSpace
	TintFn    Function

	// ICCBased.
	ICCBytes []byte
}

// BuildColorSpace resolves a color-space name against the page resource
// dictionary resources (§4.D). A bare device name resolves directly;
// anything else is looked up by name in resources and must be a name or an
// array whose first element tags the kind.
func BuildColorSpace(doc core.Document, name string, resources *core.Dictionary) (*ColorSpace, error) {
	if cs, ok := deviceColorSpace(name); ok {
		return cs, nil
	}
	var csResources *core.Dictionary
	if resources != nil {
		csResources, _ = core.GetDict(doc.Resolve(resources.Get("ColorSpace")))
	}
	if csResources == nil {
		return nil, errkit.Format("colorspace: %q not a device name and no /ColorSpace resource dictionary", name)
	}
	obj := doc.Resolve(csResources.Get(core.Name(name)))
	return buildColorSpaceObject(doc, name, obj, true)
}

func deviceColorSpace(name string) (*ColorSpace, bool) {
	switch name {
	case "DeviceGray", "CalGray", "G":
		return &ColorSpace{Kind: DeviceGray}, true
	case "DeviceRGB", "RGB":
		return &ColorSpace{Kind: DeviceRGB}, true
	case "DeviceCMYK", "CMYK":
		return &ColorSpace{Kind: DeviceCMYK}, true
	case "Pattern":
		return &ColorSpace{Kind: Pattern}, true
	default:
		return nil, false
	}
}

// buildColorSpaceObject builds a ColorSpace from an already-resolved
// resource-dictionary value. allowParametric gates Separation/DeviceN/
// Pattern, which §4.D only permits at the top level, not recursively from
// a Separation alternate.
func buildColorSpaceObject(doc core.Document, origName string, obj core.Object, allowParametric bool) (*ColorSpace, error) {
	if n, ok := obj.(core.Name); ok {
		if cs, ok := deviceColorSpace(string(n)); ok {
			return cs, nil
		}
		return nil, errkit.Format("colorspace: unknown bare name %q (resource %q)", n, origName)
	}
	arr, ok := core.GetArray(obj)
	if !ok || arr.Len() == 0 {
		return nil, errkit.Format("colorspace: resource %q is neither a name nor a non-empty array", origName)
	}
	kind, _ := core.GetNameVal(arr.Elements[0])
	switch kind {
	case "ICCBased":
		stream, _ := doc.Resolve(arr.Elements[1]).(*core.Stream)
		var bytes []byte
		if stream != nil {
			bytes = stream.Bytes
		}
		return &ColorSpace{Kind: ICCBased, ICCBytes: bytes}, nil
	case "CalGray":
		dict, _ := core.GetDict(doc.Resolve(arr.Elements[1]))
		return calSpace(doc, CalGray, dict), nil
	case "CalRGB":
		dict, _ := core.GetDict(doc.Resolve(arr.Elements[1]))
		return calSpace(doc, CalRGB, dict), nil
	case "Lab":
		dict, _ := core.GetDict(doc.Resolve(arr.Elements[1]))
		return calSpace(doc, Lab, dict), nil
	case "Separation":
		if !allowParametric {
			return nil, errkit.Format("colorspace: Separation not permitted as an alternate space (resource %q)", origName)
		}
		if arr.Len() < 3 {
			return nil, errkit.Format("colorspace: Separation array too short (resource %q)", origName)
		}
		name, _ := core.GetNameVal(arr.Elements[1])
		alt, err := buildColorSpaceObject(doc, origName, doc.Resolve(arr.Elements[2]), false)
		if err != nil {
			return nil, err
		}
		var tintFn Function
		if arr.Len() >= 4 {
			tintFn, _ = ParseFunction(doc, arr.Elements[3])
		}
		return &ColorSpace{Kind: Separation, Name: name, Alternate: alt, TintFn: tintFn}, nil
	case "DeviceN":
		if !allowParametric {
			return nil, errkit.Format("colorspace: DeviceN not permitted as an alternate space (resource %q)", origName)
		}
		return &ColorSpace{Kind: DeviceN}, nil
	case "Pattern":
		if !allowParametric {
			return nil, errkit.Format("colorspace: Pattern not permitted as an alternate space (resource %q)", origName)
		}
		return &ColorSpace{Kind: Pattern}, nil
	default:
		return nil, errkit.Format("colorspace: unknown array kind %q (resource %q, raw=%v)", kind, origName, arr)
	}
}

func calSpace(doc core.Document, kind ColorSpaceKind, dict *core.Dictionary) *ColorSpace {
	cs := &ColorSpace{Kind: kind}
	if dict == nil {
		return cs
	}
	cs.WhitePoint, _ = arrayFloats(doc.Resolve(dict.Get("WhitePoint")))
	cs.BlackPoint, _ = arrayFloats(doc.Resolve(dict.Get("BlackPoint")))
	cs.Gamma, _ = arrayFloats(doc.Resolve(dict.Get("Gamma")))
	cs.Matrix, _ = arrayFloats(doc.Resolve(dict.Get("Matrix")))
	cs.Range, _ = arrayFloats(doc.Resolve(dict.Get("Range")))
	return cs
}
