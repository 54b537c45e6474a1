/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package model builds the typed PDF objects the content interpreter
// consults: functions, color spaces, fonts and page/resource inheritance.
// It operates entirely on core.Object values handed back by the document
// collaborator; it never touches raw bytes or cross-reference tables.
package model

import (
	"math"

	"github.com/jrmuizel/pdf-extract/common"
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/errkit"
)

// Function is a PDF function object (§4.C). Only Type0 and Type2 are
// evaluated; Type3/Type4 parse far enough to be recognized and are
// accepted by Evaluate as a no-op, since the core only consults functions
// for Separation tint transforms it never needs RGB output for.
type Function interface {
	Evaluate(input []float64) ([]float64, error)
}

// ParseFunction dispatches on /FunctionType (§4.C).
func ParseFunction(doc core.Document, obj core.Object) (Function, error) {
	obj = doc.Resolve(obj)
	dict, ok := core.GetDict(obj)
	if !ok {
		return nil, errkit.Format("function: expected a dictionary or stream, got %T", obj)
	}
	ftype, ok := core.GetIntVal(doc.Resolve(dict.Get("FunctionType")))
	if !ok {
		return nil, errkit.Format("function: missing or invalid /FunctionType")
	}
	switch ftype {
	case 0:
		stream, ok := obj.(*core.Stream)
		if !ok {
			return nil, errkit.Format("function: Type 0 requires a stream")
		}
		return newSampledFunction(doc, stream)
	case 2:
		return newExponentialFunction(doc, dict)
	case 3, 4:
		return noopFunction{}, nil
	default:
		return nil, errkit.Format("function: unsupported FunctionType %d", ftype)
	}
}

// arrayFloats resolves obj as an array and converts its elements to
// float64, bridging GetArray's bool-ok return with GetNumbersAsFloat's
// error return for the many optional numeric-array dictionary entries
// function parsing consults.
func arrayFloats(obj core.Object) ([]float64, error) {
	arr, ok := core.GetArray(obj)
	if !ok {
		return nil, errkit.Format("expected an array, got %T", obj)
	}
	return core.GetNumbersAsFloat(arr.Elements)
}

// interpolate implements the PDF spec's linear interpolation primitive
// (§4.C): y0 + (x-x0)*(y1-y0)/(x1-x0), returning y0 rather than propagating
// a NaN when x0 == x1.
func interpolate(x, x0, x1, y0, y1 float64) float64 {
	if math.Abs(x1-x0) < 1e-9 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// noopFunction stands in for Type 3 (stitching) and Type 4 (PostScript
// calculator) functions: recognized at parse time, never evaluated, since
// the core's only consumer (Separation tint transforms) feeds color
// spaces the text extractor does not render.
type noopFunction struct{}

func (noopFunction) Evaluate(input []float64) ([]float64, error) {
	common.Log.Trace("function: Type 3/4 function evaluation is a no-op in this build")
	return input, nil
}

// exponentialFunction is a Type 2 function (§4.C): f(x) = C0 + x^N*(C1-C0).
type exponentialFunction struct {
	C0, C1 []float64
	N      float64
}

func newExponentialFunction(doc core.Document, dict *core.Dictionary) (*exponentialFunction, error) {
	c0, err := arrayFloats(doc.Resolve(dict.Get("C0")))
	if err != nil {
		c0 = []float64{0}
	}
	c1, err := arrayFloats(doc.Resolve(dict.Get("C1")))
	if err != nil {
		c1 = []float64{1}
	}
	n, ok := core.GetNumberAsFloat(doc.Resolve(dict.Get("N")))
	if !ok {
		return nil, errkit.Format("function: Type 2 missing /N")
	}
	return &exponentialFunction{C0: c0, C1: c1, N: n}, nil
}

func (f *exponentialFunction) Evaluate(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, errkit.Format("function: Type 2 requires one input")
	}
	x := input[0]
	xn := math.Pow(x, f.N)
	n := len(f.C0)
	if len(f.C1) < n {
		n = len(f.C1)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = f.C0[i] + xn*(f.C1[i]-f.C0[i])
	}
	return out, nil
}

// sampledFunction is a Type 0 function (§4.C): a multidimensional lookup
// table of quantized samples, linearly interpolated.
type sampledFunction struct {
	Domain, Range   []float64
	Size            []int
	BitsPerSample   int
	Encode, Decode  []float64
	Samples         []byte
	nOutputs        int
}

func newSampledFunction(doc core.Document, stream *core.Stream) (*sampledFunction, error) {
	dict := stream.Dictionary
	domain, err := arrayFloats(doc.Resolve(dict.Get("Domain")))
	if err != nil {
		return nil, errkit.Format("function: Type 0 missing /Domain: %v", err)
	}
	rang, err := arrayFloats(doc.Resolve(dict.Get("Range")))
	if err != nil {
		return nil, errkit.Format("function: Type 0 missing /Range: %v", err)
	}
	sizeArr, ok := core.GetArray(doc.Resolve(dict.Get("Size")))
	if !ok {
		return nil, errkit.Format("function: Type 0 missing /Size")
	}
	size := make([]int, sizeArr.Len())
	for i := range size {
		v, ok := core.GetIntVal(sizeArr.Elements[i])
		if !ok {
			return nil, errkit.Format("function: Type 0 invalid /Size entry")
		}
		size[i] = int(v)
	}
	bps, ok := core.GetIntVal(doc.Resolve(dict.Get("BitsPerSample")))
	if !ok {
		return nil, errkit.Format("function: Type 0 missing /BitsPerSample")
	}

	nInputs := len(domain) / 2
	encode := make([]float64, 0, nInputs*2)
	if enc, err := arrayFloats(doc.Resolve(dict.Get("Encode"))); err == nil && len(enc) == nInputs*2 {
		encode = enc
	} else {
		for i := 0; i < nInputs; i++ {
			encode = append(encode, 0, float64(size[i]-1))
		}
	}
	decode := rang
	if dec, err := arrayFloats(doc.Resolve(dict.Get("Decode"))); err == nil && len(dec) == len(rang) {
		decode = dec
	}

	return &sampledFunction{
		Domain: domain, Range: rang, Size: size, BitsPerSample: int(bps),
		Encode: encode, Decode: decode, Samples: stream.Bytes,
		nOutputs: len(rang) / 2,
	}, nil
}

// Evaluate performs nearest-neighbor sampling: it encodes each input into
// sample-grid coordinates and reads the closest sample. A full
// multilinear interpolation across the sample grid is not implemented, as
// no core consumer evaluates a Type 0 function for anything beyond
// Separation tint transforms, where the core never reads the RGB result.
func (f *sampledFunction) Evaluate(input []float64) ([]float64, error) {
	nInputs := len(f.Domain) / 2
	if len(input) < nInputs {
		return nil, errkit.Format("function: Type 0 expected %d inputs, got %d", nInputs, len(input))
	}
	idx := make([]int, nInputs)
	for i := 0; i < nInputs; i++ {
		x := clamp(input[i], f.Domain[2*i], f.Domain[2*i+1])
		e := interpolate(x, f.Domain[2*i], f.Domain[2*i+1], f.Encode[2*i], f.Encode[2*i+1])
		e = clamp(e, 0, float64(f.Size[i]-1))
		idx[i] = int(math.Round(e))
	}
	sampleIdx := 0
	stride := 1
	for i := 0; i < nInputs; i++ {
		sampleIdx += idx[i] * stride
		stride *= f.Size[i]
	}
	out := make([]float64, f.nOutputs)
	maxVal := float64(uint64(1)<<uint(f.BitsPerSample) - 1)
	for j := 0; j < f.nOutputs; j++ {
		bitOffset := (sampleIdx*f.nOutputs + j) * f.BitsPerSample
		raw := readBits(f.Samples, bitOffset, f.BitsPerSample)
		out[j] = interpolate(float64(raw), 0, maxVal, f.Decode[2*j], f.Decode[2*j+1])
	}
	return out, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func readBits(data []byte, bitOffset, nBits int) uint64 {
	var v uint64
	for i := 0; i < nBits; i++ {
		byteIdx := (bitOffset + i) / 8
		bitIdx := 7 - (bitOffset+i)%8
		if byteIdx >= len(data) {
			break
		}
		bit := (data[byteIdx] >> uint(bitIdx)) & 1
		v = v<<1 | uint64(bit)
	}
	return v
}
