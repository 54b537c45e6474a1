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

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name               string
		x, x0, x1, y0, y1  float64
		want               float64
	}{
		{"midpoint", 0.5, 0, 1, 0, 10, 5},
		{"at x0", 0, 0, 1, 2, 8, 2},
		{"at x1", 1, 0, 1, 2, 8, 8},
		{"degenerate domain returns y0, not NaN", 3, 5, 5, 7, 99, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpolate(tt.x, tt.x0, tt.x1, tt.y0, tt.y1)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func exponentialDict(c0, c1 []float64, n float64) *core.Dictionary {
	d := core.MakeDict()
	d.Set("C0", floatArray(c0))
	d.Set("C1", floatArray(c1))
	d.Set("N", core.Real(n))
	return d
}

func floatArray(vals []float64) *core.Array {
	elems := make([]core.Object, len(vals))
	for i, v := range vals {
		elems[i] = core.Real(v)
	}
	return core.MakeArray(elems...)
}

func TestParseFunctionExponential(t *testing.T) {
	tests := []struct {
		name   string
		c0, c1 []float64
		n      float64
		x      float64
		want   []float64
	}{
		{"linear ramp", []float64{0}, []float64{1}, 1, 0.25, []float64{0.25}},
		{"quadratic at midpoint", []float64{0}, []float64{1}, 2, 0.5, []float64{0.25}},
		{"multi-component RGB-like", []float64{0, 0, 0}, []float64{1, 0.5, 0}, 1, 1, []float64{1, 0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := exponentialDict(tt.c0, tt.c1, tt.n)
			dict.Set("FunctionType", core.Integer(2))
			fn, err := ParseFunction(fakeDoc{}, dict)
			require.NoError(t, err)

			out, err := fn.Evaluate([]float64{tt.x})
			require.NoError(t, err)
			require.Len(t, out, len(tt.want))
			for i := range tt.want {
				require.InDelta(t, tt.want[i], out[i], 1e-9)
			}
		})
	}
}

func TestParseFunctionExponentialMissingDomainDefaultsC0C1(t *testing.T) {
	dict := core.MakeDict()
	dict.Set("FunctionType", core.Integer(2))
	dict.Set("N", core.Real(1))

	fn, err := ParseFunction(fakeDoc{}, dict)
	require.NoError(t, err)

	out, err := fn.Evaluate([]float64{0.5})
	require.NoError(t, err)
	require.InDelta(t, 0.5, out[0], 1e-9)
}

func TestParseFunctionStitchingAndPostScriptAreNoops(t *testing.T) {
	for _, ftype := range []int64{3, 4} {
		dict := core.MakeDict()
		dict.Set("FunctionType", core.Integer(ftype))

		fn, err := ParseFunction(fakeDoc{}, dict)
		require.NoError(t, err)

		out, err := fn.Evaluate([]float64{0.7, 0.1})
		require.NoError(t, err)
		require.Equal(t, []float64{0.7, 0.1}, out)
	}
}

func TestParseFunctionRejectsUnsupportedType(t *testing.T) {
	dict := core.MakeDict()
	dict.Set("FunctionType", core.Integer(1))

	_, err := ParseFunction(fakeDoc{}, dict)
	require.Error(t, err)
}

// sampledStream builds a Type 0 function stream with a single 1-D input,
// single output, 8 bits per sample, identity Encode/Decode over a 4-entry
// table: samples 0,85,170,255 map evenly across Range [0,1].
func sampledStream(samples []byte) *core.Stream {
	dict := core.MakeDict()
	dict.Set("FunctionType", core.Integer(0))
	dict.Set("Domain", floatArray([]float64{0, 1}))
	dict.Set("Range", floatArray([]float64{0, 1}))
	dict.Set("Size", core.MakeArray(core.Integer(len(samples))))
	dict.Set("BitsPerSample", core.Integer(8))
	return &core.Stream{Dictionary: dict, Bytes: samples}
}

func TestParseFunctionSampledNearestNeighbor(t *testing.T) {
	stream := sampledStream([]byte{0, 85, 170, 255})

	fn, err := ParseFunction(fakeDoc{}, stream)
	require.NoError(t, err)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"domain low maps to first sample", 0, 0},
		{"domain high maps to last sample", 1, 1},
		{"midpoint rounds to nearest grid index", 2.0 / 3.0, 170.0 / 255.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := fn.Evaluate([]float64{tt.x})
			require.NoError(t, err)
			require.InDelta(t, tt.want, out[0], 1e-6)
		})
	}
}

func TestParseFunctionSampledRequiresStream(t *testing.T) {
	dict := core.MakeDict()
	dict.Set("FunctionType", core.Integer(0))

	_, err := ParseFunction(fakeDoc{}, dict)
	require.Error(t, err)
}
