/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"math"

	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
)

// TextState is §3's TS: the text-related subset of the graphics state.
// `tm` is reset to identity at BT/ET and set to the operands at every Tm (the text-line matrix
// `tlm` is interpreter-local, tracked separately by Processor, since it is
// not restored by q/Q).
type TextState struct {
	Font              model.Font
	FontSize          float64
	CharacterSpacing  float64
	WordSpacing       float64
	HorizontalScaling float64
	Leading           float64
	Rise              float64
	Tm                transform.Matrix
}

func newTextState() TextState {
	return TextState{
		FontSize:          math.NaN(),
		HorizontalScaling: 1.0,
		Tm:                transform.IdentityMatrix(),
	}
}

// GraphicsState is §3's GS. SMask is an opaque dictionary handle, nil for
// the initial/"None" value, never inspected beyond that (§4.F).
type GraphicsState struct {
	CTM   transform.Matrix
	TS    TextState
	SMask *core.Dictionary

	FillColorSpace   *model.ColorSpace
	StrokeColorSpace *model.ColorSpace
	FillColor        []float64
	StrokeColor      []float64
	LineWidth        float64
}

func newGraphicsState() GraphicsState {
	gray := &model.ColorSpace{Kind: model.DeviceGray}
	return GraphicsState{
		CTM:              transform.IdentityMatrix(),
		TS:               newTextState(),
		FillColorSpace:   gray,
		StrokeColorSpace: gray,
		LineWidth:        1.0,
	}
}

// graphicsStateStack is the q/Q save stack (§4.F). Popping past empty is
// tolerated: the caller logs and continues rather than aborting.
type graphicsStateStack []GraphicsState

func (s *graphicsStateStack) push(gs GraphicsState) {
	*s = append(*s, gs)
}

func (s *graphicsStateStack) pop() (GraphicsState, bool) {
	if len(*s) == 0 {
		return GraphicsState{}, false
	}
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top, true
}
