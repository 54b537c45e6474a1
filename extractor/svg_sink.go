/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"fmt"
	"strings"

	"github.com/jrmuizel/pdf-extract/contentstream"
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
)

// svgSink is the vector-graphics output sink of §4.H: it renders Stroke
// and Fill path operations as SVG path data and emits no text, matching
// the original tool's svg output mode.
type svgSink struct {
	out strings.Builder
}

func newSVGSink() *svgSink {
	return &svgSink{}
}

func (s *svgSink) String() string { return s.out.String() }

func (s *svgSink) BeginPage(pageNum int, mediaBox model.Rectangle, artBox *model.Rectangle) {
	fmt.Fprintf(&s.out, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\">\n",
		mediaBox.Width(), mediaBox.Height())
	fmt.Fprintf(&s.out, "<g transform=\"matrix(1 0 0 -1 0 %g)\">\n", mediaBox.URY)
}

func (s *svgSink) EndPage() {
	s.out.WriteString("</g>\n</svg>\n")
}

func (s *svgSink) BeginWord() {}
func (s *svgSink) EndWord()   {}
func (s *svgSink) EndLine()   {}

func (s *svgSink) OutputCharacter(trm transform.Matrix, w0, spacing, fontSize float64, glyph string) {}

func pathData(path *contentstream.Path, ctm transform.Matrix) string {
	var b strings.Builder
	for _, op := range path.Ops {
		switch op.Kind {
		case contentstream.MoveTo:
			x, y := ctm.Apply(op.X, op.Y)
			fmt.Fprintf(&b, "M %g %g ", x, y)
		case contentstream.LineTo:
			x, y := ctm.Apply(op.X, op.Y)
			fmt.Fprintf(&b, "L %g %g ", x, y)
		case contentstream.CurveTo:
			x1, y1 := ctm.Apply(op.X1, op.Y1)
			x2, y2 := ctm.Apply(op.X2, op.Y2)
			x, y := ctm.Apply(op.X, op.Y)
			fmt.Fprintf(&b, "C %g %g %g %g %g %g ", x1, y1, x2, y2, x, y)
		case contentstream.RectOp:
			x, y := ctm.Apply(op.X, op.Y)
			x2, y2 := ctm.Apply(op.X+op.W, op.Y)
			x3, y3 := ctm.Apply(op.X+op.W, op.Y+op.H)
			x4, y4 := ctm.Apply(op.X, op.Y+op.H)
			fmt.Fprintf(&b, "M %g %g L %g %g L %g %g L %g %g Z ", x, y, x2, y2, x3, y3, x4, y4)
		case contentstream.Close:
			b.WriteString("Z ")
		}
	}
	return strings.TrimSpace(b.String())
}

func (s *svgSink) Stroke(path *contentstream.Path, ctm transform.Matrix) {
	fmt.Fprintf(&s.out, "<path d=\"%s\" fill=\"none\" stroke=\"black\"/>\n", pathData(path, ctm))
}

func (s *svgSink) Fill(path *contentstream.Path, ctm transform.Matrix) {
	fmt.Fprintf(&s.out, "<path d=\"%s\" fill=\"black\"/>\n", pathData(path, ctm))
}
