/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"math"
	"strings"

	"github.com/jrmuizel/pdf-extract/contentstream"
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
)

// textSink is the plain-text reflowing sink of §4.H. It tracks the
// position of the last emitted glyph and inserts spaces or newlines based
// on how far the next glyph's position has moved, scaled by the glyph
// size, rather than relying on any word/line markers the content stream
// might or might not provide.
type textSink struct {
	out strings.Builder

	mediaHeight float64

	lastXEnd  float64
	lastY     float64
	firstChar bool
}

func newTextSink() *textSink {
	return &textSink{lastXEnd: 100000, lastY: 0, firstChar: false}
}

func (s *textSink) String() string { return s.out.String() }

func (s *textSink) BeginPage(pageNum int, mediaBox model.Rectangle, artBox *model.Rectangle) {
	s.mediaHeight = mediaBox.Height()
	s.lastXEnd = 100000
	s.lastY = 0
	s.firstChar = false
}

func (s *textSink) EndPage() {}

func (s *textSink) BeginWord() { s.firstChar = true }
func (s *textSink) EndWord()   {}
func (s *textSink) EndLine()   {}

// flip maps PDF user space (origin bottom-left) to a top-down coordinate
// system, matching the [1 0; 0 -1; 0 H] post-composition of §4.H.
func (s *textSink) flip(x, y float64) (float64, float64) {
	return x, s.mediaHeight - y
}

func (s *textSink) OutputCharacter(trm transform.Matrix, w0, spacing, fontSize float64, glyph string) {
	vx, vy := trm.ApplyVector(fontSize, fontSize)
	size := math.Sqrt(math.Abs(vx * vy))

	px, py := trm.Apply(0, 0)
	x, y := s.flip(px, py)

	if s.firstChar {
		dy := y - s.lastY
		switch {
		case math.Abs(dy) > 1.5*size:
			s.out.WriteByte('\n')
		case x < s.lastXEnd && math.Abs(dy) > 0.5*size:
			s.out.WriteByte('\n')
		case x > s.lastXEnd+0.1*size:
			s.out.WriteByte(' ')
		}
		s.firstChar = false
	}

	s.out.WriteString(glyph)

	s.lastXEnd = x + w0*size
	s.lastY = y
}

func (s *textSink) Stroke(path *contentstream.Path, ctm transform.Matrix) {}
func (s *textSink) Fill(path *contentstream.Path, ctm transform.Matrix)   {}
