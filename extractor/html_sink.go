/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"fmt"
	"math"
	"strings"

	"github.com/jrmuizel/pdf-extract/contentstream"
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
)

// htmlSink is the HTML output sink of §4.H: characters sharing the same
// text rendering matrix are buffered into one run and flushed as a single
// absolutely-positioned <div>, so that runs of text set with one Tj/TJ
// don't each get their own element.
type htmlSink struct {
	out strings.Builder

	mediaHeight float64

	haveRun  bool
	runTrm   transform.Matrix
	runSize  float64
	runText  strings.Builder
	runX     float64
	runY     float64
}

func newHTMLSink() *htmlSink {
	return &htmlSink{}
}

func (s *htmlSink) String() string { return s.out.String() }

func (s *htmlSink) BeginPage(pageNum int, mediaBox model.Rectangle, artBox *model.Rectangle) {
	s.mediaHeight = mediaBox.Height()
	fmt.Fprintf(&s.out, "<div id=\"page%d\" style=\"position:relative;width:%gpx;height:%gpx;\">\n",
		pageNum, mediaBox.Width(), mediaBox.Height())
}

func (s *htmlSink) EndPage() {
	s.flushRun()
	s.out.WriteString("</div>\n")
}

func (s *htmlSink) BeginWord() {}
func (s *htmlSink) EndWord()   {}
func (s *htmlSink) EndLine()   { s.flushRun() }

func (s *htmlSink) flushRun() {
	if !s.haveRun {
		return
	}
	text := s.runText.String()
	// The final trailing space of a word is kept literal so it collapses
	// normally; interior spaces become &nbsp; so HTML whitespace collapsing
	// doesn't undo the PDF's own spacing.
	var escaped strings.Builder
	for i, r := range text {
		if r == ' ' && i != len(text)-1 {
			escaped.WriteString("&nbsp;")
		} else {
			escaped.WriteRune(r)
		}
	}
	fmt.Fprintf(&s.out, "<div style=\"position:absolute;left:%gpx;top:%gpx;font-size:%gpx;white-space:pre;\">%s</div>\n",
		s.runX, s.runY, s.runSize, escaped.String())
	s.haveRun = false
	s.runText.Reset()
}

func (s *htmlSink) OutputCharacter(trm transform.Matrix, w0, spacing, fontSize float64, glyph string) {
	if s.haveRun && trm != s.runTrm {
		s.flushRun()
	}
	if !s.haveRun {
		vx, vy := trm.ApplyVector(fontSize, fontSize)
		s.runSize = math.Sqrt(math.Abs(vx * vy))
		px, py := trm.Apply(0, 0)
		s.runX = px
		s.runY = s.mediaHeight - py
		s.haveRun = true
	}
	s.runText.WriteString(glyph)
	advanced := w0*fontSize + spacing
	s.runTrm = trm.Translate(advanced, 0)
}

func (s *htmlSink) Stroke(path *contentstream.Path, ctm transform.Matrix) {}
func (s *htmlSink) Fill(path *contentstream.Path, ctm transform.Matrix)   {}
