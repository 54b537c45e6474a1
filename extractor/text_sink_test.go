/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"testing"

	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
	"github.com/stretchr/testify/require"
)

// newTextSinkAtTop returns a sink already positioned so that a glyph drawn
// at the top of the page (raw y == mediaBox.URY) lands on last_y's initial
// value of 0, avoiding a spurious leading newline in tests that aren't
// exercising that check.
func newTextSinkAtTop(urx, ury float64) *textSink {
	s := newTextSink()
	s.BeginPage(1, model.Rectangle{URX: urx, URY: ury}, nil)
	return s
}

func TestTextSinkSecondGlyphOfAWordSkipsLayoutCheck(t *testing.T) {
	s := newTextSinkAtTop(600, 800)
	s.BeginWord()
	s.OutputCharacter(transform.TranslationMatrix(100, 800), 0.5, 0, 12, "H")
	// No BeginWord between characters: the second glyph of the same
	// show_text call is never subject to the newline/space heuristics.
	s.OutputCharacter(transform.TranslationMatrix(1000, 100), 0.5, 0, 12, "i")

	require.Equal(t, "Hi", s.String())
}

func TestTextSinkHorizontalGapInsertsSpace(t *testing.T) {
	s := newTextSinkAtTop(600, 800)
	s.BeginWord()
	s.OutputCharacter(transform.TranslationMatrix(100, 800), 0.5, 0, 12, "a")

	s.BeginWord()
	s.OutputCharacter(transform.TranslationMatrix(200, 800), 0.5, 0, 12, "b")

	require.Equal(t, "a b", s.String())
}

func TestTextSinkLargeVerticalShiftInsertsNewline(t *testing.T) {
	s := newTextSinkAtTop(600, 800)
	s.BeginWord()
	s.OutputCharacter(transform.TranslationMatrix(100, 800), 0.5, 0, 12, "a")

	s.BeginWord()
	s.OutputCharacter(transform.TranslationMatrix(100, 750), 0.5, 0, 12, "b")

	require.Equal(t, "a\nb", s.String())
}

func TestTextSinkBackwardsXWithSmallVerticalShiftStaysOnLine(t *testing.T) {
	s := newTextSinkAtTop(600, 800)
	s.BeginWord()
	s.OutputCharacter(transform.TranslationMatrix(300, 800), 0.5, 0, 12, "a")

	// x moves backwards but the vertical shift is well under 0.5*size:
	// no newline, and since x < last_x_end the 0.1*size space rule never
	// triggers either.
	s.BeginWord()
	s.OutputCharacter(transform.TranslationMatrix(100, 801), 0.5, 0, 12, "b")

	require.Equal(t, "ab", s.String())
}
