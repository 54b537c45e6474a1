/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"strings"
	"testing"

	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
	"github.com/stretchr/testify/require"
)

func TestHTMLSinkMergesRunWithMatchingTrm(t *testing.T) {
	s := newHTMLSink()
	s.BeginPage(1, model.Rectangle{URX: 600, URY: 800}, nil)

	trm := transform.TranslationMatrix(100, 700)
	s.OutputCharacter(trm, 0.5, 0, 12, "H")
	// predicted trm after "H": translate by w0*fontSize+spacing = 6
	s.OutputCharacter(transform.TranslationMatrix(106, 700), 0.5, 0, 12, "i")
	s.EndLine()
	s.EndPage()

	out := s.String()
	require.Equal(t, 1, strings.Count(out, "<div style="), "expected one merged run, got: %s", out)
	require.Contains(t, out, "Hi")
}

func TestHTMLSinkFlushesOnTrmMismatch(t *testing.T) {
	s := newHTMLSink()
	s.BeginPage(1, model.Rectangle{URX: 600, URY: 800}, nil)

	s.OutputCharacter(transform.TranslationMatrix(100, 700), 0.5, 0, 12, "a")
	s.OutputCharacter(transform.TranslationMatrix(500, 700), 0.5, 0, 12, "b")
	s.EndPage()

	out := s.String()
	require.Equal(t, 2, strings.Count(out, "<div style="))
}
