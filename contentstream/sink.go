/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
)

// Sink is the output capability set of §4.H: {begin_page, end_page,
// output_character, begin_word, end_word, end_line, stroke, fill}. The
// three concrete sinks in package extractor all implement this.
type Sink interface {
	BeginPage(pageNum int, mediaBox model.Rectangle, artBox *model.Rectangle)
	EndPage()

	BeginWord()
	EndWord()
	EndLine()

	// OutputCharacter emits one glyph. trm is the glyph's text rendering
	// matrix at the moment of emission; w0 is the unscaled advance width;
	// spacing is the extra spacing following this glyph; fontSize is the
	// current Tf size; s is the glyph's decoded Unicode string.
	OutputCharacter(trm transform.Matrix, w0, spacing, fontSize float64, s string)

	Stroke(path *Path, ctm transform.Matrix)
	Fill(path *Path, ctm transform.Matrix)
}
