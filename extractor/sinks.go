/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import "github.com/jrmuizel/pdf-extract/contentstream"

// NewOutputSink builds one of the three stock sinks by name (txt, html,
// svg) along with a function returning its accumulated output once
// extraction finishes. Returns a nil Sink for an unrecognized name.
func NewOutputSink(format string) (sink contentstream.Sink, render func() string) {
	switch format {
	case "txt":
		s := newTextSink()
		return s, s.String
	case "html":
		s := newHTMLSink()
		return s, s.String
	case "svg":
		s := newSVGSink()
		return s, s.String
	default:
		return nil, nil
	}
}
