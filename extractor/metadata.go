/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/internal/textencoding"
)

// DocumentMetadata is the subset of the trailer's /Info dictionary exposed
// as a supplemented feature: document title, author and production tool,
// which the original tool surfaces alongside text/vector extraction.
type DocumentMetadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// Metadata reads the document's /Info dictionary, decoding each string
// value as a PDF text string (UTF-16BE with BOM, or PDFDocEncoding
// otherwise) via the same to_utf8 primitive the content interpreter uses
// for every other PDF string.
func (d *Document) Metadata() (DocumentMetadata, error) {
	table, err := textencoding.EncodingToUnicodeTable("PDFDocEncoding")
	if err != nil {
		return DocumentMetadata{}, err
	}

	info, ok := core.GetDict(d.doc.Resolve(d.doc.Info()))
	if !ok {
		return DocumentMetadata{}, nil
	}

	get := func(key core.Name) string {
		s, ok := d.doc.Resolve(info.Get(key)).(*core.String)
		if !ok {
			return ""
		}
		out, err := textencoding.ToUTF8(table, s.Bytes)
		if err != nil {
			return string(s.Bytes)
		}
		return out
	}

	return DocumentMetadata{
		Title:    get("Title"),
		Author:   get("Author"),
		Subject:  get("Subject"),
		Creator:  get("Creator"),
		Producer: get("Producer"),
	}, nil
}
