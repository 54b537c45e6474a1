/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package extractor drives the page-by-page interpretation of a PDF
// document (§4.I) and exposes the library's public surface (§6): text
// extraction over a whole document or a single page, and the pluggable
// Sink capability set for custom output.
package extractor

import (
	"bytes"

	"github.com/jrmuizel/pdf-extract/common"
	"github.com/jrmuizel/pdf-extract/contentstream"
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/errkit"
	"github.com/jrmuizel/pdf-extract/model"
)

// ExtractOptions configures an Extractor (§10.3), grounded on the teacher's
// Extractor struct + functional-options constructor pattern.
type ExtractOptions struct {
	// MaxFormDepth bounds Form XObject recursion (§9).
	MaxFormDepth int
	// Logger overrides the package-level common.Log when non-nil.
	Logger common.Logger
}

// DefaultExtractOptions returns the spec's documented defaults.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{MaxFormDepth: contentstream.DefaultMaxFormDepth}
}

// Option configures an Extractor at construction time.
type Option func(*ExtractOptions)

// WithMaxFormDepth overrides the Form XObject recursion limit.
func WithMaxFormDepth(n int) Option {
	return func(o *ExtractOptions) { o.MaxFormDepth = n }
}

// WithLogger installs logger as both the option's logger and the
// package-level common.Log sink.
func WithLogger(logger common.Logger) Option {
	return func(o *ExtractOptions) {
		o.Logger = logger
		common.SetLogger(logger)
	}
}

// Extractor bundles the external collaborators of §6 (a document loader, a
// content decoder, a CMap parser, a Type1 encoding parser) with the options
// that configure how pages are interpreted. It is the library's entry
// point; cmd/pdftext is a thin consumer of it.
type Extractor struct {
	Loader      core.DocumentLoader
	Decoder     core.ContentDecoder
	CMapParser  core.CMapParser
	Type1Parser core.Type1EncodingParser
	Options     ExtractOptions
}

// New builds an Extractor. decoder defaults to contentstream.Tokenizer when
// nil, since the tokenizer is this module's own reference ContentDecoder
// rather than an external collaborator a caller must always supply.
func New(loader core.DocumentLoader, decoder core.ContentDecoder, cmapParser core.CMapParser, type1Parser core.Type1EncodingParser, opts ...Option) *Extractor {
	if decoder == nil {
		decoder = contentstream.Tokenizer{}
	}
	o := DefaultExtractOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Extractor{
		Loader:      loader,
		Decoder:     decoder,
		CMapParser:  cmapParser,
		Type1Parser: type1Parser,
		Options:     o,
	}
}

func (e *Extractor) fontBuilder(doc core.Document) *model.Builder {
	return &model.Builder{Doc: doc, CMapParser: e.CMapParser, Type1Parser: e.Type1Parser}
}

func (e *Extractor) newProcessor(doc core.Document, sink contentstream.Sink) *contentstream.Processor {
	p := contentstream.NewProcessor(doc, e.Decoder, e.fontBuilder(doc), sink)
	if e.Options.MaxFormDepth > 0 {
		p.MaxFormDepth = e.Options.MaxFormDepth
	}
	return p
}

// Document wraps an opened core.Document with the Extractor that produced
// it, so callers can decrypt, inspect metadata, and drive extraction
// without re-threading collaborators through every call.
type Document struct {
	doc core.Document
	e   *Extractor
}

// Open loads path via the configured loader (§6 "load(path)"). Loader is
// an external collaborator (§1); callers must supply a core.DocumentLoader
// backed by an actual PDF object parser, which is outside this library's
// scope.
func (e *Extractor) Open(path string) (*Document, error) {
	if e.Loader == nil {
		return nil, errkit.Other("extractor: no DocumentLoader configured")
	}
	doc, err := e.Loader.Load(path)
	if err != nil {
		return nil, errkit.Wrap(errkit.KindIO, "extractor: open "+path, err)
	}
	return &Document{doc: doc, e: e}, nil
}

// OpenMem loads data via the configured loader (§6 "load_mem(bytes)").
func (e *Extractor) OpenMem(data []byte) (*Document, error) {
	if e.Loader == nil {
		return nil, errkit.Other("extractor: no DocumentLoader configured")
	}
	doc, err := e.Loader.LoadMem(data)
	if err != nil {
		return nil, errkit.Wrap(errkit.KindIO, "extractor: open from memory", err)
	}
	return &Document{doc: doc, e: e}, nil
}

// IsEncrypted reports whether the trailer carries an Encrypt entry.
func (d *Document) IsEncrypted() bool { return d.doc.IsEncrypted() }

// Decrypt unlocks an encrypted document (§7 "Encryption").
func (d *Document) Decrypt(password []byte) error {
	if err := d.doc.Decrypt(password); err != nil {
		return errkit.Wrap(errkit.KindPdf, "extractor: decrypt", err)
	}
	return nil
}

// requireUnlocked implements §7's "if the document is encrypted and no
// password was supplied, return Encrypted without attempting
// interpretation" rule. Decrypt clears the encrypted flag on the
// underlying Document once it succeeds, so this check is cheap to repeat.
func (d *Document) requireUnlocked() error {
	if d.doc.IsEncrypted() {
		return errkit.Wrap(errkit.KindPdf, "extractor: document is locked", errkit.ErrEncrypted)
	}
	return nil
}

// ExtractText concatenates the plain-text output of every page (§6
// "extract_text").
func (d *Document) ExtractText() (string, error) {
	pages, err := d.ExtractTextByPages()
	if err != nil {
		return "", err
	}
	out := ""
	for _, p := range pages {
		out += p
	}
	return out, nil
}

// ExtractTextByPages returns one plain-text string per page, in page-tree
// order (§6 "extract_text_by_pages").
func (d *Document) ExtractTextByPages() ([]string, error) {
	if err := d.requireUnlocked(); err != nil {
		return nil, err
	}
	pages := d.doc.Pages()
	out := make([]string, len(pages))
	for i := range pages {
		sink := newTextSink()
		if err := d.outputPage(sink, i+1); err != nil {
			return nil, err
		}
		out[i] = sink.String()
	}
	return out, nil
}

// OutputDoc drives every page of the document into sink (§6 "output_doc").
func (d *Document) OutputDoc(sink contentstream.Sink) error {
	if err := d.requireUnlocked(); err != nil {
		return err
	}
	for i := range d.doc.Pages() {
		if err := d.outputPage(sink, i+1); err != nil {
			return err
		}
	}
	return nil
}

// OutputDocPage drives a single 1-indexed page into sink (§6
// "output_doc_page").
func (d *Document) OutputDocPage(sink contentstream.Sink, n int) error {
	if err := d.requireUnlocked(); err != nil {
		return err
	}
	return d.outputPage(sink, n)
}

// outputPage implements §4.I's page-driver algorithm for one page.
func (d *Document) outputPage(sink contentstream.Sink, pageNumber int) error {
	pages := d.doc.Pages()
	if pageNumber < 1 || pageNumber > len(pages) {
		return errkit.Format("extractor: page %d out of range (document has %d pages)", pageNumber, len(pages))
	}
	page, err := model.ResolvePage(d.doc, pages[pageNumber-1], pageNumber)
	if err != nil {
		return errkit.Wrap(errkit.KindPdf, "extractor: resolve page", err)
	}

	sink.BeginPage(page.Number, page.MediaBox, page.ArtBox)

	content, err := d.pageContent(page)
	if err != nil {
		return errkit.Wrap(errkit.KindPdf, "extractor: read page content", err)
	}

	proc := d.e.newProcessor(d.doc, sink)
	if err := proc.Run(content, page.Resources); err != nil {
		return errkit.Wrap(errkit.KindFormat, "extractor: interpret page content", err)
	}

	sink.EndPage()
	return nil
}

// pageContent implements §4.I step 5: a page's /Contents is either a single
// stream reference or an array of them, and an array's decoded streams are
// joined with a single space before the combined bytes are handed to the
// content-stream interpreter (PDF spec 7.8.2).
func (d *Document) pageContent(page *model.Page) ([]byte, error) {
	contents := page.Dict.Get("Contents")
	if arr, ok := core.GetArray(d.doc.Resolve(contents)); ok {
		parts := make([][]byte, len(arr.Elements))
		for i, ref := range arr.Elements {
			part, err := d.doc.PageContent(ref)
			if err != nil {
				return nil, err
			}
			parts[i] = part
		}
		return bytes.Join(parts, []byte(" ")), nil
	}
	return d.doc.PageContent(contents)
}
