/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

// Document is the external collaborator that owns PDF object parsing,
// cross-reference resolution and decryption (§1, §6). The content-stream
// interpreter only ever asks it to resolve references and hand back page
// content; it never reaches into xref tables or filter pipelines itself.
type Document interface {
	// Resolve follows zero or more Reference indirections and returns a
	// concrete, non-Reference Object. Resolving a dangling reference
	// returns Null, not an error: malformed PDFs routinely reference
	// objects that don't exist, and the interpreter must tolerate that.
	Resolve(obj Object) Object

	// IsEncrypted reports whether the document is still locked: true when
	// the trailer carries an Encrypt entry, false once Decrypt has
	// succeeded (the extractor checks it again before reading pages).
	IsEncrypted() bool

	// Decrypt unlocks the document with password. Called at most once,
	// before any page is read, when IsEncrypted is true.
	Decrypt(password []byte) error

	// Pages returns the page dictionaries in page-tree order, 1-indexed
	// by convention (page number 1 is Pages()[0]).
	Pages() []Object

	// PageContent returns the fully decoded bytes of a single content
	// stream object (spec §6 "get_page_content(id)"). It takes one
	// /Contents entry, not a whole page: a page's /Contents may itself be
	// an array of several stream references, and joining those decoded
	// byte strings with a single space (PDF spec 7.8.2) is the page
	// driver's job (§4.I step 5), not this collaborator's — see
	// extractor.outputPage.
	PageContent(streamRef Object) ([]byte, error)

	// Info resolves the trailer's /Info dictionary, or Null if the
	// document has none. Used by the document-metadata accessor (§12.5);
	// the Info dictionary is just another indirect object, so this is a
	// thin convenience rather than new parsing machinery.
	Info() Object
}

// DocumentLoader is the external collaborator that opens a PDF document
// from a file path or from bytes already in memory (§6 "Document:
// load(path), load_mem(bytes)").
type DocumentLoader interface {
	Load(path string) (Document, error)
	LoadMem(data []byte) (Document, error)
}

// ContentDecoder is the external collaborator that tokenizes a content
// stream's bytes into an operator/operand sequence (§6). The interpreter
// (contentstream.Processor) consumes this interface; it never scans raw
// bytes for operators itself.
type ContentDecoder interface {
	Decode(content []byte) ([]Operation, error)
}

// Operation is one operator plus its operands, exactly as ContentDecoder
// produces them and as contentstream.Processor consumes them.
type Operation struct {
	Operator string
	Operands []Object
}

func (op Operation) String() string {
	return op.Operator
}

// CodeRange is one entry of a CMap's codespace range: byte sequences of
// `Width` bytes whose big-endian value falls in [Low, High] belong to this
// range. CID fonts use these to determine how many bytes the next character
// code consumes (§4.B next_char).
type CodeRange struct {
	Width    int
	Low, High uint32
}

// CIDRange maps a contiguous run of source codes to a contiguous run of
// CIDs: src in [SrcLo, SrcHi] maps to DstLo + (src - SrcLo).
type CIDRange struct {
	SrcLo, SrcHi uint32
	DstLo        uint32
}

// ByteMapping is the result of parsing a CID font's /Encoding CMap stream:
// codespace ranges to split the byte string into codes, and CID ranges to
// translate each code to a CID (§4.B construction step 2).
type ByteMapping struct {
	Codespace []CodeRange
	CID       []CIDRange
}

// CMapParser is the external collaborator that parses an embedded CMap
// program (§1, §6). It is consulted for a CID font's /Encoding stream (when
// not Identity-H/V) and for any font's /ToUnicode stream.
type CMapParser interface {
	// GetUnicodeMap parses a ToUnicode-style CMap (bfchar/bfrange) and
	// returns source code -> UTF-16BE bytes.
	GetUnicodeMap(data []byte) (map[uint32][]byte, error)

	// GetByteMapping parses a CID-selecting CMap (codespacerange/cidrange)
	// into codespace and CID ranges.
	GetByteMapping(data []byte) (ByteMapping, error)
}

// Type1EncodingParser is the external collaborator that reads the Encoding
// array out of an embedded Type1 font program (§1, §6), used as a fallback
// source of a simple font's code->glyph-name table when /Encoding is absent
// from the font dictionary (§4.B construction step 4).
type Type1EncodingParser interface {
	GetEncodingMap(fontProgram []byte) (map[uint32]string, error)
}
