/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	xtransform "golang.org/x/text/transform"
)

var _ encoding.Encoding = (*SimpleEncoding)(nil)

// SimpleEncoding exposes a 256-entry EncodingTable as a
// golang.org/x/text/encoding.Encoding, the same shape the teacher library
// uses for its simple-font codecs. The font records in package model do not
// use it: they keep the raw EncodingTable and decode through ToUTF8.
type SimpleEncoding struct {
	name  string
	table EncodingTable
}

// NewSimpleEncoding wraps table under name (used only by String, for
// debugging/logging).
func NewSimpleEncoding(name string, table EncodingTable) *SimpleEncoding {
	return &SimpleEncoding{name: name, table: table}
}

// String implements encoding.Encoding.
func (e *SimpleEncoding) String() string { return "textencoding.SimpleEncoding(" + e.name + ")" }

// NewDecoder implements encoding.Encoding.
func (e *SimpleEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: simpleTableDecoder{table: e.table}}
}

// NewEncoder implements encoding.Encoding. pdf-extract never re-encodes
// extracted text back to a PDF simple-font byte string, but the method is
// required to satisfy encoding.Encoding and is trivially correct: round-trip
// the first byte whose table entry matches the rune, falling back to '?'.
func (e *SimpleEncoding) NewEncoder() *encoding.Encoder {
	rev := make(map[rune]byte, 256)
	for b := 0; b < 256; b++ {
		r := rune(e.table[b])
		if r == 0 {
			continue
		}
		if _, has := rev[r]; !has {
			rev[r] = byte(b)
		}
	}
	return &encoding.Encoder{Transformer: simpleTableEncoder{m: rev}}
}

// Decode maps raw bytes to a Go string one byte at a time through table,
// the building block §4.A calls to_utf8 for the Simple-font codepath
// (to_utf8's BOM-sniffing applies to multi-byte ToUnicode CMap values, not
// to per-font simple-encoding decode, which is always one table lookup per
// input byte).
func (e *SimpleEncoding) Decode(raw []byte) string {
	out, _ := e.NewDecoder().Bytes(raw)
	return string(out)
}

type simpleTableDecoder struct{ table EncodingTable }

func (d simpleTableDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for len(src) != 0 {
		b := src[0]
		r := rune(d.table[b])
		if r == 0 {
			r = MissingCodeRune
		}
		if utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, xtransform.ErrShortDst
		}
		n := utf8.EncodeRune(dst, r)
		dst = dst[n:]
		src = src[1:]
		nDst += n
		nSrc++
	}
	return nDst, nSrc, nil
}

func (d simpleTableDecoder) Reset() {}

type simpleTableEncoder struct{ m map[rune]byte }

func (e simpleTableEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for len(src) != 0 {
		if !utf8.FullRune(src) && !atEOF {
			return nDst, nSrc, xtransform.ErrShortSrc
		}
		if len(dst) == 0 {
			return nDst, nSrc, xtransform.ErrShortDst
		}
		r, n := utf8.DecodeRune(src)
		b, ok := e.m[r]
		if !ok {
			b = '?'
		}
		dst[0] = b
		dst = dst[1:]
		src = src[n:]
		nDst++
		nSrc += n
	}
	return nDst, nSrc, nil
}

func (e simpleTableEncoder) Reset() {}
