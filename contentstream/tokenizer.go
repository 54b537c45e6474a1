/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"io"
	"strconv"

	"github.com/jrmuizel/pdf-extract/common"
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/errkit"
)

// Tokenizer is the reference implementation of core.ContentDecoder: a
// recursive-descent scanner over PDF content-stream syntax (§6, §12.1).
// It never looks at the operator table itself, it only turns bytes into
// operator/operand pairs for Processor to interpret.
type Tokenizer struct{}

// Decode implements core.ContentDecoder.
func (Tokenizer) Decode(content []byte) ([]core.Operation, error) {
	t := &tokenizeState{reader: bufio.NewReader(bytes.NewReader(append(content, '\n')))}
	return t.parse()
}

type tokenizeState struct {
	reader *bufio.Reader
}

func (t *tokenizeState) parse() ([]core.Operation, error) {
	var ops []core.Operation
	var operands []core.Object

	for {
		obj, isOperator, operator, err := t.parseObject()
		if err != nil {
			if err == io.EOF {
				return ops, nil
			}
			return ops, err
		}
		if isOperator {
			if operator == "BI" {
				img, err := t.parseInlineImage()
				if err != nil {
					return ops, err
				}
				operands = append(operands, img)
			}
			ops = append(ops, core.Operation{Operator: operator, Operands: operands})
			operands = nil
			continue
		}
		operands = append(operands, obj)
	}
}

func isWhitespace(b byte) bool {
	return b == 0x00 || b == 0x09 || b == 0x0A || b == 0x0C || b == 0x0D || b == 0x20
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func (t *tokenizeState) skipSpacesAndComments() error {
	for {
		bb, err := t.reader.Peek(1)
		if err != nil {
			return err
		}
		if isWhitespace(bb[0]) {
			t.reader.ReadByte()
			continue
		}
		if bb[0] == '%' {
			for {
				b, err := t.reader.ReadByte()
				if err != nil {
					return err
				}
				if b == '\r' || b == '\n' {
					break
				}
			}
			continue
		}
		return nil
	}
}

// parseObject reads one token. If it is an operator keyword, isOperator is
// true and operator names it; otherwise obj holds the parsed value object.
func (t *tokenizeState) parseObject() (obj core.Object, isOperator bool, operator string, err error) {
	if err := t.skipSpacesAndComments(); err != nil {
		return nil, false, "", err
	}
	bb, err := t.reader.Peek(2)
	if err != nil && len(bb) == 0 {
		return nil, false, "", err
	}
	if len(bb) == 0 {
		return nil, false, "", io.EOF
	}

	switch {
	case bb[0] == '/':
		name, err := t.parseName()
		return core.Name(name), false, "", err
	case bb[0] == '(':
		s, err := t.parseLiteralString()
		return s, false, "", err
	case bb[0] == '<' && len(bb) > 1 && bb[1] == '<':
		d, err := t.parseDict()
		return d, false, "", err
	case bb[0] == '<':
		s, err := t.parseHexString()
		return s, false, "", err
	case bb[0] == '[':
		a, err := t.parseArray()
		return a, false, "", err
	case bb[0] == '+' || bb[0] == '-' || bb[0] == '.' || (bb[0] >= '0' && bb[0] <= '9'):
		n, err := t.parseNumber()
		return n, false, "", err
	default:
		word, err := t.parseKeyword()
		if err != nil && word == "" {
			return nil, false, "", err
		}
		switch word {
		case "true":
			return core.Bool(true), false, "", nil
		case "false":
			return core.Bool(false), false, "", nil
		case "null":
			return core.Null{}, false, "", nil
		default:
			return nil, true, word, nil
		}
	}
}

func (t *tokenizeState) parseKeyword() (string, error) {
	var buf []byte
	for {
		bb, err := t.reader.Peek(1)
		if err != nil {
			if len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		if isWhitespace(bb[0]) || isDelimiter(bb[0]) {
			break
		}
		b, _ := t.reader.ReadByte()
		buf = append(buf, b)
	}
	if len(buf) == 0 {
		return "", errkit.Format("contentstream: empty operator token")
	}
	return string(buf), nil
}

func (t *tokenizeState) parseName() (string, error) {
	t.reader.ReadByte() // consume '/'
	var buf []byte
	for {
		bb, err := t.reader.Peek(1)
		if err != nil {
			break
		}
		if isWhitespace(bb[0]) || isDelimiter(bb[0]) {
			break
		}
		if bb[0] == '#' {
			hx, err := t.reader.Peek(3)
			if err == nil && len(hx) == 3 {
				if code, err := hex.DecodeString(string(hx[1:3])); err == nil {
					t.reader.Discard(3)
					buf = append(buf, code...)
					continue
				}
			}
		}
		b, _ := t.reader.ReadByte()
		buf = append(buf, b)
	}
	return string(buf), nil
}

func (t *tokenizeState) parseNumber() (core.Object, error) {
	var buf []byte
	isReal := false
	for {
		bb, err := t.reader.Peek(1)
		if err != nil {
			break
		}
		b := bb[0]
		if b == '+' || b == '-' || (b >= '0' && b <= '9') {
			t.reader.ReadByte()
			buf = append(buf, b)
			continue
		}
		if b == '.' {
			isReal = true
			t.reader.ReadByte()
			buf = append(buf, b)
			continue
		}
		break
	}
	if isReal {
		f, err := strconv.ParseFloat(string(buf), 64)
		if err != nil {
			f = 0
		}
		return core.Real(f), nil
	}
	n, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return core.Integer(0), nil
	}
	return core.Integer(n), nil
}

func (t *tokenizeState) parseLiteralString() (*core.String, error) {
	t.reader.ReadByte() // consume '('
	var buf []byte
	depth := 1
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return core.MakeString(buf), err
		}
		switch b {
		case '\\':
			esc, err := t.reader.ReadByte()
			if err != nil {
				return core.MakeString(buf), err
			}
			switch esc {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case '(', ')', '\\':
				buf = append(buf, esc)
			case '\r':
				// line continuation; swallow a following \n too.
				if bb, err := t.reader.Peek(1); err == nil && bb[0] == '\n' {
					t.reader.ReadByte()
				}
			case '\n':
				// line continuation
			default:
				if esc >= '0' && esc <= '7' {
					digits := []byte{esc}
					for len(digits) < 3 {
						bb, err := t.reader.Peek(1)
						if err != nil || bb[0] < '0' || bb[0] > '7' {
							break
						}
						d, _ := t.reader.ReadByte()
						digits = append(digits, d)
					}
					v, _ := strconv.ParseUint(string(digits), 8, 32)
					buf = append(buf, byte(v))
				} else {
					buf = append(buf, esc)
				}
			}
		case '(':
			depth++
			buf = append(buf, b)
		case ')':
			depth--
			if depth == 0 {
				return core.MakeString(buf), nil
			}
			buf = append(buf, b)
		default:
			buf = append(buf, b)
		}
	}
}

func (t *tokenizeState) parseHexString() (*core.String, error) {
	t.reader.ReadByte() // consume '<'
	var digits []byte
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			break
		}
		if b == '>' {
			break
		}
		if isHexDigit(b) {
			digits = append(digits, b)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	raw, err := hex.DecodeString(string(digits))
	if err != nil {
		return core.MakeString(nil), err
	}
	return core.MakeString(raw), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (t *tokenizeState) parseArray() (*core.Array, error) {
	t.reader.ReadByte() // consume '['
	arr := core.MakeArray()
	for {
		if err := t.skipSpacesAndComments(); err != nil {
			return arr, err
		}
		bb, err := t.reader.Peek(1)
		if err != nil {
			return arr, err
		}
		if bb[0] == ']' {
			t.reader.ReadByte()
			return arr, nil
		}
		obj, isOperator, _, err := t.parseObject()
		if err != nil {
			return arr, err
		}
		if !isOperator {
			arr.Elements = append(arr.Elements, obj)
		}
	}
}

func (t *tokenizeState) parseDict() (*core.Dictionary, error) {
	t.reader.ReadByte()
	t.reader.ReadByte() // consume '<<'
	dict := core.MakeDict()
	for {
		if err := t.skipSpacesAndComments(); err != nil {
			return dict, err
		}
		bb, err := t.reader.Peek(2)
		if err != nil {
			return dict, err
		}
		if bb[0] == '>' && len(bb) > 1 && bb[1] == '>' {
			t.reader.Discard(2)
			return dict, nil
		}
		if bb[0] != '/' {
			return dict, errkit.Format("contentstream: malformed dictionary, expected key name")
		}
		key, err := t.parseName()
		if err != nil {
			return dict, err
		}
		if err := t.skipSpacesAndComments(); err != nil {
			return dict, err
		}
		val, isOperator, _, err := t.parseObject()
		if err != nil {
			return dict, err
		}
		if !isOperator {
			dict.Set(core.Name(key), val)
		}
	}
}

// parseInlineImage consumes everything between "BI" (already read as the
// operator) and the "EI" terminator, producing the inline image's
// parameter dictionary as a Stream carried as the BI operation's operand;
// Processor ignores it (§4.G "inline images are out of scope for text
// but must still be skipped without desyncing the tokenizer").
func (t *tokenizeState) parseInlineImage() (*core.Stream, error) {
	dict := core.MakeDict()
	for {
		if err := t.skipSpacesAndComments(); err != nil {
			return nil, err
		}
		bb, err := t.reader.Peek(2)
		if err != nil {
			return nil, err
		}
		if string(bb) == "ID" {
			t.reader.Discard(2)
			break
		}
		if bb[0] != '/' {
			return nil, errkit.Format("contentstream: malformed inline image dictionary")
		}
		key, err := t.parseName()
		if err != nil {
			return nil, err
		}
		if err := t.skipSpacesAndComments(); err != nil {
			return nil, err
		}
		val, isOperator, _, err := t.parseObject()
		if err != nil {
			return nil, err
		}
		if !isOperator {
			dict.Set(core.Name(key), val)
		}
	}
	// One whitespace byte separates ID from the binary data.
	t.reader.ReadByte()

	var data []byte
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return nil, err
		}
		data = append(data, b)
		if len(data) >= 2 && data[len(data)-2] == 'E' && data[len(data)-1] == 'I' {
			prev := byte(' ')
			if len(data) >= 3 {
				prev = data[len(data)-3]
			}
			if isWhitespace(prev) {
				data = data[:len(data)-2]
				if n := len(data); n > 0 && isWhitespace(data[n-1]) {
					data = data[:n-1]
				}
				break
			}
		}
	}
	common.Log.Trace("contentstream: skipped inline image, %d bytes", len(data))
	return &core.Stream{Dictionary: dict, Bytes: data}, nil
}
