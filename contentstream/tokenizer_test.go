/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/jrmuizel/pdf-extract/core"
	"github.com/stretchr/testify/require"
)

func decodeOne(t *testing.T, content string) core.Operation {
	t.Helper()
	ops, err := Tokenizer{}.Decode([]byte(content))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	return ops[0]
}

func TestTokenizerNumbers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    core.Object
	}{
		{"integer", "5 w", core.Integer(5)},
		{"negative integer", "-5 w", core.Integer(-5)},
		{"real", "1.5 w", core.Real(1.5)},
		{"leading-dot real", ".5 w", core.Real(0.5)},
		{"negative real", "-0.25 w", core.Real(-0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := decodeOne(t, tt.content)
			require.Equal(t, "w", op.Operator)
			require.Equal(t, tt.want, op.Operands[0])
		})
	}
}

func TestTokenizerLiteralStringEscapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"balanced nested parens kept literal", `(a(b)c) Tj`, "a(b)c"},
		{"common escapes", `(a\nb\tc) Tj`, "a\nb\tc"},
		{"octal escape", `(\101\102) Tj`, "AB"},
		{"line continuation is swallowed", "(a\\\nb) Tj", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := decodeOne(t, tt.content)
			require.Equal(t, "Tj", op.Operator)
			s, ok := core.GetStringBytes(op.Operands[0])
			require.True(t, ok)
			require.Equal(t, tt.want, string(s))
		})
	}
}

func TestTokenizerHexString(t *testing.T) {
	op := decodeOne(t, `<48656C6C6F> Tj`)
	s, ok := core.GetStringBytes(op.Operands[0])
	require.True(t, ok)
	require.Equal(t, "Hello", string(s))
}

func TestTokenizerHexStringOddDigitsPadsWithZero(t *testing.T) {
	// "486" has 3 hex digits; the trailing nibble is padded with 0,
	// giving bytes 0x48, 0x60.
	op := decodeOne(t, `<486> Tj`)
	s, ok := core.GetStringBytes(op.Operands[0])
	require.True(t, ok)
	require.Equal(t, []byte{0x48, 0x60}, s)
}

func TestTokenizerNameWithHexEscape(t *testing.T) {
	ops, err := Tokenizer{}.Decode([]byte(`/A#42C cs`))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, core.Name("ABC"), ops[0].Operands[0])
}

func TestTokenizerArrayAndDictOperands(t *testing.T) {
	op := decodeOne(t, `[1 2 (x)] TJ`)
	arr, ok := core.GetArray(op.Operands[0])
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	require.Equal(t, core.Integer(1), arr.Elements[0])
	require.Equal(t, core.Integer(2), arr.Elements[1])

	op = decodeOne(t, `<< /Type /ExtGState /ca 0.5 >> gs`)
	dict, ok := core.GetDict(op.Operands[0])
	require.True(t, ok)
	require.Equal(t, core.Name("ExtGState"), dict.Get("Type"))
}

func TestTokenizerBooleansAndNull(t *testing.T) {
	ops, err := Tokenizer{}.Decode([]byte(`true false null RandomOp`))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, "RandomOp", ops[0].Operator)
	require.Equal(t, []core.Object{core.Bool(true), core.Bool(false), core.Null{}}, ops[0].Operands)
}

func TestTokenizerCommentsAreSkipped(t *testing.T) {
	ops, err := Tokenizer{}.Decode([]byte("1 0 0 1 0 0 cm % a comment\n5 w"))
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, "cm", ops[0].Operator)
	require.Equal(t, "w", ops[1].Operator)
}

func TestTokenizerMultipleOperatorsInSequence(t *testing.T) {
	ops, err := Tokenizer{}.Decode([]byte(`q 1 0 0 1 10 20 cm Q`))
	require.NoError(t, err)
	require.Len(t, ops, 3)
	require.Equal(t, []string{"q", "cm", "Q"}, []string{ops[0].Operator, ops[1].Operator, ops[2].Operator})
}
