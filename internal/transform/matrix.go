/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package transform implements the affine transforms used by the content
// stream interpreter: the CTM and the text matrix.
package transform

import "fmt"

// Matrix is the 2-D affine transform PDF uses everywhere: the CTM, the text
// matrix and the text line matrix. It is stored as [a b c d e f] so that
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float64
}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, D: 1}
}

// NewMatrix builds a matrix from the six PDF operands of `cm`/`Tm`, in the
// order they appear on the content-stream operand stack.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// TranslationMatrix returns a matrix that translates by (tx, ty).
func TranslationMatrix(tx, ty float64) Matrix {
	return NewMatrix(1, 0, 0, 1, tx, ty)
}

// Mult returns m composed with n such that applying the result is the same
// as applying m first, then n: (m.Mult(n)).Apply(p) == n.Apply(m.Apply(p)).
// This is the "pre-multiply" used by `cm` (ctm = cmOperands.Mult(ctm)) and by
// the text-matrix composition used by Td/TD/Tm.
func (m Matrix) Mult(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ApplyVector transforms the vector (x, y) by m, ignoring translation.
// Used to measure a transformed font size (§4.H): the translation
// components must not shift a vector's magnitude.
func (m Matrix) ApplyVector(x, y float64) (float64, float64) {
	return m.A*x + m.C*y, m.B*x + m.D*y
}

// Translate returns m pre-composed with a translation by (tx, ty), i.e. the
// matrix that first translates then applies m. This is the operation `Td`
// and `TJ`'s numeric-adjustment use to advance the text matrix.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return TranslationMatrix(tx, ty).Mult(m)
}

// String renders the matrix the way PDF content streams spell it, useful in
// diagnostics and test failure messages.
func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}
