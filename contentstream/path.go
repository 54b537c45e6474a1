/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

// PathOpKind tags one entry of a Path (§3 "Path").
type PathOpKind int

const (
	MoveTo PathOpKind = iota
	LineTo
	CurveTo
	RectOp
	Close
)

// PathOp is one path-construction step. Only the fields relevant to Kind
// are populated.
type PathOp struct {
	Kind PathOpKind
	X, Y                   float64 // MoveTo, LineTo endpoint; Rect origin
	X1, Y1, X2, Y2         float64 // CurveTo control points
	W, H                   float64 // Rect width/height
}

// Path is the path buffer built up by m/l/c/v/y/re between a paint or `n`
// (§4.E). "Current point" is the endpoint of the last non-Close op.
type Path struct {
	Ops                []PathOp
	curX, curY         float64
	startX, startY     float64
	hasCurrent         bool
}

// Reset clears the buffer, used after every paint operator (§4.E "both
// flush the buffer after dispatch") and after `n`.
func (p *Path) Reset() {
	p.Ops = nil
	p.curX, p.curY = 0, 0
	p.startX, p.startY = 0, 0
	p.hasCurrent = false
}

func (p *Path) MoveTo(x, y float64) {
	p.Ops = append(p.Ops, PathOp{Kind: MoveTo, X: x, Y: y})
	p.curX, p.curY = x, y
	p.startX, p.startY = x, y
	p.hasCurrent = true
}

func (p *Path) LineTo(x, y float64) {
	p.Ops = append(p.Ops, PathOp{Kind: LineTo, X: x, Y: y})
	p.curX, p.curY = x, y
	p.hasCurrent = true
}

// CurveTo appends a cubic Bezier with both control points explicit (the `c`
// operator).
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) {
	p.Ops = append(p.Ops, PathOp{Kind: CurveTo, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
	p.curX, p.curY = x, y
	p.hasCurrent = true
}

// CurveToV appends a cubic Bezier for the `v` operator, which duplicates
// the current point as the first control point (§4.E).
func (p *Path) CurveToV(x2, y2, x, y float64) {
	p.CurveTo(p.curX, p.curY, x2, y2, x, y)
}

// CurveToY appends a cubic Bezier for the `y` operator, which duplicates
// the endpoint as the second control point (§4.E).
func (p *Path) CurveToY(x1, y1, x, y float64) {
	p.CurveTo(x1, y1, x, y, x, y)
}

func (p *Path) Rect(x, y, w, h float64) {
	p.Ops = append(p.Ops, PathOp{Kind: RectOp, X: x, Y: y, W: w, H: h})
	p.curX, p.curY = x, y
	p.startX, p.startY = x, y
	p.hasCurrent = true
}

// Close appends a Close op and moves the current point back to the
// subpath's start, matching PDF's `h` semantics.
func (p *Path) Close() {
	p.Ops = append(p.Ops, PathOp{Kind: Close})
	p.curX, p.curY = p.startX, p.startY
}
