package projective

import (
	"math"
	"strings"

	"honnef.co/go/projective/roots"
)

// Conic is a general conic section, the set of points satisfying
//
//	A·x² + 2B·xy + C·y² + 2D·xw + 2E·yw + F·w² = 0
//
// Its symmetric matrix is
//
//	| A B D |
//	| B C E |
//	| D E F |
//
// As with points and lines, conics that differ by a non-zero factor describe
// the same curve.
type Conic struct {
	A, B, C, D, E, F float64
}

// Matrix returns the symmetric matrix of the conic, indexed [row][column].
func (c Conic) Matrix() [3][3]float64 {
	return [3][3]float64{
		{c.A, c.B, c.D},
		{c.B, c.C, c.E},
		{c.D, c.E, c.F},
	}
}

func conicFromMatrix(m [3][3]float64) Conic {
	return Conic{
		A: m[0][0],
		B: (m[0][1] + m[1][0]) / 2,
		C: m[1][1],
		D: (m[0][2] + m[2][0]) / 2,
		E: (m[1][2] + m[2][1]) / 2,
		F: m[2][2],
	}
}

// Eval returns pᵀMp. It is zero for points on the conic and, for conics
// derived from a [Circle] or [Ellipse] of a Cartesian point, negative inside
// the curve.
func (c Conic) Eval(p Point) float64 {
	return c.bilinear(p, p)
}

func (c Conic) bilinear(p, q Point) float64 {
	return Dot(c.Polar(p), q)
}

// Polar returns the polar line of p. If p is on the conic, this is the
// tangent at p.
func (c Conic) Polar(p Point) Line {
	return Line{
		A: c.A*p.X + c.B*p.Y + c.D*p.W,
		B: c.B*p.X + c.C*p.Y + c.E*p.W,
		C: c.D*p.X + c.E*p.Y + c.F*p.W,
	}
}

// Adjugate returns the adjugate of the conic's matrix. It describes the dual
// conic, the set of lines tangent to c.
func (c Conic) Adjugate() Conic {
	return Conic{
		A: c.C*c.F - c.E*c.E,
		B: c.D*c.E - c.B*c.F,
		C: c.A*c.F - c.D*c.D,
		D: c.B*c.E - c.C*c.D,
		E: c.B*c.D - c.A*c.E,
		F: c.A*c.C - c.B*c.B,
	}
}

// Pole returns the pole of l, the point whose polar line is l.
func (c Conic) Pole(l Line) Point {
	adj := c.Adjugate()
	return Point{
		X: adj.A*l.A + adj.B*l.B + adj.D*l.C,
		Y: adj.B*l.A + adj.C*l.B + adj.E*l.C,
		W: adj.D*l.A + adj.E*l.B + adj.F*l.C,
	}
}

// Center returns the center of the conic, the pole of the line at infinity.
// Parabolas have an ideal center.
func (c Conic) Center() Point {
	return c.Pole(Horizon)
}

// Determinant returns the determinant of the conic's matrix. It is zero for
// degenerate conics such as pairs of lines.
func (c Conic) Determinant() float64 {
	return c.A*(c.C*c.F-c.E*c.E) -
		c.B*(c.B*c.F-c.D*c.E) +
		c.D*(c.B*c.E-c.C*c.D)
}

// IsDegenerate reports whether the conic's matrix is singular.
func (c Conic) IsDegenerate() bool {
	return c.Determinant() == 0
}

// Tangency returns lᵀ·adj(M)·l, which is zero when l is tangent to a
// non-degenerate conic. For a real ellipse it is negative for lines that
// cross the curve and positive for lines that miss it.
func (c Conic) Tangency(l Line) float64 {
	return Dot(l, c.Pole(l))
}

// IsTangent reports whether l is tangent to c, within tol. The tangency
// value of l is compared after scaling l to unit weight.
func (c Conic) IsTangent(l Line, tol float64) bool {
	return math.Abs(c.Tangency(l.Normalized())) <= tol
}

// IntersectLine returns the finite points at which l meets the conic.
// Tangent lines return a single point. The line at infinity returns no
// points.
func (c Conic) IntersectLine(l Line) ([2]Point, int) {
	if !l.IsFinite() {
		return [2]Point{}, 0
	}
	p0 := l.Center().Normalized()
	dir := l.Direction()
	d := Point{X: dir.X, Y: dir.Y}
	ts, n := roots.SolveQuadratic(c.Eval(p0), 2*c.bilinear(p0, d), c.Eval(d))
	var out [2]Point
	for i := range n {
		out[i] = p0.Translate(dir.Mul(ts[i]))
	}
	return out, n
}

// Transform returns the image of the conic under aff, so that
// pt.Transform(aff) lies on c.Transform(aff) whenever pt lies on c.
func (c Conic) Transform(aff Affine) Conic {
	n := aff.Invert().Matrix()
	m := c.Matrix()
	// Nᵀ·M·N
	var mn, out [3][3]float64
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				mn[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				out[i][j] += n[k][i] * mn[k][j]
			}
		}
	}
	return conicFromMatrix(out)
}

func (c Conic) IsInf() bool {
	return math.IsInf(c.A, 0) || math.IsInf(c.B, 0) || math.IsInf(c.C, 0) ||
		math.IsInf(c.D, 0) || math.IsInf(c.E, 0) || math.IsInf(c.F, 0)
}

func (c Conic) IsNaN() bool {
	return math.IsNaN(c.A) || math.IsNaN(c.B) || math.IsNaN(c.C) ||
		math.IsNaN(c.D) || math.IsNaN(c.E) || math.IsNaN(c.F)
}

// String renders the conic's equation in Cartesian form, for example
// "x² + y² - 25 = 0".
func (c Conic) String() string {
	var sb strings.Builder
	writeTerms(&sb, []term{
		{c.A, "x²"},
		{2 * c.B, "xy"},
		{c.C, "y²"},
		{2 * c.D, "x"},
		{2 * c.E, "y"},
		{c.F, ""},
	})
	sb.WriteString(" = 0")
	return sb.String()
}
