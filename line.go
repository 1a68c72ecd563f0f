package projective

import (
	"math"
	"strconv"
	"strings"
)

// Line is a line of the projective plane, the set of points satisfying
// A·x + B·y + C·w = 0.
//
// A line with A = B = 0 is the line at infinity. As with [Point], lines that
// differ by a non-zero factor are the same line.
type Line struct {
	A float64
	B float64
	C float64
}

var (
	// XAxis is the line y = 0.
	XAxis = Line{0, 1, 0}
	// YAxis is the line x = 0, oriented so that its normal points towards
	// negative x.
	YAxis = Line{-1, 0, 0}
	// Horizon is the line at infinity.
	Horizon = Line{0, 0, 1}
)

// Ln returns the line a·x + b·y + c = 0.
func Ln(a, b, c float64) Line {
	return Line{A: a, B: b, C: c}
}

// Ray returns the line through origin in the given direction.
func Ray(origin Point, direction Vec2) Line {
	return Join(origin, origin.Translate(direction))
}

// LineAwayFromOrigin returns the line through pt that is perpendicular to the
// bearing from the origin to pt.
func LineAwayFromOrigin(pt Point) Line {
	return Line{
		A: -pt.W * pt.X,
		B: -pt.W * pt.Y,
		C: pt.X*pt.X + pt.Y*pt.Y,
	}
}

// Coords returns the coefficients as an array.
func (l Line) Coords() [3]float64 {
	return [3]float64{l.A, l.B, l.C}
}

// At returns coefficient i, where 0 is A, 1 is B and 2 is C. It panics if i
// is out of range.
func (l Line) At(i int) float64 {
	return l.Coords()[i]
}

// WeightSquared returns A² + B².
func (l Line) WeightSquared() float64 {
	return l.A*l.A + l.B*l.B
}

// Weight returns √(A² + B²), the length of the line's normal.
func (l Line) Weight() float64 {
	return math.Hypot(l.A, l.B)
}

// IsFinite reports whether the line is not the line at infinity.
func (l Line) IsFinite() bool {
	return l.WeightSquared() > 0
}

// IsInf reports whether at least one coefficient is infinite.
func (l Line) IsInf() bool {
	return math.IsInf(l.A, 0) || math.IsInf(l.B, 0) || math.IsInf(l.C, 0)
}

// IsNaN reports whether at least one coefficient is NaN.
func (l Line) IsNaN() bool {
	return math.IsNaN(l.A) || math.IsNaN(l.B) || math.IsNaN(l.C)
}

// Normalized returns the same line scaled to unit weight. Signed distances
// of Cartesian points can then be read off with [Dot].
func (l Line) Normalized() Line {
	return l.Scale(1 / l.Weight())
}

func (l Line) Add(o Line) Line {
	return Line{l.A + o.A, l.B + o.B, l.C + o.C}
}

func (l Line) Sub(o Line) Line {
	return Line{l.A - o.A, l.B - o.B, l.C - o.C}
}

// Scale multiplies all three coefficients by f.
func (l Line) Scale(f float64) Line {
	return Line{f * l.A, f * l.B, f * l.C}
}

// Negate returns the same line with its normal reversed.
func (l Line) Negate() Line {
	return Line{-l.A, -l.B, -l.C}
}

// Center returns the point of the line closest to the origin.
func (l Line) Center() Point {
	return Point{
		X: -l.C * l.A,
		Y: -l.C * l.B,
		W: l.WeightSquared(),
	}
}

// Direction returns the unit vector along the line. The normal ⟨A, B⟩ is on
// its right in a y-up coordinate system.
func (l Line) Direction() Vec2 {
	return Vec2{X: l.B, Y: -l.A}.Div(l.Weight())
}

// Normal returns the unit normal of the line, pointing to the side on which
// signed distances are positive.
func (l Line) Normal() Vec2 {
	return Vec2{X: l.A, Y: l.B}.Div(l.Weight())
}

// Contains reports whether pt lies exactly on the line.
func (l Line) Contains(pt Point) bool {
	return Dot(l, pt) == 0
}

// ContainsTol reports whether pt is within distance tol of the line.
func (l Line) ContainsTol(pt Point, tol float64) bool {
	return math.Abs(l.SignedDistance(pt)) <= tol
}

// IsCoincident reports whether l and o are the same projective line, that
// is, whether they differ only by a non-zero factor. The factor may be
// negative, so lines of opposite orientation are coincident.
func (l Line) IsCoincident(o Line) bool {
	return Meet(l, o) == Point{}
}

// IsParallel reports whether l and o never meet at a finite point.
func (l Line) IsParallel(o Line) bool {
	return l.A*o.B-l.B*o.A == 0
}

// SignedDistance returns the Euclidean distance from the line to pt,
// positive on the side the normal points to.
//
// This is Dot(l, pt) / (l.Weight() · pt.Weight()). It is infinite or NaN for
// ideal points and for the line at infinity.
func (l Line) SignedDistance(pt Point) float64 {
	return Dot(l, pt) / (l.Weight() * pt.Weight())
}

// Distance returns the unsigned Euclidean distance from the line to pt.
func (l Line) Distance(pt Point) float64 {
	return math.Abs(l.SignedDistance(pt))
}

// ClosestPoint returns the orthogonal projection of pt onto the line.
func (l Line) ClosestPoint(pt Point) Point {
	a, b, c := l.A, l.B, l.C
	return Point{
		X: b*b*pt.X - a*(b*pt.Y+c*pt.W),
		Y: a*a*pt.Y - b*(a*pt.X+c*pt.W),
		W: (a*a + b*b) * pt.W,
	}
}

// PointAlong returns the point at signed distance d from [Line.Center], in
// the line's [Line.Direction].
func (l Line) PointAlong(d float64) Point {
	w2 := l.WeightSquared()
	w := math.Sqrt(w2)
	return Point{
		X: l.B*w*d - l.A*l.C,
		Y: -l.A*w*d - l.B*l.C,
		W: w2,
	}
}

// Eval is PointAlong, parameterizing the line by arc length.
func (l Line) Eval(t float64) Point {
	return l.PointAlong(t)
}

// ParallelDistance returns the signed distance along the line from
// [Line.Center] to the projection of pt.
func (l Line) ParallelDistance(pt Point) float64 {
	return (l.B*pt.X - l.A*pt.Y) / (l.Weight() * pt.W)
}

// PointFrom returns the point at signed distance d along the line from the
// projection of pt.
func (l Line) PointFrom(pt Point, d float64) Point {
	return l.PointAlong(l.ParallelDistance(pt) + d)
}

// ParallelThrough returns the line through pt that is parallel to l.
func (l Line) ParallelThrough(pt Point) Line {
	return Line{
		A: l.A * pt.W,
		B: l.B * pt.W,
		C: -l.A*pt.X - l.B*pt.Y,
	}
}

// PerpendicularThrough returns the line through pt that is perpendicular to
// l.
func (l Line) PerpendicularThrough(pt Point) Line {
	return Line{
		A: -l.B * pt.W,
		B: l.A * pt.W,
		C: l.B*pt.X - l.A*pt.Y,
	}
}

// Offset returns the line parallel to l at signed distance d, measured in
// the direction of the normal. For any point P,
// l.Offset(d).SignedDistance(P) = l.SignedDistance(P) - d.
func (l Line) Offset(d float64) Line {
	return Line{l.A, l.B, l.C - d*l.Weight()}
}

// RotateAbout rotates the line by th radians about fulcrum. Rotating about an
// ideal point yields the line at infinity.
func (l Line) RotateAbout(fulcrum Point, th float64) Line {
	u, v, w := fulcrum.X, fulcrum.Y, fulcrum.W
	s, c := math.Sincos(th)
	a, b := l.A, l.B
	return Line{
		A: w * (a*c - b*s),
		B: w * (b*c + a*s),
		C: (b*u-a*v)*s - (a*u+b*v)*c + a*u + b*v + l.C*w,
	}
}

// MirrorAbout reflects the line across axis.
func (l Line) MirrorAbout(axis Line) Line {
	oa, ob, oc := axis.A, axis.B, axis.C
	return Line{
		A: l.A*(oa*oa-ob*ob) + 2*oa*ob*l.B,
		B: 2*oa*ob*l.A + l.B*(ob*ob-oa*oa),
		C: 2*oa*oc*l.A + 2*ob*oc*l.B - l.C*(oa*oa+ob*ob),
	}
}

// Transform applies an affine transformation to the line, so that
// pt.Transform(aff) lies on l.Transform(aff) whenever pt lies on l.
func (l Line) Transform(aff Affine) Line {
	inv := aff.Invert()
	return Line{
		A: l.A*inv.N0 + l.B*inv.N1,
		B: l.A*inv.N2 + l.B*inv.N3,
		C: l.A*inv.N4 + l.B*inv.N5 + l.C,
	}
}

// String renders the line's equation, for example "2x - y + 3 = 0". Zero
// terms are omitted.
func (l Line) String() string {
	var sb strings.Builder
	writeTerms(&sb, []term{{l.A, "x"}, {l.B, "y"}, {l.C, ""}})
	sb.WriteString(" = 0")
	return sb.String()
}

type term struct {
	coeff float64
	name  string
}

// writeTerms writes a sum of terms with signs folded into the operators.
// Unit coefficients of named terms are elided.
func writeTerms(sb *strings.Builder, terms []term) {
	first := true
	for _, t := range terms {
		if t.coeff == 0 {
			continue
		}
		c := t.coeff
		switch {
		case first && c < 0:
			sb.WriteString("-")
			c = -c
		case !first && c < 0:
			sb.WriteString(" - ")
			c = -c
		case !first:
			sb.WriteString(" + ")
		}
		if c != 1 || t.name == "" {
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		sb.WriteString(t.name)
		first = false
	}
	if first {
		sb.WriteString("0")
	}
}
