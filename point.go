package projective

import (
	"fmt"
	"math"
)

// Point is a point of the projective plane in homogeneous coordinates.
//
// A point with W ≠ 0 corresponds to the Cartesian position (X/W, Y/W). A
// point with W = 0 is an ideal point, a pure direction "at infinity". Ideal
// points are valid inputs to every operation; Euclidean quantities derived
// from them are infinite or NaN.
//
// Points are equal as projective points if they differ only by a non-zero
// factor. Use [Point.IsCoincident] rather than == to compare them.
type Point struct {
	X float64
	Y float64
	W float64
}

var (
	// Origin is the Cartesian origin.
	Origin = Point{0, 0, 1}
	// AlongX is the ideal point in the direction of the x axis.
	AlongX = Point{1, 0, 0}
	// AlongY is the ideal point in the direction of the y axis.
	AlongY = Point{0, 1, 0}
)

// Pt returns the Cartesian point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, W: 1}
}

// HPt returns the point with homogeneous coordinates (x, y, w).
func HPt(x, y, w float64) Point {
	return Point{X: x, Y: y, W: w}
}

// PtFromVec returns the Cartesian point at the tip of v.
func PtFromVec(v Vec2) Point {
	return Pt(v.X, v.Y)
}

// PtPolar returns the Cartesian point at distance r and bearing th from the
// origin.
func PtPolar(r, th float64) Point {
	return PtFromVec(VecPolar(r, th))
}

// Coords returns the homogeneous coordinates as an array.
func (pt Point) Coords() [3]float64 {
	return [3]float64{pt.X, pt.Y, pt.W}
}

// At returns coordinate i, where 0 is X, 1 is Y and 2 is W. It panics if i
// is out of range.
func (pt Point) At(i int) float64 {
	return pt.Coords()[i]
}

// Splat returns the Cartesian coordinates of the point.
func (pt Point) Splat() (float64, float64) {
	return pt.X / pt.W, pt.Y / pt.W
}

// Vec2 returns the Cartesian position of the point as a vector from the
// origin.
func (pt Point) Vec2() Vec2 {
	return Vec2{X: pt.X / pt.W, Y: pt.Y / pt.W}
}

// Weight returns W, the factor that converts homogeneous quantities into
// Euclidean ones.
func (pt Point) Weight() float64 {
	return pt.W
}

// IsFinite reports whether the point is not an ideal point.
func (pt Point) IsFinite() bool {
	return pt.W != 0
}

// IsZero reports whether all three coordinates are zero. Such a point does
// not correspond to any point of the plane.
func (pt Point) IsZero() bool {
	return pt.X == 0 && pt.Y == 0 && pt.W == 0
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.W, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.W)
}

// Normalized returns the same point scaled to W = 1. Ideal points are
// instead scaled so that their direction has unit length.
func (pt Point) Normalized() Point {
	if pt.W == 0 {
		h := math.Hypot(pt.X, pt.Y)
		return Point{X: pt.X / h, Y: pt.Y / h}
	}
	return Point{X: pt.X / pt.W, Y: pt.Y / pt.W, W: 1}
}

// Add returns the coordinate-wise sum of two points.
func (pt Point) Add(o Point) Point {
	return Point{pt.X + o.X, pt.Y + o.Y, pt.W + o.W}
}

// Sub returns the coordinate-wise difference of two points.
func (pt Point) Sub(o Point) Point {
	return Point{pt.X - o.X, pt.Y - o.Y, pt.W - o.W}
}

// Scale multiplies all three coordinates by f. For f ≠ 0 the result is the
// same projective point.
func (pt Point) Scale(f float64) Point {
	return Point{f * pt.X, f * pt.Y, f * pt.W}
}

// Negate returns pt.Scale(-1).
func (pt Point) Negate() Point {
	return Point{-pt.X, -pt.Y, -pt.W}
}

// Translate moves the point by v. Ideal points are unaffected.
func (pt Point) Translate(v Vec2) Point {
	return Point{
		X: pt.X + pt.W*v.X,
		Y: pt.Y + pt.W*v.Y,
		W: pt.W,
	}
}

// VectorTo returns the Cartesian displacement from pt to target.
func (pt Point) VectorTo(target Point) Vec2 {
	wa, wb := target.W, pt.W
	return Vec2{
		X: wb*target.X - wa*pt.X,
		Y: wb*target.Y - wa*pt.Y,
	}.Div(wa * wb)
}

// Midpoint returns the point halfway between pt and o.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: pt.X*o.W + o.X*pt.W,
		Y: pt.Y*o.W + o.Y*pt.W,
		W: 2 * pt.W * o.W,
	}
}

// Distance returns the Euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.VectorTo(o).Hypot()
}

// DistanceToLine returns the signed distance from the point to l. See
// [Line.SignedDistance].
func (pt Point) DistanceToLine(l Line) float64 {
	return l.SignedDistance(pt)
}

// IsCoincident reports whether pt and o are the same projective point, that
// is, whether they differ only by a non-zero factor.
func (pt Point) IsCoincident(o Point) bool {
	return Join(pt, o) == Line{}
}

// IsCoincidentTol reports whether the Cartesian positions of pt and o differ
// by at most tol in each coordinate.
func (pt Point) IsCoincidentTol(o Point, tol float64) bool {
	d := pt.VectorTo(o)
	return math.Abs(d.X) <= tol && math.Abs(d.Y) <= tol
}

// IsOn reports whether the point lies exactly on l.
func (pt Point) IsOn(l Line) bool {
	return Dot(l, pt) == 0
}

// RotateAbout rotates the point by th radians about fulcrum. The result is
// computed directly on homogeneous coordinates, so ideal points rotate as
// directions.
func (pt Point) RotateAbout(fulcrum Point, th float64) Point {
	u, v, f := fulcrum.X, fulcrum.Y, fulcrum.W
	s, c := math.Sincos(th)
	dx := pt.X*f - u*pt.W
	dy := pt.Y*f - v*pt.W
	return Point{
		X: u*pt.W + c*dx - s*dy,
		Y: v*pt.W + s*dx + c*dy,
		W: f * pt.W,
	}
}

// MirrorAbout reflects the point across axis.
func (pt Point) MirrorAbout(axis Line) Point {
	a, b, c := axis.A, axis.B, axis.C
	return Point{
		X: pt.X*(b*b-a*a) - 2*a*(b*pt.Y+c*pt.W),
		Y: pt.Y*(a*a-b*b) - 2*b*(a*pt.X+c*pt.W),
		W: pt.W * (a*a + b*b),
	}
}

// Transform applies an affine transformation to the point.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4*pt.W,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5*pt.W,
		W: pt.W,
	}
}

// String renders finite points as (x, y) in Cartesian coordinates and ideal
// points as [x : y : 0].
func (pt Point) String() string {
	if pt.W == 0 {
		return fmt.Sprintf("[%g : %g : 0]", pt.X, pt.Y)
	}
	x, y := pt.Splat()
	return fmt.Sprintf("(%g, %g)", x, y)
}
