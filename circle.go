package projective

import (
	"fmt"
	"math"

	"honnef.co/go/projective/roots"
)

// Circle is a circle in the Euclidean plane. A circle with an ideal center
// has no meaningful geometry; its queries produce NaN or infinite results.
type Circle struct {
	Center Point
	Radius float64
}

// CircleFromCenterAndPoint returns the circle around center that passes
// through pt.
func CircleFromCenterAndPoint(center, pt Point) Circle {
	return Circle{
		Center: center,
		Radius: center.Distance(pt),
	}
}

// CircleFromDiagonals returns the circle that has p and q as opposite ends
// of a diameter.
func CircleFromDiagonals(p, q Point) Circle {
	return Circle{
		Center: p.Midpoint(q),
		Radius: p.Distance(q) / 2,
	}
}

// Eval returns the point of the circle at angle t, measured from the
// positive x axis.
func (c Circle) Eval(t float64) Point {
	return c.Center.Translate(VecPolar(c.Radius, t))
}

// ClosestPoint returns the point of the circle nearest to pt. If pt is the
// center, every point of the circle is equally near; the point at angle 0 is
// returned.
func (c Circle) ClosestPoint(pt Point) Point {
	return c.Eval(c.Center.VectorTo(pt).Angle())
}

// ClosestPointToLine returns the point of the circle nearest to l. For lines
// that cross the circle, this is the point of the circle farthest inside the
// half-plane the center is in.
func (c Circle) ClosestPointToLine(l Line) Point {
	return c.ClosestPoint(l.ClosestPoint(c.Center))
}

// Distance returns the distance from the circle's outline to pt. It is
// negative for points inside the circle.
func (c Circle) Distance(pt Point) float64 {
	return c.Center.Distance(pt) - c.Radius
}

// DistanceToCircle returns the gap between the outlines of c and o, measured
// along the line through their centers. It is negative for overlapping
// circles.
func (c Circle) DistanceToCircle(o Circle) float64 {
	return c.Center.Distance(o.Center) - c.Radius - o.Radius
}

// DistanceToLine returns the gap between the circle and l. It is negative
// when l crosses the circle.
func (c Circle) DistanceToLine(l Line) float64 {
	return l.Distance(c.Center) - c.Radius
}

// Intersect returns the points at which the outlines of c and o cross.
//
// No points are returned if the circles are separate, if one contains the
// other, or if they are concentric. Touching circles return exactly one
// point.
func (c Circle) Intersect(o Circle) ([2]Point, int) {
	v := c.Center.VectorTo(o.Center)
	d := v.Hypot()
	r1, r2 := c.Radius, o.Radius
	if d > r1+r2 || d < math.Abs(r1-r2) || d == 0 {
		return [2]Point{}, 0
	}

	// Distance from c's center to the radical line, along v.
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	u := v.Div(d)
	foot := c.Center.Translate(u.Mul(a))
	off := Vec2{X: -u.Y * h, Y: u.X * h}

	p1 := foot.Translate(off)
	p2 := foot.Translate(off.Negate())
	if p1.IsCoincident(p2) {
		return [2]Point{p1}, 1
	}
	return [2]Point{p1, p2}, 2
}

// IntersectLine returns the points at which l crosses the circle, ordered
// along l's direction. Tangent lines return a single point.
func (c Circle) IntersectLine(l Line) ([2]Point, int) {
	if !l.IsFinite() {
		return [2]Point{}, 0
	}
	d := l.SignedDistance(c.Center)
	foot := l.ClosestPoint(c.Center)
	ts, n := roots.SolveQuadratic(d*d-c.Radius*c.Radius, 0, 1)
	dir := l.Direction()
	var out [2]Point
	for i := range n {
		out[i] = foot.Translate(dir.Mul(ts[i]))
	}
	return out, n
}

// TangentAt returns the tangent line at angle t, oriented so that its
// normal points away from the center.
func (c Circle) TangentAt(t float64) Line {
	return LineAwayFromOrigin(PtPolar(c.Radius, t)).
		Negate().
		Transform(Translate(c.Center.Vec2()))
}

// Conic returns the circle as a general conic. Its Eval is negative inside
// the circle.
func (c Circle) Conic() Conic {
	cx, cy := c.Center.Splat()
	return Conic{
		A: 1,
		C: 1,
		D: -cx,
		E: -cy,
		F: cx*cx + cy*cy - c.Radius*c.Radius,
	}
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Center.VectorTo(pt).Hypot2() < c.Radius*c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

// Scale scales the circle by f about its center.
func (c Circle) Scale(f float64) Circle {
	return Circle{
		Center: c.Center,
		Radius: c.Radius * math.Abs(f),
	}
}

func (c Circle) RotateAbout(fulcrum Point, th float64) Circle {
	return Circle{
		Center: c.Center.RotateAbout(fulcrum, th),
		Radius: c.Radius,
	}
}

func (c Circle) MirrorAbout(axis Line) Circle {
	return Circle{
		Center: c.Center.MirrorAbout(axis),
		Radius: c.Radius,
	}
}

func (c Circle) String() string {
	return fmt.Sprintf("circle %v r=%g", c.Center, c.Radius)
}
