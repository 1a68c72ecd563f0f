package projective

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"honnef.co/go/projective/internal/logging"
	"honnef.co/go/projective/roots"
)

// Ellipse is an axis-aligned ellipse. MajorAxis is the semi-axis along x
// and MinorAxis the semi-axis along y; despite the names, either may be the
// larger one.
//
// Tilted ellipses are not represented directly. To query one, transform
// the query into the ellipse's frame with the inverse of its placement and
// transform the answer back.
type Ellipse struct {
	Center    Point
	MajorAxis float64
	MinorAxis float64
}

// Eval returns the point of the ellipse with parameter t, which is the
// eccentric angle and not the bearing from the center.
func (e Ellipse) Eval(t float64) Point {
	return e.Center.Translate(VecElliptical(e.MajorAxis, e.MinorAxis, t))
}

// Radii returns the semi-axes as a vector.
func (e Ellipse) Radii() Vec2 {
	return Vec2{X: e.MajorAxis, Y: e.MinorAxis}
}

// Conic returns the ellipse as a general conic. Its Eval is negative inside
// the ellipse.
func (e Ellipse) Conic() Conic {
	a2 := e.MajorAxis * e.MajorAxis
	b2 := e.MinorAxis * e.MinorAxis
	cx, cy := e.Center.Splat()
	return Conic{
		A: 1 / a2,
		C: 1 / b2,
		D: -cx / a2,
		E: -cy / b2,
		F: cx*cx/a2 + cy*cy/b2 - 1,
	}
}

// axisFoot handles the cases in which the foot point of an offset d from the
// center can be found without iterating: d at the center, circular
// ellipses, and d on one of the axes. It reports false for all other
// offsets.
func (e Ellipse) axisFoot(d Vec2) (float64, bool) {
	if d.IsNaN() {
		return 0, false
	}
	a, b := e.MajorAxis, e.MinorAxis
	q := a*a - b*b
	switch {
	case d.X == 0 && d.Y == 0:
		// The ends of the shorter axis are nearest.
		if a >= b {
			return math.Pi / 2, true
		}
		return 0, true
	case q == 0:
		return d.Angle(), true
	case d.Y == 0:
		// Inside the evolute the foot leaves the axis.
		if a*math.Abs(d.X) < q {
			return math.Acos(a * d.X / q), true
		}
		if d.X > 0 {
			return 0, true
		}
		return math.Pi, true
	case d.X == 0:
		if b*math.Abs(d.Y) < -q {
			return math.Asin(b * d.Y / -q), true
		}
		return math.Copysign(math.Pi/2, d.Y), true
	default:
		return 0, false
	}
}

// ClosestPoint returns the point of the ellipse nearest to pt.
//
// The foot point is found by fixed-point iteration on tan t, which converges
// for points well outside the ellipse but may fail for points close to the
// center of an elongated ellipse. Failure is reported with
// [ErrNoConvergence]; [Ellipse.ClosestPointBracketed] is slower but always
// converges.
func (e Ellipse) ClosestPoint(pt Point, tol float64) (Point, error) {
	d := e.Center.VectorTo(pt)
	if t, ok := e.axisFoot(d); ok {
		return e.Eval(t), nil
	}

	a, b := e.MajorAxis, e.MinorAxis
	q := a*a - b*b
	sign := math.Copysign(1, d.X)
	ca := 2 * d.X * a / q
	cb := 2 * d.Y * b / q
	iter := func(z float64) float64 {
		return (cb + sign*2*z/math.Sqrt(1+z*z)) / ca
	}
	z, ok := roots.FixedPoint(iter, 0, tol)
	if !ok {
		logProjectionFailure("ClosestPoint", e, pt, z)
		return Point{}, errors.Wrapf(ErrNoConvergence, "closest point of %v to %v", e, pt)
	}
	t := math.Atan(z)
	if sign < 0 {
		t += math.Pi
	}
	return e.Eval(t), nil
}

// ClosestPointBracketed returns the point of the ellipse nearest to pt,
// using bisection instead of fixed-point iteration.
//
// Mirrored into the first quadrant, the foot point is (a²x/(s+a²),
// b²y/(s+b²)) for the unique root s of a function that decreases
// monotonically above -min(a², b²). That root is always bracketed, so this
// method fails only for non-finite input.
func (e Ellipse) ClosestPointBracketed(pt Point, tol float64) (Point, error) {
	d := e.Center.VectorTo(pt)
	if t, ok := e.axisFoot(d); ok {
		return e.Eval(t), nil
	}

	a, b := math.Abs(e.MajorAxis), math.Abs(e.MinorAxis)
	a2, b2 := a*a, b*b
	x0, y0 := math.Abs(d.X), math.Abs(d.Y)
	f := func(s float64) float64 {
		fx := a * x0 / (s + a2)
		fy := b * y0 / (s + b2)
		return fx*fx + fy*fy - 1
	}
	var lo float64
	if a < b {
		lo = -a2 + a*x0
	} else {
		lo = -b2 + b*y0
	}
	hi := -min(a2, b2) + math.Hypot(a*x0, b*y0)

	s, ok, err := roots.Bisect(f, lo, hi, tol)
	if err != nil {
		logProjectionFailure("ClosestPointBracketed", e, pt, s)
		return Point{}, errors.Wrapf(err, "closest point of %v to %v", e, pt)
	}
	if !ok {
		logProjectionFailure("ClosestPointBracketed", e, pt, s)
		return Point{}, errors.Wrapf(ErrNoConvergence, "closest point of %v to %v", e, pt)
	}
	return e.Center.Translate(Vec2{
		X: math.Copysign(a2*x0/(s+a2), d.X),
		Y: math.Copysign(b2*y0/(s+b2), d.Y),
	}), nil
}

// ClosestPointToCircle returns the point of the ellipse nearest to the
// circle's center, which is also the point nearest to the circle's outline.
func (e Ellipse) ClosestPointToCircle(c Circle, tol float64) (Point, error) {
	return e.ClosestPoint(c.Center, tol)
}

// ClosestPointToLine returns the point of the ellipse nearest to l.
//
// For lines that miss the ellipse this is the point whose tangent is
// parallel to l, on the side facing l. It is found by fixed-point iteration;
// the iteration fails with [ErrNoConvergence] for lines through the center.
// For lines that cross the ellipse the iteration may settle on a crossing
// point instead, which is then returned.
func (e Ellipse) ClosestPointToLine(l Line, tol float64) (Point, error) {
	a, b := l.A, l.B
	cx, cy := e.Center.Splat()
	c := l.C + a*cx + b*cy
	rx, ry := e.MajorAxis, e.MinorAxis

	var t float64
	if a == 0 {
		t = math.Pi / 2
	} else {
		iter := func(z float64) float64 {
			return (b*ry-a*rx*z)*(a*rx+b*ry*z)/(a*c*rx*math.Sqrt(1+z*z)) + b*ry/(a*rx)
		}
		z, ok := roots.FixedPoint(iter, 0, tol)
		if !ok {
			logProjectionFailure("ClosestPointToLine", e, l, z)
			return Point{}, errors.Wrapf(ErrNoConvergence, "closest point of %v to %v", e, l)
		}
		t = math.Atan(z)
	}

	p1, p2 := e.Eval(t), e.Eval(t+math.Pi)
	if l.Distance(p2) < l.Distance(p1) {
		return p2, nil
	}
	return p1, nil
}

// ClosestPointToLineSolution returns one of the two points of the ellipse
// whose tangents are parallel to l. Together they are the ends of the
// diameter conjugate to l's direction. The result does not depend on l's
// position, only on its direction.
//
// The points are the roots of a quadratic in closed form. [First] and
// [Second] select the smaller and the larger root. [ErrNoRealSolution] is
// returned when the quadratic has no real roots, which for an ellipse
// happens only with degenerate input.
func (e Ellipse) ClosestPointToLineSolution(l Line, s SolutionSet) (Point, error) {
	k := e.Conic()
	g, h := l.A, l.B
	u := k.A*h - k.B*g
	v := k.B*h - k.C*g
	w := k.D*h - k.E*g
	s2 := u*u + v*v

	p := k.A*v*v - 2*k.B*u*v + k.C*u*u
	q := w/s2*(u*v*(k.A-k.C)+k.B*(v*v-u*u)) + (k.E*u - k.D*v)
	r := k.F - 2*w*(k.D*u+k.E*v)/s2 + w*w*(k.A*u*u+2*k.B*u*v+k.C*v*v)/(s2*s2)

	disc := q*q - p*r
	if disc < 0 || math.IsNaN(disc) {
		return Point{}, errors.Wrapf(ErrNoRealSolution, "tangent-parallel point of %v for %v (discriminant %g)", e, l, disc)
	}
	root := math.Sqrt(disc)
	if s == First {
		root = -root
	}
	t := (root - q) / p
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return Point{}, errors.Wrapf(ErrNoRealSolution, "tangent-parallel point of %v for %v", e, l)
	}
	return HPt(-t*v*s2-u*w, t*u*s2-v*w, s2), nil
}

// Distance returns the distance from pt to the outline of the ellipse.
func (e Ellipse) Distance(pt Point, tol float64) (float64, error) {
	cp, err := e.ClosestPoint(pt, tol)
	if err != nil {
		return 0, err
	}
	return cp.Distance(pt), nil
}

// DistanceToCircle returns the gap between the outlines of the ellipse and
// c, measured along the normal through c's center. It is negative when the
// circle reaches past the ellipse's outline.
func (e Ellipse) DistanceToCircle(c Circle, tol float64) (float64, error) {
	cp, err := e.ClosestPointToCircle(c, tol)
	if err != nil {
		return 0, err
	}
	return c.Distance(cp), nil
}

// DistanceToLine returns the distance between l and the point returned by
// [Ellipse.ClosestPointToLine].
func (e Ellipse) DistanceToLine(l Line, tol float64) (float64, error) {
	cp, err := e.ClosestPointToLine(l, tol)
	if err != nil {
		return 0, err
	}
	return l.Distance(cp), nil
}

// DistanceToLineSolution returns the distance between l and the point
// returned by [Ellipse.ClosestPointToLineSolution].
func (e Ellipse) DistanceToLineSolution(l Line, s SolutionSet) (float64, error) {
	cp, err := e.ClosestPointToLineSolution(l, s)
	if err != nil {
		return 0, err
	}
	return l.Distance(cp), nil
}

// IntersectLine returns the points at which l crosses the ellipse, ordered
// along l's direction.
func (e Ellipse) IntersectLine(l Line) ([2]Point, int) {
	return e.Conic().IntersectLine(l)
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	return e.Conic().Eval(pt) < 0
}

func (e Ellipse) Area() float64 {
	return math.Pi * math.Abs(e.MajorAxis*e.MinorAxis)
}

// Perimeter returns the circumference of the ellipse, computed with the
// arithmetic-geometric mean until the correction terms drop below accuracy.
func (e Ellipse) Perimeter(accuracy float64) float64 {
	a, b := math.Abs(e.MajorAxis), math.Abs(e.MinorAxis)
	if a < b {
		a, b = b, a
	}
	if b == 0 {
		return 4 * a
	}
	// C = 2π/M(a, b) · (a² - Σ 2ⁿ⁻¹ cₙ²)
	an, bn := a, b
	sum := (a*a - b*b) / 2
	pow := 1.0
	for range roots.MaxIterations {
		cn := (an - bn) / 2
		if cn <= accuracy*an {
			break
		}
		an, bn = (an+bn)/2, math.Sqrt(an*bn)
		pow *= 2
		sum += pow / 2 * cn * cn
	}
	return 2 * math.Pi / ((an + bn) / 2) * (a*a - sum)
}

func (e Ellipse) IsInf() bool {
	return e.Center.IsInf() || math.IsInf(e.MajorAxis, 0) || math.IsInf(e.MinorAxis, 0)
}

func (e Ellipse) IsNaN() bool {
	return e.Center.IsNaN() || math.IsNaN(e.MajorAxis) || math.IsNaN(e.MinorAxis)
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	e.Center = e.Center.Translate(v)
	return e
}

// Scale scales the ellipse by f about its center.
func (e Ellipse) Scale(f float64) Ellipse {
	f = math.Abs(f)
	e.MajorAxis *= f
	e.MinorAxis *= f
	return e
}

func (e Ellipse) String() string {
	return fmt.Sprintf("ellipse %v a=%g b=%g", e.Center, e.MajorAxis, e.MinorAxis)
}

func logProjectionFailure(op string, e Ellipse, target fmt.Stringer, last float64) {
	if !logging.DebugEnabled() {
		return
	}
	logging.Logger().Debug("ellipse projection failed",
		"op", op,
		"ellipse", e.String(),
		"target", target.String(),
		"last", last)
}
