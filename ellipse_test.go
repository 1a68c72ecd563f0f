package projective

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestEllipseArea(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5.0, 5.0)
	e := Ellipse{center, 5, 5}
	if a := e.Area(); !approxEqual(a, 25.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	e = Ellipse{center, 5, -10}
	if a := e.Area(); !approxEqual(a, 50.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 50.0*math.Pi)
	}
}

func TestEllipsePerimeter(t *testing.T) {
	tests := []struct {
		e    Ellipse
		want float64
	}{
		{Ellipse{Origin, 3, 3}, 6 * math.Pi},
		{Ellipse{Origin, 4, 2}, 19.37689644109535},
		{Ellipse{Origin, 2, 4}, 19.37689644109535},
		{Ellipse{Origin, 1, 5}, 21.010044539688995},
		{Ellipse{Origin, 5, 0}, 20},
	}
	for _, tt := range tests {
		if got := tt.e.Perimeter(1e-12); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v: got perimeter %v, expected %v", tt.e, got, tt.want)
		}
	}
}

func TestEllipseEval(t *testing.T) {
	e := Ellipse{Pt(1, 2), 4, 2}
	assertNear(t, e.Eval(0), Pt(5, 2), 1e-15)
	assertNear(t, e.Eval(math.Pi/2), Pt(1, 4), 1e-15)
	assertNear(t, e.Eval(math.Pi), Pt(-3, 2), 1e-15)
	diff(t, Vec(4, 2), e.Radii())
}

func TestEllipseConic(t *testing.T) {
	e := Ellipse{Pt(1, 2), 2, 1}
	diff(t, Conic{A: 0.25, C: 1, D: -0.25, E: -2, F: 3.25}, e.Conic())

	for _, th := range []float64{0, 0.5, 1, 2, 3, 4, 5, 6} {
		if v := e.Conic().Eval(e.Eval(th)); math.Abs(v) > 1e-12 {
			t.Errorf("point at %g is off the conic by %g", th, v)
		}
	}
	if !e.Contains(e.Center) {
		t.Error("ellipse should contain its center")
	}
	if !e.Contains(Pt(2.9, 2)) {
		t.Error("ellipse should contain (2.9, 2)")
	}
	if e.Contains(Pt(2.9, 2.5)) {
		t.Error("ellipse should not contain (2.9, 2.5)")
	}
}

func TestEllipseClosestPoint(t *testing.T) {
	tests := []struct {
		e    Ellipse
		pt   Point
		want Point
	}{
		{Ellipse{Origin, 4, 2}, Pt(10, 3), Pt(3.9127928172033557, 0.41534695425686774)},
		{Ellipse{Pt(1, -1), 4, 2}, Pt(-4, -3), Pt(-2.657151033943415, -1.8101305936277514)},
		{Ellipse{Origin, 3, 1}, HPt(4, 4, 2), Pt(1.7235567790961777, 0.818491296989746)},
	}
	for _, tt := range tests {
		got, err := tt.e.ClosestPoint(tt.pt, 1e-12)
		if err != nil {
			t.Fatalf("closest point of %v to %v: %s", tt.e, tt.pt, err)
		}
		assertNear(t, got, tt.want, 1e-9)

		got, err = tt.e.ClosestPointBracketed(tt.pt, 1e-12)
		if err != nil {
			t.Fatalf("bracketed closest point of %v to %v: %s", tt.e, tt.pt, err)
		}
		assertNear(t, got, tt.want, 1e-6)
	}
}

func TestEllipseClosestPointOnAxes(t *testing.T) {
	wide := Ellipse{Origin, 4, 2}
	tall := Ellipse{Origin, 2, 4}
	tests := []struct {
		e    Ellipse
		pt   Point
		want Point
	}{
		// At the center, the ends of the shorter axis.
		{wide, Origin, Pt(0, 2)},
		{tall, Origin, Pt(2, 0)},
		// Outside the evolute on an axis, the vertex.
		{wide, Pt(5, 0), Pt(4, 0)},
		{wide, Pt(-5, 0), Pt(-4, 0)},
		{tall, Pt(0, 10), Pt(0, 4)},
		{tall, Pt(0, -10), Pt(0, -4)},
		{wide, Pt(0, -1), Pt(0, -2)},
		// Inside the evolute the foot leaves the axis.
		{wide, Pt(1, 0), Pt(4.0/3, 1.8856180831641267)},
		{tall, Pt(0, 1), Pt(1.8856180831641267, 4.0/3)},
		// Circles project along the bearing.
		{Ellipse{Pt(1, 1), 2, 2}, Pt(4, 5), Pt(2.2, 2.6)},
	}
	for _, tt := range tests {
		got, err := tt.e.ClosestPoint(tt.pt, 1e-12)
		if err != nil {
			t.Fatalf("closest point of %v to %v: %s", tt.e, tt.pt, err)
		}
		assertNear(t, got, tt.want, 1e-12)

		got, err = tt.e.ClosestPointBracketed(tt.pt, 1e-12)
		if err != nil {
			t.Fatalf("bracketed closest point of %v to %v: %s", tt.e, tt.pt, err)
		}
		assertNear(t, got, tt.want, 1e-12)
	}
}

func TestEllipseClosestPointNoConvergence(t *testing.T) {
	// A NaN query must fail loudly rather than fall back to t = 0.
	e := Ellipse{Origin, 4, 2}
	if _, err := e.ClosestPoint(Pt(math.NaN(), 1), 1e-9); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got error %v, want %v", err, ErrNoConvergence)
	}
	if _, err := e.Distance(Pt(math.NaN(), 1), 1e-9); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got error %v, want %v", err, ErrNoConvergence)
	}

	// Close to the center of an elongated ellipse the iteration oscillates
	// between two values. Bisection still finds the foot point.
	e = Ellipse{Origin, 1, 4}
	pt := Pt(0.5, 0.1)
	if _, err := e.ClosestPoint(pt, 1e-9); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got error %v, want %v", err, ErrNoConvergence)
	}
	got, err := e.ClosestPointBracketed(pt, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, got, Pt(0.9996669873129134, 0.10322127507242046), 1e-5)
	if v := e.Conic().Eval(got); math.Abs(v) > 1e-9 {
		t.Errorf("%v is off the ellipse by %g", got, v)
	}
}

func TestEllipseClosestPointProperties(t *testing.T) {
	e := Ellipse{Pt(2, -1), 5, 3}
	r := newRand()
	for range 200 {
		pt := randPoint(r).Normalized().Translate(Vec(15, 15).Mul(float64(1 - 2*r.IntN(2))))
		got, err := e.ClosestPointBracketed(pt, 1e-13)
		if err != nil {
			t.Fatalf("bracketed closest point to %v: %s", pt, err)
		}
		if v := e.Conic().Eval(got); math.Abs(v) > 1e-9 {
			t.Fatalf("%v is off the ellipse by %g", got, v)
		}
		// The displacement is normal to the outline.
		n := e.Conic().Polar(got).Normal()
		if c := got.VectorTo(pt).Normalize().Cross(n); math.Abs(c) > 1e-6 {
			t.Fatalf("foot point %v of %v is not on the normal: %g", got, pt, c)
		}

		fp, err := e.ClosestPoint(pt, 1e-12)
		if err != nil {
			continue
		}
		assertNear(t, fp, got, 1e-6)
	}
}

func TestEllipseDistance(t *testing.T) {
	e := Ellipse{Origin, 4, 2}
	d, err := e.Distance(Pt(6, 0), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 2.0, d)

	d, err = e.Distance(Pt(10, 3), 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, math.Hypot(10-3.9127928172033557, 3-0.41534695425686774), d, approx(1e-9))

	d, err = e.DistanceToCircle(Circle{Pt(0, 5), 1}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 2.0, d, approx(1e-12))

	d, err = e.DistanceToCircle(Circle{Pt(0, 5), 4}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, -1.0, d, approx(1e-12))

	cp, err := e.ClosestPointToCircle(Circle{Pt(0, -5), 1}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, cp, Pt(0, -2), 1e-12)
}

func TestEllipseClosestPointToLine(t *testing.T) {
	e := Ellipse{Pt(1, 1), 2, 1}
	want := Pt(1+4/math.Sqrt(5), 1+1/math.Sqrt(5))

	got, err := e.ClosestPointToLine(Ln(1, 1, -10), 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, got, want, 1e-9)

	// The tangent at the result is parallel to the line.
	if c := e.Conic().Polar(got).Normal().Cross(Ln(1, 1, -10).Normal()); math.Abs(c) > 1e-9 {
		t.Errorf("tangent at %v is not parallel: %g", got, c)
	}

	d, err := e.DistanceToLine(Ln(1, 1, -10), 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Ln(1, 1, -10).Distance(want), d, approx(1e-9))

	// Horizontal lines need no iteration.
	got, err = e.ClosestPointToLine(Ln(0, 1, -10), 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, got, Pt(1, 2), 1e-15)
	got, err = e.ClosestPointToLine(Ln(0, 1, 10), 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, got, Pt(1, 0), 1e-15)

	// Lines through the center have no preferred side.
	if _, err := e.ClosestPointToLine(Ln(1, 1, -2), 1e-12); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got error %v, want %v", err, ErrNoConvergence)
	}
	if _, err := e.DistanceToLine(Ln(1, 1, -2), 1e-12); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got error %v, want %v", err, ErrNoConvergence)
	}
}

func TestEllipseClosestPointToLineSolution(t *testing.T) {
	tests := []struct {
		e             Ellipse
		l             Line
		first, second Point
	}{
		{Ellipse{Pt(3, 2), 2, 1}, Ln(1, 0, -10), Pt(1, 2), Pt(5, 2)},
		{Ellipse{Origin, 2, 1}, Ln(0, 1, -5), Pt(0, -1), Pt(0, 1)},
	}
	for _, tt := range tests {
		got, err := tt.e.ClosestPointToLineSolution(tt.l, First)
		if err != nil {
			t.Fatalf("%v, %v: %s", tt.e, tt.l, err)
		}
		assertNear(t, got, tt.first, 1e-12)

		got, err = tt.e.ClosestPointToLineSolution(tt.l, Second)
		if err != nil {
			t.Fatalf("%v, %v: %s", tt.e, tt.l, err)
		}
		assertNear(t, got, tt.second, 1e-12)
	}

	// Agrees with the iterative method on the branch facing the line.
	e := Ellipse{Pt(1, 1), 2, 1}
	l := Ln(1, 1, -10)
	sol, err := e.ClosestPointToLineSolution(l, Second)
	if err != nil {
		t.Fatal(err)
	}
	iter, err := e.ClosestPointToLine(l, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, sol, iter, 1e-9)

	d, err := e.DistanceToLineSolution(Ln(1, 0, -10), First)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 11.0, d, approx(1e-12))

	// Both branches are tangent-parallel points.
	r := newRand()
	for range 100 {
		l := randLine(r)
		for _, s := range []SolutionSet{First, Second} {
			p, err := e.ClosestPointToLineSolution(l, s)
			if err != nil {
				t.Fatalf("%v, %v: %s", l, s, err)
			}
			if v := e.Conic().Eval(p); math.Abs(v) > 1e-9 {
				t.Fatalf("%s solution for %v is off the ellipse by %g", s, l, v)
			}
			if c := e.Conic().Polar(p).Normal().Cross(l.Normal()); math.Abs(c) > 1e-9 {
				t.Fatalf("%s solution for %v is not tangent-parallel: %g", s, l, c)
			}
		}
	}

	if _, err := (Ellipse{Origin, 0, 1}).ClosestPointToLineSolution(l, First); !errors.Is(err, ErrNoRealSolution) {
		t.Errorf("got error %v, want %v", err, ErrNoRealSolution)
	}
	if _, err := (Ellipse{Origin, 0, 1}).DistanceToLineSolution(l, Second); !errors.Is(err, ErrNoRealSolution) {
		t.Errorf("got error %v, want %v", err, ErrNoRealSolution)
	}
}

func TestEllipseIntersectLine(t *testing.T) {
	e := Ellipse{Origin, 2, 1}
	xs, n := e.IntersectLine(XAxis)
	if n != 2 {
		t.Fatalf("got %d intersections, want 2", n)
	}
	assertNear(t, xs[0], Pt(-2, 0), 1e-12)
	assertNear(t, xs[1], Pt(2, 0), 1e-12)

	xs, n = e.IntersectLine(Ln(0, 1, -1))
	if n != 1 {
		t.Fatalf("got %d intersections, want 1", n)
	}
	assertNear(t, xs[0], Pt(0, 1), 1e-12)

	if _, n := e.IntersectLine(Ln(1, 0, -3)); n != 0 {
		t.Errorf("got %d intersections, want 0", n)
	}
}

func TestEllipseTransforms(t *testing.T) {
	e := Ellipse{Pt(1, 1), 4, 2}
	diff(t, Ellipse{Pt(4, 5), 4, 2}, e.Translate(Vec(3, 4)))
	diff(t, Ellipse{Pt(1, 1), 2, 1}, e.Scale(-0.5))

	if !(Ellipse{Pt(0, 0), math.Inf(1), 1}).IsInf() {
		t.Error("ellipse should be infinite")
	}
	if !(Ellipse{Pt(0, 0), 1, math.NaN()}).IsNaN() {
		t.Error("ellipse should be NaN")
	}
	diff(t, "ellipse (1, 1) a=4 b=2", e.String())
}
