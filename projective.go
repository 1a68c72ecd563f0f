package projective

import (
	"strconv"

	"github.com/pkg/errors"

	"honnef.co/go/projective/roots"
)

// DefaultTolerance is a tolerance suitable for the iterative queries of this
// package when the caller has no better estimate.
const DefaultTolerance = roots.LooseTolerance

var (
	// ErrNoConvergence is returned when an iterative projection failed to
	// settle on a finite answer within its iteration budget.
	ErrNoConvergence = errors.New("projective: iteration did not converge")

	// ErrNoRealSolution is returned when a closed-form query has only complex
	// solutions.
	ErrNoRealSolution = errors.New("projective: no real solution")
)

// Join returns the line through p and q.
//
// Join is anti-symmetric: Join(q, p) is Join(p, q).Negate(). If p and q are
// the same projective point, the result is the zero Line, which does not
// describe any line.
func Join(p, q Point) Line {
	return Line{
		A: p.Y*q.W - p.W*q.Y,
		B: p.W*q.X - p.X*q.W,
		C: p.X*q.Y - p.Y*q.X,
	}
}

// Meet returns the point at which l and m intersect. Parallel lines meet at
// an ideal point.
func Meet(l, m Line) Point {
	return Point{
		X: l.B*m.C - l.C*m.B,
		Y: l.C*m.A - l.A*m.C,
		W: l.A*m.B - l.B*m.A,
	}
}

// Dot returns the incidence pairing of l and p, A·X + B·Y + C·W. It is zero
// exactly when p lies on l.
func Dot(l Line, p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C*p.W
}

// SolutionSet selects one of the two solutions of a query that has two
// branches.
type SolutionSet int

const (
	First SolutionSet = iota
	Second
)

func (s SolutionSet) String() string {
	switch s {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return "SolutionSet(" + strconv.Itoa(int(s)) + ")"
	}
}
