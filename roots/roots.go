// Package roots provides scalar root finding for functions of a single
// variable: fixed-point ("Gauss point") iteration, bisection with automatic
// bracket expansion, and a numerically robust quadratic solver.
//
// All functions are generic over the floating-point type and behave the same
// for float32 and float64. Iterative methods run on the calling goroutine and
// are bounded by [MaxIterations].
package roots

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"honnef.co/go/projective/internal/logging"
)

// Float is the set of scalar types the solvers operate on.
type Float interface {
	constraints.Float
}

// MaxIterations bounds every iterative method in this package, including
// the bracket expansion performed by [Bisect].
const MaxIterations = 512

// LooseTolerance is a tolerance suitable for general geometric queries.
const LooseTolerance = 1e-6

var (
	// ErrUnbracketable is returned by [Bisect] when no sign change could be
	// found by expanding the initial bracket.
	ErrUnbracketable = errors.New("roots: unable to bracket a root")

	// ErrBracketInvariant is returned by [Bisect] when neither half of the
	// current bracket shows a sign change. This means f is not continuous,
	// or returned NaN, inside the bracket.
	ErrBracketInvariant = errors.New("roots: bracket lost its sign change")
)

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

func isFinite[F Float](x F) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FixedPoint finds x such that x = f(x) by repeatedly applying f, starting
// at x0, until two successive iterates differ by at most tol.
//
// The second return value reports convergence. It is false when the
// iteration budget is exhausted or an iterate is not finite; the returned
// value is then the last iterate and must not be used as a solution.
func FixedPoint[F Float](f func(F) F, x0, tol F) (F, bool) {
	x := x0
	for iter := 1; iter <= MaxIterations; iter++ {
		prev := x
		x = f(x)
		if !isFinite(x) {
			logIteration("fixed-point iteration diverged", iter, x, false)
			return x, false
		}
		if abs(x-prev) <= tol {
			logIteration("fixed-point iteration converged", iter, x, true)
			return x, true
		}
	}
	logIteration("fixed-point iteration exhausted its budget", MaxIterations, x, false)
	return x, false
}

// Bisect finds a root of f by bisection.
//
// If |f(lo)| or |f(hi)| is already within tol of zero, that bound is
// returned. Otherwise, as long as f(lo) and f(hi) have the same sign, the
// bracket is expanded about its center, doubling its width each step. Once a
// sign change is found, the bracket is halved until its width is at most
// 2·tol or the midpoint's value is within tol of zero.
//
// The boolean result is false if the iteration budget ran out before the
// bracket was narrow enough. [ErrUnbracketable] is returned if no sign
// change was found, and [ErrBracketInvariant] if f behaved inconsistently
// during bisection; both are wrapped with the offending bracket.
func Bisect[F Float](f func(F) F, lo, hi, tol F) (F, bool, error) {
	flo, fhi := f(lo), f(hi)
	if abs(flo) <= tol {
		return lo, true, nil
	}
	if abs(fhi) <= tol {
		return hi, true, nil
	}

	for iter := 0; flo*fhi > 0; iter++ {
		if iter == MaxIterations || !isFinite(lo) || !isFinite(hi) {
			return 0, false, errors.Wrapf(ErrUnbracketable, "after %d expansions, bracket [%g, %g]", iter, float64(lo), float64(hi))
		}
		lo, hi = (3*lo-hi)/2, (3*hi-lo)/2
		flo, fhi = f(lo), f(hi)
	}

	var x F
	for iter := 1; iter <= MaxIterations; iter++ {
		x = (lo + hi) / 2
		fmid := f(x)
		if abs(fmid) <= tol {
			logIteration("bisection converged on value", iter, x, true)
			return x, true, nil
		}

		switch {
		case flo*fmid < 0:
			hi, fhi = x, fmid
		case fhi*fmid < 0:
			lo, flo = x, fmid
		default:
			return x, false, errors.Wrapf(ErrBracketInvariant, "f(%g) = %g, bracket [%g, %g]", float64(x), float64(fmid), float64(lo), float64(hi))
		}

		if abs(hi-lo) <= 2*tol {
			x = (lo + hi) / 2
			logIteration("bisection converged on bracket", iter, x, true)
			return x, true, nil
		}
	}
	logIteration("bisection exhausted its budget", MaxIterations, x, false)
	return x, false, nil
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it returns the root ignoring the
// quadratic term; the other root might be out of representable range. In the
// degenerate case where all coefficients are zero, so that all values of x
// satisfy the equation, a single 0.0 is returned. Roots are sorted in
// ascending order.
func SolveQuadratic[F Float](c0, c1, c2 F) ([2]F, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if !isFinite(sc0) || !isFinite(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if isFinite(root) {
			return [2]F{root}, 1
		} else if c0 == 0 && c1 == 0 {
			return [2]F{0}, 1
		} else {
			return [2]F{}, 0
		}
	}
	arg := sc1*sc1 - 4*sc0
	var root1 F
	if math.IsInf(float64(arg), 0) {
		// sc1 * sc1 overflowed. Find one root using sc1 x + x² = 0, the
		// other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]F{}, 0
		} else if arg == 0 {
			return [2]F{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + F(math.Copysign(math.Sqrt(float64(arg)), float64(sc1))))
	}
	root2 := sc0 / root1
	if !isFinite(root2) {
		return [2]F{root1}, 1
	}
	if root2 > root1 {
		return [2]F{root1, root2}, 2
	}
	return [2]F{root2, root1}, 2
}

func logIteration[F Float](msg string, iterations int, x F, converged bool) {
	if !logging.DebugEnabled() {
		return
	}
	logging.Logger().Debug(msg,
		"iterations", iterations,
		"x", float64(x),
		"converged", converged)
}
