package projective

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs of floats, with an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// assertNear fails if got is not within epsilon of want. Both points must be
// finite.
func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); !(d <= epsilon) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func randPoint(r *rand.Rand) Point {
	// Random weights exercise the homogeneous arithmetic; keep them away from
	// zero so that points stay finite.
	w := 0.5 + r.Float64()*2
	if r.IntN(2) == 0 {
		w = -w
	}
	return HPt((r.Float64()*20-10)*w, (r.Float64()*20-10)*w, w)
}

func randLine(r *rand.Rand) Line {
	return Join(randPoint(r), randPoint(r))
}
