// Package projective provides primitives and routines for geometry in the
// real projective plane. It was designed to serve the needs of interactive
// drafting and construction tools, but is intended to be general enough to
// be useful for other applications.
//
// # Homogeneous coordinates
//
// Points and lines are stored as homogeneous triples. A [Point] (X, Y, W)
// with W ≠ 0 is the Cartesian position (X/W, Y/W); with W = 0 it is an ideal
// point, a direction "at infinity". A [Line] (A, B, C) is the set of points
// satisfying A·X + B·Y + C·W = 0. The line with A = B = 0 is the line at
// infinity, [Horizon].
//
// Triples that differ by a non-zero factor describe the same point or line.
// Because of this, == is rarely the right comparison; use
// [Point.IsCoincident] and [Line.IsCoincident] instead.
//
// Ideal points and the line at infinity are ordinary values. No operation
// rejects them. Euclidean quantities derived from them, such as distances,
// are infinite or NaN, and constructions involving them produce further
// ideal elements: parallel lines [Meet] at an ideal point, and rotating a
// line about an ideal point yields the horizon.
//
// # Duality
//
// [Join] constructs the line through two points and [Meet] the point common
// to two lines. Both are the same cross product, applied to point triples
// or to line triples. [Dot] is the incidence pairing; it is zero exactly
// when a point lies on a line, and divided by the weights of its arguments
// it is the signed distance between them.
//
// # Curves
//
// [Circle] and the axis-aligned [Ellipse] support closest-point,
// distance and intersection queries against points, lines and circles.
// Both convert to a general [Conic], which exposes the matrix form together
// with polar lines, poles and tangency.
//
// Projecting a point onto an ellipse has no closed form. It is solved
// iteratively with the solvers of the [honnef.co/go/projective/roots]
// package, and the queries report failure with [ErrNoConvergence] instead of
// returning a guess. Tilted ellipses are handled by the caller, by mapping
// queries into the ellipse's frame with an [Affine] transformation.
//
// # Logging
//
// The package is silent by default. Install a [log/slog] logger with
// [SetLogger] to observe the iterative solvers at debug level.
//
// # Concurrency
//
// All types are immutable values and all functions are pure, so everything
// in this package is safe for concurrent use.
package projective
