package projective

import (
	"iter"
	"math"
)

// Affine is an affine transformation of the plane, stored as the first two
// rows of the augmented matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so that (A.Mul(B)) applied to p equals A applied to (B applied to p).
//
// Ellipses in this package are axis aligned. A tilted ellipse is queried by
// transforming the query into the ellipse's frame with the inverse of its
// placement and transforming the answer back.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors across the x axis, converting between y-up and y-down
// spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX mirrors across the y axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// Scale returns a non-uniform scaling by x and y about the origin.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate returns a translation by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate returns a rotation by th radians about the origin. Positive angles
// rotate positive x towards positive y.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns a rotation by th radians about center. Rotating about
// an ideal point is undefined and produces NaN coefficients.
//
// For finite centers this agrees with [Point.RotateAbout].
func RotateAbout(th float64, center Point) Affine {
	c := center.Vec2()
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Skew returns a shear with horizontal factor x and vertical factor y.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Reflect returns the reflection across axis. The line at infinity has no
// reflection and produces NaN coefficients.
//
// This agrees with [Point.MirrorAbout].
func Reflect(axis Line) Affine {
	n := axis.Normal()
	// Householder matrix I - 2nnᵀ, followed by the translation that moves the
	// foot of the origin back onto the axis.
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	d := -2 * axis.C / axis.Weight()
	return Affine{
		1 - 2*x2,
		-2 * xy,
		-2 * xy,
		1 - 2*y2,
		d * n.X,
		d * n.Y,
	}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// NewAffine creates a transformation from an array of coefficients.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// PreRotate returns a rotation by th followed by aff.
func (aff Affine) PreRotate(th float64) Affine {
	return aff.Mul(Rotate(th))
}

// ThenRotate returns aff followed by a rotation by th.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// PreRotateAbout returns a rotation by th about center followed by aff.
func (aff Affine) PreRotateAbout(th float64, center Point) Affine {
	return aff.Mul(RotateAbout(th, center))
}

// ThenRotateAbout returns aff followed by a rotation by th about center.
func (aff Affine) ThenRotateAbout(th float64, center Point) Affine {
	return RotateAbout(th, center).Mul(aff)
}

// PreScale returns a scaling by (x, y) followed by aff.
func (aff Affine) PreScale(x, y float64) Affine {
	return aff.Mul(Scale(x, y))
}

// ThenScale returns aff followed by a scaling by (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// PreTranslate returns a translation by v followed by aff.
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate returns aff followed by a translation by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// ThenReflect returns aff followed by a reflection across axis.
func (aff Affine) ThenReflect(axis Line) Affine {
	return Reflect(axis).Mul(aff)
}

// Determinant returns the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. It produces NaN or infinite
// coefficients when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Matrix returns the full 3×3 augmented matrix, indexed [row][column].
func (aff Affine) Matrix() [3][3]float64 {
	return [3][3]float64{
		{aff.N0, aff.N2, aff.N4},
		{aff.N1, aff.N3, aff.N5},
		{0, 0, 1},
	}
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.N0, 0) ||
		math.IsInf(aff.N1, 0) ||
		math.IsInf(aff.N2, 0) ||
		math.IsInf(aff.N3, 0) ||
		math.IsInf(aff.N4, 0) ||
		math.IsInf(aff.N5, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}

// Translation returns the translation component of the transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// WithTranslation replaces the translation component of the transformation.
func (aff Affine) WithTranslation(v Vec2) Affine {
	aff.N4 = v.X
	aff.N5 = v.Y
	return aff
}

// Transform lazily applies aff to every element of seq. It works for any
// type with a Transform method, such as [Point], [Line] and [Conic].
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
