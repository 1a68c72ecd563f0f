package projective

import (
	"fmt"
	"math"
)

// Vec2 is a Cartesian displacement. Unlike [Point] it has no weight and is
// unaffected by translation.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// VecPolar returns the vector of length r at angle th.
func VecPolar(r, th float64) Vec2 {
	return VecFromAngle(th).Mul(r)
}

// VecElliptical returns the offset of the point at parameter th on an
// axis-aligned ellipse with radii rx and ry, centered at the origin.
func VecElliptical(rx, ry, th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: rx * x,
		Y: ry * y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns atan2(y, x), the bearing of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Polar returns the magnitude and the bearing of the vector.
func (v Vec2) Polar() (r, th float64) {
	return v.Hypot(), v.Angle()
}

// Normalize returns a vector of magnitude 1 with the same bearing as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// Perp returns v rotated by +90°.
func (v Vec2) Perp() Vec2 {
	return Vec2{
		X: -v.Y,
		Y: v.X,
	}
}

// Rotate returns v rotated by th radians, positive x towards positive y.
func (v Vec2) Rotate(th float64) Vec2 {
	s, c := math.Sincos(th)
	return Vec2{
		X: c*v.X - s*v.Y,
		Y: s*v.X + c*v.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
