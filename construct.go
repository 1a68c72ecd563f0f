package projective

import (
	"math"
	"strconv"
)

// Corner selects which of the four circles tangent to two crossing edges
// [TanTanRadius] constructs. The edges are the lines from the apex through
// each side point, and each edge's positive side is the side its normal
// points to.
type Corner int

const (
	// Inside places the circle on the positive side of the first edge and
	// the negative side of the second, which for a counter-clockwise pair of
	// sides is the corner between them.
	Inside Corner = iota
	// Opposing is the corner vertically opposite to Inside.
	Opposing
	// Outside1 is on the positive side of both edges.
	Outside1
	// Outside2 is on the negative side of both edges.
	Outside2
)

func (c Corner) String() string {
	switch c {
	case Inside:
		return "Inside"
	case Opposing:
		return "Opposing"
	case Outside1:
		return "Outside1"
	case Outside2:
		return "Outside2"
	default:
		return "Corner(" + strconv.Itoa(int(c)) + ")"
	}
}

// signs returns the offset directions of the first and second edge.
func (c Corner) signs() (float64, float64) {
	switch c {
	case Inside:
		return 1, -1
	case Opposing:
		return -1, 1
	case Outside1:
		return 1, 1
	case Outside2:
		return -1, -1
	default:
		panic("projective: invalid Corner " + c.String())
	}
}

// TanTanRadius returns the center of the circle of the given radius that is
// tangent to both the edge from apex through side1 and the edge from apex
// through side2, in the selected corner.
//
// Parallel edges produce an ideal point. It panics if corner is not one of
// the defined constants.
func TanTanRadius(apex, side1, side2 Point, radius float64, corner Corner) Point {
	s1, s2 := corner.signs()
	edge1 := Join(apex, side1).Offset(s1 * radius)
	edge2 := Join(apex, side2).Offset(s2 * radius)
	return Meet(edge1, edge2)
}

// TanTanCircle returns the circle constructed by [TanTanRadius].
func TanTanCircle(apex, side1, side2 Point, radius float64, corner Corner) Circle {
	return Circle{
		Center: TanTanRadius(apex, side1, side2, radius, corner),
		Radius: math.Abs(radius),
	}
}
