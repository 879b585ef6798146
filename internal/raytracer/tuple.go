package raytracer

import "fmt"

// Tuple is a homogeneous coordinate in 3D space.
// W == 1 marks a point, W == 0 marks a vector; any other W is legal but has
// no point/vector meaning (e.g. the sum of two points).
type Tuple struct {
	X, Y, Z, W Real
}

func NewTuple(x, y, z, w Real) Tuple { return Tuple{x, y, z, w} }

// NewPoint returns the tuple (x, y, z, 1).
func NewPoint(x, y, z Real) Tuple { return Tuple{x, y, z, pointW} }

// NewVector returns the tuple (x, y, z, 0).
func NewVector(x, y, z Real) Tuple { return Tuple{x, y, z, vectorW} }

// IsPoint and IsVector compare W exactly, while Equal uses FloatEq.
// A tuple with W = 1.000001 is Equal to a point but is not IsPoint.
func (t Tuple) IsPoint() bool  { return t.W == pointW }
func (t Tuple) IsVector() bool { return t.W == vectorW }

// Equal reports whether all four components of a and b are FloatEq.
func (a Tuple) Equal(b Tuple) bool {
	return FloatEq(a.X, b.X) &&
		FloatEq(a.Y, b.Y) &&
		FloatEq(a.Z, b.Z) &&
		FloatEq(a.W, b.W)
}

// Tuple functions, W takes part in all of them
func (a Tuple) Add(b Tuple) Tuple { return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Tuple) Sub(b Tuple) Tuple { return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (t Tuple) Mul(s Real) Tuple  { return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s} }
func (t Tuple) Neg() Tuple        { return Tuple{-t.X, -t.Y, -t.Z, -t.W} }

func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
