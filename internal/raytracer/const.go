package raytracer

// Real is the scalar type used for every coordinate in the engine.
type Real = float64

const (
	// Epsilon is the tolerance used by FloatEq: values closer than this are equal.
	Epsilon = 1e-5
	// W components of the two canonical tuple kinds.
	pointW  = 1.0
	vectorW = 0.0
)
