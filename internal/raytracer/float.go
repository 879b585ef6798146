package raytracer

import "math"

// FloatEq reports whether a and b differ by strictly less than Epsilon.
// The relation is not transitive, and NaN is never equal to anything.
func FloatEq(a, b Real) bool {
	return math.Abs(a-b) < Epsilon
}
