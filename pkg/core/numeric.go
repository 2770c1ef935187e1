package core

import "golang.org/x/exp/constraints"

const (
	// Epsilon is the determinant threshold below which a ray is treated as
	// parallel to a triangle's plane.
	Epsilon float32 = 1e-7

	// RayEpsilon is the default lower bound of a ray's valid interval. It keeps
	// secondary rays from re-hitting the surface they start on.
	RayEpsilon float32 = 1e-4

	// DefaultTolerance is used by the ApproxEqual helpers on vector types.
	DefaultTolerance float32 = 1e-5
)

// Clamp limits v to the closed range [lo, hi]
func Clamp[T constraints.Float](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

// ApproxEqual reports whether a and b differ by at most tolerance
func ApproxEqual[T constraints.Float](a, b, tolerance T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// Sign returns -1, 0 or 1 according to the sign of v
func Sign[T constraints.Float](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
