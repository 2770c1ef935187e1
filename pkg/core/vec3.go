package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat3 returns a vector with all components set to s
func Splat3(s float32) Vec3 {
	return Vec3{s, s, s}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float32) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Reciprocal returns 1/v per component. Zero components become ±Inf.
func (v Vec3) Reciprocal() Vec3 {
	return Vec3{1 / v.X, 1 / v.Y, 1 / v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the euclidean distance between two points
func (v Vec3) Distance(other Vec3) float32 {
	return v.Subtract(other).Length()
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector yields NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Min returns the component-wise minimum of two vectors
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// MinComponent returns the smallest component
func (v Vec3) MinComponent() float32 {
	return min(v.X, v.Y, v.Z)
}

// MaxComponent returns the largest component
func (v Vec3) MaxComponent() float32 {
	return max(v.X, v.Y, v.Z)
}

// Get returns the component for axis 0, 1 or 2. Any other axis panics.
func (v Vec3) Get(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("core: Vec3 axis %d out of range", axis))
}

// IsNaN reports whether any component is NaN
func (v Vec3) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

// ApproxEqual compares component-wise within tolerance
func (v Vec3) ApproxEqual(other Vec3, tolerance float32) bool {
	return ApproxEqual(v.X, other.X, tolerance) &&
		ApproxEqual(v.Y, other.Y, tolerance) &&
		ApproxEqual(v.Z, other.Z, tolerance)
}

// Unit axis vectors indexed by axis number
var unitAxes = [3]Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// UnitAxis returns the unit vector along axis 0, 1 or 2
func UnitAxis(axis int) Vec3 {
	if axis < 0 || axis > 2 {
		panic(fmt.Sprintf("core: unit axis %d out of range", axis))
	}
	return unitAxes[axis]
}
