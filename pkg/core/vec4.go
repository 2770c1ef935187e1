package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a homogeneous 4D vector used by Mat4 transforms
type Vec4 struct {
	X, Y, Z, W float32
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Point4 lifts a point into homogeneous coordinates (w = 1)
func Point4(p Vec3) Vec4 {
	return Vec4{p.X, p.Y, p.Z, 1}
}

// Direction4 lifts a direction into homogeneous coordinates (w = 0)
func Direction4(d Vec3) Vec4 {
	return Vec4{d.X, d.Y, d.Z, 0}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Multiply(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

func (v Vec4) Normalize() Vec4 {
	return v.Multiply(1 / v.Length())
}

// XYZ drops the w component
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Get returns the component for axis 0..3. Any other axis panics.
func (v Vec4) Get(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("core: Vec4 axis %d out of range", axis))
}

func (v Vec4) ApproxEqual(other Vec4, tolerance float32) bool {
	return ApproxEqual(v.X, other.X, tolerance) && ApproxEqual(v.Y, other.Y, tolerance) &&
		ApproxEqual(v.Z, other.Z, tolerance) && ApproxEqual(v.W, other.W, tolerance)
}
