package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D vector, used for image-plane coordinates
type Vec2 struct {
	X, Y float32
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// SubtractScalar subtracts s from both components
func (v Vec2) SubtractScalar(s float32) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

func (v Vec2) Multiply(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) MultiplyVec(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) Divide(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector; zero length yields NaN
func (v Vec2) Normalize() Vec2 {
	return v.Divide(v.Length())
}

func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{min(v.X, other.X), min(v.Y, other.Y)}
}

func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{max(v.X, other.X), max(v.Y, other.Y)}
}

func (v Vec2) MinComponent() float32 {
	return min(v.X, v.Y)
}

func (v Vec2) MaxComponent() float32 {
	return max(v.X, v.Y)
}

// Get returns the component for axis 0 or 1. Any other axis panics.
func (v Vec2) Get(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("core: Vec2 axis %d out of range", axis))
}

func (v Vec2) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}

func (v Vec2) ApproxEqual(other Vec2, tolerance float32) bool {
	return ApproxEqual(v.X, other.X, tolerance) && ApproxEqual(v.Y, other.Y, tolerance)
}
