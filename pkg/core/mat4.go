package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mat4 is a row-major 4x4 transform. Points are column vectors, so
// A.Multiply(B) applies B first.
type Mat4 struct {
	rows [4]Vec4
}

// NewMat4 builds a matrix from four rows
func NewMat4(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{rows: [4]Vec4{r0, r1, r2, r3}}
}

// Identity returns the identity transform
func Identity() Mat4 {
	return NewMat4(
		Vec4{1, 0, 0, 0},
		Vec4{0, 1, 0, 0},
		Vec4{0, 0, 1, 0},
		Vec4{0, 0, 0, 1},
	)
}

// Translate returns a translation by the given offset
func Translate(by Vec3) Mat4 {
	return NewMat4(
		Vec4{1, 0, 0, by.X},
		Vec4{0, 1, 0, by.Y},
		Vec4{0, 0, 1, by.Z},
		Vec4{0, 0, 0, 1},
	)
}

// Scale returns a per-axis scale
func Scale(by Vec3) Mat4 {
	return NewMat4(
		Vec4{by.X, 0, 0, 0},
		Vec4{0, by.Y, 0, 0},
		Vec4{0, 0, by.Z, 0},
		Vec4{0, 0, 0, 1},
	)
}

// MirrorX flips the x axis
func MirrorX() Mat4 { return Scale(Vec3{-1, 1, 1}) }

// MirrorY flips the y axis
func MirrorY() Mat4 { return Scale(Vec3{1, -1, 1}) }

// MirrorZ flips the z axis
func MirrorZ() Mat4 { return Scale(Vec3{1, 1, -1}) }

// MirrorOrigin is a point reflection through the origin
func MirrorOrigin() Mat4 { return Scale(Vec3{-1, -1, -1}) }

// Shear returns a shear where e.g. xy is the amount x grows per unit of y
func Shear(xy, xz, yz, yx, zx, zy float32) Mat4 {
	return NewMat4(
		Vec4{1, xy, xz, 0},
		Vec4{yx, 1, yz, 0},
		Vec4{zx, zy, 1, 0},
		Vec4{0, 0, 0, 1},
	)
}

// RotateX rotates by angle radians around the x axis
func RotateX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return NewMat4(
		Vec4{1, 0, 0, 0},
		Vec4{0, c, -s, 0},
		Vec4{0, s, c, 0},
		Vec4{0, 0, 0, 1},
	)
}

// RotateY rotates by angle radians around the y axis
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return NewMat4(
		Vec4{c, 0, s, 0},
		Vec4{0, 1, 0, 0},
		Vec4{-s, 0, c, 0},
		Vec4{0, 0, 0, 1},
	)
}

// RotateZ rotates by angle radians around the z axis
func RotateZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return NewMat4(
		Vec4{c, -s, 0, 0},
		Vec4{s, c, 0, 0},
		Vec4{0, 0, 1, 0},
		Vec4{0, 0, 0, 1},
	)
}

// Row returns row i. Any index outside 0..3 panics.
func (m Mat4) Row(i int) Vec4 {
	if i < 0 || i > 3 {
		panic(fmt.Sprintf("core: Mat4 row %d out of range", i))
	}
	return m.rows[i]
}

// Column returns column j
func (m Mat4) Column(j int) Vec4 {
	return Vec4{m.rows[0].Get(j), m.rows[1].Get(j), m.rows[2].Get(j), m.rows[3].Get(j)}
}

// Multiply returns m * other
func (m Mat4) Multiply(other Mat4) Mat4 {
	var res Mat4
	for i := 0; i < 4; i++ {
		row := m.rows[i]
		res.rows[i] = Vec4{
			row.Dot(other.Column(0)),
			row.Dot(other.Column(1)),
			row.Dot(other.Column(2)),
			row.Dot(other.Column(3)),
		}
	}
	return res
}

// Apply transforms a homogeneous vector
func (m Mat4) Apply(v Vec4) Vec4 {
	return Vec4{m.rows[0].Dot(v), m.rows[1].Dot(v), m.rows[2].Dot(v), m.rows[3].Dot(v)}
}

// TransformPoint applies the full affine transform to a point
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.Apply(Point4(p)).XYZ()
}

// TransformVector applies the linear part only, ignoring translation
func (m Mat4) TransformVector(d Vec3) Vec3 {
	return m.Apply(Direction4(d)).XYZ()
}
