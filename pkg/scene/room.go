package scene

import (
	"github.com/df07/go-raycaster/pkg/camera"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// Room dimensions in world units. The open side faces +z.
var roomSize = core.NewVec3(6, 4, 8)

// NewRoomScene creates a box room without a front wall, built from triangles.
// The walls are modelled on the unit cube and placed with a transform, so
// every wall normal points into the room.
func NewRoomScene() *Scene {
	position := core.NewVec3(0, 2, 3)
	cameraConfig := camera.Config{
		Projection: camera.ProjectionPerspective,
		Position:   position,
		Forward:    core.NewVec3(0, 1.2, -5).Subtract(position),
		Up:         core.NewVec3(0, 1, 0),
		FOV:        70,
	}

	s := NewScene("room").mustSetCamera(cameraConfig, 320, 240)

	white := material.NewLambertian(core.Gray(0.73))
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))

	// unit cube -> [-3,3] x [0,4] x [-8,0]
	place := core.Translate(core.NewVec3(-roomSize.X/2, 0, -roomSize.Z)).Multiply(core.Scale(roomSize))

	x := core.NewVec3(1, 0, 0)
	y := core.NewVec3(0, 1, 0)
	z := core.NewVec3(0, 0, 1)

	walls := geometry.NewGroup()
	addQuad(walls, place, core.Vec3{}, x, z, white)           // floor
	addQuad(walls, place, core.NewVec3(0, 1, 0), z, x, white) // ceiling
	addQuad(walls, place, core.Vec3{}, y, x, white)           // back
	addQuad(walls, place, core.Vec3{}, z, y, red)             // left
	addQuad(walls, place, core.NewVec3(1, 0, 0), y, z, green) // right
	s.Add(walls)

	s.AddWithMaterial(geometry.NewSphere(core.NewVec3(-1, 0.8, -5), 0.8), white)
	s.AddWithMaterial(geometry.NewAABB(core.NewVec3(0.5, 0, -5.5), core.NewVec3(1.7, 1.2, -4.3)), white)

	s.AddPointLight(core.NewVec3(0, 3.5, -4), core.Gray(12))

	return s
}

// addQuad appends the parallelogram corner, corner+u, corner+u+v, corner+v as
// two triangles. Both triangles face along v × u; corner, u and v are mapped
// through transform first.
func addQuad(g *geometry.Group, transform core.Mat4, corner, u, v core.Vec3, m material.Material) {
	c := transform.TransformPoint(corner)
	u = transform.TransformVector(u)
	v = transform.TransformVector(v)

	g.PushWithMaterial(geometry.NewTriangle(c, c.Add(u), c.Add(v)), m)
	g.PushWithMaterial(geometry.NewTriangle(c.Add(u), c.Add(u).Add(v), c.Add(v)), m)
}
