package camera

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Orthographic emits parallel rays from a rectangular image plane
type Orthographic struct {
	origin  core.Vec3 // center of the image plane
	forward core.Vec3 // unit view direction
	up      core.Vec3 // scaled to half the plane height
	right   core.Vec3 // scaled to half the plane width
}

// NewOrthographic creates an orthographic camera whose image plane is
// size.X wide and size.Y tall, centered on origin
func NewOrthographic(origin, forward, up core.Vec3, size core.Vec2) *Orthographic {
	f, r, u := basis(forward, up)
	return &Orthographic{
		origin:  origin,
		forward: f,
		right:   r.Multiply(size.X / 2),
		up:      u.Multiply(size.Y / 2),
	}
}

// At implements Camera
func (c *Orthographic) At(uv core.Vec2) core.Ray {
	ndc := toNDC(uv)
	origin := c.origin.
		Add(c.up.Multiply(-ndc.Y)).
		Add(c.right.Multiply(ndc.X))
	return core.NewRay(origin, c.forward)
}
