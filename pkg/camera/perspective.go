package camera

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raycaster/pkg/core"
)

// Perspective is a pinhole camera
type Perspective struct {
	origin  core.Vec3
	forward core.Vec3 // unit view direction
	up      core.Vec3 // half the image-plane height at distance 1
	right   core.Vec3 // half the image-plane width at distance 1
}

// NewPerspective creates a pinhole camera. fovDegrees is the horizontal
// field of view and aspect is width/height.
func NewPerspective(origin, forward, up core.Vec3, aspect, fovDegrees float32) *Perspective {
	f, r, u := basis(forward, up)
	halfWidth := math32.Tan(fovDegrees / 180 * math32.Pi / 2)
	return &Perspective{
		origin:  origin,
		forward: f,
		right:   r.Multiply(halfWidth),
		up:      u.Multiply(halfWidth / aspect),
	}
}

// At implements Camera. The direction is left unnormalized here; NewRay
// normalizes it.
func (c *Perspective) At(uv core.Vec2) core.Ray {
	ndc := toNDC(uv)
	direction := c.forward.
		Add(c.up.Multiply(-ndc.Y)).
		Add(c.right.Multiply(ndc.X))
	return core.NewRay(c.origin, direction)
}
