package camera

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Camera maps image-plane coordinates to world-space rays
type Camera interface {
	// At returns the ray through uv, where uv spans [0,1]² with (0,0) at the
	// top-left of the image and v growing downward.
	At(uv core.Vec2) core.Ray
}

// toNDC maps [0,1]² to [-1,1]²
func toNDC(uv core.Vec2) core.Vec2 {
	return uv.SubtractScalar(0.5).Multiply(2)
}

// basis returns the unit forward vector and a unit right/up pair orthogonal
// to it. up is only a hint and need not be perpendicular to forward.
func basis(forward, up core.Vec3) (f, r, u core.Vec3) {
	f = forward.Normalize()
	r = f.Cross(up.Normalize()).Normalize()
	u = r.Cross(f).Normalize()
	return f, r, u
}
