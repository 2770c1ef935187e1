package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Material turns radiance arriving at a surface point into reflected color.
// Materials are kept in a side table next to the geometry, never inside it.
type Material interface {
	// BRDF returns the light reflected toward lightOut given incident radiance
	// arriving from lightIn. lightIn points from the surface toward the light,
	// lightOut from the surface toward the viewer. Both are unit length, as is
	// normal.
	BRDF(incident core.Color, lightIn, lightOut, normal core.Vec3) core.Color
}
