package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color
}

// DefaultLambertian reflects incident light unchanged apart from the cosine
// term. Surfaces without a material are shaded with it.
var DefaultLambertian = NewLambertian(core.White)

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// BRDF implements Material. Light arriving from behind the surface
// contributes nothing.
func (l *Lambertian) BRDF(incident core.Color, lightIn, _ core.Vec3, normal core.Vec3) core.Color {
	cosTheta := max(0, lightIn.Dot(normal))
	return incident.MultiplyColor(l.Albedo).Multiply(cosTheta)
}
