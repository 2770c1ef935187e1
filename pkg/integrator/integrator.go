package integrator

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/pkg/errors"
)

// Integrator computes the radiance arriving along a camera ray
type Integrator interface {
	Li(ray core.Ray) core.Color
}

// Names accepted by New
const (
	NameRayTrace    = "raytrace"
	NameNormalShade = "normals"
)

// New creates the integrator called name for s. twoSided only applies to
// ray tracing.
func New(name string, s *scene.Scene, twoSided bool) (Integrator, error) {
	switch name {
	case NameRayTrace, "":
		return &RayTrace{Scene: s, TwoSided: twoSided}, nil
	case NameNormalShade:
		return NewNormalShade(s.Geometry), nil
	default:
		return nil, errors.Errorf("unknown integrator %q (want %q or %q)", name, NameRayTrace, NameNormalShade)
	}
}
