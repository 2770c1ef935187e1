package camera

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/pkg/errors"
)

// Projection names a camera variant
type Projection string

const (
	ProjectionPerspective  Projection = "perspective"
	ProjectionOrthographic Projection = "orthographic"
)

// Config holds the user-facing camera parameters
type Config struct {
	Projection Projection
	Position   core.Vec3
	Forward    core.Vec3 // view direction, need not be unit length
	Up         core.Vec3 // up hint
	FOV        float32   // horizontal field of view in degrees (perspective)
	Aspect     float32   // width/height (perspective)
	Size       core.Vec2 // image-plane width/height (orthographic)
}

// Validate checks the parameters that would otherwise produce NaN rays
func (c Config) Validate() error {
	if c.Forward.LengthSquared() == 0 {
		return errors.New("camera forward vector has zero length")
	}
	if c.Up.LengthSquared() == 0 {
		return errors.New("camera up vector has zero length")
	}
	if c.Forward.Normalize().Cross(c.Up.Normalize()).LengthSquared() < core.Epsilon {
		return errors.New("camera up vector is parallel to forward")
	}

	switch c.Projection {
	case ProjectionPerspective, "":
		if c.FOV <= 0 || c.FOV >= 180 {
			return errors.Errorf("camera fov %v must be in (0, 180)", c.FOV)
		}
		if c.Aspect <= 0 {
			return errors.Errorf("camera aspect %v must be positive", c.Aspect)
		}
	case ProjectionOrthographic:
		if c.Size.X <= 0 || c.Size.Y <= 0 {
			return errors.Errorf("orthographic plane size %v must be positive", c.Size)
		}
	default:
		return errors.Errorf("unknown camera projection %q", c.Projection)
	}
	return nil
}

// Build validates the config and constructs the camera. An empty projection
// means perspective.
func (c Config) Build() (Camera, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Projection == ProjectionOrthographic {
		return NewOrthographic(c.Position, c.Forward, c.Up, c.Size), nil
	}
	return NewPerspective(c.Position, c.Forward, c.Up, c.Aspect, c.FOV), nil
}
