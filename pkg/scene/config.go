package scene

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/camera"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

// File is the on-disk description of a scene.
//
//	name: two-spheres
//	width: 320
//	height: 240
//	camera:
//	  position: [0, 1, 4]
//	  lookAt: [0, 0.5, 0]
//	  fov: 60
//	materials:
//	  red: {albedo: [0.8, 0.1, 0.1]}
//	objects:
//	  - {type: sphere, center: [0, 0.5, 0], radius: 0.5, material: red}
//	  - {type: box, min: [-4, -0.1, -4], max: [4, 0, 4]}
//	lights:
//	  - {position: [2, 4, 2], intensity: [20, 20, 20]}
type File struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Group       string                  `json:"group,omitempty"`
	Width       int                     `json:"width"`
	Height      int                     `json:"height"`
	Camera      CameraSpec              `json:"camera"`
	Materials   map[string]MaterialSpec `json:"materials,omitempty"`
	Objects     []ObjectSpec            `json:"objects,omitempty"`
	Lights      []LightSpec             `json:"lights,omitempty"`
}

// CameraSpec describes the camera. Exactly one of Forward and LookAt is set.
type CameraSpec struct {
	Projection string      `json:"projection,omitempty"` // "perspective" (default) or "orthographic"
	Position   [3]float32  `json:"position"`
	Forward    *[3]float32 `json:"forward,omitempty"`
	LookAt     *[3]float32 `json:"lookAt,omitempty"`
	Up         *[3]float32 `json:"up,omitempty"` // defaults to +y
	FOV        float32     `json:"fov,omitempty"`
	Size       [2]float32  `json:"size,omitempty"` // orthographic plane width/height
}

// MaterialSpec describes a Lambertian material
type MaterialSpec struct {
	Albedo [3]float32 `json:"albedo"`
}

// ObjectSpec describes one primitive. Which fields apply depends on Type.
type ObjectSpec struct {
	Type     string       `json:"type"` // sphere, box or triangle
	Center   [3]float32   `json:"center,omitempty"`
	Radius   float32      `json:"radius,omitempty"`
	Min      [3]float32   `json:"min,omitempty"`
	Max      [3]float32   `json:"max,omitempty"`
	Vertices [][3]float32 `json:"vertices,omitempty"`
	Material string       `json:"material,omitempty"`
}

// LightSpec describes a point light
type LightSpec struct {
	Position  [3]float32 `json:"position"`
	Intensity [3]float32 `json:"intensity"`
}

func vec3(v [3]float32) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func color(v [3]float32) core.Color {
	return core.NewColor(v[0], v[1], v[2])
}

// LoadFile reads and builds a scene description. The file name, without its
// extension, is the scene name unless the file sets one.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene file %s", path)
	}
	file, err := ParseFile(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing scene file %s", path)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	s, err := file.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "building scene file %s", path)
	}
	klog.V(2).InfoS("Loaded scene file", "path", path, "name", s.Name, "primitives", s.GetPrimitiveCount(), "lights", len(s.Lights))
	return s, nil
}

// Parse decodes and builds a scene description
func Parse(data []byte) (*Scene, error) {
	file, err := ParseFile(data)
	if err != nil {
		return nil, err
	}
	return file.Build()
}

// ParseFile decodes a scene description without building it. Unknown fields
// are rejected.
func ParseFile(data []byte) (*File, error) {
	var file File
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return &file, nil
}

// Build validates the description and constructs the scene
func (f *File) Build() (*Scene, error) {
	s := NewScene(f.Name)

	cameraConfig, err := f.Camera.config()
	if err != nil {
		return nil, err
	}
	if err := s.SetCamera(cameraConfig, f.Width, f.Height); err != nil {
		return nil, err
	}

	materials := make(map[string]material.Material, len(f.Materials))
	for name, spec := range f.Materials {
		materials[name] = material.NewLambertian(color(spec.Albedo))
	}

	for i, obj := range f.Objects {
		g, err := obj.geometry()
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		if obj.Material == "" {
			s.Add(g)
			continue
		}
		m, ok := materials[obj.Material]
		if !ok {
			return nil, errors.Errorf("object %d: unknown material %q", i, obj.Material)
		}
		s.AddWithMaterial(g, m)
	}

	for _, l := range f.Lights {
		s.AddPointLight(vec3(l.Position), color(l.Intensity))
	}

	return s, nil
}

func (c CameraSpec) config() (camera.Config, error) {
	config := camera.Config{
		Projection: camera.Projection(c.Projection),
		Position:   vec3(c.Position),
		Up:         core.NewVec3(0, 1, 0),
		FOV:        c.FOV,
		Size:       core.NewVec2(c.Size[0], c.Size[1]),
	}
	if c.Up != nil {
		config.Up = vec3(*c.Up)
	}

	switch {
	case c.Forward != nil && c.LookAt != nil:
		return config, errors.New("camera sets both forward and lookAt")
	case c.Forward != nil:
		config.Forward = vec3(*c.Forward)
	case c.LookAt != nil:
		config.Forward = vec3(*c.LookAt).Subtract(config.Position)
	default:
		return config, errors.New("camera needs forward or lookAt")
	}
	return config, nil
}

func (o ObjectSpec) geometry() (geometry.Geometry, error) {
	switch o.Type {
	case "sphere":
		if o.Radius <= 0 {
			return nil, errors.Errorf("sphere radius %v must be positive", o.Radius)
		}
		return geometry.NewSphere(vec3(o.Center), o.Radius), nil
	case "box":
		box := geometry.NewAABB(vec3(o.Min), vec3(o.Max))
		if !box.IsValid() {
			return nil, errors.Errorf("box min %v exceeds max %v", o.Min, o.Max)
		}
		return box, nil
	case "triangle":
		if len(o.Vertices) != 3 {
			return nil, errors.Errorf("triangle needs 3 vertices, got %d", len(o.Vertices))
		}
		return geometry.NewTriangle(vec3(o.Vertices[0]), vec3(o.Vertices[1]), vec3(o.Vertices[2])), nil
	default:
		return nil, errors.Errorf("unknown object type %q", o.Type)
	}
}
