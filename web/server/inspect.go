package server

import (
	"net/http"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec(v core.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// extractMaterialInfo describes the material that shades a hit. A nil
// material is the default white Lambertian.
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	if mat == nil {
		properties["albedo"] = [3]float32{1, 1, 1}
		return "default", properties
	}

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = [3]float32{m.Albedo.R, m.Albedo.G, m.Albedo.B}
		return "lambertian", properties
	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(g geometry.Geometry) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := g.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float32{vec(geom.V0), vec(geom.V1), vec(geom.V2)}
		properties["normal"] = vec(geom.Normal())
		return "triangle", properties

	case geometry.AABB:
		properties["min"] = vec(geom.Min)
		properties["max"] = vec(geom.Max)
		return "box", properties

	default:
		return "unknown", properties
	}
}

// struckPrimitive finds the leaf of g that produced hit
func struckPrimitive(g *geometry.Group, ray core.Ray, hit geometry.Hit) geometry.Geometry {
	for i := 0; i < g.Len(); i++ {
		item := g.At(i)
		h, ok := item.Intersect(ray)
		if !ok || h.Distance != hit.Distance {
			continue
		}
		if inner, isGroup := item.(*geometry.Group); isGroup {
			return struckPrimitive(inner, ray, hit)
		}
		return item
	}
	return nil
}

// inspectPixel casts the ray the renderer would cast for pixel (x, y)
func inspectPixel(sceneObj *scene.Scene, x, y int) InspectResponse {
	uv := core.NewVec2(float32(x)/float32(sceneObj.Width), float32(y)/float32(sceneObj.Height))
	ray := sceneObj.Camera.At(uv)

	hit, mat, ok := sceneObj.Geometry.IntersectMaterial(ray)
	if !ok {
		return InspectResponse{Hit: false}
	}

	materialType, materialProps := extractMaterialInfo(mat)
	geometryType, geometryProps := extractGeometryInfo(struckPrimitive(sceneObj.Geometry, ray, hit))

	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vec(hit.Point),
		Normal:       vec(hit.Normal),
		Distance:     hit.Distance,
		FrontFace:    ray.Direction.Dot(hit.Normal) < 0,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
}

// handleInspect reports what the primary ray through a pixel strikes
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	pixelX, err := parseIntParam(query, "x", 0, 0, sceneObj.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pixelY, err := parseIntParam(query, "y", 0, 0, sceneObj.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}
