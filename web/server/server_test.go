package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSceneYAML = `
name: Lone Sphere
group: Test Scenes
width: 16
height: 16
camera: {position: [0, 0, 5], forward: [0, 0, -1], fov: 60}
objects:
  - {type: sphere, center: [0, 0, 0], radius: 1}
lights:
  - {position: [0, 0, 5], intensity: [25, 25, 25]}
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lone-sphere.yaml"), []byte(testSceneYAML), 0644))

	ts := httptest.NewServer(NewServer(0, dir).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleHealth(t *testing.T) {
	resp := get(t, newTestServer(t), "/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleScenes(t *testing.T) {
	resp := get(t, newTestServer(t), "/api/scenes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body scene.ScenesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Groups, 2)
	assert.Equal(t, "Built-in Scenes", body.Groups[0].Name)
	assert.Equal(t, "Test Scenes", body.Groups[1].Name)
	require.Len(t, body.Groups[1].Scenes, 1)
	assert.Equal(t, "yaml:lone-sphere", body.Groups[1].Scenes[0].ID)
}

func TestHandleRender_PNG(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		width  int
		height int
	}{
		{"builtin resized", "?scene=default&width=32&height=18", 32, 18},
		{"scene size", "?scene=yaml:lone-sphere", 16, 16},
		{"normals", "?scene=room&width=20&height=15&integrator=normals", 20, 15},
		{"two sided", "?scene=room&width=20&height=15&twoSided=true", 20, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, ts, "/api/render"+tt.query)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
			assert.NotEmpty(t, resp.Header.Get("X-Render-Time-Ms"))

			img, err := png.Decode(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}
}

func TestHandleRender_LoneSphereIsLitInTheMiddle(t *testing.T) {
	resp := get(t, newTestServer(t), "/api/render?scene=yaml:lone-sphere")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)

	r, _, _, _ := img.At(8, 8).RGBA()
	assert.Greater(t, r, uint32(0))
	r, _, _, _ = img.At(0, 0).RGBA()
	assert.Zero(t, r)
}

func TestHandleRender_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	for _, query := range []string{
		"?width=abc&height=10",
		"?width=0&height=10",
		"?width=5000&height=10",
		"?width=10",
		"?scene=cornell-box",
		"?scene=yaml:missing",
		"?integrator=bdpt",
		"?twoSided=maybe",
	} {
		t.Run(query, func(t *testing.T) {
			resp := get(t, ts, "/api/render"+query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleInspect(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name         string
		query        string
		hit          bool
		geometryType string
		materialType string
	}{
		{"sphere", "?scene=default&width=40&height=20&x=20&y=10", true, "sphere", "lambertian"},
		{"nested wall", "?scene=room&x=160&y=120", true, "triangle", "lambertian"},
		{"default material", "?scene=yaml:lone-sphere&x=8&y=8", true, "sphere", "default"},
		{"miss", "?scene=empty&x=5&y=5", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, ts, "/api/inspect"+tt.query)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body InspectResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.hit, body.Hit)
			assert.Equal(t, tt.geometryType, body.GeometryType)
			assert.Equal(t, tt.materialType, body.MaterialType)
			if tt.hit {
				assert.True(t, body.FrontFace)
				assert.Greater(t, body.Distance, float32(0))
			}
		})
	}
}

func TestHandleInspect_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	for _, query := range []string{
		"?scene=default",
		"?scene=default&x=1",
		"?scene=default&x=400&y=0",
		"?scene=default&x=0&y=-1",
		"?scene=nope&x=0&y=0",
	} {
		t.Run(query, func(t *testing.T) {
			resp := get(t, ts, "/api/inspect"+query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
