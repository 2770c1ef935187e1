package server

import (
	"bytes"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const maxImageSize = 2000

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string // Scene id (e.g., "default" or "yaml:two-spheres")
	Width      int    // Image width, 0 for the scene's own
	Height     int    // Image height, 0 for the scene's own
	Integrator string // "raytrace" or "normals"
	TwoSided   bool   // Shade back faces as front faces
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:      query.Get("scene"),
		Integrator: query.Get("integrator"),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if (req.Width == 0) != (req.Height == 0) {
		return nil, errors.New("width and height must be given together")
	}
	if req.TwoSided, err = parseBoolParam(query, "twoSided"); err != nil {
		return nil, err
	}
	return req, nil
}

// createScene builds the requested scene at the requested size
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene, s.scenesDir)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 {
		if err := sceneObj.SetCamera(sceneObj.CameraConfig, req.Width, req.Height); err != nil {
			return nil, err
		}
	}
	return sceneObj, nil
}

// handleRender renders a scene synchronously and streams it back as a PNG.
// Nothing is written to disk.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt, err := renderer.NewSceneRenderer(sceneObj, req.Integrator, req.TwoSided)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Use request context to detect client disconnection
	img, stats, err := rt.Render(r.Context())
	if err != nil {
		klog.ErrorS(err, "Render failed", "scene", req.Scene)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		klog.ErrorS(err, "PNG encoding failed", "scene", req.Scene)
		writeError(w, http.StatusInternalServerError, "failed to encode image")
		return
	}

	klog.InfoS("Rendered scene", "scene", req.Scene, "width", sceneObj.Width, "height", sceneObj.Height,
		"litPixels", stats.LitPixels, "duration", stats.Duration)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Lit-Pixels", strconv.Itoa(stats.LitPixels))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		klog.V(2).InfoS("Client went away during response", "scene", req.Scene, "err", err)
	}
}
