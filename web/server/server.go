package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Server serves scene listings, PNG renders and pixel inspection
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server. Scene files are discovered in
// scenesDir, which may be empty.
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		klog.InfoS("Starting web server", "addr", "http://localhost"+srv.Addr, "scenesDir", s.scenesDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "web server failed")
	case <-ctx.Done():
		klog.InfoS("Shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists builtin and discovered scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.Discover(s.scenesDir)
	if err != nil {
		klog.ErrorS(err, "Scene discovery failed", "dir", s.scenesDir)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		klog.ErrorS(err, "Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseIntParam reads an optional integer parameter and checks its range
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	str := values.Get(key)
	if str == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(str)
	if err != nil {
		return 0, errors.Errorf("invalid %s: %q", key, str)
	}
	if value < min || value > max {
		return 0, errors.Errorf("%s must be between %d and %d", key, min, max)
	}
	return value, nil
}

// parseBoolParam reads an optional boolean parameter
func parseBoolParam(values url.Values, key string) (bool, error) {
	str := values.Get(key)
	if str == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(str)
	if err != nil {
		return false, errors.Errorf("invalid %s: %q", key, str)
	}
	return value, nil
}
