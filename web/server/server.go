package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/canvas"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Server renders scenes on demand over HTTP
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string          // Scene name (e.g., "default")
	Width  int             // Image width
	Height int             // Image height
	Format string          // "png" or "ppm"
	Camera renderer.Camera // Camera position and viewport
}

// SceneSummary describes a built-in scene for /api/scenes
type SceneSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Spheres     int    `json:"spheres"`
	Lights      int    `json:"lights"`
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var summaries []SceneSummary
	for _, info := range scene.ListScenes() {
		sceneObj, err := scene.ByName(info.ID)
		if err != nil {
			continue
		}
		spheres, lightCount := sceneObj.CountByKind()
		summaries = append(summaries, SceneSummary{
			ID:          info.ID,
			Description: info.Description,
			Spheres:     spheres,
			Lights:      lightCount,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summaries)
}

// handleRender renders one frame and returns it as an image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := canvas.New(req.Width, req.Height)
	renderer.NewRaytracer(sceneObj, s.logger).RenderAndLog(c, req.Camera)

	var buf bytes.Buffer
	switch req.Format {
	case "ppm":
		err = c.EncodePPM(&buf)
		w.Header().Set("Content-Type", "image/x-portable-pixmap")
	default:
		err = png.Encode(&buf, c.Image())
		w.Header().Set("Content-Type", "image/png")
	}
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: "png"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}
	if format := query.Get("format"); format != "" {
		if format != "png" && format != "ppm" {
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 16, 2000); err != nil {
		return nil, err
	}
	if req.Camera, err = parseCamera(query); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 {
		log.Printf("Render warning: Large image %dx%d may render slowly", req.Width, req.Height)
	}

	return req, nil
}

// cameraParams maps query keys to the interactive parameters they set
var cameraParams = []struct {
	key   string
	param renderer.Param
}{
	{"cx", renderer.ParamCameraX},
	{"cy", renderer.ParamCameraY},
	{"cz", renderer.ParamCameraZ},
	{"vw", renderer.ParamViewportWidth},
	{"vh", renderer.ParamViewportHeight},
	{"d", renderer.ParamDistance},
}

// parseCamera reads camera overrides using the same bounds as the viewer sliders
func parseCamera(query url.Values) (renderer.Camera, error) {
	session := renderer.NewSession(renderer.DefaultCamera())
	for _, cp := range cameraParams {
		info := cp.param.Info()
		value, err := parseFloatParam(query, cp.key, session.Get(cp.param), info.Min, info.Max)
		if err != nil {
			return renderer.Camera{}, err
		}
		session.Set(cp.param, value)
	}
	return session.Camera(), nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, fmt.Errorf("%s must be a finite number, got: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// sendError writes a JSON error body
func (s *Server) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
