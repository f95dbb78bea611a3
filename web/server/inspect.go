package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit       bool       `json:"hit"`
	Color     string     `json:"color"`
	Center    [3]float64 `json:"center"`
	Radius    float64    `json:"radius,omitempty"`
	Point     [3]float64 `json:"point"`
	Normal    [3]float64 `json:"normal"`
	Distance  float64    `json:"distance,omitempty"`
	Intensity float64    `json:"intensity,omitempty"`
}

// handleInspect traces the ray through one pixel and reports what it hit.
// x and y are raster coordinates on a width x height canvas.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	query := r.URL.Query()
	x, err := parseIntParam(query, "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := inspectPixel(sceneObj, req, x, y)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// inspectPixel converts raster (x, y) to centered coordinates the same way
// the canvas does and traces that pixel's ray
func inspectPixel(sceneObj *scene.Scene, req *RenderRequest, x, y int) InspectResponse {
	cx := float64(x - req.Width/2)
	cy := float64(req.Height/2 - y - 1)

	camera := req.Camera
	direction := camera.CanvasToViewport(req.Width, req.Height, cx, cy)

	sphere, t := renderer.ClosestHit(sceneObj.Objects, camera.Position, direction, 1, math.Inf(1))
	if sphere == nil {
		return InspectResponse{Hit: false, Color: renderer.Background.String()}
	}

	point := core.NewRay(camera.Position, direction).At(t)
	normal := sphere.Normal(point)
	intensity := renderer.ComputeLighting(sceneObj.Objects, point, normal)

	return InspectResponse{
		Hit:       true,
		Color:     sphere.Color.Scale(intensity).String(),
		Center:    sphere.Center,
		Radius:    sphere.Radius,
		Point:     point,
		Normal:    normal,
		Distance:  t,
		Intensity: intensity,
	}
}
