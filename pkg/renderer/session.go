package renderer

import (
	"fmt"
	"math"
)

// Param identifies one adjustable camera or viewport scalar
type Param int

const (
	ParamCameraX Param = iota
	ParamCameraY
	ParamCameraZ
	ParamViewportWidth
	ParamViewportHeight
	ParamDistance
	paramCount
)

// ParamInfo describes the label and allowed range of a parameter
type ParamInfo struct {
	Label string
	Min   float64
	Max   float64
}

var paramInfo = [paramCount]ParamInfo{
	ParamCameraX:        {Label: "c.x", Min: -2.5, Max: 2.5},
	ParamCameraY:        {Label: "c.y", Min: -2.5, Max: 2.5},
	ParamCameraZ:        {Label: "c.z", Min: -2.5, Max: 2.5},
	ParamViewportWidth:  {Label: "vw", Min: -2, Max: 4},
	ParamViewportHeight: {Label: "vh", Min: -2, Max: 4},
	ParamDistance:       {Label: "d", Min: 0.5, Max: 1.5},
}

// Params lists every parameter in display order
func Params() []Param {
	params := make([]Param, paramCount)
	for i := range params {
		params[i] = Param(i)
	}
	return params
}

// Info returns the label and bounds of p
func (p Param) Info() ParamInfo {
	if p < 0 || p >= paramCount {
		panic(fmt.Sprintf("renderer: unknown parameter %d", int(p)))
	}
	return paramInfo[p]
}

func (p Param) String() string {
	return p.Info().Label
}

// Session tracks the interactive camera and whether the last rendered frame
// is stale. A new session starts dirty so the first frame is rendered.
type Session struct {
	camera Camera
	dirty  bool
}

// NewSession creates a dirty session for camera
func NewSession(camera Camera) *Session {
	return &Session{camera: camera, dirty: true}
}

// Camera returns the current camera
func (s *Session) Camera() Camera {
	return s.camera
}

// Dirty reports whether the next Frame will render
func (s *Session) Dirty() bool {
	return s.dirty
}

// Get returns the current value of p
func (s *Session) Get(p Param) float64 {
	return *s.field(p)
}

// Set clamps v to the bounds of p and stores it. The session becomes dirty
// only when the stored value changes. NaN is ignored.
func (s *Session) Set(p Param, v float64) {
	if math.IsNaN(v) {
		return
	}
	info := p.Info()
	v = max(info.Min, min(info.Max, v))

	field := s.field(p)
	if *field != v {
		*field = v
		s.dirty = true
	}
}

// Nudge adds delta to p, clamped to its bounds
func (s *Session) Nudge(p Param, delta float64) {
	s.Set(p, s.Get(p)+delta)
}

// Reset replaces the camera and marks the session dirty
func (s *Session) Reset(camera Camera) {
	s.camera = camera
	s.dirty = true
}

// Frame calls render with the current camera if the session is dirty, then
// clears the flag. It reports whether render ran; when it did not, the
// caller should redisplay the previous frame unchanged.
func (s *Session) Frame(render func(Camera)) bool {
	if !s.dirty {
		return false
	}
	render(s.camera)
	s.dirty = false
	return true
}

func (s *Session) field(p Param) *float64 {
	switch p {
	case ParamCameraX:
		return &s.camera.Position[0]
	case ParamCameraY:
		return &s.camera.Position[1]
	case ParamCameraZ:
		return &s.camera.Position[2]
	case ParamViewportWidth:
		return &s.camera.ViewportWidth
	case ParamViewportHeight:
		return &s.camera.ViewportHeight
	case ParamDistance:
		return &s.camera.Distance
	default:
		panic(fmt.Sprintf("renderer: unknown parameter %d", int(p)))
	}
}
