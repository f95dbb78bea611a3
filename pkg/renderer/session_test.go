package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestSession_StartsDirtyAndRendersOnce(t *testing.T) {
	s := NewSession(DefaultCamera())
	renders := 0
	render := func(Camera) { renders++ }

	if !s.Dirty() {
		t.Fatal("New session should be dirty")
	}
	if !s.Frame(render) {
		t.Error("First frame should render")
	}
	for i := 0; i < 3; i++ {
		if s.Frame(render) {
			t.Errorf("Frame %d rendered without a parameter change", i+2)
		}
	}
	if renders != 1 {
		t.Errorf("Expected 1 render, got %d", renders)
	}
}

func TestSession_ParameterEditMarksDirty(t *testing.T) {
	for _, p := range Params() {
		t.Run(p.String(), func(t *testing.T) {
			s := NewSession(DefaultCamera())
			s.Frame(func(Camera) {})

			s.Nudge(p, 0.25)
			if !s.Dirty() {
				t.Fatalf("Editing %s should mark the session dirty", p)
			}

			var rendered Camera
			if !s.Frame(func(c Camera) { rendered = c }) {
				t.Fatal("Dirty session should render")
			}
			if rendered != s.Camera() {
				t.Errorf("Render received %+v, session holds %+v", rendered, s.Camera())
			}
			if s.Dirty() {
				t.Error("Frame should clear the dirty flag")
			}
		})
	}
}

func TestSession_UnchangedValueStaysClean(t *testing.T) {
	s := NewSession(DefaultCamera())
	s.Frame(func(Camera) {})

	s.Set(ParamDistance, 1)
	if s.Dirty() {
		t.Error("Setting a parameter to its current value should not mark dirty")
	}

	// Already at the bound, so clamping leaves the value unchanged
	s.Set(ParamCameraX, 2.5)
	s.Frame(func(Camera) {})
	s.Nudge(ParamCameraX, 1)
	if s.Dirty() {
		t.Error("Nudging past a bound that is already reached should not mark dirty")
	}
}

func TestSession_SetClampsToBounds(t *testing.T) {
	tests := []struct {
		param    Param
		value    float64
		expected float64
	}{
		{ParamCameraX, -10, -2.5},
		{ParamCameraY, 10, 2.5},
		{ParamCameraZ, 1.25, 1.25},
		{ParamViewportWidth, -1.5, -1.5},
		{ParamViewportWidth, -3, -2},
		{ParamViewportHeight, 5, 4},
		{ParamDistance, 0.1, 0.5},
		{ParamDistance, 2, 1.5},
		{ParamCameraZ, math.Inf(1), 2.5},
		{ParamViewportHeight, math.Inf(-1), -2},
	}

	for _, tt := range tests {
		t.Run(tt.param.String(), func(t *testing.T) {
			s := NewSession(DefaultCamera())
			s.Set(tt.param, tt.value)
			if got := s.Get(tt.param); got != tt.expected {
				t.Errorf("Set(%s, %f): expected %f, got %f", tt.param, tt.value, tt.expected, got)
			}
		})
	}
}

func TestSession_ParamsMapToCameraFields(t *testing.T) {
	s := NewSession(DefaultCamera())
	s.Set(ParamCameraX, 1)
	s.Set(ParamCameraY, -1)
	s.Set(ParamCameraZ, 0.5)
	s.Set(ParamViewportWidth, 2)
	s.Set(ParamViewportHeight, 3)
	s.Set(ParamDistance, 1.25)

	expected := Camera{
		Position:       core.NewVec3(1, -1, 0.5),
		ViewportWidth:  2,
		ViewportHeight: 3,
		Distance:       1.25,
	}
	if s.Camera() != expected {
		t.Errorf("Expected %+v, got %+v", expected, s.Camera())
	}
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(DefaultCamera())
	s.Set(ParamCameraZ, -2)
	s.Frame(func(Camera) {})

	s.Reset(DefaultCamera())
	if !s.Dirty() {
		t.Error("Reset should mark the session dirty")
	}
	if s.Camera() != DefaultCamera() {
		t.Errorf("Expected default camera, got %+v", s.Camera())
	}
}

func TestParam_Info(t *testing.T) {
	labels := []string{"c.x", "c.y", "c.z", "vw", "vh", "d"}
	params := Params()
	if len(params) != len(labels) {
		t.Fatalf("Expected %d parameters, got %d", len(labels), len(params))
	}
	for i, p := range params {
		info := p.Info()
		if info.Label != labels[i] {
			t.Errorf("Param %d: expected label %q, got %q", i, labels[i], info.Label)
		}
		if info.Min >= info.Max {
			t.Errorf("Param %s: invalid bounds [%f, %f]", p, info.Min, info.Max)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for an unknown parameter")
		}
	}()
	Param(99).Info()
}

func TestSession_SetIgnoresNaN(t *testing.T) {
	s := NewSession(DefaultCamera())
	s.Frame(func(Camera) {})

	for _, p := range Params() {
		before := s.Get(p)
		s.Set(p, math.NaN())
		if got := s.Get(p); got != before {
			t.Errorf("Set(%s, NaN) changed the value from %f to %f", p, before, got)
		}
	}
	if s.Dirty() {
		t.Error("Setting NaN should not mark the session dirty")
	}
	if err := s.Camera().Validate(); err != nil {
		t.Errorf("Camera should stay valid: %v", err)
	}
}
