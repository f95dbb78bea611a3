package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
)

// unknownObject is a scene object no renderer knows how to handle
type unknownObject struct{}

func (unknownObject) Kind() core.ObjectKind { return core.ObjectKind(42) }

func TestComputeLighting_AmbientOnly(t *testing.T) {
	objects := []core.SceneObject{lights.NewAmbient(0.35)}

	points := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(5, -3, 2)}
	normals := []core.Vec3{core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1)}

	for _, p := range points {
		for _, n := range normals {
			if got := ComputeLighting(objects, p, n); got != 0.35 {
				t.Errorf("p=%v n=%v: expected 0.35, got %f", p, n, got)
			}
		}
	}
}

func TestComputeLighting_Lambertian(t *testing.T) {
	tests := []struct {
		name     string
		light    core.SceneObject
		point    core.Vec3
		normal   core.Vec3
		expected float64
	}{
		{
			name:     "point light head-on",
			light:    lights.NewPoint(0.6, core.NewVec3(0, 5, 0)),
			point:    core.NewVec3(0, 0, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: 0.6,
		},
		{
			name:     "point light at 60 degrees",
			light:    lights.NewPoint(1, core.NewVec3(math.Sqrt(3), 1, 0)),
			point:    core.NewVec3(0, 0, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: 0.5,
		},
		{
			name:     "point light uses position relative to point",
			light:    lights.NewPoint(1, core.NewVec3(3, 3, 0)),
			point:    core.NewVec3(3, 1, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: 1,
		},
		{
			name:     "point light behind surface",
			light:    lights.NewPoint(1, core.NewVec3(0, -5, 0)),
			point:    core.NewVec3(0, 0, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: 0,
		},
		{
			name:     "point light grazing",
			light:    lights.NewPoint(1, core.NewVec3(5, 0, 0)),
			point:    core.NewVec3(0, 0, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: 0,
		},
		{
			name:     "directional ignores point",
			light:    lights.NewDirectional(0.2, core.NewVec3(0, 4, 0)),
			point:    core.NewVec3(100, -7, 3),
			normal:   core.NewVec3(0, 1, 0),
			expected: 0.2,
		},
		{
			name:     "directional at 45 degrees",
			light:    lights.NewDirectional(1, core.NewVec3(1, 1, 0)),
			point:    core.NewVec3(0, 0, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: 1 / math.Sqrt2,
		},
		{
			name:     "unnormalized normal",
			light:    lights.NewDirectional(1, core.NewVec3(0, 1, 0)),
			point:    core.NewVec3(0, 0, 0),
			normal:   core.NewVec3(0, 10, 0),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLighting([]core.SceneObject{tt.light}, tt.point, tt.normal)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestComputeLighting_SumsWithoutClampingOrShadows(t *testing.T) {
	objects := []core.SceneObject{
		lights.NewAmbient(0.5),
		// A sphere between the point light and the surface casts no shadow
		geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, core.RGB(255, 255, 255)),
		lights.NewPoint(0.8, core.NewVec3(0, 5, 0)),
		lights.NewDirectional(0.4, core.NewVec3(0, 1, 0)),
	}

	got := ComputeLighting(objects, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if math.Abs(got-1.7) > 1e-9 {
		t.Errorf("Expected 1.7, got %f", got)
	}
}

func TestComputeLighting_UnknownObjectPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown scene object")
		}
	}()
	ComputeLighting([]core.SceneObject{unknownObject{}}, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
}
