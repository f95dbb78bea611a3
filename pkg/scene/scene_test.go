package scene

import (
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
)

func TestScene_PreservesInsertionOrder(t *testing.T) {
	s := New("test")
	s.AddAmbientLight(0.1)
	sphere := s.AddSphere(core.NewVec3(0, 0, 3), 1, core.RGB(255, 0, 0))
	s.AddPointLight(0.5, core.NewVec3(1, 1, 1))
	s.Add(lights.NewDirectional(0.3, core.NewVec3(0, 1, 0)))

	if s.Len() != 4 {
		t.Fatalf("Expected 4 objects, got %d", s.Len())
	}
	if _, ok := s.Objects[0].(*lights.Ambient); !ok {
		t.Errorf("Expected ambient light first, got %T", s.Objects[0])
	}
	if got, ok := s.Objects[1].(*geometry.Sphere); !ok || got != sphere {
		t.Errorf("Expected the added sphere second, got %T", s.Objects[1])
	}
	if _, ok := s.Objects[2].(*lights.Point); !ok {
		t.Errorf("Expected point light third, got %T", s.Objects[2])
	}
	if _, ok := s.Objects[3].(*lights.Directional); !ok {
		t.Errorf("Expected directional light fourth, got %T", s.Objects[3])
	}
}

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name    string
		spheres int
		lights  int
	}{
		{"default", 4, 3},
		{"trio", 4, 3},
		{"empty", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ByName(tt.name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Name != tt.name {
				t.Errorf("Expected scene name %q, got %q", tt.name, s.Name)
			}

			spheres, lightCount := s.CountByKind()
			if spheres != tt.spheres || lightCount != tt.lights {
				t.Errorf("Expected %d spheres and %d lights, got %d and %d",
					tt.spheres, tt.lights, spheres, lightCount)
			}
		})
	}
}
