package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
)

// Scene is an insertion-ordered, append-only list of spheres and lights.
// It is built once and must not be modified while a render is running.
type Scene struct {
	Name    string
	Objects []core.SceneObject
}

// New creates an empty scene
func New(name string) *Scene {
	return &Scene{
		Name:    name,
		Objects: make([]core.SceneObject, 0),
	}
}

// Add appends objects in order
func (s *Scene) Add(objects ...core.SceneObject) {
	s.Objects = append(s.Objects, objects...)
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Color) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, color)
	s.Add(sphere)
	return sphere
}

// AddAmbientLight adds an ambient light to the scene
func (s *Scene) AddAmbientLight(intensity float64) {
	s.Add(lights.NewAmbient(intensity))
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(intensity float64, position core.Vec3) {
	s.Add(lights.NewPoint(intensity, position))
}

// AddDirectionalLight adds a directional light to the scene
func (s *Scene) AddDirectionalLight(intensity float64, direction core.Vec3) {
	s.Add(lights.NewDirectional(intensity, direction))
}

// Len returns the number of objects in the scene
func (s *Scene) Len() int {
	return len(s.Objects)
}

// CountByKind returns how many spheres and lights the scene holds
func (s *Scene) CountByKind() (spheres, lightCount int) {
	for _, obj := range s.Objects {
		switch obj.Kind() {
		case core.ObjectSphere:
			spheres++
		case core.ObjectLight:
			lightCount++
		}
	}
	return spheres, lightCount
}
