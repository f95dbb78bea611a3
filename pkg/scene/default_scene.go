package scene

import "github.com/df07/go-sphere-raytracer/pkg/core"

// NewDefaultScene creates three colored spheres resting on a huge yellow
// ground sphere, lit by ambient, point and directional lights
func NewDefaultScene() *Scene {
	s := New("default")

	s.AddSphere(core.NewVec3(0, -1, 3), 1, core.RGB(255, 0, 0))
	s.AddSphere(core.NewVec3(-2, 0, 4), 1, core.RGB(0, 255, 0))
	s.AddSphere(core.NewVec3(2, 0, 4), 1, core.RGB(0, 0, 255))

	// Ground: a sphere big enough to look flat near the camera
	s.AddSphere(core.NewVec3(0, -5001, 0), 5000, core.RGB(255, 255, 0))

	addStandardLights(s)
	return s
}

// NewTrioScene creates the alternate layout: three spheres below the horizon
func NewTrioScene() *Scene {
	s := New("trio")

	s.AddSphere(core.NewVec3(-1, -1, 5), 1, core.RGB(255, 0, 0))
	s.AddSphere(core.NewVec3(-2, -1.1, 4), 1, core.RGB(0, 255, 0))
	s.AddSphere(core.NewVec3(1, -1, 4), 1, core.RGB(0, 0, 255))
	s.AddSphere(core.NewVec3(0, -5001, 0), 5000, core.RGB(255, 255, 0))

	addStandardLights(s)
	return s
}

// NewEmptyScene has lights but nothing to hit, so it renders as pure background
func NewEmptyScene() *Scene {
	s := New("empty")
	addStandardLights(s)
	return s
}

func addStandardLights(s *Scene) {
	s.AddAmbientLight(0.2)
	s.AddPointLight(0.6, core.NewVec3(2, 1, 0))
	s.AddDirectionalLight(0.2, core.NewVec3(1, 4, 4))
}
