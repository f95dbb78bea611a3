package lights

import "github.com/df07/go-sphere-raytracer/pkg/core"

// LightType names the kind of light a Light is
type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is a scene light. Implementations are Ambient, Point and Directional;
// renderers dispatch on the concrete type and treat anything else as corrupt.
type Light interface {
	core.SceneObject

	Type() LightType

	// Intensity is the scalar brightness contributed at full incidence
	Intensity() float64
}
