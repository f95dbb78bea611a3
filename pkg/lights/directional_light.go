package lights

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Directional arrives from the same direction everywhere, like sunlight.
// Direction points towards the light and need not be normalized.
type Directional struct {
	Strength  float64
	Direction core.Vec3
}

// NewDirectional creates a directional light
func NewDirectional(intensity float64, direction core.Vec3) *Directional {
	return &Directional{Strength: intensity, Direction: direction}
}

func (d *Directional) Kind() core.ObjectKind { return core.ObjectLight }
func (d *Directional) Type() LightType       { return LightTypeDirectional }
func (d *Directional) Intensity() float64    { return d.Strength }

// ToLight returns the light direction; it does not depend on point
func (d *Directional) ToLight(point core.Vec3) core.Vec3 {
	return d.Direction
}
