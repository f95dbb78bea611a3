package lights

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Ambient illuminates every point uniformly
type Ambient struct {
	Strength float64
}

// NewAmbient creates an ambient light
func NewAmbient(intensity float64) *Ambient {
	return &Ambient{Strength: intensity}
}

func (a *Ambient) Kind() core.ObjectKind { return core.ObjectLight }
func (a *Ambient) Type() LightType       { return LightTypeAmbient }
func (a *Ambient) Intensity() float64    { return a.Strength }
