package lights

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Point radiates from a position in space
type Point struct {
	Strength float64
	Position core.Vec3
}

// NewPoint creates a point light
func NewPoint(intensity float64, position core.Vec3) *Point {
	return &Point{Strength: intensity, Position: position}
}

func (p *Point) Kind() core.ObjectKind { return core.ObjectLight }
func (p *Point) Type() LightType       { return LightTypePoint }
func (p *Point) Intensity() float64    { return p.Strength }

// ToLight returns the unnormalized vector from point to the light
func (p *Point) ToLight(point core.Vec3) core.Vec3 {
	return p.Position.Sub(point)
}
