package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape with a flat diffuse color
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Kind reports the sphere variant of core.SceneObject
func (s *Sphere) Kind() core.ObjectKind {
	return core.ObjectSphere
}

// Normal returns the outward unit normal at a point on the surface
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Sub(s.Center).Normalize()
}

// Intersect solves |origin + t*direction - center|^2 = radius^2 for t.
// Both roots are returned unordered; a miss returns (+Inf, +Inf).
// direction must be non-zero.
func Intersect(origin, direction core.Vec3, s *Sphere) (t1, t2 float64) {
	// Vector from sphere center to ray origin
	co := origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.Dot(direction)
	b := 2 * co.Dot(direction)
	c := co.Dot(co) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.Inf(1), math.Inf(1)
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-b + sqrtD) / (2 * a)
	t2 = (-b - sqrtD) / (2 * a)
	return t1, t2
}
