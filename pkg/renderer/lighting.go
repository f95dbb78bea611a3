package renderer

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
)

// ComputeLighting sums the diffuse light intensity arriving at point p with
// surface normal n. No shadow rays are cast, so occluders are ignored.
// The result is not clamped.
func ComputeLighting(objects []core.SceneObject, p, n core.Vec3) float64 {
	intensity := 0.0
	lengthN := n.Len()

	for _, obj := range objects {
		switch light := obj.(type) {
		case *geometry.Sphere:
			continue
		case *lights.Ambient:
			intensity += light.Intensity()
		case *lights.Point:
			intensity += diffuse(light.Intensity(), n, lengthN, light.ToLight(p))
		case *lights.Directional:
			intensity += diffuse(light.Intensity(), n, lengthN, light.ToLight(p))
		default:
			panic(fmt.Sprintf("renderer: unreachable scene object %T (kind %v)", obj, obj.Kind()))
		}
	}

	return intensity
}

// diffuse is the Lambertian term for a light arriving along l
func diffuse(intensity float64, n core.Vec3, lengthN float64, l core.Vec3) float64 {
	nDotL := n.Dot(l)
	if nDotL <= 0 {
		return 0
	}
	return intensity * nDotL / (lengthN * l.Len())
}
