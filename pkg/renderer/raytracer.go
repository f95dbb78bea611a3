package renderer

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/canvas"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Background is returned for rays that hit nothing
var Background = core.RGB(0x18, 0x18, 0x18)

// DefaultLogger implements core.Logger with the standard log package
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene onto a canvas
type Raytracer struct {
	scene  *scene.Scene
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{scene: s, logger: logger}
}

// Scene returns the scene being rendered
func (rt *Raytracer) Scene() *scene.Scene {
	return rt.scene
}

// ClosestHit finds the nearest sphere with tMin < t < tMax and returns it
// with its ray parameter, or nil. Ties keep the sphere that appears first in
// objects.
func ClosestHit(objects []core.SceneObject, origin, direction core.Vec3, tMin, tMax float64) (*geometry.Sphere, float64) {
	closestT := tMax
	var closest *geometry.Sphere

	for _, obj := range objects {
		switch o := obj.(type) {
		case *geometry.Sphere:
			t1, t2 := geometry.Intersect(origin, direction, o)
			if tMin < t1 && t1 < tMax && t1 < closestT {
				closestT = t1
				closest = o
			}
			if tMin < t2 && t2 < tMax && t2 < closestT {
				closestT = t2
				closest = o
			}
		case *lights.Ambient, *lights.Point, *lights.Directional:
			continue
		default:
			panic(fmt.Sprintf("renderer: unreachable scene object %T (kind %v)", obj, obj.Kind()))
		}
	}

	return closest, closestT
}

// TraceRay returns the color seen along origin + t*direction for t in (tMin, tMax)
func TraceRay(objects []core.SceneObject, origin, direction core.Vec3, tMin, tMax float64) core.Color {
	color, _ := trace(objects, origin, direction, tMin, tMax)
	return color
}

func trace(objects []core.SceneObject, origin, direction core.Vec3, tMin, tMax float64) (core.Color, bool) {
	sphere, t := ClosestHit(objects, origin, direction, tMin, tMax)
	if sphere == nil {
		return Background, false
	}

	p := core.NewRay(origin, direction).At(t)
	n := sphere.Normal(p)
	return sphere.Color.Scale(ComputeLighting(objects, p, n)), true
}

// Render repopulates every pixel of c from the camera. It is deterministic:
// the same scene and camera always produce the same pixels.
func (rt *Raytracer) Render(c *canvas.Canvas, camera Camera) RenderStats {
	start := time.Now()
	objects := rt.scene.Objects
	width, height := c.Width(), c.Height()
	stats := RenderStats{}

	xMin, xMax, yMin, yMax := c.CenteredBounds()
	for y := yMin; y < yMax; y++ {
		for x := xMin; x < xMax; x++ {
			direction := camera.CanvasToViewport(width, height, float64(x), float64(y))
			color, hit := trace(objects, camera.Position, direction, 1, math.Inf(1))
			if hit {
				stats.Hits++
			}
			c.PutCentered(x, y, color)
			stats.TotalPixels++
		}
	}

	stats.Elapsed = time.Since(start)
	return stats
}

// RenderAndLog renders and reports the pass through the logger
func (rt *Raytracer) RenderAndLog(c *canvas.Canvas, camera Camera) RenderStats {
	stats := rt.Render(c, camera)
	rt.logger.Printf("Rendered %q at %dx%d in %v (%.1f%% coverage)\n",
		rt.scene.Name, c.Width(), c.Height(), stats.Elapsed, 100*stats.Coverage())
	return stats
}
