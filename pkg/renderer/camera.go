package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidCamera reports a camera with a non-finite field
var ErrInvalidCamera = errors.New("invalid camera")

// Camera is a pinhole camera looking down +Z through a viewport placed
// Distance units in front of it
type Camera struct {
	Position       core.Vec3
	ViewportWidth  float64
	ViewportHeight float64
	Distance       float64
}

// DefaultCamera sits at the origin with a 1x1 viewport at distance 1
func DefaultCamera() Camera {
	return Camera{
		Position:       core.NewVec3(0, 0, 0),
		ViewportWidth:  1,
		ViewportHeight: 1,
		Distance:       1,
	}
}

// CanvasToViewport maps a centered pixel coordinate on a width x height canvas
// to the direction from the camera through the viewport. Negative viewport
// extents mirror the image.
func (c Camera) CanvasToViewport(width, height int, x, y float64) core.Vec3 {
	return core.NewVec3(
		x*c.ViewportWidth/float64(width),
		y*c.ViewportHeight/float64(height),
		c.Distance,
	)
}

// Validate rejects cameras with NaN or infinite fields, which would make
// every ray miss
func (c Camera) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"x", c.Position.X()},
		{"y", c.Position.Y()},
		{"z", c.Position.Z()},
		{"viewport width", c.ViewportWidth},
		{"viewport height", c.ViewportHeight},
		{"distance", c.Distance},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidCamera, f.name, f.value)
		}
	}
	return nil
}
