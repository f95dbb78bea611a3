// Package layout positions the parameter sliders of the interactive viewer
// and maps cursor positions to parameter values.
package layout

import "github.com/df07/go-sphere-raytracer/pkg/renderer"

const (
	SliderX      = 24
	SliderY      = 24
	SliderWidth  = 120
	SliderHeight = 30
	SliderGap    = 2
)

// Slider is the on-screen rectangle controlling one parameter
type Slider struct {
	Param         renderer.Param
	X, Y          int
	Width, Height int
}

// Sliders stacks one slider per parameter from the top-left corner
func Sliders(params []renderer.Param) []Slider {
	sliders := make([]Slider, len(params))
	y := SliderY
	for i, p := range params {
		sliders[i] = Slider{Param: p, X: SliderX, Y: y, Width: SliderWidth, Height: SliderHeight}
		y += SliderHeight + SliderGap
	}
	return sliders
}

// Contains reports whether the point lies inside the slider
func (s Slider) Contains(x, y int) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}

// ValueAt maps a cursor x coordinate to a parameter value, clamped to the
// parameter's bounds
func (s Slider) ValueAt(x int) float64 {
	info := s.Param.Info()
	t := float64(x-s.X) / float64(s.Width)
	t = max(0, min(1, t))
	return info.Min + t*(info.Max-info.Min)
}

// Fraction returns how far along the slider value sits, in [0,1]
func (s Slider) Fraction(value float64) float64 {
	info := s.Param.Info()
	t := (value - info.Min) / (info.Max - info.Min)
	return max(0, min(1, t))
}

// Step is the increment applied per tick when a parameter is nudged by keyboard
func Step(p renderer.Param) float64 {
	info := p.Info()
	return (info.Max - info.Min) / 200
}

// HitTest returns the index of the slider under the point, or -1
func HitTest(sliders []Slider, x, y int) int {
	for i, s := range sliders {
		if s.Contains(x, y) {
			return i
		}
	}
	return -1
}
