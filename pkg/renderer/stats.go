package renderer

import "time"

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels int           // Number of pixels written
	Hits        int           // Pixels whose ray hit a sphere
	Elapsed     time.Duration // Wall time of the pass
}

// Coverage returns the fraction of pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}
