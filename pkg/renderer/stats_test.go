package renderer

import "testing"

func TestRenderStats_Coverage(t *testing.T) {
	tests := []struct {
		name     string
		stats    RenderStats
		expected float64
	}{
		{"empty", RenderStats{}, 0},
		{"no hits", RenderStats{TotalPixels: 100}, 0},
		{"quarter", RenderStats{TotalPixels: 100, Hits: 25}, 0.25},
		{"full", RenderStats{TotalPixels: 7, Hits: 7}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Coverage(); got != tt.expected {
				t.Errorf("Expected coverage %f, got %f", tt.expected, got)
			}
		})
	}
}
