package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/canvas"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'trio' or 'empty'")
	width := flag.Int("width", 800, "Canvas width in pixels")
	height := flag.Int("height", 600, "Canvas height in pixels")
	output := flag.String("output", "canvas.ppm", "Output image path")
	format := flag.String("format", "", "Output format: 'ppm' or 'png' (default: from the output extension)")
	cx := flag.Float64("cx", 0, "Camera x position")
	cy := flag.Float64("cy", 0, "Camera y position")
	cz := flag.Float64("cz", 0, "Camera z position")
	vw := flag.Float64("vw", 1, "Viewport width")
	vh := flag.Float64("vh", 1, "Viewport height")
	d := flag.Float64("d", 1, "Distance from camera to viewport")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
		}
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *width <= 0 || *height <= 0 {
		fmt.Printf("Error: invalid canvas size %dx%d\n", *width, *height)
		os.Exit(1)
	}

	outputFormat, err := resolveFormat(*output, *format)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	camera := renderer.Camera{
		Position:       core.NewVec3(*cx, *cy, *cz),
		ViewportWidth:  *vw,
		ViewportHeight: *vh,
		Distance:       *d,
	}
	if err := camera.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s scene at %dx%d...\n", selectedScene.Name, *width, *height)

	logger := renderer.NewDefaultLogger()
	raytracer := renderer.NewRaytracer(selectedScene, logger)
	c := canvas.New(*width, *height)

	startTime := time.Now()
	stats := raytracer.Render(c, camera)
	fmt.Printf("Render completed in %v (%d of %d pixels hit geometry)\n",
		time.Since(startTime), stats.Hits, stats.TotalPixels)

	// Export failures are logged by the canvas; the render itself succeeded
	switch outputFormat {
	case "png":
		err = c.ExportPNG(*output, logger)
	default:
		err = c.ExportPPM(*output, logger)
	}
	if err == nil {
		fmt.Printf("Render saved as %s\n", *output)
	}
}

// createScene returns the built-in scene with the given name
func createScene(sceneType string) (*scene.Scene, error) {
	s, err := scene.ByName(sceneType)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	return s, nil
}

// resolveFormat picks the output format from the explicit flag, falling back
// to the file extension and then to ppm
func resolveFormat(output, format string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch format {
	case "ppm", "png":
		return format, nil
	case "":
		return "ppm", nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}
