package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/df07/go-sphere-raytracer/viewer/app"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'trio' or 'empty'")
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 600, "Window height in pixels")
	savePath := flag.String("save", "saved.ppm", "Where the S key saves the current frame")
	tps := flag.Int("tps", 120, "Ticks per second")
	flag.Parse()

	s, err := scene.ByName(*sceneType)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
	if *width <= 0 || *height <= 0 {
		log.Printf("Error: invalid window size %dx%d", *width, *height)
		os.Exit(1)
	}

	log.Printf("Sphere Raytracer Viewer")
	log.Printf("Drag the sliders or use the arrow keys to move the camera")

	config := app.Config{
		Scene:    s,
		Width:    *width,
		Height:   *height,
		Camera:   renderer.DefaultCamera(),
		SavePath: *savePath,
		TPS:      *tps,
		Logger:   renderer.NewDefaultLogger(),
	}
	if err := app.Run(config); err != nil {
		log.Printf("Error running viewer: %v", err)
		os.Exit(1)
	}
}
