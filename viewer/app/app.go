// Package app runs the interactive viewer: an ebiten window showing the
// rendered canvas with sliders for the camera and viewport parameters.
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/df07/go-sphere-raytracer/pkg/canvas"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/df07/go-sphere-raytracer/viewer/layout"
)

var (
	clearColor    = renderer.Background.RGBAColor()
	sliderTrack   = color.RGBA{0x30, 0x30, 0x30, 0xE0}
	sliderFill    = color.RGBA{0x5c, 0x8d, 0xd6, 0xFF}
	sliderOutline = color.RGBA{0xC8, 0xC8, 0xC8, 0xFF}
	sliderActive  = color.RGBA{0xFF, 0xD0, 0x40, 0xFF}
)

// Config holds the viewer settings
type Config struct {
	Scene    *scene.Scene
	Width    int
	Height   int
	Camera   renderer.Camera
	SavePath string // written when S is pressed
	TPS      int
	Logger   core.Logger
}

// App implements ebiten.Game
type App struct {
	config    Config
	raytracer *renderer.Raytracer
	session   *renderer.Session
	canvas    *canvas.Canvas
	frame     *ebiten.Image
	sliders   []layout.Slider
	selected  int
	dragging  int
}

// New creates the viewer. The first Update renders the scene.
func New(config Config) *App {
	if config.Logger == nil {
		config.Logger = renderer.NewDefaultLogger()
	}
	return &App{
		config:    config,
		raytracer: renderer.NewRaytracer(config.Scene, config.Logger),
		session:   renderer.NewSession(config.Camera),
		canvas:    canvas.New(config.Width, config.Height),
		sliders:   layout.Sliders(renderer.Params()),
		dragging:  -1,
	}
}

// Run opens the window and blocks until it is closed
func Run(config Config) error {
	a := New(config)
	ebiten.SetWindowTitle(fmt.Sprintf("Computer Graphics - %s", config.Scene.Name))
	ebiten.SetWindowSize(config.Width, config.Height)
	if config.TPS > 0 {
		ebiten.SetTPS(config.TPS)
	}
	return ebiten.RunGame(a)
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := a.canvas.ExportPPM(a.config.SavePath, a.config.Logger); err == nil {
			a.config.Logger.Printf("Saved frame to %s\n", a.config.SavePath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.session.Reset(a.config.Camera)
	}

	a.handleKeyboard()
	a.handleMouse()

	a.session.Frame(func(camera renderer.Camera) {
		a.raytracer.RenderAndLog(a.canvas, camera)
		if a.frame == nil {
			a.frame = ebiten.NewImage(a.canvas.Width(), a.canvas.Height())
		}
		a.frame.WritePixels(a.canvas.Bytes())
	})
	return nil
}

func (a *App) handleKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.selected = (a.selected + len(a.sliders) - 1) % len(a.sliders)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		a.selected = (a.selected + 1) % len(a.sliders)
	}

	p := a.sliders[a.selected].Param
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.session.Nudge(p, -layout.Step(p))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.session.Nudge(p, layout.Step(p))
	}
}

func (a *App) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.dragging = layout.HitTest(a.sliders, x, y)
		if a.dragging >= 0 {
			a.selected = a.dragging
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.dragging = -1
		return
	}
	if a.dragging >= 0 {
		s := a.sliders[a.dragging]
		a.session.Set(s.Param, s.ValueAt(x))
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	if a.frame != nil {
		screen.DrawImage(a.frame, nil)
	}

	for i, s := range a.sliders {
		a.drawSlider(screen, s, i == a.selected)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.f", ebiten.ActualFPS()), a.canvas.Width()-120, 50)
	ebitenutil.DebugPrintAt(screen, "S: save  R: reset  Esc: quit",
		layout.SliderX, layout.SliderY+len(a.sliders)*(layout.SliderHeight+layout.SliderGap))
}

func (a *App) drawSlider(screen *ebiten.Image, s layout.Slider, selected bool) {
	value := a.session.Get(s.Param)
	x, y := float32(s.X), float32(s.Y)
	w, h := float32(s.Width), float32(s.Height)

	vector.DrawFilledRect(screen, x, y, w, h, sliderTrack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(s.Fraction(value)), h, sliderFill, false)

	outline := sliderOutline
	if selected {
		outline = sliderActive
	}
	vector.StrokeRect(screen, x, y, w, h, 1, outline, false)

	label := fmt.Sprintf("%s %.2f", s.Param, value)
	ebitenutil.DebugPrintAt(screen, label, s.X+4, s.Y+(s.Height-16)/2)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.canvas.Width(), a.canvas.Height()
}
