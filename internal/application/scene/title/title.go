// Package title provides the title scene with a start button.
package title

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/bubblepop/internal/application/scene"
	"github.com/younwookim/bubblepop/internal/application/system"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
	"github.com/younwookim/bubblepop/internal/infrastructure/render"
)

// Name is the registry name of the scene
const Name = "title"

// Deps are the services the title runs on
type Deps struct {
	Settings *config.SettingsConfig
	Registry *scene.Registry
	// StartScene is entered by the start button
	StartScene string
	Face       text.Face
	Input      system.InputSource
}

// Scene is the title screen
type Scene struct {
	*scene.Host

	deps  Deps
	input system.InputSource
	start *render.Button
}

// New creates the title scene
func New(deps Deps) *Scene {
	s := &Scene{deps: deps, input: deps.Input}
	if s.input == nil {
		s.input = system.NewInputSystem()
	}
	s.Host = scene.NewHost(Name, scene.Hooks{
		Create: s.create,
		Update: s.update,
		Draw:   s.draw,
	})
	return s
}

func (s *Scene) create() {
	d := s.deps.Settings.Display
	ui := s.deps.Settings.UI
	s.start = render.NewButton("Start", float64(d.ScreenWidth)/2, float64(d.ScreenHeight)/2, 0.5, 0.5,
		render.ButtonStyleFrom(ui, s.deps.Face, ui.PlayAgainBackground, render.UniformPadding(40)))
}

func (s *Scene) update(float64) (scene.Scene, error) {
	input := s.input.GetInput()
	s.start.Hover(float64(input.CursorX), float64(input.CursorY))

	if input.Back {
		return nil, scene.ErrQuit
	}
	for _, p := range input.Taps {
		if s.start.Contains(float64(p.X), float64(p.Y)) {
			return s.deps.Registry.Get(s.deps.StartScene)
		}
	}
	return nil, nil
}

func (s *Scene) draw(screen *ebiten.Image) {
	title := s.deps.Settings.Display.Title
	if s.deps.Face == nil {
		ebitenutil.DebugPrintAt(screen, title, 10, 10)
	} else {
		w, _ := text.Measure(title, s.deps.Face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate((float64(s.deps.Settings.Display.ScreenWidth)-w)/2, float64(s.deps.Settings.Display.ScreenHeight)/5)
		op.ColorScale.ScaleWithColor(config.MustParseColor(s.deps.Settings.UI.TextColor))
		text.Draw(screen, title, s.deps.Face, op)
	}
	s.start.Draw(screen)
}

// StartButton returns the start button once the scene is created
func (s *Scene) StartButton() *render.Button {
	return s.start
}
