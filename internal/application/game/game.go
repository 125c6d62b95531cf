// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/bubblepop/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current    scene.Scene
	screenW    int
	screenH    int
	dt         float64
	background color.Color
	frames     int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene returning the current scene restarts it.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frames++
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, scene.ErrQuit) {
			g.current.OnExit()
			return ebiten.Termination
		}
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw clears the screen to the background color and renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.background != nil {
		screen.Fill(g.background)
	}
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetBackground sets the color the screen is cleared to each frame
func (g *Game) SetBackground(c color.Color) {
	g.background = c
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns the number of updates run so far
func (g *Game) Frames() int {
	return g.frames
}
