package title

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bubblepop/internal/application/game"
	"github.com/younwookim/bubblepop/internal/application/scene"
	"github.com/younwookim/bubblepop/internal/application/system"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
)

type queueInput []system.InputState

func (q *queueInput) GetInput() system.InputState {
	if len(*q) == 0 {
		return system.InputState{}
	}
	in := (*q)[0]
	*q = (*q)[1:]
	return in
}

func newTitle(t *testing.T, input *queueInput) (*game.Game, *Scene, *scene.Host) {
	t.Helper()
	loader := config.NewLoader("../../../../cmd/game/configs")
	settings, err := loader.LoadSettings()
	require.NoError(t, err)

	registry := scene.NewRegistry()
	next := scene.NewHost("bubblepop", scene.Hooks{})
	registry.Register("bubblepop", next)

	s := New(Deps{Settings: settings, Registry: registry, StartScene: "bubblepop", Input: input})
	registry.Register(Name, s)
	return game.New(s, settings.Display.ScreenWidth, settings.Display.ScreenHeight), s, next
}

func TestTitle_StartButton(t *testing.T) {
	input := &queueInput{}
	g, s, next := newTitle(t, input)

	require.NoError(t, g.Update())
	require.NotNil(t, s.StartButton())

	// Miss, then hover and hit the centered button
	*input = append(*input,
		system.InputState{Taps: []image.Point{{X: 5, Y: 5}}},
		system.InputState{CursorX: 525, CursorY: 375},
		system.InputState{CursorX: 525, CursorY: 375, Taps: []image.Point{{X: 525, Y: 375}}},
	)
	require.NoError(t, g.Update())
	assert.Same(t, s, g.Current())

	require.NoError(t, g.Update())
	assert.True(t, s.StartButton().Hovered())

	require.NoError(t, g.Update())
	assert.Same(t, next, g.Current())
}

func TestTitle_EscapeQuits(t *testing.T) {
	input := &queueInput{}
	g, _, _ := newTitle(t, input)

	require.NoError(t, g.Update())
	*input = append(*input, system.InputState{Back: true})
	assert.Error(t, g.Update())
}
