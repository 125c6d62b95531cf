package bubblepop

import (
	"context"
	"image"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bubblepop/internal/application/game"
	"github.com/younwookim/bubblepop/internal/application/replay"
	"github.com/younwookim/bubblepop/internal/application/scene"
	"github.com/younwookim/bubblepop/internal/application/state"
	"github.com/younwookim/bubblepop/internal/application/system"
	"github.com/younwookim/bubblepop/internal/infrastructure/audio"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
	"github.com/younwookim/bubblepop/internal/infrastructure/store"
	"github.com/younwookim/bubblepop/internal/log"
)

// scriptInput replays queued frames, then reports an idle pointer
type scriptInput struct {
	frames []system.InputState
}

func (s *scriptInput) GetInput() system.InputState {
	if len(s.frames) == 0 {
		return system.InputState{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

func (s *scriptInput) tap(x, y float64) {
	p := image.Pt(int(x), int(y))
	s.frames = append(s.frames, system.InputState{CursorX: p.X, CursorY: p.Y, Taps: []image.Point{p}})
}

type memStore struct {
	mu      sync.Mutex
	results []store.Result
}

func (m *memStore) Save(_ context.Context, r store.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

func (m *memStore) Close() error { return nil }

type countingOutput struct {
	played int
}

func (o *countingOutput) Play(beep.Streamer) { o.played++ }

func testSettings() *config.SettingsConfig {
	return &config.SettingsConfig{
		Display: config.DisplayConfig{ScreenWidth: 1050, ScreenHeight: 750, Framerate: 60},
		UI: config.UIConfig{
			FontSize:            48,
			TextColor:           "#ffffff",
			HoverColor:          "#f39c12",
			BackBackground:      "#111111",
			PlayAgainBackground: "#008000",
		},
	}
}

// testBoard returns a board with the given cell size. 350 fits a 3x2 grid on
// a 1050x750 screen.
func testBoard(cellSize float64) *config.BoardConfig {
	return &config.BoardConfig{
		ID:       "big",
		CellSize: cellSize,
		Wobble: config.WobbleConfig{
			Offset: 3, ScaleDelta: 0.005, ScaleDurationMs: 4000,
			MinDurationMs: 800, MaxDurationMs: 1150,
			MinDelayMs: 1, MaxDelayMs: 1000,
		},
		Pop: config.PopConfig{DurationMs: 100, FlashColor: "#ffffff"},
	}
}

type fixture struct {
	game     *game.Game
	scene    *Scene
	title    *scene.Host
	input    *scriptInput
	results  *memStore
	writer   *store.Writer
	registry *scene.Registry
}

func newFixture(t *testing.T, deps Deps) *fixture {
	t.Helper()
	f := &fixture{
		input:    &scriptInput{},
		results:  &memStore{},
		registry: scene.NewRegistry(),
		title:    scene.NewHost("title", scene.Hooks{}),
	}
	f.writer = store.NewWriter(f.results, 4, log.Discard())
	t.Cleanup(func() { _ = f.writer.Close() })

	if deps.Settings == nil {
		deps.Settings = testSettings()
	}
	if deps.Board == nil {
		deps.Board = testBoard(350)
	}
	if deps.Input == nil {
		deps.Input = f.input
	}
	deps.Registry = f.registry
	deps.Results = f.writer
	deps.Logger = log.Discard()

	f.scene = New(deps)
	f.registry.Register("title", f.title)
	f.registry.Register(Name, f.scene)
	f.game = game.New(f.scene, 1050, 750)
	return f
}

func (f *fixture) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, f.game.Update())
	}
}

// popAll taps every live bubble once
func (f *fixture) popAll(t *testing.T) {
	t.Helper()
	for _, b := range f.scene.Field().Live() {
		f.input.tap(b.Center.X, b.Center.Y)
		f.step(t, 1)
	}
}

func TestScene_ClearAndPlayAgain(t *testing.T) {
	f := newFixture(t, Deps{Seed: 42})

	f.step(t, 1)
	require.True(t, f.scene.Created())
	assert.Equal(t, state.StatePlaying, f.scene.State())
	assert.Equal(t, 6, f.scene.Field().LiveCount())
	assert.Nil(t, f.scene.PlayAgainButton())
	assert.Equal(t, int64(42), f.scene.Seed())

	f.popAll(t)
	assert.Equal(t, state.StateCleared, f.scene.State())
	assert.Equal(t, 0, f.scene.Field().LiveCount())
	require.NotNil(t, f.scene.PlayAgainButton())

	// Exit animations finish and the visuals go away
	f.step(t, 10)
	assert.Equal(t, 0, f.scene.Field().PoppingCount())
	assert.Equal(t, 0, f.scene.Stage().Len())

	// Taps on the empty field after clearing pop nothing
	f.input.tap(175, 200)
	f.step(t, 1)
	assert.Equal(t, state.StateCleared, f.scene.State())

	f.input.tap(525, 375)
	f.step(t, 1)
	assert.Same(t, f.scene, f.game.Current(), "play again restarts the same scene")
	assert.False(t, f.scene.Created())

	f.step(t, 1)
	assert.Equal(t, 2, f.scene.Round())
	assert.Equal(t, int64(43), f.scene.Seed())
	assert.Equal(t, state.StatePlaying, f.scene.State())
	assert.Equal(t, 6, f.scene.Field().LiveCount())
	assert.Nil(t, f.scene.PlayAgainButton())

	require.NoError(t, f.writer.Close())
	require.Len(t, f.results.results, 1)
	r := f.results.results[0]
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, "big", r.Board)
	assert.Equal(t, 6, r.Bubbles)
	assert.Equal(t, 6, r.Taps)
	assert.Positive(t, r.Duration)
}

func TestScene_BackButton(t *testing.T) {
	f := newFixture(t, Deps{Seed: 1})
	f.step(t, 1)

	f.input.tap(20, 20)
	f.step(t, 1)
	assert.Same(t, f.title, f.game.Current())
	assert.Nil(t, f.scene.Field(), "round is torn down")
	assert.Equal(t, state.StateTitle, f.scene.State())
}

func TestScene_EscapeGoesBack(t *testing.T) {
	f := newFixture(t, Deps{Seed: 1})
	f.step(t, 1)

	f.input.frames = append(f.input.frames, system.InputState{Back: true})
	f.step(t, 1)
	assert.Same(t, f.title, f.game.Current())
}

func TestScene_BackButtonHover(t *testing.T) {
	f := newFixture(t, Deps{Seed: 1})
	f.step(t, 1)

	f.input.frames = append(f.input.frames, system.InputState{CursorX: 20, CursorY: 20})
	f.step(t, 1)
	assert.True(t, f.scene.BackButton().Hovered())

	f.input.frames = append(f.input.frames, system.InputState{CursorX: 500, CursorY: 500})
	f.step(t, 1)
	assert.False(t, f.scene.BackButton().Hovered())
}

func TestScene_MissedTapsPopNothing(t *testing.T) {
	// 3x2 cells of 300 leave a margin around the block
	f := newFixture(t, Deps{Seed: 5, Board: testBoard(300)})
	f.step(t, 1)
	require.Equal(t, 6, f.scene.Field().LiveCount())

	f.input.tap(1040, 740)
	f.step(t, 1)
	assert.Equal(t, 6, f.scene.Field().LiveCount())
}

func TestScene_EmptyBoardIsClearedAtOnce(t *testing.T) {
	out := &countingOutput{}
	svc := audio.NewService(nil, out, 0, log.Discard())
	settings := testSettings()
	settings.Audio.Sounds = map[string]string{SoundVictory: "synth:sparkle"}

	f := newFixture(t, Deps{Seed: 1, Board: testBoard(2000), Settings: settings, Audio: svc})
	for i := 0; i < 1000 && !f.scene.Created(); i++ {
		svc.Wait()
		f.step(t, 1)
	}
	require.True(t, f.scene.Created())

	assert.Equal(t, state.StateCleared, f.scene.State())
	assert.Equal(t, 0, f.scene.Field().LiveCount())
	assert.NotNil(t, f.scene.PlayAgainButton())
	assert.Equal(t, 0, out.played, "no victory without a pop")

	require.NoError(t, f.writer.Close())
	assert.Empty(t, f.results.results)
}

func TestScene_Sounds(t *testing.T) {
	out := &countingOutput{}
	svc := audio.NewService(nil, out, 0, log.Discard())
	settings := testSettings()
	settings.Audio.Sounds = map[string]string{
		SoundPop:     "synth:pop",
		SoundVictory: "synth:sparkle",
	}

	f := newFixture(t, Deps{Seed: 3, Settings: settings, Audio: svc})
	for i := 0; i < 1000 && !f.scene.Created(); i++ {
		svc.Wait()
		f.step(t, 1)
	}
	require.True(t, f.scene.Created())
	assert.Equal(t, 0, svc.Pending())

	f.popAll(t)
	assert.Equal(t, 6+1, out.played, "a pop per bubble and one victory")
}

func TestScene_SameSeedSameField(t *testing.T) {
	a := newFixture(t, Deps{Seed: 99, Board: testBoard(150)})
	b := newFixture(t, Deps{Seed: 99, Board: testBoard(150)})
	a.step(t, 1)
	b.step(t, 1)

	assert.Equal(t, 35, a.scene.Field().LiveCount())
	assert.Equal(t, a.scene.Field().Bubbles(), b.scene.Field().Bubbles())
}

func TestScene_RecordAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.json")
	f := newFixture(t, Deps{Seed: 7, RecordPath: path})
	f.step(t, 1)
	f.popAll(t)
	require.Equal(t, state.StateCleared, f.scene.State())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "big", data.Board)

	replayer := replay.NewReplayer(*data)
	g := newFixture(t, Deps{Seed: data.Seed, Input: system.NewReplayInputSystem(replayer)})
	for i := 0; i < len(data.Frames); i++ {
		g.step(t, 1)
	}
	assert.True(t, replayer.Done())
	assert.Equal(t, state.StateCleared, g.scene.State())
}
