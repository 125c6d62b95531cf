// Package bubblepop provides the bubble field scene: a grid of wobbling
// bubbles that pop when tapped, with a Play Again button once all are gone.
package bubblepop

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/bubblepop/internal/application/replay"
	"github.com/younwookim/bubblepop/internal/application/scene"
	"github.com/younwookim/bubblepop/internal/application/state"
	"github.com/younwookim/bubblepop/internal/application/system"
	"github.com/younwookim/bubblepop/internal/application/tween"
	"github.com/younwookim/bubblepop/internal/domain/bubble"
	"github.com/younwookim/bubblepop/internal/infrastructure/audio"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
	"github.com/younwookim/bubblepop/internal/infrastructure/render"
	"github.com/younwookim/bubblepop/internal/infrastructure/store"
	"github.com/younwookim/bubblepop/internal/log"
)

// Name is the registry name of the scene
const Name = "bubblepop"

// Sound names looked up in the audio settings
const (
	SoundPop     = "pop"
	SoundVictory = "victory"
)

// Deps are the shared services the scene runs on. Only Settings, Board and
// Registry are required.
type Deps struct {
	Settings *config.SettingsConfig
	Board    *config.BoardConfig
	Registry *scene.Registry
	// BackScene is where the back button leads, the title by default
	BackScene string

	Audio   *audio.Service
	Results *store.Writer
	Logger  *log.Logger
	Face    text.Face
	// LoadBubbleImage returns the texture shared by every bubble.
	// Without it bubbles are not drawn.
	LoadBubbleImage func() (*ebiten.Image, error)
	// Input defaults to live mouse and touch input
	Input system.InputSource

	// Seed fixes the seed of the first round, 0 picks one from the clock.
	// Later rounds count up from it.
	Seed int64
	// RecordPath enables input recording, saved when the round is cleared
	RecordPath string
}

// Scene is the bubble field scene
type Scene struct {
	*scene.Host

	deps   Deps
	logger *log.Logger
	input  system.InputSource
	width  float64
	height float64

	image        *ebiten.Image
	popSound     *audio.Sound
	victorySound *audio.Sound

	// Round
	state     state.GameState
	round     int
	roundID   uuid.UUID
	seed      int64
	tweens    *tween.Manager
	stage     *render.Stage
	taps      *system.TapRegistry
	field     *bubble.Field
	back      *render.Button
	playAgain *render.Button
	recorder  *replay.Recorder
	tapCount  int
	elapsed   float64
}

// New creates the scene
func New(deps Deps) *Scene {
	if deps.BackScene == "" {
		deps.BackScene = "title"
	}
	s := &Scene{
		deps:   deps,
		logger: deps.Logger.With(Name),
		input:  deps.Input,
		width:  float64(deps.Settings.Display.ScreenWidth),
		height: float64(deps.Settings.Display.ScreenHeight),
		state:  state.StateTitle,
	}
	if s.input == nil {
		s.input = system.NewInputSystem()
	}
	s.Host = scene.NewHost(Name, scene.Hooks{
		Preload:     s.preload,
		Loading:     s.loading,
		Create:      s.create,
		Destroy:     s.destroy,
		Update:      s.update,
		Draw:        s.draw,
		DrawLoading: s.drawLoading,
	})
	return s
}

func (s *Scene) preload() {
	s.state = state.StateLoading

	if s.deps.LoadBubbleImage != nil {
		img, err := s.deps.LoadBubbleImage()
		if err != nil {
			s.logger.Warnf("bubble image: %v", err)
		}
		s.image = img
	}

	if s.deps.Audio == nil {
		return
	}
	sounds := s.deps.Settings.Audio.Sounds
	if p := sounds[SoundPop]; p != "" {
		s.deps.Audio.Load(SoundPop, p, func(snd *audio.Sound, _ error) { s.popSound = snd })
	}
	if p := sounds[SoundVictory]; p != "" {
		s.deps.Audio.Load(SoundVictory, p, func(snd *audio.Sound, _ error) { s.victorySound = snd })
	}
}

func (s *Scene) loading() bool {
	if s.deps.Audio == nil {
		return false
	}
	s.deps.Audio.Poll()
	return s.deps.Audio.Pending() > 0
}

func (s *Scene) create() {
	s.state = state.StateLoading
	s.seed = s.nextSeed()
	s.round++
	s.roundID = uuid.New()
	s.tapCount = 0
	s.elapsed = 0

	rng := rand.New(rand.NewSource(s.seed))
	setup, err := system.LoadBoard(s.deps.Board, s.width, s.height, rng)
	if err != nil {
		s.logger.Errorf("%v", err)
	}

	s.tweens = tween.NewManager()
	s.stage = render.NewStage(s.image, s.tweens, setup.Stage)
	s.taps = system.NewTapRegistry(s.stage)
	s.field = bubble.NewField(s.stage, s.taps, setup.Options)
	if s.popSound != nil {
		s.field.SetPopSound(s.popSound)
	}
	s.field.OnComplete(s.onCleared)
	s.field.Initialize(setup.Grid)

	ui := s.deps.Settings.UI
	s.back = render.NewButton("←", 10, 10, 0, 0,
		render.ButtonStyleFrom(ui, s.deps.Face, ui.BackBackground, render.Padding{Left: 20, Top: 0, Right: 20, Bottom: 10}))
	s.playAgain = nil

	if s.deps.RecordPath != "" {
		s.recorder = replay.NewRecorder(s.roundID, s.seed, s.deps.Board.ID)
	}

	s.logger.Infof("round %s started: board=%s seed=%d bubbles=%d", s.roundID, s.deps.Board.ID, s.seed, s.field.LiveCount())

	s.state = state.StatePlaying
	if s.field.Complete() {
		// Nothing fits on screen, the round is over before it starts
		s.state = state.StateCleared
		s.showPlayAgain()
	}
}

func (s *Scene) nextSeed() int64 {
	if s.deps.Seed != 0 {
		return s.deps.Seed + int64(s.round)
	}
	return time.Now().UnixNano()
}

func (s *Scene) onCleared() {
	s.state = state.StateCleared
	s.victorySound.Play()
	s.showPlayAgain()

	s.logger.Infof("round %s cleared in %.2fs with %d taps", s.roundID, s.elapsed, s.tapCount)

	if s.recorder != nil {
		s.saveRecording()
		s.recorder.Stop()
	}
	if s.deps.Results != nil {
		s.deps.Results.Submit(store.Result{
			RoundID:   s.roundID,
			Seed:      s.seed,
			Board:     s.deps.Board.ID,
			Bubbles:   s.field.Grid().Cells(),
			Taps:      s.tapCount,
			Duration:  time.Duration(s.elapsed * float64(time.Second)),
			ClearedAt: time.Now(),
		})
	}
}

func (s *Scene) showPlayAgain() {
	ui := s.deps.Settings.UI
	s.playAgain = render.NewButton("Play Again", s.width/2, s.height/2, 0.5, 0.5,
		render.ButtonStyleFrom(ui, s.deps.Face, ui.PlayAgainBackground, render.UniformPadding(50)))
}

// saveRecording saves the current recording to file
func (s *Scene) saveRecording() {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Save(s.deps.RecordPath); err != nil {
		s.logger.Warnf("failed to save recording: %v", err)
		return
	}
	s.logger.Infof("recording saved: %s (%d frames)", s.deps.RecordPath, s.recorder.FrameCount())
}

func (s *Scene) update(dt float64) (scene.Scene, error) {
	s.elapsed += dt

	input := s.input.GetInput()
	if s.recorder != nil {
		s.recorder.RecordFrame(system.ToReplayInput(input))
	}
	if input.Save {
		s.saveRecording()
	}

	cx, cy := float64(input.CursorX), float64(input.CursorY)
	s.back.Hover(cx, cy)
	if s.playAgain != nil {
		s.playAgain.Hover(cx, cy)
	}

	if input.Back {
		return s.deps.Registry.Get(s.deps.BackScene)
	}

	for _, p := range input.Taps {
		x, y := float64(p.X), float64(p.Y)
		switch {
		case s.back.Contains(x, y):
			return s.deps.Registry.Get(s.deps.BackScene)
		case s.playAgain != nil && s.playAgain.Contains(x, y):
			return s, nil
		case s.state == state.StatePlaying:
			s.tapCount++
			s.taps.Dispatch(x, y)
		}
	}

	s.tweens.Update(dt)
	return nil, nil
}

func (s *Scene) destroy() {
	s.tweens.Clear()
	s.taps.Reset()
	s.tweens = nil
	s.stage = nil
	s.taps = nil
	s.field = nil
	s.back = nil
	s.playAgain = nil
	s.recorder = nil
	s.state = state.StateTitle
}

func (s *Scene) draw(screen *ebiten.Image) {
	s.stage.Draw(screen)
	s.back.Draw(screen)
	if s.playAgain != nil {
		s.playAgain.Draw(screen)
	}
}

func (s *Scene) drawLoading(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Loading...", 10, 10)
}

// State returns the round state
func (s *Scene) State() state.GameState {
	return s.state
}

// Field returns the field of the current round, nil outside a round
func (s *Scene) Field() *bubble.Field {
	return s.field
}

// Stage returns the stage of the current round, nil outside a round
func (s *Scene) Stage() *render.Stage {
	return s.stage
}

// PlayAgainButton returns the Play Again button once the round is cleared
func (s *Scene) PlayAgainButton() *render.Button {
	return s.playAgain
}

// BackButton returns the back button of the current round
func (s *Scene) BackButton() *render.Button {
	return s.back
}

// Seed returns the seed of the current round
func (s *Scene) Seed() int64 {
	return s.seed
}

// Round returns how many rounds were created
func (s *Scene) Round() int {
	return s.round
}
