package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/bubblepop/internal/application/game"
	"github.com/younwookim/bubblepop/internal/application/replay"
	"github.com/younwookim/bubblepop/internal/application/scene"
	"github.com/younwookim/bubblepop/internal/application/scene/bubblepop"
	"github.com/younwookim/bubblepop/internal/application/scene/title"
	"github.com/younwookim/bubblepop/internal/application/system"
	"github.com/younwookim/bubblepop/internal/infrastructure/audio"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
	"github.com/younwookim/bubblepop/internal/infrastructure/render"
	"github.com/younwookim/bubblepop/internal/infrastructure/store"
	"github.com/younwookim/bubblepop/internal/log"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	logger := log.New(os.Stderr, log.LevelInfo)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}
	if err := run(opts, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// newLoader reads configs from dir, or from the embedded configs when empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func run(opts options, logger *log.Logger) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}

	if opts.listBoards {
		boards, err := loader.ListBoards()
		if err != nil {
			return err
		}
		for _, b := range boards {
			fmt.Println(b)
		}
		return nil
	}

	// A replay brings its own board and seed
	var recorded *replay.ReplayData
	if opts.replay != "" {
		recorded, err = replay.LoadReplay(opts.replay)
		if err != nil {
			return fmt.Errorf("failed to load replay %s: %w", opts.replay, err)
		}
		opts.board = recorded.Board
		opts.seed = recorded.Seed
	}

	cfg, err := loader.LoadAll(opts.board)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings := cfg.Settings

	level := settings.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger.SetLevel(log.LevelFromString(level))

	assets := os.DirFS(settings.Assets.Root)

	var out audio.Output
	if settings.Audio.Enabled && !opts.mute {
		spk, err := audio.NewSpeakerOutput()
		if err != nil {
			logger.Warnf("audio disabled: %v", err)
		} else {
			defer spk.Close()
			out = spk
		}
	}
	sounds := audio.NewService(assets, out, settings.Audio.Volume, logger.With("audio"))

	face, err := render.NewFace(settings.UI.FontSize)
	if err != nil {
		logger.Warnf("falling back to the debug font: %v", err)
		face = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	st, err := store.Open(ctx, settings.Results)
	cancel()
	if err != nil {
		logger.Warnf("results will not be saved: %v", err)
		st = store.Nop{}
	}
	results := store.NewWriter(st, settings.Results.Buffer, logger.With("results"))
	defer func() {
		if err := results.Close(); err != nil {
			logger.Warnf("failed to close results store: %v", err)
		}
	}()

	var input system.InputSource = system.NewInputSystem()
	if recorded != nil {
		input = system.NewReplayInputSystem(replay.NewReplayer(*recorded))
		logger.Infof("replaying %s: board=%s seed=%d frames=%d", opts.replay, recorded.Board, recorded.Seed, len(recorded.Frames))
	}

	registry := scene.NewRegistry()
	pop := bubblepop.New(bubblepop.Deps{
		Settings:  settings,
		Board:     cfg.Board,
		Registry:  registry,
		BackScene: title.Name,
		Audio:     sounds,
		Results:   results,
		Logger:    logger,
		Face:      face,
		LoadBubbleImage: func() (*ebiten.Image, error) {
			return loadBubbleImage(assets, settings.Assets.BubbleImage)
		},
		Input:      input,
		Seed:       opts.seed,
		RecordPath: opts.record,
	})
	titleScene := title.New(title.Deps{
		Settings:   settings,
		Registry:   registry,
		StartScene: bubblepop.Name,
		Face:       face,
		Input:      input,
	})
	registry.Register(bubblepop.Name, pop)
	registry.Register(title.Name, titleScene)

	// Replays skip the title so recorded frames line up with the round
	var first scene.Scene = titleScene
	if recorded != nil {
		first = pop
	}

	d := settings.Display
	g := game.New(first, d.ScreenWidth, d.ScreenHeight)
	g.SetBackground(config.MustParseColor(d.Background))
	g.SetDT(1.0 / float64(d.Framerate))

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	logger.Infof("starting %s on board %s", d.Title, cfg.Board.ID)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}

// loadBubbleImage reads the bubble texture from assets. Without a
// configured path, or when it fails to load, a generated bubble is used.
func loadBubbleImage(assets fs.FS, p string) (*ebiten.Image, error) {
	if p == "" {
		return render.NewBubbleImage(render.BubbleImageSize), nil
	}
	img, err := render.LoadImage(assets, p)
	if err != nil {
		return render.NewBubbleImage(render.BubbleImageSize), err
	}
	return img, nil
}
