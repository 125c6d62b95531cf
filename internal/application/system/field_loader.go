package system

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/younwookim/bubblepop/internal/domain/bubble"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
	"github.com/younwookim/bubblepop/internal/infrastructure/render"
)

// BoardSetup is everything a round needs from a board config
type BoardSetup struct {
	Grid    bubble.Grid
	Options bubble.Options
	Stage   render.StageConfig
}

// LoadBoard converts a BoardConfig into field options, the grid for a
// width x height display and the stage animation settings
func LoadBoard(cfg *config.BoardConfig, width, height float64, rng *rand.Rand) (BoardSetup, error) {
	palette, err := cfg.ParsePalette()
	if err != nil {
		return BoardSetup{}, fmt.Errorf("board %s: %w", cfg.ID, err)
	}
	flash, err := config.ParseColor(cfg.Pop.FlashColor)
	if err != nil {
		return BoardSetup{}, fmt.Errorf("board %s: flash color: %w", cfg.ID, err)
	}

	w := cfg.Wobble
	return BoardSetup{
		Grid: bubble.ComputeGrid(width, height, cfg.CellSize),
		Options: bubble.Options{
			Width:   width,
			Height:  height,
			Palette: palette,
			Wobble: bubble.WobbleRange{
				MinDuration: w.MinDurationMs,
				MaxDuration: w.MaxDurationMs,
				MinDelay:    w.MinDelayMs,
				MaxDelay:    w.MaxDelayMs,
			},
			Rand: rng,
		},
		Stage: render.StageConfig{
			WobbleOffset:        w.Offset,
			WobbleScale:         w.ScaleDelta,
			WobbleScaleDuration: time.Duration(w.ScaleDurationMs) * time.Millisecond,
			PopDuration:         time.Duration(cfg.Pop.DurationMs) * time.Millisecond,
			FlashColor:          flash,
		},
	}, nil
}
