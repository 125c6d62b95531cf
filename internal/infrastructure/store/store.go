// Package store persists the results of cleared rounds.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
)

// Result describes one cleared round
type Result struct {
	RoundID   uuid.UUID     `json:"roundId"`
	Seed      int64         `json:"seed"`
	Board     string        `json:"board"`
	Bubbles   int           `json:"bubbles"`
	Taps      int           `json:"taps"`
	Duration  time.Duration `json:"durationNs"`
	ClearedAt time.Time     `json:"clearedAt"`
}

// Store saves round results
type Store interface {
	Save(ctx context.Context, r Result) error
	Close() error
}

// Nop discards every result
type Nop struct{}

func (Nop) Save(context.Context, Result) error { return nil }
func (Nop) Close() error                       { return nil }

// Open creates the store selected by cfg.Driver
func Open(ctx context.Context, cfg config.ResultsConfig) (Store, error) {
	switch cfg.Driver {
	case "", "none":
		return Nop{}, nil
	case "file":
		return OpenFile(cfg.Path)
	case "mysql":
		return OpenMySQL(ctx, cfg.MySQL)
	default:
		return nil, fmt.Errorf("unknown results driver %q", cfg.Driver)
	}
}
