package config

// BoardConfig is the root config for board YAML files
type BoardConfig struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	CellSize float64      `yaml:"cellSize"`
	Palette  []string     `yaml:"palette"` // hex colors, empty = default palette
	Wobble   WobbleConfig `yaml:"wobble"`
	Pop      PopConfig    `yaml:"pop"`
}

// WobbleConfig configures the idle animation of every bubble
type WobbleConfig struct {
	Offset          float64 `yaml:"offset"`     // pixels
	ScaleDelta      float64 `yaml:"scaleDelta"` // added to scale
	ScaleDurationMs int     `yaml:"scaleDurationMs"`
	MinDurationMs   int     `yaml:"minDurationMs"`
	MaxDurationMs   int     `yaml:"maxDurationMs"`
	MinDelayMs      int     `yaml:"minDelayMs"`
	MaxDelayMs      int     `yaml:"maxDelayMs"`
}

// PopConfig configures the exit animation
type PopConfig struct {
	DurationMs int    `yaml:"durationMs"`
	FlashColor string `yaml:"flashColor"`
}
