package config

import (
	"errors"
	"fmt"
	"regexp"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (c *SettingsConfig) applyDefaults() {
	if c.Display.Scale == 0 {
		c.Display.Scale = 1
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = 60
	}
	if c.Display.Title == "" {
		c.Display.Title = "Bubble Pop"
	}
	if c.Display.Background == "" {
		c.Display.Background = "#1a1a2e"
	}
	if c.UI.FontSize == 0 {
		c.UI.FontSize = 48
	}
	if c.UI.TextColor == "" {
		c.UI.TextColor = "#ffffff"
	}
	if c.UI.HoverColor == "" {
		c.UI.HoverColor = "#f39c12"
	}
	if c.UI.BackBackground == "" {
		c.UI.BackBackground = "#111111"
	}
	if c.UI.PlayAgainBackground == "" {
		c.UI.PlayAgainBackground = "#008000"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Results.Driver == "" {
		c.Results.Driver = "none"
	}
	if c.Results.Buffer == 0 {
		c.Results.Buffer = 16
	}
	if c.Results.MySQL.Table == "" {
		c.Results.MySQL.Table = "rounds"
	}
}

// Validate reports the first setting that cannot work
func (c *SettingsConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate < 0 || c.Display.Scale < 0 {
		return errors.New("display scale and framerate must not be negative")
	}
	for _, hex := range []string{c.Display.Background, c.UI.TextColor, c.UI.HoverColor, c.UI.BackBackground, c.UI.PlayAgainBackground} {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	switch c.Results.Driver {
	case "none":
	case "file":
		if c.Results.Path == "" {
			return errors.New("results.path is required for the file driver")
		}
	case "mysql":
		if c.Results.MySQL.Addr == "" || c.Results.MySQL.DBName == "" {
			return errors.New("results.mysql.addr and results.mysql.dbName are required for the mysql driver")
		}
		if !tableName.MatchString(c.Results.MySQL.Table) {
			return fmt.Errorf("invalid results.mysql.table %q", c.Results.MySQL.Table)
		}
	default:
		return fmt.Errorf("unknown results driver %q", c.Results.Driver)
	}
	return nil
}

func (c *BoardConfig) applyDefaults() {
	if c.Name == "" {
		c.Name = c.ID
	}
	if c.Wobble.Offset == 0 {
		c.Wobble.Offset = 3
	}
	if c.Wobble.ScaleDelta == 0 {
		c.Wobble.ScaleDelta = 0.005
	}
	if c.Wobble.ScaleDurationMs == 0 {
		c.Wobble.ScaleDurationMs = 4000
	}
	if c.Wobble.MinDurationMs == 0 && c.Wobble.MaxDurationMs == 0 {
		c.Wobble.MinDurationMs = 800
		c.Wobble.MaxDurationMs = 1150
	}
	if c.Wobble.MinDelayMs == 0 && c.Wobble.MaxDelayMs == 0 {
		c.Wobble.MinDelayMs = 1
		c.Wobble.MaxDelayMs = 1000
	}
	if c.Pop.DurationMs == 0 {
		c.Pop.DurationMs = 100
	}
	if c.Pop.FlashColor == "" {
		c.Pop.FlashColor = "#ffffff"
	}
}

// Validate reports the first board setting that cannot work.
// A cell size larger than the screen is valid: the board is simply empty.
func (c *BoardConfig) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %v", c.CellSize)
	}
	if c.Wobble.MinDurationMs > c.Wobble.MaxDurationMs {
		return errors.New("wobble.minDurationMs is greater than wobble.maxDurationMs")
	}
	if c.Wobble.MinDelayMs > c.Wobble.MaxDelayMs {
		return errors.New("wobble.minDelayMs is greater than wobble.maxDelayMs")
	}
	if _, err := c.ParsePalette(); err != nil {
		return err
	}
	if _, err := ParseColor(c.Pop.FlashColor); err != nil {
		return err
	}
	return nil
}
