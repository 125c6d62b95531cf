package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Board    *BoardConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads game.yaml
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg SettingsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadBoard loads a board YAML file
func (l *Loader) LoadBoard(name string) (*BoardConfig, error) {
	p := "boards/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read board %s: %w", name, err)
	}

	var cfg BoardConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse board %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board %s: %w", name, err)
	}
	return &cfg, nil
}

// ListBoards returns the names of the available boards, sorted
func (l *Loader) ListBoards() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "boards")
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads the settings and the named board
func (l *Loader) LoadAll(board string) (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	b, err := l.LoadBoard(board)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Board:    b,
	}, nil
}
