package panzoom

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string `yaml:"title" validate:"required"`
	// Width and Height are the initial window size in pixels.
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`
	// ShowHUD draws the stats panel and state banner.
	ShowHUD bool `yaml:"showHUD"`
	// ScreenshotDir receives screenshots taken by scripts.
	ScreenshotDir string `yaml:"screenshotDir"`
	// Script is an optional path to a gesture script run on start.
	Script string `yaml:"script" validate:"omitempty,file"`
	// Deterministic drives the clock in fixed 1/TPS steps instead of wall
	// time. Useful with Script for reproducible runs.
	Deterministic bool `yaml:"deterministic"`
	// ExitOnScriptEnd closes the window once the script finishes.
	ExitOnScriptEnd bool `yaml:"exitOnScriptEnd"`
}

// DefaultRunConfig returns the configuration used when no file is given.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Mandelbrot",
		Width:         720,
		Height:        720,
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig reads a YAML config file over the defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg against its field constraints.
func (cfg RunConfig) Validate() error {
	if err := validateStruct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewSurfaceFromConfig builds a Surface for cfg, loading its script if set.
func NewSurfaceFromConfig(cfg RunConfig) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := SurfaceOptions{
		ShowHUD:         cfg.ShowHUD,
		ScreenshotDir:   cfg.ScreenshotDir,
		ExitOnScriptEnd: cfg.ExitOnScriptEnd,
	}
	if cfg.Deterministic {
		opts.Clock = NewManualClock(0)
		opts.FixedStep = 1.0 / float64(ebiten.DefaultTPS)
	}
	s := NewSurface(cfg.Width, cfg.Height, opts)

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := LoadScript(data)
		if err != nil {
			return nil, err
		}
		s.SetScriptRunner(runner)
	}
	return s, nil
}

// Run opens a window and runs surface s until the window closes or the
// surface returns ebiten.Termination, which RunGame reports as nil.
func Run(s *Surface, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	Logger().WithField("size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)).Info("opening window")
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
