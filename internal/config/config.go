// Package config holds the settings the game starts with. Settings live in a
// JSON file next to the binary; a missing file means defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"qoom/internal/controller"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid settings")

const DefaultPath = "qoom.json"

type Window struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"targetFPS"`
}

type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Settings is everything the frame loop needs before the first frame.
type Settings struct {
	Window         Window            `json:"window"`
	LevelPath      string            `json:"levelPath"`
	CollisionScale float32           `json:"collisionScale"`
	Controller     string            `json:"controller"`
	MaxFrameTime   float32           `json:"maxFrameTime"`   // seconds, longer frames are clamped
	KillY          float32           `json:"killY"`          // respawn below this height
	ReloadInterval float64           `json:"reloadInterval"` // seconds between level mtime checks, 0 disables
	Tuning         controller.Tuning `json:"tuning"`
	Log            Log               `json:"log"`
}

func Default() Settings {
	return Settings{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "qoom",
			TargetFPS: 144,
		},
		LevelPath:      "assets/levels/arena.lvl",
		CollisionScale: 1.0,
		Controller:     "quake",
		MaxFrameTime:   0.1,
		KillY:          -50,
		ReloadInterval: 0.5,
		Tuning:         controller.DefaultTuning(),
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads settings from path on top of Default, so a file only needs the
// fields it changes. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings as indented JSON.
func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Mode parses the controller field.
func (s Settings) Mode() (controller.Mode, error) {
	return controller.ParseMode(s.Controller)
}

func (s Settings) Validate() error {
	var errs []error

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.CollisionScale <= 0 {
		errs = append(errs, fmt.Errorf("collisionScale must be positive, got %v", s.CollisionScale))
	}
	if s.MaxFrameTime <= 0 {
		errs = append(errs, fmt.Errorf("maxFrameTime must be positive, got %v", s.MaxFrameTime))
	}
	if s.ReloadInterval < 0 {
		errs = append(errs, fmt.Errorf("reloadInterval must not be negative, got %v", s.ReloadInterval))
	}
	if _, err := s.Mode(); err != nil {
		errs = append(errs, err)
	}
	if err := s.Tuning.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
