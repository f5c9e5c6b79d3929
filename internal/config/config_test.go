package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default settings should validate: %v", err)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if s != Default() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qoom.json")
	data := `{"levelPath": "maps/e1m1.lvl", "collisionScale": 0.5, "tuning": {"jumpSpeed": 7}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.LevelPath != "maps/e1m1.lvl" {
		t.Errorf("Expected level path maps/e1m1.lvl, got %q", s.LevelPath)
	}
	if s.CollisionScale != 0.5 {
		t.Errorf("Expected collision scale 0.5, got %v", s.CollisionScale)
	}
	if s.Tuning.JumpSpeed != 7 {
		t.Errorf("Expected jump speed 7, got %v", s.Tuning.JumpSpeed)
	}
	if s.Tuning.MoveSpeed != Default().Tuning.MoveSpeed {
		t.Errorf("Unset fields should keep defaults, got move speed %v", s.Tuning.MoveSpeed)
	}
	if s.Window != Default().Window {
		t.Errorf("Unset window should keep defaults, got %+v", s.Window)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qoom.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qoom.json")
	want := Default()
	want.Controller = "noclip"
	want.KillY = -10

	if err := want.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero collision scale", func(s *Settings) { s.CollisionScale = 0 }},
		{"unknown controller", func(s *Settings) { s.Controller = "ghost" }},
		{"negative frame clamp", func(s *Settings) { s.MaxFrameTime = -1 }},
		{"zero window", func(s *Settings) { s.Window.Width = 0 }},
		{"bad tuning", func(s *Settings) { s.Tuning.HalfExtents.X = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}
