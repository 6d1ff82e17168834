package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/mazewalk/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("Embedded defaults = %+v, expected %+v", cfg, DefaultMazeConfig())
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
settings:
  turn_speed: 7
  walk_speed: 2.5
feedback:
  bell: true
maze:
  layout: spiral
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() error = %v", err)
	}

	if cfg.Settings.TurnSpeed != core.MaxTurnSpeed {
		t.Errorf("TurnSpeed = %d, expected clamped to %d", cfg.Settings.TurnSpeed, core.MaxTurnSpeed)
	}
	if cfg.Settings.WalkSpeed != 2.5 {
		t.Errorf("WalkSpeed = %v, expected 2.5", cfg.Settings.WalkSpeed)
	}
	if cfg.Settings.FieldOfView != 90 {
		t.Errorf("FieldOfView = %v, expected default 90", cfg.Settings.FieldOfView)
	}
	if !cfg.Feedback.Bell || cfg.Feedback.StepPeriod != 0.25 {
		t.Errorf("Feedback = %+v, expected bell on with default period", cfg.Feedback)
	}
	if cfg.Maze.Layout != "spiral" || cfg.Maze.EyeHeight != 1.0 {
		t.Errorf("Maze = %+v, expected spiral at eye height 1", cfg.Maze)
	}
}

func TestLoadMazeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMaze(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("settings: [nope"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadMaze(bad); err == nil {
		t.Error("Expected an error for an invalid custom config")
	}
}

func TestNormalize(t *testing.T) {
	cfg := MazeConfig{
		Settings: core.Settings{TurnSpeed: -1, WalkSpeed: 9, FieldOfView: 400},
		Feedback: FeedbackConfig{StepPeriod: 0, BGMVolume: 3, TurnVolume: -1},
	}.normalize()

	expected := core.Settings{TurnSpeed: 0, WalkSpeed: 3, FieldOfView: 180}
	if cfg.Settings != expected {
		t.Errorf("Settings = %+v, expected %+v", cfg.Settings, expected)
	}
	if cfg.Feedback.StepPeriod != 0.25 {
		t.Errorf("StepPeriod = %v, expected default", cfg.Feedback.StepPeriod)
	}
	if cfg.Feedback.BGMVolume != 1 || cfg.Feedback.TurnVolume != 0 {
		t.Errorf("Volumes = %v/%v, expected 1/0", cfg.Feedback.BGMVolume, cfg.Feedback.TurnVolume)
	}
	if cfg.Maze.Layout != "classic" || cfg.Maze.EyeHeight != 1 {
		t.Errorf("Maze = %+v, expected defaults", cfg.Maze)
	}
}

func TestSessionConfig(t *testing.T) {
	sc := DefaultMazeConfig().SessionConfig()
	if sc.StepPeriod != 0.25 || sc.MusicVolume != 0.2 || sc.TurnVolume != 0.2 {
		t.Errorf("SessionConfig() = %+v, expected 0.25/0.2/0.2", sc)
	}
}

func TestPacePresets(t *testing.T) {
	tests := []struct {
		preset PacePreset
		walk   float64
		turn   int
	}{
		{PaceStroll, 0.5, 1},
		{PaceNormal, 1.0, 1},
		{PaceBrisk, 2.0, 2},
		{PaceSprint, 3.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			s := ApplyPacePreset(core.Settings{FieldOfView: 120}, tc.preset)
			if s.WalkSpeed != tc.walk || s.TurnSpeed != tc.turn {
				t.Errorf("ApplyPacePreset() = %+v, expected walk %v turn %d", s, tc.walk, tc.turn)
			}
			if s.FieldOfView != 120 {
				t.Errorf("FieldOfView = %v, expected it untouched", s.FieldOfView)
			}
		})
	}
}

func TestParsePacePreset(t *testing.T) {
	if p, err := ParsePacePreset(" Brisk "); err != nil || p != PaceBrisk {
		t.Errorf("ParsePacePreset(Brisk) = %q, %v; expected brisk", p, err)
	}
	if _, err := ParsePacePreset("crawl"); err == nil {
		t.Error("Expected an error for an unknown pace")
	}
}
