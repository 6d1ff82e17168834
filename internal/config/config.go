// Package config provides YAML-based configuration loading and pace
// presets for the maze walker.
package config

import (
	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/maze"
)

// MazeConfig contains all configuration for the maze walker.
type MazeConfig struct {
	Settings core.Settings  `yaml:"settings"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Maze     LayoutConfig   `yaml:"maze"`
}

// FeedbackConfig defines audio feedback parameters.
type FeedbackConfig struct {
	StepPeriod float64 `yaml:"step_period"` // Seconds between footsteps at walk speed 1
	BGMVolume  float64 `yaml:"bgm_volume"`
	TurnVolume float64 `yaml:"turn_volume"`
	Bell       bool    `yaml:"bell"` // Ring the terminal bell on footsteps
}

// LayoutConfig selects the layout and the player's eye height.
type LayoutConfig struct {
	Layout    string  `yaml:"layout"`
	EyeHeight float64 `yaml:"eye_height"`
}

// SessionConfig returns the session tuning described by the feedback section.
func (c MazeConfig) SessionConfig() maze.Config {
	return maze.Config{
		StepPeriod:  c.Feedback.StepPeriod,
		MusicVolume: c.Feedback.BGMVolume,
		TurnVolume:  c.Feedback.TurnVolume,
	}
}

// normalize clamps settings to their offered ranges and replaces values
// that would leave the maze unusable with the defaults.
func (c MazeConfig) normalize() MazeConfig {
	def := DefaultMazeConfig()

	c.Settings = c.Settings.Clamp()
	if c.Feedback.StepPeriod <= 0 {
		c.Feedback.StepPeriod = def.Feedback.StepPeriod
	}
	c.Feedback.BGMVolume = core.ClampF(c.Feedback.BGMVolume, 0, 1)
	c.Feedback.TurnVolume = core.ClampF(c.Feedback.TurnVolume, 0, 1)
	if c.Maze.Layout == "" {
		c.Maze.Layout = def.Maze.Layout
	}
	if c.Maze.EyeHeight <= 0 {
		c.Maze.EyeHeight = def.Maze.EyeHeight
	}
	return c
}
