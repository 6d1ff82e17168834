package config

import (
	_ "embed"

	"github.com/vovakirdan/mazewalk/internal/core"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Settings: core.DefaultSettings(),
		Feedback: FeedbackConfig{
			StepPeriod: 0.25,
			BGMVolume:  0.2,
			TurnVolume: 0.2,
			Bell:       false,
		},
		Maze: LayoutConfig{
			Layout:    "classic",
			EyeHeight: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
