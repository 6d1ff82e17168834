package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// PacePreset represents a named combination of walk and turn speed.
type PacePreset string

const (
	PaceStroll PacePreset = "stroll"
	PaceNormal PacePreset = "normal"
	PaceBrisk  PacePreset = "brisk"
	PaceSprint PacePreset = "sprint"
)

// PacePresets lists the presets in increasing speed.
func PacePresets() []PacePreset {
	return []PacePreset{PaceStroll, PaceNormal, PaceBrisk, PaceSprint}
}

// ParsePacePreset validates a preset name (case-insensitive).
func ParsePacePreset(name string) (PacePreset, error) {
	p := PacePreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range PacePresets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pace %q (want stroll, normal, brisk or sprint)", name)
}

// ApplyPacePreset returns s with the preset's walk and turn speed.
// The field of view is left alone. The result is clamped.
func ApplyPacePreset(s core.Settings, preset PacePreset) core.Settings {
	switch preset {
	case PaceStroll:
		s.WalkSpeed = 0.5
		s.TurnSpeed = 1
	case PaceNormal:
		def := core.DefaultSettings()
		s.WalkSpeed = def.WalkSpeed
		s.TurnSpeed = def.TurnSpeed
	case PaceBrisk:
		s.WalkSpeed = 2.0
		s.TurnSpeed = 2
	case PaceSprint:
		s.WalkSpeed = 3.0
		s.TurnSpeed = 3
	}
	return s.Clamp()
}
