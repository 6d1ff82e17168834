package core

// RuntimeConfig contains configuration passed to the maze at initialization.
// The platform fills it from the terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDelta returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Ranges offered by the settings surfaces (debug panel, CLI, config files).
const (
	MinTurnSpeed   = 0
	MaxTurnSpeed   = 3
	MinWalkSpeed   = 0.0
	MaxWalkSpeed   = 3.0
	MinFieldOfView = 0.0
	MaxFieldOfView = 180.0
)

// Settings holds the player-tunable values read by the maze controllers
// every tick. The controllers never modify or clamp them.
type Settings struct {
	TurnSpeed   int     `yaml:"turn_speed"`    // Turn speed units; 1 = 100 degrees per second
	WalkSpeed   float64 `yaml:"walk_speed"`    // Walk speed units; 1 = 4 world units per second
	FieldOfView float64 `yaml:"field_of_view"` // Camera field of view in degrees
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		TurnSpeed:   1,
		WalkSpeed:   1.0,
		FieldOfView: 90.0,
	}
}

// Clamp restricts every field to the range the settings surfaces offer.
// Surfaces call this before handing settings to the maze.
func (s Settings) Clamp() Settings {
	return Settings{
		TurnSpeed:   Clamp(s.TurnSpeed, MinTurnSpeed, MaxTurnSpeed),
		WalkSpeed:   ClampF(s.WalkSpeed, MinWalkSpeed, MaxWalkSpeed),
		FieldOfView: ClampF(s.FieldOfView, MinFieldOfView, MaxFieldOfView),
	}
}
