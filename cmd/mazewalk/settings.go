package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/storage"
)

var (
	flagTurnSpeed int
	flagWalkSpeed float64
	flagFOV       float64
	flagProfile   string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change stored settings",
	Long: `Show the stored settings, or change them with flags.

Values are clamped to the ranges the debug panel offers:
  --turn-speed  0 to 3 (1 = 100 degrees per second)
  --walk-speed  0.0 to 3.0 (1 = 4 units per second)
  --fov         0 to 180 degrees

Examples:
  mazewalk settings
  mazewalk settings --walk-speed 1.5 --fov 75
  mazewalk settings --profile alice --turn-speed 2`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().IntVar(&flagTurnSpeed, "turn-speed", 0, "Turn speed units")
	settingsCmd.Flags().Float64Var(&flagWalkSpeed, "walk-speed", 0, "Walk speed units")
	settingsCmd.Flags().Float64Var(&flagFOV, "fov", 0, "Field of view in degrees")
	settingsCmd.Flags().StringVar(&flagProfile, "profile", localProfile, "Profile to show or change (SSH user name)")
}

func runSettings(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	s, ok, err := store.LoadSettings(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		s = loadConfig().Settings
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("turn-speed") {
		s.TurnSpeed = flagTurnSpeed
		changed = true
	}
	if flags.Changed("walk-speed") {
		s.WalkSpeed = flagWalkSpeed
		changed = true
	}
	if flags.Changed("fov") {
		s.FieldOfView = flagFOV
		changed = true
	}
	s = s.Clamp()

	if changed {
		if err := store.SaveSettings(flagProfile, s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Settings saved for %s.\n", flagProfile)
	}

	printSettings(flagProfile, s, ok || changed)
}

func printSettings(profile string, s core.Settings, stored bool) {
	source := "stored"
	if !stored {
		source = "defaults"
	}
	fmt.Printf("Settings - %s (%s)\n", profile, source)
	fmt.Println()
	fmt.Printf("  turn speed     %d\n", s.TurnSpeed)
	fmt.Printf("  walk speed     %.1f\n", s.WalkSpeed)
	fmt.Printf("  field of view  %.0f\n", s.FieldOfView)
}
