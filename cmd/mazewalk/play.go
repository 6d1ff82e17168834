package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/platform/tui"
	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/storage"
)

var flagPace string

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Walk a maze",
	Long: `Walk the given layout, or the one named in maze.yaml.

Controls:
  Mouse left third    - Turn left a quarter
  Mouse right third   - Turn right a quarter
  Mouse middle third  - Walk one cell forward
  Tab/M               - Switch between menu and maze
  D/F1                - Debug panel (arrows adjust sliders)
  R                   - Reset settings
  Q/Ctrl+C            - Quit

Pace presets:
  stroll  - Walk 0.5, turn 1
  normal  - Defaults
  brisk   - Walk 2.0, turn 2
  sprint  - Walk 3.0, turn 3

Examples:
  mazewalk play
  mazewalk play spiral
  mazewalk play rooms --pace sprint
  mazewalk play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: stroll, normal, brisk, sprint")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	layoutID := cfg.Maze.Layout
	if len(args) == 1 {
		layoutID = args[0]
	}

	layout, err := registry.Create(layoutID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutID)
		fmt.Fprintln(os.Stderr, "Run 'mazewalk list' to see available layouts.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := openLogger("mazewalk")
	defer closeLog()

	store := openStore()
	settings := storedSettings(store, cfg.Settings)

	if flagPace != "" {
		preset, presetErr := config.ParsePacePreset(flagPace)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		settings = config.ApplyPacePreset(settings, preset)
	}

	runErr := tui.Run(tui.Options{
		Layout:   layout,
		Config:   cfg,
		Settings: settings,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Store:   store,
		Profile: localProfile,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// storedSettings returns the local profile's saved settings, or fallback.
func storedSettings(store *storage.Store, fallback core.Settings) core.Settings {
	if store == nil {
		return fallback
	}
	s, ok, err := store.LoadSettings(localProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load settings: %v\n", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return s
}
