// mazewalk is a first-person grid maze you walk with the mouse, in the terminal.
//
// Usage:
//
//	mazewalk play [layout]    - Walk a maze (default: the configured layout)
//	mazewalk list             - List available layouts
//	mazewalk serve            - Start SSH server for remote walking
//	mazewalk runs [layout]    - Show recorded runs
//	mazewalk settings         - Show or change stored settings
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.mazewalk/mazewalk.db)
//	--config <path>     - Use a custom maze.yaml
//	--log-file <path>   - Write logs to a file ("" to discard)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/storage"
	"github.com/vovakirdan/mazewalk/internal/world/levels"
)

const localProfile = "local"

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazewalk",
	Short: "mazewalk - Walk a first-person maze in your terminal",
	Long: `mazewalk is a first-person grid maze for the terminal.

Point the mouse at the left or right third of the window to turn a quarter,
and at the middle third to walk one cell forward. Walls stop you.

Available commands:
  play      - Walk a maze
  list      - Show all available layouts
  serve     - Start SSH server for remote walking
  runs      - View recorded runs
  settings  - Show or change stored settings

Examples:
  mazewalk play
  mazewalk play spiral --pace brisk
  mazewalk serve --ssh :2222
  mazewalk runs classic --plain`,
	PersistentPreRun: loadUserLayouts,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.mazewalk/mazewalk.log", "Log file (empty to discard logs)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadUserLayouts registers layouts from ~/.mazewalk/mazes before any command runs.
func loadUserLayouts(_ *cobra.Command, _ []string) {
	_, problems, err := levels.LoadDir(levels.UserDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load user layouts: %v\n", err)
		return
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "Warning: skipped layout: %v\n", p)
	}
}

// loadConfig loads maze.yaml or exits.
func loadConfig() config.MazeConfig {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogger opens the log file named by --log-file. The returned closer
// must be called when the program ends.
func openLogger(prefix string) (*log.Logger, func()) {
	path := expandHome(flagLogFile)
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }
}

// openStore opens the runs database, warning and returning nil on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}
