package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazewalk/internal/platform/tui"
	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [layout]",
	Short: "Show recorded runs",
	Long: `Display recorded runs for a layout, or for every layout.

Without --plain an interactive board opens; tab switches layouts.

Examples:
  mazewalk runs
  mazewalk runs classic --plain
  mazewalk runs classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs as text instead of the interactive board")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the layout")
}

func runRuns(cmd *cobra.Command, args []string) {
	layoutID := ""
	if len(args) == 1 {
		layoutID = args[0]
		if !registry.Exists(layoutID) {
			fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutID)
			fmt.Fprintln(os.Stderr, "Run 'mazewalk list' to see available layouts.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if layoutID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a layout")
			os.Exit(1)
		}
		if err := store.ClearRuns(layoutID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Runs cleared.")
		return
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunRunBoard(store, width, height, layoutID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRuns(store, layoutID)
}

// printRuns prints recent runs and per-layout totals as text.
func printRuns(store *storage.Store, layoutID string) {
	runs, err := store.RecentRuns(layoutID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if layoutID == "" {
		fmt.Println("Recent runs")
	} else {
		fmt.Printf("Recent runs - %s\n", layoutID)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-10s  %5s  %5s  %5s  %7s\n",
		"Date", "Layout", "Who", "Cells", "Turns", "Steps", "Time")
	fmt.Printf("  %-16s  %-10s  %-10s  %5s  %5s  %5s  %7s\n",
		"----", "------", "---", "-----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-10s  %-10s  %5d  %5d  %5d  %6.1fs\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.LayoutID, r.Profile, r.CellsWalked, r.Turns, r.Footsteps, r.Seconds)
	}

	totals, err := store.AllTotals()
	if err != nil {
		return
	}
	fmt.Println()
	for _, info := range registry.List() {
		t, ok := totals[info.ID]
		if !ok || (layoutID != "" && info.ID != layoutID) {
			continue
		}
		fmt.Printf("%s: %d runs, %d cells walked, %.0fs\n", info.ID, t.Runs, t.CellsWalked, t.Seconds)
	}
}
