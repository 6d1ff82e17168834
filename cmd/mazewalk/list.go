package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazewalk/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long:  `Shows the built-in layouts and those loaded from ~/.mazewalk/mazes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "------")

	for _, l := range layouts {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, l.ID, maxTitleLen, l.Title, size, l.Source)
	}

	fmt.Println()
	fmt.Println("Run 'mazewalk play <id>' to walk a layout.")
}
