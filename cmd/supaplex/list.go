package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-supaplex/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and levels",
	Long:  `Shows the registered game modes and every level that can be played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Game modes:")
	fmt.Println()
	for _, g := range registry.List() {
		note := ""
		if g.SelectsLevel {
			note = "  (starts from any level)"
		}
		fmt.Printf("  %-18s  %s%s\n", g.ID, g.Title, note)
	}
	fmt.Println()

	if len(appLevels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range appLevels {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-9s  %-7s  %s\n", maxIDLen, "ID", "Size", "Infotrons", "Flags", "Name")
	fmt.Printf("  %-*s  %-7s  %-9s  %-7s  %s\n", maxIDLen, "--", "----", "---------", "-----", "----")

	for _, lvl := range appLevels {
		d := lvl.Description
		flags := ""
		if d.GravityEnabled {
			flags += "G"
		}
		if d.FrozenZonks {
			flags += "F"
		}
		fmt.Printf("  %-*s  %-7s  %-9d  %-7s  %s\n",
			maxIDLen, lvl.ID,
			fmt.Sprintf("%dx%d", d.Width, d.Height),
			d.InfotronsRequired, flags, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Flags: G = gravity, F = frozen zonks")
	fmt.Println("Run 'supaplex play <id> --practice' to practice a level.")
}
