package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// statsCmd prints a summary of the tracked state.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a summary of tracked state",
	Long: `Show how many problems are solved and bookmarked, how many companies
have progress records, the active theme, and the last time state was
written.

Example:
  prepstate stats`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	return withManager(cmd, func(m *prepstate.Manager) error {
		stats := m.Stats()

		fmt.Printf("Solved:     %d\n", stats.SolvedCount)
		fmt.Printf("Bookmarked: %d\n", stats.BookmarkedCount)
		fmt.Printf("Companies:  %d\n", stats.CompanyCount)
		fmt.Printf("Theme:      %s\n", stats.Theme)
		if stats.LastVisited != nil {
			fmt.Printf("Last saved: %s\n", stats.LastVisited.Format("2006-01-02 15:04:05"))
		} else {
			fmt.Println("Last saved: never")
		}
		return nil
	})
}
