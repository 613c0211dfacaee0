package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// clearCmd wipes all tracked state.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all tracked state",
	Long: `Reset every field to its default and delete the persisted snapshot
from both stores. This cannot be undone; export first if in doubt.

Requires --yes to actually run.

Example:
  prepstate export -o backup.json
  prepstate clear --yes`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().Bool("yes", false, "confirm that all state should be wiped")
}

func runClear(cmd *cobra.Command, args []string) error {
	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		return fmt.Errorf("refusing to clear without --yes")
	}

	return withManager(cmd, func(m *prepstate.Manager) error {
		m.Clear()
		fmt.Println("state cleared")
		return nil
	})
}
