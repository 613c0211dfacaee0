package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// progressCmd records or lists per-company progress.
var progressCmd = &cobra.Command{
	Use:   "progress [company solved total]",
	Short: "Record or list per-company progress",
	Long: `Record how far you are through one company's problem list, or list
all recorded progress when called without arguments.

Counts are whatever you make of them; prepstate does not check that
solved stays within total.

Example:
  prepstate progress Google 5 20
  prepstate progress`,
	Args: cobra.RangeArgs(0, 3),
	RunE: runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return fmt.Errorf("expected no arguments or <company> <solved> <total>, got %d arguments", len(args))
	}

	return withManager(cmd, func(m *prepstate.Manager) error {
		if len(args) == 0 {
			return printProgress(m)
		}

		solved, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("solved count %q is not an integer", args[1])
		}
		total, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("total count %q is not an integer", args[2])
		}

		if !m.SetCompanyProgress(args[0], solved, total) {
			return fmt.Errorf("progress rejected: company name must be non-empty and counts non-negative")
		}
		fmt.Printf("%s: %d/%d\n", args[0], solved, total)
		return nil
	})
}

func printProgress(m *prepstate.Manager) error {
	all := m.AllCompanyProgress()
	if len(all) == 0 {
		fmt.Println("no progress recorded")
		return nil
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		record := all[name]
		fmt.Printf("%-20s %d/%d (updated %s)\n",
			name, record.Solved, record.Total, record.LastUpdated.Format("2006-01-02 15:04"))
	}
	return nil
}
