package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// solveCmd marks a problem solved (or unsolved with --undo).
var solveCmd = &cobra.Command{
	Use:   "solve <problem-id>",
	Short: "Mark a problem as solved",
	Long: `Mark a problem as solved, or undo a previous solve.

Problem ids are free-form strings; use whatever identifies the problem
in your catalog (e.g. the URL slug).

Example:
  prepstate solve two-sum
  prepstate solve --undo two-sum`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Bool("undo", false, "mark the problem as not solved")
}

func runSolve(cmd *cobra.Command, args []string) error {
	undo, _ := cmd.Flags().GetBool("undo")
	id := args[0]

	return withManager(cmd, func(m *prepstate.Manager) error {
		changed := m.SetSolved(id, !undo)
		switch {
		case changed && undo:
			fmt.Printf("%s is no longer marked solved\n", id)
		case changed:
			fmt.Printf("%s marked solved\n", id)
		default:
			fmt.Println("nothing changed")
		}
		return nil
	})
}
