package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// listCmd prints tracked problem ids.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List solved or bookmarked problems",
	Long: `List tracked problem ids, sorted. By default both sets are printed
with a marker column; --solved or --bookmarked restricts the output to
one set, one id per line.

Example:
  prepstate list
  prepstate list --solved
  prepstate list --bookmarked`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("solved", false, "list only solved problems")
	listCmd.Flags().Bool("bookmarked", false, "list only bookmarked problems")
	listCmd.MarkFlagsMutuallyExclusive("solved", "bookmarked")
}

func runList(cmd *cobra.Command, args []string) error {
	solvedOnly, _ := cmd.Flags().GetBool("solved")
	bookmarkedOnly, _ := cmd.Flags().GetBool("bookmarked")

	return withManager(cmd, func(m *prepstate.Manager) error {
		switch {
		case solvedOnly:
			for _, id := range m.SolvedProblems() {
				fmt.Println(id)
			}
		case bookmarkedOnly:
			for _, id := range m.BookmarkedProblems() {
				fmt.Println(id)
			}
		default:
			printCombined(m)
		}
		return nil
	})
}

// printCombined prints the union of both sets with s/b markers.
func printCombined(m *prepstate.Manager) {
	seen := make(map[string]bool)
	var ids []string
	for _, id := range m.SolvedProblems() {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range m.BookmarkedProblems() {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	// both source slices are sorted; the union generally is not
	sort.Strings(ids)

	for _, id := range ids {
		markers := ""
		if m.IsSolved(id) {
			markers += "s"
		}
		if m.IsBookmarked(id) {
			markers += "b"
		}
		fmt.Printf("%-2s %s\n", markers, id)
	}
}
