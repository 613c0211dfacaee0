package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// bookmarkCmd bookmarks a problem (or removes the bookmark).
var bookmarkCmd = &cobra.Command{
	Use:   "bookmark <problem-id>",
	Short: "Bookmark a problem",
	Long: `Bookmark a problem to revisit later, or remove an existing bookmark.

Bookmarks are independent of solved status: a problem can be solved,
bookmarked, both, or neither.

Example:
  prepstate bookmark lru-cache
  prepstate bookmark --remove lru-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runBookmark,
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)

	bookmarkCmd.Flags().Bool("remove", false, "remove the bookmark")
}

func runBookmark(cmd *cobra.Command, args []string) error {
	remove, _ := cmd.Flags().GetBool("remove")
	id := args[0]

	return withManager(cmd, func(m *prepstate.Manager) error {
		changed := m.SetBookmarked(id, !remove)
		switch {
		case changed && remove:
			fmt.Printf("bookmark removed from %s\n", id)
		case changed:
			fmt.Printf("%s bookmarked\n", id)
		default:
			fmt.Println("nothing changed")
		}
		return nil
	})
}
