package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// themeCmd shows or switches the theme.
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or switch the theme",
	Long: `Show the active theme, or switch to light or dark.

Example:
  prepstate theme
  prepstate theme dark`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	return withManager(cmd, func(m *prepstate.Manager) error {
		if len(args) == 0 {
			fmt.Println(m.Theme())
			return nil
		}

		theme := prepstate.Theme(args[0])
		if !theme.Valid() {
			return fmt.Errorf("unknown theme %q (expected light or dark)", args[0])
		}
		if m.SetTheme(theme) {
			fmt.Printf("theme set to %s\n", theme)
		} else {
			fmt.Printf("theme already %s\n", theme)
		}
		return nil
	})
}
