// Package main is the entry point for the prepstate CLI.
//
// prepstate tracks coding-practice progress: solved and bookmarked
// problems, per-company progress, theme, and filters. The same state
// manager is available as a library; this CLI is the standalone consumer.
//
// Usage:
//
//	prepstate solve two-sum            # mark a problem solved
//	prepstate bookmark lru-cache       # bookmark a problem
//	prepstate stats                    # show a summary
//	prepstate export -o backup.json    # export a snapshot
//	prepstate version                  # show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "prepstate",
	Short: "Track coding-practice progress",
	Long: `prepstate tracks your progress through a coding-practice catalog.

State lives in a local store (file, sqlite, or memory) and survives
between runs. Every command loads the state, applies one change or
query, and prints the result.

Quick start:
  prepstate solve two-sum
  prepstate bookmark lru-cache
  prepstate progress Google 5 20
  prepstate stats

Configuration is optional; see 'prepstate --help' for the config flag.
Environment variables like PREPSTATE_STORAGE_BACKEND override the file.`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this prepstate binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prepstate %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
