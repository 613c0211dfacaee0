package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// exportCmd writes a snapshot of the current state as JSON.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export state as a JSON snapshot",
	Long: `Export the current state as a JSON snapshot, to stdout or to a file.

The snapshot can be imported on another machine (or after a clear) with
'prepstate import'. The session search query is not part of snapshots.

Example:
  prepstate export
  prepstate export -o backup.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// importCmd applies a snapshot file to the current state.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON snapshot",
	Long: `Import a snapshot previously produced by 'prepstate export'.

The import is atomic: the snapshot is validated in full before anything
is applied, so a bad file leaves state untouched. Fields absent from the
snapshot are left alone rather than reset.

Example:
  prepstate import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringP("output", "o", "", "write the snapshot to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	return withManager(cmd, func(m *prepstate.Manager) error {
		data, err := json.MarshalIndent(m.Export(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize snapshot: %w", err)
		}
		data = append(data, '\n')

		if output == "" {
			_, err = os.Stdout.Write(data)
			return err
		}

		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Printf("snapshot written to %s\n", output)
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap prepstate.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("snapshot is not valid JSON: %w", err)
	}

	return withManager(cmd, func(m *prepstate.Manager) error {
		if err := m.Import(snap); err != nil {
			return fmt.Errorf("import rejected: %w", err)
		}

		stats := m.Stats()
		fmt.Printf("imported: %d solved, %d bookmarked, %d companies\n",
			stats.SolvedCount, stats.BookmarkedCount, stats.CompanyCount)
		return nil
	})
}
