package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
)

// filtersCmd shows or merges catalog filters.
var filtersCmd = &cobra.Command{
	Use:   "filters [key=value ...]",
	Short: "Show or set catalog filters",
	Long: `Show the current filters, or merge new values in.

Setting is a shallow merge: named keys are overwritten, everything else
is preserved. The difficulty filter always exists and defaults to "all".

Example:
  prepstate filters
  prepstate filters difficulty=hard company=Google`,
	RunE: runFilters,
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, args []string) error {
	partial, err := parseFilterArgs(args)
	if err != nil {
		return err
	}

	return withManager(cmd, func(m *prepstate.Manager) error {
		if len(partial) > 0 {
			m.SetFilters(partial)
		}

		filters := m.Filters()
		keys := make([]string, 0, len(filters))
		for k := range filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s=%s\n", k, filters[k])
		}
		return nil
	})
}

// parseFilterArgs converts "key=value" arguments into a filter map.
func parseFilterArgs(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}

	partial := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (expected key=value)", arg)
		}
		partial[key] = value
	}
	return partial, nil
}
