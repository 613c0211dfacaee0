package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Tharun-Techie/prepstate"
	"github.com/Tharun-Techie/prepstate/internal/storage"
)

func main() {
	dir := filepath.Join(os.TempDir(), "prepstate-demo")
	store, err := storage.NewFileStore(dir)
	if err != nil {
		slog.Error("failed to create store", "error", err)
		os.Exit(1)
	}

	m, err := prepstate.New(
		prepstate.WithStore(store),
		prepstate.WithFallbackStore(storage.NewMemoryStore()),
	)
	if err != nil {
		slog.Error("failed to create state manager", "error", err)
		os.Exit(1)
	}

	// react to changes the same way a UI layer would
	m.Subscribe(prepstate.EventSolvedStatusChanged, func(e prepstate.Event) {
		change := e.(prepstate.SolvedStatusChanged)
		fmt.Printf("  -> solved status: %s = %v\n", change.ID, change.Solved)
	})
	m.Subscribe(prepstate.EventThemeChanged, func(e prepstate.Event) {
		fmt.Printf("  -> theme: %s\n", e.(prepstate.ThemeChanged).Theme)
	})

	fmt.Println("prepstate demo (state persists under", dir+")")

	m.SetSolved("two-sum", true)
	m.SetBookmarked("lru-cache", true)
	m.SetTheme(prepstate.ThemeDark)
	m.SetCompanyProgress("Google", 5, 20)

	stats := m.Stats()
	fmt.Printf("solved=%d bookmarked=%d companies=%d theme=%s\n",
		stats.SolvedCount, stats.BookmarkedCount, stats.CompanyCount, stats.Theme)

	// a second manager over the same store sees the persisted state
	reloaded, err := prepstate.New(prepstate.WithStore(store))
	if err != nil {
		slog.Error("failed to reload state manager", "error", err)
		os.Exit(1)
	}
	fmt.Printf("reloaded: theme=%s solved=%v\n", reloaded.Theme(), reloaded.SolvedProblems())
}
