package prepstate

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	source := newTestManager(t)
	source.SetSolved("two-sum", true)
	source.SetSolved("lru-cache", true)
	source.SetBookmarked("word-ladder", true)
	source.SetTheme(ThemeDark)
	source.SetFilters(map[string]string{"difficulty": "hard", "company": "Google"})
	source.SetCompanyProgress("Google", 5, 20)

	snap := source.Export()
	if snap.ExportedAt == nil {
		t.Error("ExportedAt = nil, want timestamp")
	}
	if snap.ExportID == "" {
		t.Error("ExportID is empty, want uuid")
	}

	target := newTestManager(t)
	if err := target.Import(snap); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if got, want := target.SolvedProblems(), source.SolvedProblems(); !reflect.DeepEqual(got, want) {
		t.Errorf("SolvedProblems() = %v, want %v", got, want)
	}
	if got, want := target.BookmarkedProblems(), source.BookmarkedProblems(); !reflect.DeepEqual(got, want) {
		t.Errorf("BookmarkedProblems() = %v, want %v", got, want)
	}
	if got, want := target.Theme(), source.Theme(); got != want {
		t.Errorf("Theme() = %q, want %q", got, want)
	}
	if got, want := target.Filters(), source.Filters(); !reflect.DeepEqual(got, want) {
		t.Errorf("Filters() = %v, want %v", got, want)
	}

	gotProgress := target.AllCompanyProgress()
	wantProgress := source.AllCompanyProgress()
	if len(gotProgress) != len(wantProgress) {
		t.Fatalf("AllCompanyProgress() has %d records, want %d", len(gotProgress), len(wantProgress))
	}
	for name, want := range wantProgress {
		got := gotProgress[name]
		if got.Solved != want.Solved || got.Total != want.Total {
			t.Errorf("progress[%q] = {%d %d}, want {%d %d}",
				name, got.Solved, got.Total, want.Solved, want.Total)
		}
	}
}

func TestExport_DoesNotMutate(t *testing.T) {
	m := newTestManager(t)

	var events int
	for _, kind := range []EventKind{
		EventSolvedStatusChanged, EventThemeChanged, EventStateImported, EventStateCleared,
	} {
		m.Subscribe(kind, func(Event) { events++ })
	}

	before := m.Stats()
	_ = m.Export()
	after := m.Stats()

	if events != 0 {
		t.Errorf("Export() dispatched %d events, want 0", events)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Stats() changed across Export(): %+v -> %+v", before, after)
	}
}

func TestImport_InvalidThemeIsAtomic(t *testing.T) {
	m := newTestManager(t)
	m.SetSolved("keep-me", true)

	err := m.Import(Snapshot{
		SolvedProblems: []string{"replacement"},
		Theme:          "purple",
	})
	if err == nil {
		t.Fatal("Import() error = nil, want error for invalid theme")
	}

	if !m.IsSolved("keep-me") {
		t.Error("IsSolved(keep-me) = false; rejected import must not touch state")
	}
	if m.IsSolved("replacement") {
		t.Error("IsSolved(replacement) = true; rejected import must not touch state")
	}
}

func TestImport_NegativeProgressIsRejected(t *testing.T) {
	m := newTestManager(t)

	err := m.Import(Snapshot{
		CompanyProgress: map[string]CompanyProgress{
			"Google": {Solved: -1, Total: 10},
		},
	})
	if err == nil {
		t.Fatal("Import() error = nil, want error for negative counts")
	}
	if got := len(m.AllCompanyProgress()); got != 0 {
		t.Errorf("AllCompanyProgress() has %d records after rejected import, want 0", got)
	}
}

func TestImport_AbsentFieldsLeftUntouched(t *testing.T) {
	m := newTestManager(t)
	m.SetSolved("two-sum", true)
	m.SetTheme(ThemeDark)

	// bookmarks-only import: everything else must survive
	if err := m.Import(Snapshot{BookmarkedProblems: []string{"lru-cache"}}); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if !m.IsSolved("two-sum") {
		t.Error("solved set was reset by an import that did not carry it")
	}
	if got := m.Theme(); got != ThemeDark {
		t.Errorf("Theme() = %q, want %q", got, ThemeDark)
	}
	if !m.IsBookmarked("lru-cache") {
		t.Error("IsBookmarked(lru-cache) = false, want true")
	}
}

func TestImport_DispatchesStateImported(t *testing.T) {
	m := newTestManager(t)

	var imported bool
	m.Subscribe(EventStateImported, func(Event) { imported = true })

	if err := m.Import(Snapshot{SolvedProblems: []string{"two-sum"}}); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !imported {
		t.Error("StateImported not dispatched")
	}
}

func TestImport_DeduplicatesAndDropsEmptyIDs(t *testing.T) {
	m := newTestManager(t)

	if err := m.Import(Snapshot{
		SolvedProblems: []string{"two-sum", "two-sum", "", "lru-cache"},
	}); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	got := m.SolvedProblems()
	want := []string{"lru-cache", "two-sum"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SolvedProblems() = %v, want %v", got, want)
	}
}

func TestSnapshot_JSONSchema(t *testing.T) {
	m := newTestManager(t)
	m.SetSolved("two-sum", true)
	m.SetTheme(ThemeDark)
	m.SetCompanyProgress("Google", 5, 20)

	data, err := json.Marshal(m.Export())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, field := range []string{
		"solvedProblems", "bookmarkedProblems", "theme", "companyProgress",
		"lastVisited", "filters", "version", "exportedAt", "exportId",
	} {
		if _, ok := fields[field]; !ok {
			t.Errorf("exported JSON is missing field %q", field)
		}
	}

	var version string
	if err := json.Unmarshal(fields["version"], &version); err != nil || version != SchemaVersion {
		t.Errorf("version = %q, want %q", version, SchemaVersion)
	}
}
