package prepstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tharun-Techie/prepstate/internal/storage"
)

// stateKey is the fixed key every snapshot is persisted under, in both
// the primary and the fallback store.
const stateKey = "prepstate.state"

// Manager is the single gateway for reading, mutating, persisting, and
// broadcasting changes to the application state.
//
// A Manager is created with [New] and functional options. It owns the
// state exclusively: every read returns a copy, every write goes through
// a mutator that validates the input, applies the change, persists a
// snapshot, and dispatches the matching event.
//
// Mutators report their outcome as a boolean: true means the state
// changed (and was persisted and broadcast), false means the input was
// rejected or the write was a no-op. Storage failures never surface
// through mutators; they are logged, and writes fall back to the
// secondary store.
//
// Manager is safe for concurrent use. Listeners are invoked after the
// state lock is released, so a listener may call back into the manager.
type Manager struct {
	mu    sync.RWMutex
	state appState

	store    storage.Store
	fallback storage.Store
	logger   *slog.Logger
	now      func() time.Time

	subMu     sync.Mutex
	listeners map[EventKind][]subscriber
	nextSubID uint64
}

// New creates a [Manager] with the given options.
//
// The manager starts from defaults (empty sets, light theme, difficulty
// filter "all") and then overlays any snapshot previously persisted in
// the primary store. Loading is best-effort: a missing snapshot, an
// unreadable store, or a malformed field all degrade to defaults and are
// logged, never returned as errors.
//
// Example:
//
//	store, _ := storage.NewFileStore(dir)
//	m, err := prepstate.New(
//	    prepstate.WithStore(store),
//	    prepstate.WithFallbackStore(storage.NewMemoryStore()),
//	)
func New(opts ...Option) (*Manager, error) {
	cfg := &managerConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	store := cfg.store
	if store == nil {
		store = storage.NewMemoryStore()
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.now
	if now == nil {
		now = time.Now
	}

	m := &Manager{
		state:     defaultState(),
		store:     store,
		fallback:  cfg.fallback,
		logger:    logger,
		now:       now,
		listeners: make(map[EventKind][]subscriber),
	}

	for _, pl := range cfg.listeners {
		m.Subscribe(pl.kind, pl.fn)
	}

	m.load()
	return m, nil
}

// SetSolved marks a problem as solved or not solved.
//
// Returns false without side effects when id is empty or when the
// problem is already in the requested state. On change, the snapshot is
// persisted and [SolvedStatusChanged] is dispatched.
func (m *Manager) SetSolved(id string, solved bool) bool {
	if id == "" {
		m.logger.Warn("rejected solved update: empty problem id")
		return false
	}

	m.mu.Lock()
	_, present := m.state.solved[id]
	if solved == present {
		m.mu.Unlock()
		return false
	}
	if solved {
		m.state.solved[id] = struct{}{}
	} else {
		delete(m.state.solved, id)
	}
	m.persistLocked()
	m.mu.Unlock()

	m.notify(SolvedStatusChanged{ID: id, Solved: solved})
	return true
}

// IsSolved reports whether the problem is marked solved.
func (m *Manager) IsSolved(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.state.solved[id]
	return ok
}

// SolvedProblems returns the solved problem ids, sorted.
//
// The returned slice is a copy; the caller may mutate it freely.
func (m *Manager) SolvedProblems() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.state.solved)
}

// SetBookmarked marks a problem as bookmarked or not bookmarked.
//
// Bookmarks are independent of solved status. The contract matches
// [Manager.SetSolved]; the dispatched event is [BookmarkStatusChanged].
func (m *Manager) SetBookmarked(id string, bookmarked bool) bool {
	if id == "" {
		m.logger.Warn("rejected bookmark update: empty problem id")
		return false
	}

	m.mu.Lock()
	_, present := m.state.bookmarked[id]
	if bookmarked == present {
		m.mu.Unlock()
		return false
	}
	if bookmarked {
		m.state.bookmarked[id] = struct{}{}
	} else {
		delete(m.state.bookmarked, id)
	}
	m.persistLocked()
	m.mu.Unlock()

	m.notify(BookmarkStatusChanged{ID: id, Bookmarked: bookmarked})
	return true
}

// IsBookmarked reports whether the problem is bookmarked.
func (m *Manager) IsBookmarked(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.state.bookmarked[id]
	return ok
}

// BookmarkedProblems returns the bookmarked problem ids, sorted.
//
// The returned slice is a copy; the caller may mutate it freely.
func (m *Manager) BookmarkedProblems() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.state.bookmarked)
}

// SetTheme switches the theme.
//
// Returns false when the theme is not a recognized value or when it is
// already active. On change, the snapshot is persisted and
// [ThemeChanged] is dispatched.
func (m *Manager) SetTheme(theme Theme) bool {
	if !theme.Valid() {
		m.logger.Warn("rejected theme update: unknown theme", "theme", theme.String())
		return false
	}

	m.mu.Lock()
	if m.state.theme == theme {
		m.mu.Unlock()
		return false
	}
	m.state.theme = theme
	m.persistLocked()
	m.mu.Unlock()

	m.notify(ThemeChanged{Theme: theme})
	return true
}

// Theme returns the active theme.
func (m *Manager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.theme
}

// SetCompanyProgress overwrites the progress record for a company.
//
// Unlike the set mutators there is no change detection: every accepted
// call writes a fresh record with the current time, persists, and
// dispatches [CompanyProgressChanged]. Returns false when the name is
// empty or either count is negative.
func (m *Manager) SetCompanyProgress(name string, solved, total int) bool {
	if name == "" {
		m.logger.Warn("rejected progress update: empty company name")
		return false
	}
	if solved < 0 || total < 0 {
		m.logger.Warn("rejected progress update: negative count",
			"company", name, "solved", solved, "total", total)
		return false
	}

	m.mu.Lock()
	m.state.companyProgress[name] = CompanyProgress{
		Solved:      solved,
		Total:       total,
		LastUpdated: m.now(),
	}
	m.persistLocked()
	m.mu.Unlock()

	m.notify(CompanyProgressChanged{Name: name, Solved: solved, Total: total})
	return true
}

// CompanyProgress returns the progress record for a company.
//
// An unknown company returns the zero record {0, 0}, not an error.
func (m *Manager) CompanyProgress(name string) CompanyProgress {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.companyProgress[name]
}

// AllCompanyProgress returns a copy of every company progress record.
func (m *Manager) AllCompanyProgress() map[string]CompanyProgress {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp := make(map[string]CompanyProgress, len(m.state.companyProgress))
	for name, record := range m.state.companyProgress {
		cp[name] = record
	}
	return cp
}

// SetSearchQuery sets the session search query and dispatches
// [SearchQueryChanged] unconditionally, even when the query is unchanged.
//
// The search query is session state: it is not persisted and does not
// appear in snapshots.
func (m *Manager) SetSearchQuery(query string) {
	m.mu.Lock()
	m.state.searchQuery = query
	m.mu.Unlock()

	m.notify(SearchQueryChanged{Query: query})
}

// SearchQuery returns the current search query.
func (m *Manager) SearchQuery() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.searchQuery
}

// SetFilters shallow-merges partial into the filter map: keys in partial
// overwrite, all other filters are preserved.
//
// The merged result is persisted and dispatched as [FiltersChanged]
// unconditionally, even when nothing changed.
func (m *Manager) SetFilters(partial map[string]string) {
	m.mu.Lock()
	for k, v := range partial {
		m.state.filters[k] = v
	}
	merged := copyFilters(m.state.filters)
	m.persistLocked()
	m.mu.Unlock()

	m.notify(FiltersChanged{Filters: merged})
}

// Filters returns a copy of the current filter map.
func (m *Manager) Filters() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyFilters(m.state.filters)
}

// Stats returns a computed summary of the current state. No side effects.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		SolvedCount:     len(m.state.solved),
		BookmarkedCount: len(m.state.bookmarked),
		CompanyCount:    len(m.state.companyProgress),
		Theme:           m.state.theme,
		LastVisited:     copyTime(m.state.lastVisited),
	}
}

// Export returns a snapshot of the current state stamped with an export
// time and a unique export id. It does not persist and does not dispatch.
func (m *Manager) Export() Snapshot {
	m.mu.RLock()
	snap := m.snapshotLocked()
	m.mu.RUnlock()

	exportedAt := m.now()
	snap.ExportedAt = &exportedAt
	snap.ExportID = uuid.NewString()
	return snap
}

// Import applies a snapshot to the manager's state.
//
// Import is atomic: the whole snapshot is validated before any field is
// touched, so a rejected import leaves state exactly as it was. Fields
// absent from the snapshot (nil slices and maps, empty theme) are left
// alone rather than reset — importing a bookmarks-only snapshot does not
// wipe solved problems.
//
// On success the snapshot is persisted and [StateImported] is dispatched.
func (m *Manager) Import(snap Snapshot) error {
	if snap.Theme != "" && !snap.Theme.Valid() {
		return fmt.Errorf("invalid theme %q", snap.Theme.String())
	}
	for name, record := range snap.CompanyProgress {
		if name == "" {
			return errors.New("company progress contains an empty company name")
		}
		if record.Solved < 0 || record.Total < 0 {
			return fmt.Errorf("company %q has negative progress counts", name)
		}
	}

	solved := buildSet(snap.SolvedProblems)
	bookmarked := buildSet(snap.BookmarkedProblems)

	m.mu.Lock()
	if snap.SolvedProblems != nil {
		m.state.solved = solved
	}
	if snap.BookmarkedProblems != nil {
		m.state.bookmarked = bookmarked
	}
	if snap.Theme != "" {
		m.state.theme = snap.Theme
	}
	if snap.Filters != nil {
		for k, v := range snap.Filters {
			m.state.filters[k] = v
		}
	}
	if snap.CompanyProgress != nil {
		progress := make(map[string]CompanyProgress, len(snap.CompanyProgress))
		for name, record := range snap.CompanyProgress {
			progress[name] = record
		}
		m.state.companyProgress = progress
	}
	m.persistLocked()
	m.mu.Unlock()

	m.notify(StateImported{})
	return nil
}

// Clear resets all state to construction-time defaults and removes the
// persisted snapshot from both stores.
//
// Store removal failures are logged and ignored; the in-memory reset
// always happens. [StateCleared] is dispatched afterwards. Nothing is
// re-persisted: the point of Clear is that the key is gone.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.state = defaultState()
	m.mu.Unlock()

	if err := m.store.Remove(stateKey); err != nil {
		m.logger.Warn("failed to remove snapshot from primary store", "error", err)
	}
	if m.fallback != nil {
		if err := m.fallback.Remove(stateKey); err != nil {
			m.logger.Warn("failed to remove snapshot from fallback store", "error", err)
		}
	}

	m.notify(StateCleared{})
}

// Subscribe registers a listener for one event kind and returns its
// subscription handle.
//
// Listeners for a kind run synchronously in registration order. Each call
// registers independently, so the same function can be subscribed more
// than once under distinct handles. A nil listener returns nil and
// registers nothing.
func (m *Manager) Subscribe(kind EventKind, fn Listener) *Subscription {
	if fn == nil {
		return nil
	}

	m.subMu.Lock()
	defer m.subMu.Unlock()

	m.nextSubID++
	m.listeners[kind] = append(m.listeners[kind], subscriber{id: m.nextSubID, fn: fn})
	return &Subscription{kind: kind, id: m.nextSubID}
}

// Unsubscribe removes a previously registered listener.
//
// Safe to call with nil or with a subscription that was already removed;
// both are no-ops.
func (m *Manager) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	m.subMu.Lock()
	defer m.subMu.Unlock()

	subs := m.listeners[sub.kind]
	for i, s := range subs {
		if s.id == sub.id {
			m.listeners[sub.kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// notify dispatches an event to every listener subscribed to its kind.
//
// The listener slice is copied under the registry lock and invoked after
// releasing it, so listeners may subscribe, unsubscribe, or mutate state
// without deadlocking. Panics are contained per listener.
func (m *Manager) notify(event Event) {
	m.subMu.Lock()
	subs := append([]subscriber(nil), m.listeners[event.Kind()]...)
	m.subMu.Unlock()

	for _, s := range subs {
		invokeListenerSafe(s.fn, event, m.logger)
	}
}

// persistLocked serializes the current state and writes it to the
// primary store, falling back to the secondary store on failure.
//
// Must be called with m.mu held. lastVisited is stamped on every persist
// attempt, so it tracks the most recent accepted mutation. Failures are
// logged and absorbed; in-memory state keeps serving reads regardless.
func (m *Manager) persistLocked() {
	visited := m.now()
	m.state.lastVisited = &visited

	data, err := json.Marshal(m.snapshotLocked())
	if err != nil {
		m.logger.Error("failed to serialize snapshot", "error", err)
		return
	}

	if err := m.store.Set(stateKey, data); err != nil {
		m.logger.Warn("primary store write failed", "error", err)
		if m.fallback == nil {
			return
		}
		if err := m.fallback.Set(stateKey, data); err != nil {
			m.logger.Error("fallback store write failed", "error", err)
		}
	}
}

// snapshotLocked builds a Snapshot from the current state.
// Must be called with m.mu held (read or write).
func (m *Manager) snapshotLocked() Snapshot {
	progress := make(map[string]CompanyProgress, len(m.state.companyProgress))
	for name, record := range m.state.companyProgress {
		progress[name] = record
	}

	return Snapshot{
		SolvedProblems:     sortedKeys(m.state.solved),
		BookmarkedProblems: sortedKeys(m.state.bookmarked),
		Theme:              m.state.theme,
		CompanyProgress:    progress,
		LastVisited:        copyTime(m.state.lastVisited),
		Filters:            copyFilters(m.state.filters),
		Version:            SchemaVersion,
	}
}

// load overlays a previously persisted snapshot onto the default state.
//
// Each field is decoded independently so one malformed field falls back
// to its default without discarding the rest. The fallback store is
// never read; it is a write-only safety net.
func (m *Manager) load() {
	data, err := m.store.Get(stateKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			m.logger.Debug("no persisted state found, starting fresh")
		} else {
			m.logger.Warn("failed to read persisted state", "error", err)
		}
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		m.logger.Warn("persisted state is not valid JSON, starting fresh", "error", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if raw, ok := fields["version"]; ok {
		var version string
		if err := json.Unmarshal(raw, &version); err == nil && version != SchemaVersion {
			m.logger.Info("persisted state has a different schema version",
				"stored", version, "current", SchemaVersion)
		}
	}

	if raw, ok := fields["solvedProblems"]; ok {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			m.logger.Warn("ignoring malformed solvedProblems field", "error", err)
		} else {
			m.state.solved = buildSet(ids)
		}
	}

	if raw, ok := fields["bookmarkedProblems"]; ok {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			m.logger.Warn("ignoring malformed bookmarkedProblems field", "error", err)
		} else {
			m.state.bookmarked = buildSet(ids)
		}
	}

	if raw, ok := fields["theme"]; ok {
		var theme Theme
		if err := json.Unmarshal(raw, &theme); err != nil || !theme.Valid() {
			m.logger.Warn("ignoring malformed theme field", "theme", string(raw))
		} else {
			m.state.theme = theme
		}
	}

	if raw, ok := fields["filters"]; ok {
		var filters map[string]string
		if err := json.Unmarshal(raw, &filters); err != nil {
			m.logger.Warn("ignoring malformed filters field", "error", err)
		} else {
			for k, v := range filters {
				m.state.filters[k] = v
			}
		}
	}

	if raw, ok := fields["companyProgress"]; ok {
		var progress map[string]CompanyProgress
		if err := json.Unmarshal(raw, &progress); err != nil {
			m.logger.Warn("ignoring malformed companyProgress field", "error", err)
		} else if progress != nil {
			m.state.companyProgress = progress
		}
	}

	if raw, ok := fields["lastVisited"]; ok {
		var visited *time.Time
		if err := json.Unmarshal(raw, &visited); err != nil {
			m.logger.Warn("ignoring malformed lastVisited field", "error", err)
		} else {
			m.state.lastVisited = visited
		}
	}
}

// buildSet deduplicates a slice of ids into a set, dropping empty ids.
func buildSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// sortedKeys returns the keys of a set as a sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyFilters(filters map[string]string) map[string]string {
	cp := make(map[string]string, len(filters))
	for k, v := range filters {
		cp[k] = v
	}
	return cp
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
