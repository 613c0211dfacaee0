package prepstate

import (
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"
)

// EventKind identifies one kind of state change.
//
// The set of kinds is closed: every mutation the [Manager] can commit maps
// to exactly one kind, and each kind has exactly one payload type
// implementing [Event].
type EventKind int

const (
	// EventSolvedStatusChanged fires when a problem is marked solved or
	// unsolved. Payload: [SolvedStatusChanged].
	EventSolvedStatusChanged EventKind = iota

	// EventBookmarkStatusChanged fires when a problem is bookmarked or
	// unbookmarked. Payload: [BookmarkStatusChanged].
	EventBookmarkStatusChanged

	// EventThemeChanged fires when the theme changes. Payload: [ThemeChanged].
	EventThemeChanged

	// EventCompanyProgressChanged fires on every progress write, even if
	// the counts did not change. Payload: [CompanyProgressChanged].
	EventCompanyProgressChanged

	// EventSearchQueryChanged fires on every search query write, even if
	// the query did not change. Payload: [SearchQueryChanged].
	EventSearchQueryChanged

	// EventFiltersChanged fires on every filter merge. Payload: [FiltersChanged].
	EventFiltersChanged

	// EventStateCleared fires after Clear resets everything. Payload: [StateCleared].
	EventStateCleared

	// EventStateImported fires after a snapshot import succeeds.
	// Payload: [StateImported].
	EventStateImported
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventSolvedStatusChanged:
		return "solvedStatusChanged"
	case EventBookmarkStatusChanged:
		return "bookmarkStatusChanged"
	case EventThemeChanged:
		return "themeChanged"
	case EventCompanyProgressChanged:
		return "companyProgressChanged"
	case EventSearchQueryChanged:
		return "searchQueryChanged"
	case EventFiltersChanged:
		return "filtersChanged"
	case EventStateCleared:
		return "stateCleared"
	case EventStateImported:
		return "stateImported"
	default:
		return "unknown"
	}
}

// Event is the interface satisfied by every event payload type.
//
// The concrete type of an event is determined by its [EventKind], so
// listeners may type-assert without a comma-ok check if they subscribed
// to a single kind.
type Event interface {
	Kind() EventKind
}

// SolvedStatusChanged reports that a problem's solved status changed.
type SolvedStatusChanged struct {
	ID     string
	Solved bool
}

// Kind returns [EventSolvedStatusChanged].
func (SolvedStatusChanged) Kind() EventKind { return EventSolvedStatusChanged }

// BookmarkStatusChanged reports that a problem's bookmark status changed.
type BookmarkStatusChanged struct {
	ID         string
	Bookmarked bool
}

// Kind returns [EventBookmarkStatusChanged].
func (BookmarkStatusChanged) Kind() EventKind { return EventBookmarkStatusChanged }

// ThemeChanged reports that the theme changed.
type ThemeChanged struct {
	Theme Theme
}

// Kind returns [EventThemeChanged].
func (ThemeChanged) Kind() EventKind { return EventThemeChanged }

// CompanyProgressChanged reports a progress write for one company.
type CompanyProgressChanged struct {
	Name   string
	Solved int
	Total  int
}

// Kind returns [EventCompanyProgressChanged].
func (CompanyProgressChanged) Kind() EventKind { return EventCompanyProgressChanged }

// SearchQueryChanged reports a search query write.
type SearchQueryChanged struct {
	Query string
}

// Kind returns [EventSearchQueryChanged].
func (SearchQueryChanged) Kind() EventKind { return EventSearchQueryChanged }

// FiltersChanged carries the full filter map after a merge.
type FiltersChanged struct {
	Filters map[string]string
}

// Kind returns [EventFiltersChanged].
func (FiltersChanged) Kind() EventKind { return EventFiltersChanged }

// StateCleared reports that all state was reset to defaults.
type StateCleared struct{}

// Kind returns [EventStateCleared].
func (StateCleared) Kind() EventKind { return EventStateCleared }

// StateImported reports that a snapshot import was applied.
type StateImported struct{}

// Kind returns [EventStateImported].
func (StateImported) Kind() EventKind { return EventStateImported }

// Listener receives events for the kind it was subscribed to.
//
// Listeners run synchronously on the goroutine that committed the change,
// so they must return quickly. A listener may call back into the manager;
// guarding against infinite recursion is the listener's responsibility.
type Listener func(Event)

// Subscription identifies one registered listener.
//
// Each call to [Manager.Subscribe] produces a distinct subscription, even
// for the same function value, so there is no way to register a listener
// twice by accident. Pass it to [Manager.Unsubscribe] to remove the
// listener; a subscription that was already removed is ignored.
type Subscription struct {
	kind EventKind
	id   uint64
}

// subscriber pairs a listener with its subscription id so removal and
// registration-order dispatch both work off the same slice.
type subscriber struct {
	id uint64
	fn Listener
}

// invokeListenerSafe calls a listener with panic recovery.
//
// A panicking listener must not stop dispatch to the remaining listeners
// or reach the mutator that committed the change. The correlation ID ties
// the log line to the full stack trace for debugging.
func invokeListenerSafe(fn Listener, event Event, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			logger.Error("listener panic",
				"event", event.Kind().String(),
				"panic", r,
				"correlation_id", correlationID,
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn(event)
}
