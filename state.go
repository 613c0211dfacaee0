package prepstate

import "time"

// CompanyProgress records how far the user has worked through one
// company's problem list.
//
// No invariant ties Solved to Total; the caller decides what the counts
// mean. A lookup for an unknown company returns the zero value, which is
// a safe "no progress yet" record rather than an error.
type CompanyProgress struct {
	// Solved is the number of problems completed for this company.
	Solved int `json:"solved"`

	// Total is the number of problems in this company's list.
	Total int `json:"total"`

	// LastUpdated is when this record was last written.
	LastUpdated time.Time `json:"lastUpdated"`
}

// Stats is a computed, read-only summary of the current state.
type Stats struct {
	// SolvedCount is the number of distinct solved problems.
	SolvedCount int `json:"solvedCount"`

	// BookmarkedCount is the number of distinct bookmarked problems.
	BookmarkedCount int `json:"bookmarkedCount"`

	// CompanyCount is the number of companies with a progress record.
	CompanyCount int `json:"companyCount"`

	// Theme is the currently active theme.
	Theme Theme `json:"theme"`

	// LastVisited is the time of the last successful persist,
	// or nil if the state has never been persisted.
	LastVisited *time.Time `json:"lastVisited"`
}

// DefaultDifficulty is the filter value applied when no difficulty
// filter has been chosen.
const DefaultDifficulty = "all"

// appState is the single in-memory state value. It is owned exclusively
// by the Manager; everything callers see is a copy.
type appState struct {
	solved          map[string]struct{}
	bookmarked      map[string]struct{}
	theme           Theme
	searchQuery     string
	filters         map[string]string
	companyProgress map[string]CompanyProgress
	lastVisited     *time.Time
}

// defaultState returns the construction-time defaults: empty sets, light
// theme, the difficulty filter preset to "all", and no visit recorded.
func defaultState() appState {
	return appState{
		solved:          make(map[string]struct{}),
		bookmarked:      make(map[string]struct{}),
		theme:           ThemeLight,
		filters:         map[string]string{"difficulty": DefaultDifficulty},
		companyProgress: make(map[string]CompanyProgress),
	}
}
