package prepstate

import "time"

// SchemaVersion tags the persisted snapshot format.
//
// Load logs a notice when it sees a different version but still overlays
// whatever fields it recognizes; the format has never changed
// incompatibly.
const SchemaVersion = "1.0"

// Snapshot is the serializable form of the manager's state.
//
// It is the persisted record, the export format, and the import format.
// Sets are represented as sorted slices; the in-memory representation
// converts back at the persistence boundary. The search query is
// session-scoped and deliberately absent.
//
// Absent fields matter on import: a nil slice or map means "leave that
// field alone", not "reset it". Marshal an exported snapshot as-is to get
// the documented JSON schema.
type Snapshot struct {
	SolvedProblems     []string                   `json:"solvedProblems"`
	BookmarkedProblems []string                   `json:"bookmarkedProblems"`
	Theme              Theme                      `json:"theme"`
	CompanyProgress    map[string]CompanyProgress `json:"companyProgress"`
	LastVisited        *time.Time                 `json:"lastVisited"`
	Filters            map[string]string          `json:"filters"`
	Version            string                     `json:"version"`

	// ExportedAt and ExportID are set by Export only; they identify a
	// particular export for traceability and are ignored on import.
	ExportedAt *time.Time `json:"exportedAt,omitempty"`
	ExportID   string     `json:"exportId,omitempty"`
}
