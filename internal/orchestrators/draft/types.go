package draft

import (
	"github.com/KirkDiggler/superstar-draft/internal/engine"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/export"
)

// Roster is the state of one session's ledger
type Roster struct {
	SessionID string
	Budget    int64
	TotalCost int64
	Selection []*entities.Superstar
}

// ListEntry is a catalog entry annotated for the session viewing it
type ListEntry struct {
	Superstar  *entities.Superstar
	Drafted    bool
	Affordable bool
}

// StartSessionInput defines the request for opening a session
type StartSessionInput struct {
	// SessionID resumes a saved session. Empty generates a new ID.
	SessionID string
	// Budget overrides the configured initial budget when positive
	Budget int64
}

// StartSessionOutput defines the response for opening a session
type StartSessionOutput struct {
	Roster   *Roster
	Restored bool
	// Dropped lists saved names the catalog no longer knows
	Dropped []string
	// Discarded reports a saved snapshot that was unreadable or invalid and
	// was replaced by an empty ledger
	Discarded bool
}

// DraftInput defines the request for drafting a superstar
type DraftInput struct {
	SessionID string
	Name      string
}

// DraftOutput defines the response for drafting a superstar
type DraftOutput struct {
	Superstar *entities.Superstar
	Roster    *Roster
}

// UndraftInput defines the request for releasing a superstar
type UndraftInput struct {
	SessionID string
	Name      string
}

// UndraftOutput defines the response for releasing a superstar
type UndraftOutput struct {
	Superstar *entities.Superstar
	Roster    *Roster
}

// ResetInput defines the request for clearing a roster
type ResetInput struct {
	SessionID string
}

// ResetOutput defines the response for clearing a roster
type ResetOutput struct {
	Roster *Roster
}

// GetRosterInput defines the request for reading a roster
type GetRosterInput struct {
	SessionID string
}

// GetRosterOutput defines the response for reading a roster
type GetRosterOutput struct {
	Roster *Roster
}

// ListSuperstarsInput defines the request for browsing the catalog
type ListSuperstarsInput struct {
	SessionID string
	Filters   []engine.FilterRow
	Sort      engine.SortKey
}

// ListSuperstarsOutput defines the response for browsing the catalog
type ListSuperstarsOutput struct {
	Entries []ListEntry
	// Filters are the rows the entries were matched against
	Filters []engine.FilterRow
}

// DistinctValuesInput defines the request for a property's filter values
type DistinctValuesInput struct {
	Property engine.Property
}

// DistinctValuesOutput defines the response for a property's filter values
type DistinctValuesOutput struct {
	Values []string
}

// GetInsightsInput defines the request for roster analysis
type GetInsightsInput struct {
	SessionID string
}

// GetInsightsOutput defines the response for roster analysis
type GetInsightsOutput struct {
	CompletedTeams []string
	Rivalries      engine.RivalryReport
	Synergies      []engine.Synergy
	Breakdown      engine.Breakdown
}

// SummaryInput defines the request for an export summary
type SummaryInput struct {
	SessionID string
}

// SummaryOutput defines the response for an export summary
type SummaryOutput struct {
	Summary export.Summary
}

// ExportInput defines the request for rendering a summary
type ExportInput struct {
	SessionID string
	Format    export.Format
}

// ExportOutput defines the response for rendering a summary
type ExportOutput struct {
	Format  export.Format
	Content string
}

// SnapshotInput defines the request for capturing a session
type SnapshotInput struct {
	SessionID string
}

// SnapshotOutput defines the response for capturing a session
type SnapshotOutput struct {
	Snapshot entities.Snapshot
}

// RestoreInput defines the request for replacing a session's state
type RestoreInput struct {
	SessionID string
	Snapshot  entities.Snapshot
}

// RestoreOutput defines the response for replacing a session's state
type RestoreOutput struct {
	Roster  *Roster
	Dropped []string
}

// EndSessionInput defines the request for discarding a session
type EndSessionInput struct {
	SessionID string
	// DeleteSnapshot also removes the persisted snapshot
	DeleteSnapshot bool
}

// EndSessionOutput defines the response for discarding a session
type EndSessionOutput struct {
	SnapshotDeleted bool
}
