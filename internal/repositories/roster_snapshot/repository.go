// Package rostersnapshot persists draft ledger snapshots between sessions
package rostersnapshot

import (
	"context"
	"time"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rostersnapshotmock github.com/KirkDiggler/superstar-draft/internal/repositories/roster_snapshot Repository

// Record is a stored snapshot. The JSON layout keeps the budget and
// draftedRosterNames keys at the top level so older saves still decode.
type Record struct {
	SessionID string `json:"-"`
	entities.Snapshot
	SavedAt time.Time `json:"savedAt"`
}

// SaveInput contains parameters for storing a snapshot
type SaveInput struct {
	SessionID string
	Snapshot  entities.Snapshot
	// TTL of zero keeps the record until it is deleted
	TTL time.Duration
}

// SaveOutput contains the stored record
type SaveOutput struct {
	Record *Record
}

// GetInput contains parameters for loading a snapshot
type GetInput struct {
	SessionID string
}

// GetOutput contains the loaded record
type GetOutput struct {
	Record *Record
}

// DeleteInput contains parameters for removing a snapshot
type DeleteInput struct {
	SessionID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines snapshot storage operations
type Repository interface {
	// Save overwrites the snapshot stored for the session
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get returns NotFound when the session has never been saved
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the session's snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errSessionIDEmpty = "session ID cannot be empty"
	errBudgetNegative = "snapshot budget cannot be negative"
)

func copySnapshot(snap entities.Snapshot) entities.Snapshot {
	names := make([]string, len(snap.SelectedNames))
	copy(names, snap.SelectedNames)
	return entities.Snapshot{Budget: snap.Budget, SelectedNames: names}
}

func copyRecord(r *Record) *Record {
	return &Record{
		SessionID: r.SessionID,
		Snapshot:  copySnapshot(r.Snapshot),
		SavedAt:   r.SavedAt,
	}
}
