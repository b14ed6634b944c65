package rostersnapshot

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/pkg/clock"
)

type storedRecord struct {
	record    *Record
	expiresAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]storedRecord
}

// NewInMemory creates a new in-memory repository. A nil clock uses the system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]storedRecord),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the snapshot
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Snapshot.Budget < 0 {
		return nil, errors.InvalidArgument(errBudgetNegative).
			WithMeta("budget", input.Snapshot.Budget)
	}

	now := r.clock.Now()
	stored := storedRecord{
		record: &Record{
			SessionID: input.SessionID,
			Snapshot:  copySnapshot(input.Snapshot),
			SavedAt:   now,
		},
	}
	if input.TTL > 0 {
		stored.expiresAt = now.Add(input.TTL)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.SessionID] = stored

	return &SaveOutput{Record: copyRecord(stored.record)}, nil
}

// Get returns a copy of the stored snapshot
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	stored, ok := r.store[input.SessionID]
	r.mu.RUnlock()

	if !ok || r.expired(stored) {
		return nil, errors.NotFoundf("snapshot for session %s not found", input.SessionID).
			WithMeta("session_id", input.SessionID)
	}

	return &GetOutput{Record: copyRecord(stored.record)}, nil
}

// Delete removes the snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[input.SessionID]
	delete(r.store, input.SessionID)

	return &DeleteOutput{Deleted: ok && !r.expired(stored)}, nil
}

func (r *InMemoryRepository) expired(s storedRecord) bool {
	return !s.expiresAt.IsZero() && !r.clock.Now().Before(s.expiresAt)
}
