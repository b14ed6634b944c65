package rostersnapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/pkg/clock"
)

// FileConfig holds the configuration for the file repository
type FileConfig struct {
	Dir   string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", c.Dir, vb)
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

// fileRepository keeps one JSON document per session under dir. Records
// never expire; SaveInput.TTL is ignored.
type fileRepository struct {
	dir   string
	clock clock.Clock
	mu    sync.Mutex
}

// NewFileRepository creates a repository backed by JSON files on disk
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &fileRepository{dir: cfg.Dir, clock: cfg.Clock}, nil
}

var _ Repository = (*fileRepository)(nil)

func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	path, err := r.path(input.SessionID)
	if err != nil {
		return nil, err
	}
	if input.Snapshot.Budget < 0 {
		return nil, errors.InvalidArgument(errBudgetNegative).
			WithMeta("budget", input.Snapshot.Budget)
	}

	record := &Record{
		SessionID: input.SessionID,
		Snapshot:  copySnapshot(input.Snapshot),
		SavedAt:   r.clock.Now(),
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create snapshot directory").
			WithMeta("dir", r.dir)
	}

	// write then rename so a crash never leaves a half-written snapshot
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write snapshot").
			WithMeta("path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to replace snapshot").
			WithMeta("path", path)
	}

	return &SaveOutput{Record: copyRecord(record)}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	path, err := r.path(input.SessionID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	data, err := os.ReadFile(path)
	r.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("snapshot for session %s not found", input.SessionID).
				WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read snapshot").
			WithMeta("path", path)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored snapshot is corrupt").
			WithMeta("path", path)
	}
	record.SessionID = input.SessionID
	if record.SelectedNames == nil {
		record.SelectedNames = []string{}
	}

	return &GetOutput{Record: &record}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	path, err := r.path(input.SessionID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &DeleteOutput{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete snapshot").
			WithMeta("path", path)
	}
	return &DeleteOutput{Deleted: true}, nil
}

func (r *fileRepository) path(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.InvalidArgument(errSessionIDEmpty)
	}
	if strings.ContainsAny(sessionID, `/\`) || sessionID == "." || sessionID == ".." {
		return "", errors.InvalidArgumentf("session ID %q cannot be used as a file name", sessionID)
	}
	return filepath.Join(r.dir, sessionID+".json"), nil
}
