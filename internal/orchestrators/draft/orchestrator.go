// Package draft implements the session orchestrator that owns each
// session's ledger and keeps its snapshot persisted
package draft

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/export"
	"github.com/KirkDiggler/superstar-draft/internal/pkg/idgen"
	rostersnapshot "github.com/KirkDiggler/superstar-draft/internal/repositories/roster_snapshot"
)

// Service defines the draft session operations
type Service interface {
	// Session lifecycle
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Ledger mutations. Each one is persisted before it becomes visible.
	Draft(ctx context.Context, input *DraftInput) (*DraftOutput, error)
	Undraft(ctx context.Context, input *UndraftInput) (*UndraftOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)

	// Reads
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	ListSuperstars(ctx context.Context, input *ListSuperstarsInput) (*ListSuperstarsOutput, error)
	DistinctValues(ctx context.Context, input *DistinctValuesInput) (*DistinctValuesOutput, error)
	GetInsights(ctx context.Context, input *GetInsightsInput) (*GetInsightsOutput, error)
	Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)
}

// Config holds the dependencies for the draft orchestrator
type Config struct {
	Catalog      *entities.Catalog
	SnapshotRepo rostersnapshot.Repository
	IDGenerator  idgen.Generator

	// InitialBudget of zero uses entities.DefaultBudget
	InitialBudget int64
	// SnapshotTTL of zero keeps snapshots until deleted
	SnapshotTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.SnapshotRepo == nil {
		vb.RequiredField("SnapshotRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateNonNegative("InitialBudget", c.InitialBudget, vb)
	if c.SnapshotTTL < 0 {
		vb.Field("SnapshotTTL", "must not be negative")
	}

	return vb.Build()
}

type session struct {
	ledger        *entities.Ledger
	initialBudget int64
}

type orchestrator struct {
	catalog       *entities.Catalog
	snapshotRepo  rostersnapshot.Repository
	idGen         idgen.Generator
	initialBudget int64
	snapshotTTL   time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// NewOrchestrator creates a new draft orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	budget := cfg.InitialBudget
	if budget == 0 {
		budget = entities.DefaultBudget
	}

	return &orchestrator{
		catalog:       cfg.Catalog,
		snapshotRepo:  cfg.SnapshotRepo,
		idGen:         cfg.IDGenerator,
		initialBudget: budget,
		snapshotTTL:   cfg.SnapshotTTL,
		sessions:      make(map[string]*session),
	}, nil
}

// StartSession opens a session, resuming its saved snapshot when there is one
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Budget < 0 {
		return nil, errors.InvalidArgumentf("budget %d is negative", input.Budget).
			WithMeta("budget", input.Budget)
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = o.idGen.Generate()
	}
	budget := o.initialBudget
	if input.Budget > 0 {
		budget = input.Budget
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if sess, ok := o.sessions[sessionID]; ok {
		return &StartSessionOutput{Roster: o.roster(sessionID, sess.ledger)}, nil
	}

	ledger := entities.NewLedger(budget)
	out := &StartSessionOutput{}

	got, err := o.snapshotRepo.Get(ctx, rostersnapshot.GetInput{SessionID: sessionID})
	switch {
	case errors.IsNotFound(err):
		slog.Info("Starting new draft session", "session_id", sessionID, "budget", budget)
	case errors.IsDataLoss(err):
		slog.Warn("Discarding unreadable saved roster",
			"session_id", sessionID,
			"error", err)
		out.Discarded = true
	case err != nil:
		return nil, errors.Wrapf(err, "failed to load snapshot for session %s", sessionID)
	default:
		dropped, err := ledger.Restore(got.Record.Snapshot, o.catalog)
		if err != nil {
			// The saved roster can never be restored. Start over so the
			// session stays usable and the next save replaces it.
			slog.Warn("Discarding invalid saved roster",
				"session_id", sessionID,
				"error", err)
			out.Discarded = true
			break
		}
		if len(dropped) > 0 {
			slog.Warn("Dropped unknown superstars from saved roster",
				"session_id", sessionID,
				"dropped", dropped)
		}
		out.Restored = true
		out.Dropped = dropped
		slog.Info("Resumed draft session",
			"session_id", sessionID,
			"budget", ledger.Budget(),
			"drafted", ledger.Len())
	}

	o.sessions[sessionID] = &session{ledger: ledger, initialBudget: budget}
	out.Roster = o.roster(sessionID, ledger)
	return out, nil
}

// EndSession forgets the in-memory session and optionally its snapshot
func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.sessions, input.SessionID)

	out := &EndSessionOutput{}
	if input.DeleteSnapshot {
		deleted, err := o.snapshotRepo.Delete(ctx, rostersnapshot.DeleteInput{SessionID: input.SessionID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to delete snapshot for session %s", input.SessionID)
		}
		out.SnapshotDeleted = deleted.Deleted
	}

	slog.Info("Ended draft session",
		"session_id", input.SessionID,
		"snapshot_deleted", out.SnapshotDeleted)
	return out, nil
}

// Draft adds a superstar to the session's roster
func (o *orchestrator) Draft(ctx context.Context, input *DraftInput) (*DraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateNamed(input.SessionID, input.Name); err != nil {
		return nil, err
	}

	var drafted *entities.Superstar
	roster, err := o.mutate(ctx, input.SessionID, func(l *entities.Ledger) error {
		s, err := l.Draft(o.catalog, input.Name)
		drafted = s
		return err
	})
	if err != nil {
		logRefusal("Draft refused", input.SessionID, input.Name, err)
		return nil, err
	}

	slog.Info("Superstar drafted",
		"session_id", input.SessionID,
		"name", drafted.Name,
		"cost", drafted.Cost,
		"budget", roster.Budget)
	return &DraftOutput{Superstar: drafted, Roster: roster}, nil
}

// Undraft removes a superstar from the session's roster
func (o *orchestrator) Undraft(ctx context.Context, input *UndraftInput) (*UndraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateNamed(input.SessionID, input.Name); err != nil {
		return nil, err
	}

	var released *entities.Superstar
	roster, err := o.mutate(ctx, input.SessionID, func(l *entities.Ledger) error {
		s, err := l.Undraft(input.Name)
		released = s
		return err
	})
	if err != nil {
		logRefusal("Undraft refused", input.SessionID, input.Name, err)
		return nil, err
	}

	slog.Info("Superstar released",
		"session_id", input.SessionID,
		"name", released.Name,
		"refund", released.Cost,
		"budget", roster.Budget)
	return &UndraftOutput{Superstar: released, Roster: roster}, nil
}

// Reset clears the roster back to the session's starting budget
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	roster, err := o.mutateSession(ctx, input.SessionID, func(sess *session, l *entities.Ledger) error {
		l.Reset(sess.initialBudget)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Roster reset", "session_id", input.SessionID, "budget", roster.Budget)
	return &ResetOutput{Roster: roster}, nil
}

// Restore replaces the session's roster with a snapshot
func (o *orchestrator) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	var dropped []string
	roster, err := o.mutate(ctx, input.SessionID, func(l *entities.Ledger) error {
		d, err := l.Restore(input.Snapshot, o.catalog)
		dropped = d
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Roster restored",
		"session_id", input.SessionID,
		"budget", roster.Budget,
		"drafted", len(roster.Selection),
		"dropped", len(dropped))
	return &RestoreOutput{Roster: roster, Dropped: dropped}, nil
}

// GetRoster returns the session's budget and selection
func (o *orchestrator) GetRoster(_ context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ledger, err := o.view(input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetRosterOutput{Roster: o.roster(input.SessionID, ledger)}, nil
}

// ListSuperstars filters and sorts the catalog and marks each entry as
// drafted and affordable for the session
func (o *orchestrator) ListSuperstars(_ context.Context, input *ListSuperstarsInput) (*ListSuperstarsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Filters) > engine.MaxFilterRows {
		return nil, errors.InvalidArgumentf("at most %d filters are allowed", engine.MaxFilterRows).
			WithMeta("filters", len(input.Filters))
	}
	key, err := engine.ParseSortKey(string(input.Sort))
	if err != nil {
		return nil, err
	}

	spec := engine.NewFilterSpec()
	for i, row := range input.Filters {
		if i > 0 {
			spec.AddRow()
		}
		if err := spec.Set(i, row.Property, row.Value); err != nil {
			return nil, err
		}
	}

	ledger, err := o.view(input.SessionID)
	if err != nil {
		return nil, err
	}

	superstars := engine.ApplySort(engine.ApplyFilters(o.catalog, spec), key)
	entries := make([]ListEntry, len(superstars))
	for i, s := range superstars {
		entries[i] = ListEntry{
			Superstar:  s,
			Drafted:    ledger.Has(s.Name),
			Affordable: ledger.Affordable(o.catalog, s.Name),
		}
	}

	return &ListSuperstarsOutput{Entries: entries, Filters: spec.Rows()}, nil
}

// DistinctValues lists the values a filter row can take for a property
func (o *orchestrator) DistinctValues(_ context.Context, input *DistinctValuesInput) (*DistinctValuesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	property, err := engine.ParseProperty(string(input.Property))
	if err != nil {
		return nil, err
	}

	return &DistinctValuesOutput{Values: engine.DistinctValues(o.catalog, property)}, nil
}

// GetInsights runs the matchmaking analysis over the session's roster
func (o *orchestrator) GetInsights(_ context.Context, input *GetInsightsInput) (*GetInsightsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ledger, err := o.view(input.SessionID)
	if err != nil {
		return nil, err
	}

	selection := ledger.Selection()
	return &GetInsightsOutput{
		CompletedTeams: engine.CompletedTeams(o.catalog, selection),
		Rivalries:      engine.Rivalries(selection),
		Synergies:      engine.SynergyCounts(selection),
		Breakdown:      engine.NewBreakdown(selection),
	}, nil
}

// Summary collects what an export needs
func (o *orchestrator) Summary(_ context.Context, input *SummaryInput) (*SummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ledger, err := o.view(input.SessionID)
	if err != nil {
		return nil, err
	}
	return &SummaryOutput{Summary: export.NewSummary(o.catalog, ledger)}, nil
}

// Export renders the session's summary
func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	summary, err := o.Summary(ctx, &SummaryInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	format := input.Format
	if format == "" {
		format = export.FormatText
	}
	content, err := export.Render(format, summary.Summary)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{Format: format, Content: content}, nil
}

// Snapshot captures the session's ledger
func (o *orchestrator) Snapshot(_ context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ledger, err := o.view(input.SessionID)
	if err != nil {
		return nil, err
	}
	return &SnapshotOutput{Snapshot: ledger.Snapshot()}, nil
}

// view returns a copy of the session's ledger for read-only use
func (o *orchestrator) view(sessionID string) (*entities.Ledger, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess, err := o.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.ledger.Clone(), nil
}

func (o *orchestrator) mutate(ctx context.Context, sessionID string, fn func(*entities.Ledger) error) (*Roster, error) {
	return o.mutateSession(ctx, sessionID, func(_ *session, l *entities.Ledger) error {
		return fn(l)
	})
}

// mutateSession applies fn to a copy of the session's ledger, persists the
// copy, and only then swaps it in. A failed fn or save leaves the session
// untouched.
func (o *orchestrator) mutateSession(ctx context.Context, sessionID string, fn func(*session, *entities.Ledger) error) (*Roster, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess, err := o.session(sessionID)
	if err != nil {
		return nil, err
	}

	next := sess.ledger.Clone()
	if err := fn(sess, next); err != nil {
		return nil, err
	}

	_, err = o.snapshotRepo.Save(ctx, rostersnapshot.SaveInput{
		SessionID: sessionID,
		Snapshot:  next.Snapshot(),
		TTL:       o.snapshotTTL,
	})
	if err != nil {
		slog.Error("Failed to persist roster snapshot",
			"session_id", sessionID,
			"error", err)
		return nil, errors.Wrapf(err, "failed to save snapshot for session %s", sessionID)
	}

	sess.ledger = next
	return o.roster(sessionID, next), nil
}

// session must be called with o.mu held
func (o *orchestrator) session(sessionID string) (*session, error) {
	sess, ok := o.sessions[sessionID]
	if !ok {
		return nil, errors.NotFoundf("session %s has not been started", sessionID).
			WithMeta("session_id", sessionID)
	}
	return sess, nil
}

func (o *orchestrator) roster(sessionID string, l *entities.Ledger) *Roster {
	return &Roster{
		SessionID: sessionID,
		Budget:    l.Budget(),
		TotalCost: l.TotalCost(),
		Selection: l.Selection(),
	}
}

// logRefusal records a rejected mutation. Ledger refusals name the
// superstar they were about; anything else is logged as the requested name.
func logRefusal(msg, sessionID, name string, err error) {
	if refused, ok := entities.RefusedSuperstar(err); ok {
		name = refused
	}
	slog.Warn(msg,
		"session_id", sessionID,
		"name", name,
		"code", errors.GetCode(err),
		"unknown", entities.IsUnknownSuperstar(err),
		"error", err)
}

func validateNamed(sessionID, name string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", sessionID, vb)
	errors.ValidateRequired("name", name, vb)
	return vb.Build()
}
