package entities

import (
	stderrors "errors"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
)

// DefaultBudget is the starting budget of a new roster
const DefaultBudget int64 = 4000000

// Snapshot is the persisted form of a Ledger. The JSON layout matches the
// saved state of earlier drafting sessions.
type Snapshot struct {
	Budget        int64    `json:"budget"`
	SelectedNames []string `json:"draftedRosterNames"`
}

// Ledger tracks the remaining budget and the drafted roster.
// budget always equals the starting budget minus the cost of the selection,
// and no name is selected twice.
type Ledger struct {
	budget    int64
	selection []*Superstar
	selected  map[string]struct{}
}

// NewLedger creates an empty ledger with the given starting budget
func NewLedger(initialBudget int64) *Ledger {
	return &Ledger{
		budget:   initialBudget,
		selected: make(map[string]struct{}),
	}
}

// Budget returns the remaining budget
func (l *Ledger) Budget() int64 {
	return l.budget
}

// Selection returns the drafted superstars in draft order
func (l *Ledger) Selection() []*Superstar {
	out := make([]*Superstar, len(l.selection))
	copy(out, l.selection)
	return out
}

// Len returns the roster size
func (l *Ledger) Len() int {
	return len(l.selection)
}

// Has reports whether name is on the roster
func (l *Ledger) Has(name string) bool {
	_, ok := l.selected[name]
	return ok
}

// TotalCost sums the cost of the roster
func (l *Ledger) TotalCost() int64 {
	var total int64
	for _, s := range l.selection {
		total += s.Cost
	}
	return total
}

// Affordable reports whether Draft would accept name right now
func (l *Ledger) Affordable(catalog *Catalog, name string) bool {
	s, ok := catalog.Get(name)
	if !ok {
		return false
	}
	return !l.Has(name) && s.Cost <= l.budget
}

// Draft moves a catalog superstar onto the roster and charges its cost.
// On any error the ledger is unchanged.
func (l *Ledger) Draft(catalog *Catalog, name string) (*Superstar, error) {
	s, ok := catalog.Get(name)
	if !ok {
		return nil, errors.WrapWithCode(
			core.NewEntityError("draft", EntityTypeSuperstar, name, core.ErrEntityNotFound),
			errors.CodeNotFound, "superstar is not in the catalog").
			WithMeta("name", name)
	}
	if l.Has(name) {
		return nil, errors.WrapWithCode(entityError("draft", s, core.ErrDuplicateEntity),
			errors.CodeAlreadyExists, "superstar is already drafted").
			WithMeta("name", name)
	}
	if l.budget < s.Cost {
		return nil, errors.ResourceExhaustedf("insufficient budget to draft %q", name).
			WithMeta("name", name).
			WithMeta("cost", s.Cost).
			WithMeta("budget", l.budget)
	}

	l.budget -= s.Cost
	l.selection = append(l.selection, s)
	l.selected[name] = struct{}{}

	return s, nil
}

// Undraft removes a superstar from the roster and refunds its cost
func (l *Ledger) Undraft(name string) (*Superstar, error) {
	if !l.Has(name) {
		return nil, errors.WrapWithCode(
			core.NewEntityError("undraft", EntityTypeSuperstar, name, core.ErrEntityNotFound),
			errors.CodeNotFound, "superstar is not on the roster").
			WithMeta("name", name)
	}

	idx := -1
	for i, s := range l.selection {
		if s.Name == name {
			idx = i
			break
		}
	}
	s := l.selection[idx]

	l.selection = append(l.selection[:idx:idx], l.selection[idx+1:]...)
	delete(l.selected, name)
	l.budget += s.Cost

	return s, nil
}

// Reset clears the roster and restores the budget to initialBudget
func (l *Ledger) Reset(initialBudget int64) {
	l.budget = initialBudget
	l.selection = nil
	l.selected = make(map[string]struct{})
}

// Snapshot captures the budget and roster names for persistence
func (l *Ledger) Snapshot() Snapshot {
	names := make([]string, len(l.selection))
	for i, s := range l.selection {
		names[i] = s.Name
	}
	return Snapshot{
		Budget:        l.budget,
		SelectedNames: names,
	}
}

// Restore replaces the ledger's state with snap. Names missing from the
// catalog, and repeats of a name, are dropped and returned. The budget is
// taken from the snapshot as is; a negative budget marks the snapshot as
// invalid and leaves the ledger unchanged.
func (l *Ledger) Restore(snap Snapshot, catalog *Catalog) ([]string, error) {
	if snap.Budget < 0 {
		return nil, errors.InvalidArgumentf("snapshot budget %d is negative", snap.Budget).
			WithMeta("budget", snap.Budget)
	}

	var (
		selection = make([]*Superstar, 0, len(snap.SelectedNames))
		selected  = make(map[string]struct{}, len(snap.SelectedNames))
		dropped   []string
	)
	for _, name := range snap.SelectedNames {
		s, ok := catalog.Get(name)
		if _, dup := selected[name]; !ok || dup {
			dropped = append(dropped, name)
			continue
		}
		selection = append(selection, s)
		selected[name] = struct{}{}
	}

	l.budget = snap.Budget
	l.selection = selection
	l.selected = selected

	return dropped, nil
}

// Clone returns an independent copy of the ledger
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		budget:    l.budget,
		selection: l.Selection(),
		selected:  make(map[string]struct{}, len(l.selected)),
	}
	for name := range l.selected {
		c.selected[name] = struct{}{}
	}
	return c
}

func entityError(op string, e core.Entity, cause error) *core.EntityError {
	return core.NewEntityError(op, e.GetType(), e.GetID(), cause)
}

// RefusedSuperstar returns the name of the superstar a ledger operation
// refused, if err carries one
func RefusedSuperstar(err error) (string, bool) {
	var entityErr *core.EntityError
	if !stderrors.As(err, &entityErr) || entityErr.EntityType != EntityTypeSuperstar {
		return "", false
	}
	return entityErr.EntityID, true
}

// IsAlreadySelected reports whether err is a duplicate draft refusal
func IsAlreadySelected(err error) bool {
	return errors.IsAlreadyExists(err) && stderrors.Is(err, core.ErrDuplicateEntity)
}

// IsUnknownSuperstar reports whether err names a superstar missing from the
// catalog or the roster
func IsUnknownSuperstar(err error) bool {
	return errors.IsNotFound(err) && stderrors.Is(err, core.ErrEntityNotFound)
}

// IsInsufficientBudget reports whether err is a budget refusal
func IsInsufficientBudget(err error) bool {
	return errors.IsResourceExhausted(err)
}
