// Package engine holds the pure computations over a catalog and a roster:
// filtering and sorting for display, and matchmaking insights (completed
// teams, rivalries, synergy and the roster breakdown).
package engine

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
)

// MaxFilterRows caps how many filter rows a FilterSpec holds
const MaxFilterRows = 3

// Property is a superstar attribute that can be filtered on
type Property string

// Filterable properties
const (
	PropertyClass  Property = "class"
	PropertyRole   Property = "role"
	PropertyGender Property = "gender"
	PropertyTeam   Property = "team"
)

// Properties lists the filterable properties in display order
var Properties = []Property{PropertyClass, PropertyRole, PropertyGender, PropertyTeam}

var propertyAccessors = map[Property]func(*entities.Superstar) string{
	PropertyClass:  func(s *entities.Superstar) string { return string(s.Class) },
	PropertyRole:   func(s *entities.Superstar) string { return string(s.Role) },
	PropertyGender: func(s *entities.Superstar) string { return string(s.Gender) },
	PropertyTeam:   func(s *entities.Superstar) string { return s.Team },
}

// ParseProperty maps a property name to a Property
func ParseProperty(name string) (Property, error) {
	p := Property(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := propertyAccessors[p]; !ok {
		return "", errors.InvalidArgumentf("unknown filter property %q", name).
			WithMeta("property", name)
	}
	return p, nil
}

// Label returns the display name of the property
func (p Property) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Value reads the property from a superstar. Unknown properties read as "".
func (p Property) Value(s *entities.Superstar) string {
	accessor, ok := propertyAccessors[p]
	if !ok {
		return ""
	}
	return accessor(s)
}

// FilterRow is one (property, value) predicate. A row missing either half
// is inert and matches everything.
type FilterRow struct {
	Property Property
	Value    string
}

// Active reports whether the row constrains the result
func (r FilterRow) Active() bool {
	return r.Property != "" && r.Value != ""
}

// Matches reports whether s satisfies the row
func (r FilterRow) Matches(s *entities.Superstar) bool {
	if !r.Active() {
		return true
	}
	return r.Property.Value(s) == r.Value
}

// FilterSpec is an ordered list of up to MaxFilterRows filter rows combined
// with AND
type FilterSpec struct {
	rows []FilterRow
}

// NewFilterSpec returns a spec holding one empty row
func NewFilterSpec() *FilterSpec {
	return &FilterSpec{rows: []FilterRow{{}}}
}

// Rows returns a copy of the rows
func (f *FilterSpec) Rows() []FilterRow {
	out := make([]FilterRow, len(f.rows))
	copy(out, f.rows)
	return out
}

// CanAddRow reports whether another row fits
func (f *FilterSpec) CanAddRow() bool {
	return len(f.rows) < MaxFilterRows
}

// AddRow appends an empty row. It returns false, and does nothing, once the
// spec already holds MaxFilterRows rows.
func (f *FilterSpec) AddRow() bool {
	if !f.CanAddRow() {
		return false
	}
	f.rows = append(f.rows, FilterRow{})
	return true
}

// Set replaces row i
func (f *FilterSpec) Set(i int, property Property, value string) error {
	if i < 0 || i >= len(f.rows) {
		return errors.InvalidArgumentf("filter row %d does not exist", i).
			WithMeta("rows", len(f.rows))
	}
	if property != "" {
		if _, ok := propertyAccessors[property]; !ok {
			return errors.InvalidArgumentf("unknown filter property %q", property)
		}
	}
	f.rows[i] = FilterRow{Property: property, Value: value}
	return nil
}

// Reset drops every row and leaves a single empty one
func (f *FilterSpec) Reset() {
	f.rows = []FilterRow{{}}
}

// Active returns the rows that constrain the result
func (f *FilterSpec) Active() []FilterRow {
	var active []FilterRow
	for _, r := range f.rows {
		if r.Active() {
			active = append(active, r)
		}
	}
	return active
}

// DistinctValues returns the non-empty values of property across the
// catalog, deduplicated and sorted
func DistinctValues(catalog *entities.Catalog, property Property) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, s := range catalog.All() {
		v := property.Value(s)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// ApplyFilters returns the catalog entries matching every active row, in
// catalog order. A nil or inert spec returns the whole catalog.
func ApplyFilters(catalog *entities.Catalog, spec *FilterSpec) []*entities.Superstar {
	all := catalog.All()
	if spec == nil {
		return all
	}

	active := spec.Active()
	if len(active) == 0 {
		return all
	}

	out := make([]*entities.Superstar, 0, len(all))
	for _, s := range all {
		if matchesAll(active, s) {
			out = append(out, s)
		}
	}
	return out
}

func matchesAll(rows []FilterRow, s *entities.Superstar) bool {
	for _, r := range rows {
		if !r.Matches(s) {
			return false
		}
	}
	return true
}
