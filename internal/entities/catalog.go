package entities

import (
	"fmt"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
)

// Catalog is the ordered, read-only set of draftable superstars
type Catalog struct {
	superstars []*Superstar
	byName     map[string]*Superstar
	teamSizes  map[string]int
	teams      []string
}

// NewCatalog validates and indexes superstars. Entries are copied and their
// gender canonicalized, so later changes to the input do not leak in.
func NewCatalog(superstars []*Superstar) (*Catalog, error) {
	vb := errors.NewValidationBuilder()

	c := &Catalog{
		superstars: make([]*Superstar, 0, len(superstars)),
		byName:     make(map[string]*Superstar, len(superstars)),
		teamSizes:  make(map[string]int),
	}

	for i, in := range superstars {
		field := fmt.Sprintf("superstars[%d]", i)
		if in == nil {
			vb.RequiredField(field)
			continue
		}

		s := *in
		errors.ValidateRequired(field+".name", s.Name, vb)
		errors.ValidateNonNegative(field+".cost", s.Cost, vb)
		if !s.Class.IsValid() {
			errors.ValidateEnum(field+".class", string(s.Class), stringsOf(Classes), vb)
		}
		if !s.Role.IsValid() {
			errors.ValidateEnum(field+".role", string(s.Role), stringsOf(Roles), vb)
		}
		gender, ok := ParseGender(string(s.Gender))
		if !ok {
			errors.ValidateEnum(field+".gender", string(s.Gender), stringsOf(Genders), vb)
		}
		s.Gender = gender

		if _, dup := c.byName[s.Name]; dup && s.Name != "" {
			vb.Fieldf(field+".name", "duplicate name %q", s.Name)
			continue
		}

		c.superstars = append(c.superstars, &s)
		c.byName[s.Name] = &s
		if s.Team != "" {
			if c.teamSizes[s.Team] == 0 {
				c.teams = append(c.teams, s.Team)
			}
			c.teamSizes[s.Team]++
		}
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	return c, nil
}

// Get returns the superstar with the given name
func (c *Catalog) Get(name string) (*Superstar, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// All returns every superstar in catalog order
func (c *Catalog) All() []*Superstar {
	out := make([]*Superstar, len(c.superstars))
	copy(out, c.superstars)
	return out
}

// Len returns the number of superstars
func (c *Catalog) Len() int {
	return len(c.superstars)
}

// TeamSize returns how many catalog superstars carry the team key
func (c *Catalog) TeamSize(team string) int {
	return c.teamSizes[team]
}

// Teams returns every team key in first-seen order
func (c *Catalog) Teams() []string {
	out := make([]string, len(c.teams))
	copy(out, c.teams)
	return out
}
