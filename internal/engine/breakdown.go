package engine

import (
	"github.com/KirkDiggler/superstar-draft/internal/entities"
)

// RoleCounts splits a count between faces and heels
type RoleCounts struct {
	Face int
	Heel int
}

// Total returns faces plus heels
func (r RoleCounts) Total() int {
	return r.Face + r.Heel
}

// Division is the roster breakdown for one gender
type Division struct {
	Total   int
	Classes map[entities.Class]RoleCounts
}

// Breakdown counts the roster by division, class and role. Every class key
// is present, zero-valued when nothing was drafted.
type Breakdown struct {
	Male   Division
	Female Division
}

func newDivision() Division {
	classes := make(map[entities.Class]RoleCounts, len(entities.Classes))
	for _, c := range entities.Classes {
		classes[c] = RoleCounts{}
	}
	return Division{Classes: classes}
}

// Division returns the breakdown for g
func (b *Breakdown) Division(g entities.Gender) *Division {
	if g == entities.GenderFemale {
		return &b.Female
	}
	return &b.Male
}

// NewBreakdown tallies the roster
func NewBreakdown(selection []*entities.Superstar) Breakdown {
	b := Breakdown{
		Male:   newDivision(),
		Female: newDivision(),
	}

	for _, s := range selection {
		d := b.Division(s.Gender)
		d.Total++

		counts, ok := d.Classes[s.Class]
		if !ok {
			continue
		}
		switch s.Role {
		case entities.RoleFace:
			counts.Face++
		case entities.RoleHeel:
			counts.Heel++
		}
		d.Classes[s.Class] = counts
	}

	return b
}
