// Package entities provides the draft's core data structures: the superstar
// catalog and the budget ledger that tracks a roster drafted from it.
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Class is a superstar's in-ring style
type Class string

// Class constants
const (
	ClassFighter    Class = "Fighter"
	ClassBruiser    Class = "Bruiser"
	ClassCruiser    Class = "Cruiser"
	ClassGiant      Class = "Giant"
	ClassSpecialist Class = "Specialist"
)

// Classes lists every class in display order
var Classes = []Class{ClassFighter, ClassBruiser, ClassCruiser, ClassGiant, ClassSpecialist}

// Role is a superstar's alignment with the crowd
type Role string

// Role constants
const (
	RoleFace Role = "Face"
	RoleHeel Role = "Heel"
)

// Roles lists every role in display order
var Roles = []Role{RoleFace, RoleHeel}

// Gender is the division a superstar competes in
type Gender string

// Gender constants
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists every division in display order
var Genders = []Gender{GenderMale, GenderFemale}

// EntityTypeSuperstar is the rpg-toolkit entity type of a Superstar
const EntityTypeSuperstar = "superstar"

// Superstar is a draftable catalog entry. Name is the primary key.
type Superstar struct {
	Name   string  `json:"name" yaml:"name"`
	Cost   int64   `json:"cost" yaml:"cost"`
	Class  Class   `json:"class" yaml:"class"`
	Role   Role    `json:"role" yaml:"role"`
	Gender Gender  `json:"gender" yaml:"gender"`
	Team   string  `json:"team,omitempty" yaml:"team,omitempty"`
	Pop    float64 `json:"pop" yaml:"pop"`
	Sta    float64 `json:"sta" yaml:"sta"`
	Image  string  `json:"image,omitempty" yaml:"image,omitempty"`
}

// GetID returns the superstar's name
func (s *Superstar) GetID() string {
	return s.Name
}

// GetType returns the entity type for rpg-toolkit
func (s *Superstar) GetType() string {
	return EntityTypeSuperstar
}

var _ core.Entity = (*Superstar)(nil)

// IsValid reports whether c is one of the five known classes
func (c Class) IsValid() bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

// IsValid reports whether r is Face or Heel
func (r Role) IsValid() bool {
	return r == RoleFace || r == RoleHeel
}

// ParseGender canonicalizes a gender case-insensitively.
// The second return is false for anything other than male or female.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	default:
		return Gender(s), false
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
