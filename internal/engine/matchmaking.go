package engine

import (
	"fmt"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
)

// opposingClasses is the fixed table of ideal opponents, keyed by the face's class
var opposingClasses = map[entities.Class]entities.Class{
	entities.ClassFighter: entities.ClassBruiser,
	entities.ClassBruiser: entities.ClassFighter,
	entities.ClassCruiser: entities.ClassGiant,
	entities.ClassGiant:   entities.ClassCruiser,
}

// MatchupKind classifies a rivalry
type MatchupKind string

// Matchup kinds
const (
	MatchupIdeal      MatchupKind = "ideal"
	MatchupSpecialist MatchupKind = "specialist"
)

// Rivalry pairs a drafted face with a drafted heel of the same division
type Rivalry struct {
	Face  *entities.Superstar
	Heel  *entities.Superstar
	Kind  MatchupKind
	Label string
}

// RivalryReport holds the rivalries found on a roster, in face-then-heel
// iteration order
type RivalryReport struct {
	Ideal      []Rivalry
	Specialist []Rivalry
}

// Empty reports whether no rivalry was found
func (r RivalryReport) Empty() bool {
	return len(r.Ideal) == 0 && len(r.Specialist) == 0
}

// Synergy counts how many drafted superstars share a team
type Synergy struct {
	Team  string
	Count int
}

// classifyMatchup decides whether a face/heel pair of the same division is
// a rivalry. Ideal pairs follow the opposing class table; specialist pairs
// have exactly one Specialist.
func classifyMatchup(face, heel *entities.Superstar) (MatchupKind, bool) {
	if opponent, ok := opposingClasses[face.Class]; ok && opponent == heel.Class {
		return MatchupIdeal, true
	}

	faceSpecialist := face.Class == entities.ClassSpecialist
	heelSpecialist := heel.Class == entities.ClassSpecialist
	if faceSpecialist != heelSpecialist {
		return MatchupSpecialist, true
	}

	return "", false
}

// Rivalries pairs every drafted face with every drafted heel of the same
// gender and keeps the pairs that classify as a matchup
func Rivalries(selection []*entities.Superstar) RivalryReport {
	var faces, heels []*entities.Superstar
	for _, s := range selection {
		switch s.Role {
		case entities.RoleFace:
			faces = append(faces, s)
		case entities.RoleHeel:
			heels = append(heels, s)
		}
	}

	var report RivalryReport
	for _, face := range faces {
		for _, heel := range heels {
			if face.Gender != heel.Gender {
				continue
			}

			kind, ok := classifyMatchup(face, heel)
			if !ok {
				continue
			}

			rivalry := Rivalry{
				Face:  face,
				Heel:  heel,
				Kind:  kind,
				Label: fmt.Sprintf("%s vs. %s", face.Class, heel.Class),
			}
			if kind == MatchupIdeal {
				report.Ideal = append(report.Ideal, rivalry)
			} else {
				report.Specialist = append(report.Specialist, rivalry)
			}
		}
	}

	return report
}

// CompletedTeams returns the teams whose every catalog member is on the
// roster, in catalog first-seen order. Single-member teams never complete.
func CompletedTeams(catalog *entities.Catalog, selection []*entities.Superstar) []string {
	drafted := teamCounts(selection)

	completed := []string{}
	for _, team := range catalog.Teams() {
		total := catalog.TeamSize(team)
		if total > 1 && drafted[team] == total {
			completed = append(completed, team)
		}
	}
	return completed
}

// SynergyCounts reports every team with at least two drafted members, in the
// order each team was first drafted
func SynergyCounts(selection []*entities.Superstar) []Synergy {
	counts := teamCounts(selection)

	synergies := []Synergy{}
	seen := make(map[string]struct{})
	for _, s := range selection {
		if s.Team == "" {
			continue
		}
		if _, ok := seen[s.Team]; ok {
			continue
		}
		seen[s.Team] = struct{}{}
		if counts[s.Team] > 1 {
			synergies = append(synergies, Synergy{Team: s.Team, Count: counts[s.Team]})
		}
	}
	return synergies
}

func teamCounts(selection []*entities.Superstar) map[string]int {
	counts := make(map[string]int)
	for _, s := range selection {
		if s.Team != "" {
			counts[s.Team]++
		}
	}
	return counts
}
