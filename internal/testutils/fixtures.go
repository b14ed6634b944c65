package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
)

// Fixture superstar names
const (
	SethRollins   = "Seth Rollins"
	RomanReigns   = "Roman Reigns"
	DeanAmbrose   = "Dean Ambrose"
	BiancaBelair  = "Bianca Belair"
	RheaRipley    = "Rhea Ripley"
	BraunStrowman = "Braun Strowman"
	ReyMysterio   = "Rey Mysterio"
	FinnBalor     = "Finn Balor"
	DamianPriest  = "Damian Priest"
	SoloSikoa     = "Solo Sikoa"
)

// Fixture team keys
const (
	TeamShield    = "The Shield"
	TeamJudgment  = "Judgment Day"
	TeamBloodline = "Bloodline"
)

const (
	// FixtureBudget is the starting budget used by fixture ledgers
	FixtureBudget = entities.DefaultBudget

	// FixtureCatalogSize is the number of superstars in TestSuperstars
	FixtureCatalogSize = 10
)

// TestSuperstars returns a small roster covering every class, both roles and
// both divisions. The Shield has three members, Judgment Day three, and
// Bloodline a single member.
func TestSuperstars() []*entities.Superstar {
	return []*entities.Superstar{
		{Name: SethRollins, Cost: 700000, Class: entities.ClassFighter, Role: entities.RoleFace, Gender: entities.GenderMale, Team: TeamShield, Pop: 90, Sta: 88},
		{Name: RomanReigns, Cost: 1000000, Class: entities.ClassBruiser, Role: entities.RoleHeel, Gender: entities.GenderMale, Team: TeamShield, Pop: 98, Sta: 80},
		{Name: DeanAmbrose, Cost: 500000, Class: entities.ClassSpecialist, Role: entities.RoleFace, Gender: entities.GenderMale, Team: TeamShield, Pop: 85, Sta: 92},
		{Name: BiancaBelair, Cost: 600000, Class: entities.ClassFighter, Role: entities.RoleFace, Gender: entities.GenderFemale, Pop: 88, Sta: 95},
		{Name: RheaRipley, Cost: 650000, Class: entities.ClassBruiser, Role: entities.RoleHeel, Gender: entities.GenderFemale, Team: TeamJudgment, Pop: 92, Sta: 85},
		{Name: BraunStrowman, Cost: 450000, Class: entities.ClassGiant, Role: entities.RoleFace, Gender: entities.GenderMale, Pop: 75, Sta: 70},
		{Name: ReyMysterio, Cost: 350000, Class: entities.ClassCruiser, Role: entities.RoleHeel, Gender: entities.GenderMale, Pop: 80, Sta: 90},
		{Name: FinnBalor, Cost: 550000, Class: entities.ClassCruiser, Role: entities.RoleFace, Gender: entities.GenderMale, Team: TeamJudgment, Pop: 84, Sta: 86},
		{Name: DamianPriest, Cost: 500000, Class: entities.ClassGiant, Role: entities.RoleHeel, Gender: entities.GenderMale, Team: TeamJudgment, Pop: 78, Sta: 82},
		{Name: SoloSikoa, Cost: 300000, Class: entities.ClassGiant, Role: entities.RoleHeel, Gender: entities.GenderMale, Team: TeamBloodline, Pop: 70, Sta: 75},
	}
}

// CreateTestCatalog builds the fixture catalog
func CreateTestCatalog(t *testing.T) *entities.Catalog {
	t.Helper()

	catalog, err := entities.NewCatalog(TestSuperstars())
	require.NoError(t, err, "failed to build fixture catalog")

	return catalog
}

// CreateTestLedger builds a ledger with the default budget and the named
// superstars drafted in order
func CreateTestLedger(t *testing.T, catalog *entities.Catalog, names ...string) *entities.Ledger {
	t.Helper()

	ledger := entities.NewLedger(FixtureBudget)
	for _, name := range names {
		_, err := ledger.Draft(catalog, name)
		require.NoError(t, err, "failed to draft %s", name)
	}

	return ledger
}
