package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/testutils"
)

func TestNewBreakdown(t *testing.T) {
	catalog := testutils.CreateTestCatalog(t)
	ledger := testutils.CreateTestLedger(t, catalog,
		testutils.SethRollins, testutils.RomanReigns, testutils.BiancaBelair,
		testutils.RheaRipley, testutils.DeanAmbrose,
	)

	b := engine.NewBreakdown(ledger.Selection())

	assert.Equal(t, 3, b.Male.Total)
	assert.Equal(t, engine.RoleCounts{Face: 1}, b.Male.Classes[entities.ClassFighter])
	assert.Equal(t, engine.RoleCounts{Heel: 1}, b.Male.Classes[entities.ClassBruiser])
	assert.Equal(t, engine.RoleCounts{Face: 1}, b.Male.Classes[entities.ClassSpecialist])
	assert.Equal(t, 0, b.Male.Classes[entities.ClassGiant].Total())

	assert.Equal(t, 2, b.Female.Total)
	assert.Equal(t, engine.RoleCounts{Face: 1}, b.Female.Classes[entities.ClassFighter])
	assert.Equal(t, engine.RoleCounts{Heel: 1}, b.Female.Classes[entities.ClassBruiser])
}

func TestNewBreakdownEmptyRoster(t *testing.T) {
	b := engine.NewBreakdown(nil)

	for _, g := range entities.Genders {
		d := b.Division(g)
		assert.Zero(t, d.Total)
		assert.Len(t, d.Classes, len(entities.Classes))
	}
}
