package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/testutils"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestNewCatalogIndexesInOrder() {
	catalog := testutils.CreateTestCatalog(s.T())

	s.Equal(testutils.FixtureCatalogSize, catalog.Len())
	all := catalog.All()
	s.Equal(testutils.SethRollins, all[0].Name)
	s.Equal(testutils.SoloSikoa, all[len(all)-1].Name)

	roman, ok := catalog.Get(testutils.RomanReigns)
	s.Require().True(ok)
	s.Equal(int64(1000000), roman.Cost)

	_, ok = catalog.Get("Hulk Hogan")
	s.False(ok)
}

func (s *CatalogTestSuite) TestTeams() {
	catalog := testutils.CreateTestCatalog(s.T())

	s.Equal([]string{testutils.TeamShield, testutils.TeamJudgment, testutils.TeamBloodline}, catalog.Teams())
	s.Equal(3, catalog.TeamSize(testutils.TeamShield))
	s.Equal(1, catalog.TeamSize(testutils.TeamBloodline))
	s.Equal(0, catalog.TeamSize("nWo"))
}

func (s *CatalogTestSuite) TestGenderIsCanonicalized() {
	catalog, err := entities.NewCatalog([]*entities.Superstar{
		{Name: "Asuka", Class: entities.ClassFighter, Role: entities.RoleHeel, Gender: "FEMALE"},
		{Name: "Kofi Kingston", Class: entities.ClassCruiser, Role: entities.RoleFace, Gender: " male"},
	})
	s.Require().NoError(err)

	asuka, _ := catalog.Get("Asuka")
	s.Equal(entities.GenderFemale, asuka.Gender)
	kofi, _ := catalog.Get("Kofi Kingston")
	s.Equal(entities.GenderMale, kofi.Gender)
}

func (s *CatalogTestSuite) TestCatalogCopiesInput() {
	input := testutils.TestSuperstars()
	catalog, err := entities.NewCatalog(input)
	s.Require().NoError(err)

	input[0].Cost = 1

	seth, _ := catalog.Get(testutils.SethRollins)
	s.Equal(int64(700000), seth.Cost)
}

func (s *CatalogTestSuite) TestValidation() {
	testCases := []struct {
		name       string
		superstars []*entities.Superstar
		contains   string
	}{
		{
			name: "duplicate name",
			superstars: []*entities.Superstar{
				{Name: "Edge", Class: entities.ClassFighter, Role: entities.RoleFace, Gender: entities.GenderMale},
				{Name: "Edge", Class: entities.ClassBruiser, Role: entities.RoleHeel, Gender: entities.GenderMale},
			},
			contains: `superstars[1].name: duplicate name "Edge"`,
		},
		{
			name: "missing name",
			superstars: []*entities.Superstar{
				{Class: entities.ClassFighter, Role: entities.RoleFace, Gender: entities.GenderMale},
			},
			contains: "superstars[0].name: is required",
		},
		{
			name: "negative cost",
			superstars: []*entities.Superstar{
				{Name: "Edge", Cost: -5, Class: entities.ClassFighter, Role: entities.RoleFace, Gender: entities.GenderMale},
			},
			contains: "superstars[0].cost",
		},
		{
			name: "unknown class",
			superstars: []*entities.Superstar{
				{Name: "Edge", Class: "Technician", Role: entities.RoleFace, Gender: entities.GenderMale},
			},
			contains: "superstars[0].class: must be one of: Fighter, Bruiser, Cruiser, Giant, Specialist",
		},
		{
			name: "unknown role",
			superstars: []*entities.Superstar{
				{Name: "Edge", Class: entities.ClassFighter, Role: "Tweener", Gender: entities.GenderMale},
			},
			contains: "superstars[0].role",
		},
		{
			name: "unknown gender",
			superstars: []*entities.Superstar{
				{Name: "Edge", Class: entities.ClassFighter, Role: entities.RoleFace, Gender: "tag"},
			},
			contains: "superstars[0].gender",
		},
		{
			name:       "nil entry",
			superstars: []*entities.Superstar{nil},
			contains:   "superstars[0]: is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			catalog, err := entities.NewCatalog(tc.superstars)
			s.Nil(catalog)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.contains)
		})
	}
}

func (s *CatalogTestSuite) TestSuperstarIsToolkitEntity() {
	star := &entities.Superstar{Name: "Edge"}
	s.Equal("Edge", star.GetID())
	s.Equal(entities.EntityTypeSuperstar, star.GetType())
}
