package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/superstar-draft/internal/clients/catalog"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
)

const jsonRoster = `{
  "superstars": [
    {"name": "Seth Rollins", "cost": 700000, "class": "Fighter", "role": "Face", "gender": "Male", "team": "The Shield", "pop": 90, "sta": 88, "image": "img/seth.png"},
    {"name": "Rhea Ripley", "cost": 650000, "class": "Bruiser", "role": "Heel", "gender": "female", "pop": 92, "sta": 85}
  ]
}`

const yamlRoster = `superstars:
  - name: Seth Rollins
    cost: 700000
    class: Fighter
    role: Face
    gender: MALE
    team: The Shield
    pop: 90
    sta: 88
  - name: Roman Reigns
    cost: 1000000
    class: Bruiser
    role: Heel
    gender: Male
    team: The Shield
    pop: 98
    sta: 80
`

type LoaderTestSuite struct {
	suite.Suite
	dir string
	ctx context.Context
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.ctx = context.Background()
}

func (s *LoaderTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *LoaderTestSuite) load(path string) (*entities.Catalog, error) {
	loader, err := catalog.NewFileLoader(&catalog.Config{Path: path})
	s.Require().NoError(err)
	return loader.Load(s.ctx)
}

func (s *LoaderTestSuite) TestLoadJSON() {
	c, err := s.load(s.write("roster.json", jsonRoster))
	s.Require().NoError(err)
	s.Equal(2, c.Len())

	seth, ok := c.Get("Seth Rollins")
	s.Require().True(ok)
	s.Equal(int64(700000), seth.Cost)
	s.Equal(entities.ClassFighter, seth.Class)
	s.Equal("img/seth.png", seth.Image)

	rhea, ok := c.Get("Rhea Ripley")
	s.Require().True(ok)
	s.Equal(entities.GenderFemale, rhea.Gender)
	s.Empty(rhea.Team)
}

func (s *LoaderTestSuite) TestLoadYAML() {
	for _, name := range []string{"roster.yaml", "roster.YML"} {
		s.Run(name, func() {
			c, err := s.load(s.write(name, yamlRoster))
			s.Require().NoError(err)
			s.Equal([]string{"The Shield"}, c.Teams())
			s.Equal(2, c.TeamSize("The Shield"))

			seth, _ := c.Get("Seth Rollins")
			s.Equal(entities.GenderMale, seth.Gender)
		})
	}
}

func (s *LoaderTestSuite) TestLoadErrors() {
	s.Run("missing file", func() {
		_, err := s.load(filepath.Join(s.dir, "nope.json"))
		s.True(errors.IsNotFound(err))
	})

	s.Run("malformed JSON", func() {
		_, err := s.load(s.write("bad.json", `{"superstars": [`))
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("malformed YAML", func() {
		_, err := s.load(s.write("bad.yaml", "superstars: [\n  - name: {"))
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing superstars key", func() {
		_, err := s.load(s.write("empty.json", `{"wrestlers": []}`))
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("invalid entry", func() {
		_, err := s.load(s.write("invalid.json",
			`{"superstars": [{"name": "X", "cost": 1, "class": "Wizard", "role": "Face", "gender": "Male"}]}`))
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "superstars[0].class")
	})
}

func (s *LoaderTestSuite) TestConfigValidation() {
	_, err := catalog.NewFileLoader(&catalog.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewFileLoader(&catalog.Config{Path: "roster.csv"})
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewFileLoader(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderTestSuite) TestParse() {
	c, err := catalog.Parse([]byte(`{"superstars": []}`), catalog.EncodingJSON)
	s.Require().NoError(err)
	s.Zero(c.Len())

	_, err = catalog.Parse([]byte(jsonRoster), catalog.Encoding("toml"))
	s.True(errors.IsInvalidArgument(err))
}
