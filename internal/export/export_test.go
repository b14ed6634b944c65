package export_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/export"
	"github.com/KirkDiggler/superstar-draft/internal/testutils"
)

type ExportTestSuite struct {
	suite.Suite
	catalog *entities.Catalog
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}

func (s *ExportTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog(s.T())
}

func (s *ExportTestSuite) shieldSummary() export.Summary {
	ledger := testutils.CreateTestLedger(s.T(), s.catalog,
		testutils.SethRollins, testutils.RomanReigns, testutils.DeanAmbrose)
	return export.NewSummary(s.catalog, ledger)
}

func (s *ExportTestSuite) TestText() {
	expected := "ROSTER SUMMARY\n" +
		"====================\n" +
		"Total Superstars: 3\n" +
		"Total Cost: $2,200,000\n" +
		"Budget Remaining: $1,800,000\n" +
		"\n" +
		"DRAFTED SUPERSTARS:\n" +
		"- Seth Rollins (Face Fighter)\n" +
		"- Roman Reigns (Heel Bruiser)\n" +
		"- Dean Ambrose (Face Specialist)\n" +
		"\n" +
		"COMPLETED TEAMS:\n" +
		"- The Shield\n" +
		"\n" +
		"POTENTIAL RIVALRIES:\n" +
		"Ideal Matchups (High Ceiling):\n" +
		"- Seth Rollins vs. Roman Reigns [Fighter vs. Bruiser]\n" +
		"Specialist Matchups (High Floor):\n" +
		"- Dean Ambrose vs. Roman Reigns [Specialist vs. Bruiser]\n"

	s.Equal(expected, export.Text(s.shieldSummary()))
}

func (s *ExportTestSuite) TestTextEmptyRoster() {
	summary := export.NewSummary(s.catalog, entities.NewLedger(entities.DefaultBudget))

	expected := "ROSTER SUMMARY\n" +
		"====================\n" +
		"Total Superstars: 0\n" +
		"Total Cost: $0\n" +
		"Budget Remaining: $4,000,000\n" +
		"\n" +
		"DRAFTED SUPERSTARS:\n" +
		"\n" +
		"POTENTIAL RIVALRIES:\n" +
		"- No ideal rivalries found.\n"

	s.Equal(expected, export.Text(summary))
}

func (s *ExportTestSuite) TestMarkdown() {
	expected := "# Roster Summary\n" +
		"\n" +
		"| Stat | Value |\n" +
		"|:---|:---|\n" +
		"| Total Superstars | 3 |\n" +
		"| Total Cost | $2,200,000 |\n" +
		"| Budget Remaining | $1,800,000 |\n" +
		"\n" +
		"## Drafted Superstars\n" +
		"* **Seth Rollins** (Face Fighter)\n" +
		"* **Roman Reigns** (Heel Bruiser)\n" +
		"* **Dean Ambrose** (Face Specialist)\n" +
		"\n" +
		"## Completed Teams\n" +
		"* The Shield\n" +
		"\n" +
		"## Potential Rivalries\n" +
		"### Ideal Matchups (High Ceiling)\n" +
		"* **Seth Rollins** vs. **Roman Reigns** _(Fighter vs. Bruiser)_\n" +
		"### Specialist Matchups (High Floor)\n" +
		"* **Dean Ambrose** vs. **Roman Reigns** _(Specialist vs. Bruiser)_\n"

	s.Equal(expected, export.Markdown(s.shieldSummary()))
}

func (s *ExportTestSuite) TestMarkdownNoRivalries() {
	ledger := testutils.CreateTestLedger(s.T(), s.catalog, testutils.SoloSikoa)

	out := export.Markdown(export.NewSummary(s.catalog, ledger))

	s.Contains(out, "* **Solo Sikoa** (Heel Giant)\n")
	s.NotContains(out, "## Completed Teams")
	s.Contains(out, "\n## Potential Rivalries\n*No ideal rivalries found.*\n")
}

func (s *ExportTestSuite) TestRender() {
	summary := s.shieldSummary()

	text, err := export.Render(export.FormatText, summary)
	s.Require().NoError(err)
	s.Equal(export.Text(summary), text)

	md, err := export.Render(export.FormatMarkdown, summary)
	s.Require().NoError(err)
	s.Equal(export.Markdown(summary), md)

	_, err = export.Render(export.Format("pdf"), summary)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportTestSuite) TestParseFormat() {
	testCases := []struct {
		input    string
		expected export.Format
	}{
		{"text", export.FormatText},
		{"TXT", export.FormatText},
		{"markdown", export.FormatMarkdown},
		{" md ", export.FormatMarkdown},
	}
	for _, tc := range testCases {
		s.Run(tc.input, func() {
			f, err := export.ParseFormat(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, f)
		})
	}

	_, err := export.ParseFormat("pdf")
	s.True(errors.IsInvalidArgument(err))

	s.Equal(".md", export.FormatMarkdown.Extension())
	s.Equal(".txt", export.FormatText.Extension())
}

func (s *ExportTestSuite) TestMoney() {
	s.Equal("$0", export.Money(0))
	s.Equal("$950", export.Money(950))
	s.Equal("$4,000,000", export.Money(4000000))
}
