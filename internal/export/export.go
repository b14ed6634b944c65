// Package export renders a drafted roster as a shareable summary
package export

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
)

// Format selects the summary layout
type Format string

// Supported formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatMarkdown}

// ParseFormat accepts a format name or its file extension
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", errors.InvalidArgumentf("unknown export format %q", name).
		WithMeta("format", name)
}

// Extension returns the file extension used when writing the summary to disk
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".txt"
}

// Summary is everything an export needs about a roster
type Summary struct {
	Budget         int64
	TotalCost      int64
	Drafted        []*entities.Superstar
	CompletedTeams []string
	Rivalries      engine.RivalryReport
}

// NewSummary derives a summary from the ledger's current state
func NewSummary(catalog *entities.Catalog, ledger *entities.Ledger) Summary {
	selection := ledger.Selection()
	return Summary{
		Budget:         ledger.Budget(),
		TotalCost:      ledger.TotalCost(),
		Drafted:        selection,
		CompletedTeams: engine.CompletedTeams(catalog, selection),
		Rivalries:      engine.Rivalries(selection),
	}
}

// Render lays out the summary in the requested format
func Render(format Format, summary Summary) (string, error) {
	switch format {
	case FormatText:
		return Text(summary), nil
	case FormatMarkdown:
		return Markdown(summary), nil
	}
	return "", errors.InvalidArgumentf("unknown export format %q", format).
		WithMeta("format", string(format))
}

var printer = message.NewPrinter(language.English)

// Money formats a dollar amount with thousands separators
func Money(amount int64) string {
	return printer.Sprintf("$%d", amount)
}
