package export

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
)

// Markdown renders the summary as a markdown document
func Markdown(s Summary) string {
	var b strings.Builder

	b.WriteString("# Roster Summary\n\n| Stat | Value |\n|:---|:---|\n")
	fmt.Fprintf(&b, "| Total Superstars | %d |\n", len(s.Drafted))
	fmt.Fprintf(&b, "| Total Cost | %s |\n", Money(s.TotalCost))
	fmt.Fprintf(&b, "| Budget Remaining | %s |\n\n", Money(s.Budget))

	b.WriteString("## Drafted Superstars\n")
	for _, star := range s.Drafted {
		fmt.Fprintf(&b, "* **%s** (%s %s)\n", star.Name, star.Role, star.Class)
	}

	if len(s.CompletedTeams) > 0 {
		b.WriteString("\n## Completed Teams\n")
		for _, team := range s.CompletedTeams {
			fmt.Fprintf(&b, "* %s\n", team)
		}
	}

	b.WriteString("\n## Potential Rivalries\n")
	writeSection := func(heading string, rivalries []engine.Rivalry) {
		if len(rivalries) == 0 {
			return
		}
		b.WriteString("### " + heading + "\n")
		for _, r := range rivalries {
			fmt.Fprintf(&b, "* **%s** vs. **%s** _(%s)_\n", r.Face.Name, r.Heel.Name, r.Label)
		}
	}
	writeSection(idealHeading, s.Rivalries.Ideal)
	writeSection(specialistHeading, s.Rivalries.Specialist)
	if s.Rivalries.Empty() {
		b.WriteString("*" + noRivalries + "*\n")
	}

	return b.String()
}
