package export

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
)

const noRivalries = "No ideal rivalries found."

// Text renders the plain text summary
func Text(s Summary) string {
	var b strings.Builder

	b.WriteString("ROSTER SUMMARY\n====================\n")
	fmt.Fprintf(&b, "Total Superstars: %d\n", len(s.Drafted))
	fmt.Fprintf(&b, "Total Cost: %s\n", Money(s.TotalCost))
	fmt.Fprintf(&b, "Budget Remaining: %s\n\n", Money(s.Budget))

	b.WriteString("DRAFTED SUPERSTARS:\n")
	for _, star := range s.Drafted {
		fmt.Fprintf(&b, "- %s (%s %s)\n", star.Name, star.Role, star.Class)
	}

	if len(s.CompletedTeams) > 0 {
		b.WriteString("\nCOMPLETED TEAMS:\n")
		for _, team := range s.CompletedTeams {
			fmt.Fprintf(&b, "- %s\n", team)
		}
	}

	b.WriteString("\nPOTENTIAL RIVALRIES:\n")
	writeText := func(heading string, rivalries []engine.Rivalry) {
		if len(rivalries) == 0 {
			return
		}
		b.WriteString(heading + ":\n")
		for _, r := range rivalries {
			fmt.Fprintf(&b, "- %s vs. %s [%s]\n", r.Face.Name, r.Heel.Name, r.Label)
		}
	}
	writeText(idealHeading, s.Rivalries.Ideal)
	writeText(specialistHeading, s.Rivalries.Specialist)
	if s.Rivalries.Empty() {
		b.WriteString("- " + noRivalries + "\n")
	}

	return b.String()
}

const (
	idealHeading      = "Ideal Matchups (High Ceiling)"
	specialistHeading = "Specialist Matchups (High Floor)"
)
