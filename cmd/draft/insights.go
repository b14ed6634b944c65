package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/orchestrators/draft"
)

func newInsightsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show completed teams, rivalries, synergy and the roster breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.GetInsights(cmd.Context(), &draft.GetInsightsInput{SessionID: a.session})
			if err != nil {
				return err
			}
			printInsights(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func printInsights(w io.Writer, in *draft.GetInsightsOutput) {
	fmt.Fprintln(w, "Completed teams:")
	if len(in.CompletedTeams) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, team := range in.CompletedTeams {
		fmt.Fprintf(w, "  - %s\n", team)
	}

	fmt.Fprintln(w, "Synergy bonuses:")
	if len(in.Synergies) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, s := range in.Synergies {
		fmt.Fprintf(w, "  - %s (%d members)\n", s.Team, s.Count)
	}

	fmt.Fprintln(w, "Potential rivalries:")
	printRivalries(w, "Ideal Matchups (High Ceiling)", in.Rivalries.Ideal)
	printRivalries(w, "Specialist Matchups (High Floor)", in.Rivalries.Specialist)
	if in.Rivalries.Empty() {
		fmt.Fprintln(w, "  none")
	}

	fmt.Fprintf(w, "Breakdown (men %d, women %d):\n", in.Breakdown.Male.Total, in.Breakdown.Female.Total)
	fmt.Fprintln(w, breakdownTable(in.Breakdown))
}

func printRivalries(w io.Writer, heading string, rivalries []engine.Rivalry) {
	if len(rivalries) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", heading)
	for _, r := range rivalries {
		fmt.Fprintf(w, "    - %s vs. %s [%s]\n", r.Face.Name, r.Heel.Name, r.Label)
	}
}

func breakdownTable(b engine.Breakdown) string {
	rows := make([][]string, 0, len(entities.Classes))
	for _, class := range entities.Classes {
		male := b.Male.Classes[class]
		female := b.Female.Classes[class]
		rows = append(rows, []string{
			string(class),
			strconv.Itoa(male.Face),
			strconv.Itoa(male.Heel),
			strconv.Itoa(female.Face),
			strconv.Itoa(female.Heel),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CLASS", "MALE FACE", "MALE HEEL", "FEMALE FACE", "FEMALE HEEL").
		Rows(rows...).
		String()
}
