package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/export"
	"github.com/KirkDiggler/superstar-draft/internal/orchestrators/draft"
)

func newDraftCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "draft NAME",
		Short:   "Draft a superstar onto the roster",
		Example: `  superstar-draft draft "Seth Rollins"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.Draft(cmd.Context(), &draft.DraftInput{
				SessionID: a.session,
				Name:      strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Drafted %s for %s. Budget remaining: %s\n",
				out.Superstar.Name, export.Money(out.Superstar.Cost), export.Money(out.Roster.Budget))
			return nil
		},
	}
}

func newUndraftCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "undraft NAME",
		Aliases: []string{"release"},
		Short:   "Remove a superstar from the roster and refund the cost",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.Undraft(cmd.Context(), &draft.UndraftInput{
				SessionID: a.session,
				Name:      strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Released %s, refunded %s. Budget remaining: %s\n",
				out.Superstar.Name, export.Money(out.Superstar.Cost), export.Money(out.Roster.Budget))
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the whole roster and restore the starting budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errors.FailedPrecondition("reset clears your saved progress; pass --yes to confirm")
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.Reset(cmd.Context(), &draft.ResetInput{SessionID: a.session})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Roster cleared. Budget: %s\n", export.Money(out.Roster.Budget))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the reset")

	return cmd
}

func newRosterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Show the drafted roster and remaining budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.GetRoster(cmd.Context(), &draft.GetRosterInput{SessionID: a.session})
			if err != nil {
				return err
			}
			printRoster(cmd.OutOrStdout(), out.Roster)
			return nil
		},
	}
}

func printRoster(w io.Writer, r *draft.Roster) {
	fmt.Fprintf(w, "Session: %s\n", r.SessionID)
	fmt.Fprintf(w, "Budget: %s\n", export.Money(r.Budget))
	fmt.Fprintf(w, "Total cost: %s\n", export.Money(r.TotalCost))
	fmt.Fprintf(w, "Drafted (%d):\n", len(r.Selection))
	if len(r.Selection) == 0 {
		fmt.Fprintln(w, "  nobody yet")
		return
	}
	for _, s := range r.Selection {
		fmt.Fprintf(w, "  - %s (%s %s, %s)\n", s.Name, s.Role, s.Class, export.Money(s.Cost))
	}
}
