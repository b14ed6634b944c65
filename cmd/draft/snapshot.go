package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/orchestrators/draft"
)

func newSnapshotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the session's budget and roster as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.Snapshot(cmd.Context(), &draft.SnapshotInput{SessionID: a.session})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Snapshot)
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore FILE",
		Short: "Replace the session's roster with a snapshot file",
		Long: `Replace the session's roster with a JSON snapshot as printed by the
snapshot command. Superstars missing from the catalog are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeNotFound, "failed to read snapshot file").
					WithMeta("path", args[0])
			}
			var snap entities.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed snapshot file").
					WithMeta("path", args[0])
			}

			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			out, err := a.service.Restore(cmd.Context(), &draft.RestoreInput{SessionID: a.session, Snapshot: snap})
			if err != nil {
				return err
			}

			for _, name := range out.Dropped {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipped %s: not in the catalog or listed twice\n", name)
			}
			printRoster(cmd.OutOrStdout(), out.Roster)
			return nil
		},
	}
}

func newForgetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Delete the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.EndSession(cmd.Context(), &draft.EndSessionInput{
				SessionID:      a.session,
				DeleteSnapshot: true,
			})
			if err != nil {
				return err
			}

			if out.SnapshotDeleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted saved session %s\n", a.session)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Session %s had nothing saved\n", a.session)
			}
			return nil
		},
	}
}
