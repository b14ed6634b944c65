package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/export"
	"github.com/KirkDiggler/superstar-draft/internal/orchestrators/draft"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster summary as text or markdown",
		Example: `  superstar-draft export
  superstar-draft export --format markdown --out roster`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.Export(cmd.Context(), &draft.ExportInput{SessionID: a.session, Format: format})
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), out.Content)
				return nil
			}
			if filepath.Ext(outPath) == "" {
				outPath += out.Format.Extension()
			}
			if err := os.WriteFile(outPath, []byte(out.Content), 0o644); err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write export").
					WithMeta("path", outPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s summary to %s\n", out.Format, outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.FormatText), strings.Join(formatNames(), " or "))
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout; the format's extension is added when missing")

	return cmd
}

func formatNames() []string {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	return names
}
