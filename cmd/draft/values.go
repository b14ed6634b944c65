package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
	"github.com/KirkDiggler/superstar-draft/internal/orchestrators/draft"
)

func newValuesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "values PROPERTY",
		Short:     "Show the values a filter property can take",
		Args:      cobra.ExactArgs(1),
		ValidArgs: propertyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := engine.ParseProperty(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.DistinctValues(cmd.Context(), &draft.DistinctValuesInput{Property: property})
			if err != nil {
				return err
			}
			for _, v := range out.Values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func propertyNames() []string {
	names := make([]string, len(engine.Properties))
	for i, p := range engine.Properties {
		names[i] = string(p)
	}
	return names
}
