package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/superstar-draft/internal/engine"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/export"
	"github.com/KirkDiggler/superstar-draft/internal/orchestrators/draft"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filters []string
		sortKey string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog, filtered and sorted",
		Long: `List every superstar in the catalog with its draft status. Filters are
property=value pairs over class, role, gender or team, combined with AND.`,
		Example: `  superstar-draft list --filter class=Fighter --filter gender=Female
  superstar-draft list --filter team="The Shield" --sort cost-desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := parseFilters(filters)
			if err != nil {
				return err
			}
			key, err := engine.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}

			out, err := a.service.ListSuperstars(cmd.Context(), &draft.ListSuperstarsInput{
				SessionID: a.session,
				Filters:   rows,
				Sort:      key,
			})
			if err != nil {
				return err
			}

			if len(out.Entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No superstars match %s.\n", describeFilters(out.Filters))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), superstarTable(out.Entries))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil,
		fmt.Sprintf("property=value filter, up to %d", engine.MaxFilterRows))
	cmd.Flags().StringVar(&sortKey, "sort", "",
		"sort order: "+strings.Join(sortKeyNames(), ", "))

	return cmd
}

func superstarTable(entries []draft.ListEntry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		s := e.Superstar
		rows[i] = []string{
			s.Name,
			export.Money(s.Cost),
			string(s.Class),
			string(s.Role),
			string(s.Gender),
			orDash(s.Team),
			formatStat(s.Pop),
			formatStat(s.Sta),
			entryStatus(e),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "COST", "CLASS", "ROLE", "GENDER", "TEAM", "POP", "STA", "STATUS").
		Rows(rows...).
		String()
}

// describeFilters renders the active rows as "Class=Fighter, Gender=Female"
func describeFilters(rows []engine.FilterRow) string {
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Active() {
			parts = append(parts, r.Property.Label()+"="+r.Value)
		}
	}
	if len(parts) == 0 {
		return "an empty catalog"
	}
	return strings.Join(parts, ", ")
}

func entryStatus(e draft.ListEntry) string {
	switch {
	case e.Drafted:
		return "drafted"
	case e.Affordable:
		return "available"
	default:
		return "over budget"
	}
}

// parseFilters turns property=value flags into filter rows
func parseFilters(raw []string) ([]engine.FilterRow, error) {
	if len(raw) > engine.MaxFilterRows {
		return nil, errors.InvalidArgumentf("at most %d filters are allowed, got %d", engine.MaxFilterRows, len(raw))
	}

	rows := make([]engine.FilterRow, 0, len(raw))
	for _, f := range raw {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, errors.InvalidArgumentf("filter %q must look like property=value", f)
		}
		property, err := engine.ParseProperty(name)
		if err != nil {
			return nil, err
		}

		value = strings.TrimSpace(value)
		if property == engine.PropertyGender {
			if g, ok := entities.ParseGender(value); ok {
				value = string(g)
			}
		}
		rows = append(rows, engine.FilterRow{Property: property, Value: value})
	}
	return rows, nil
}

func sortKeyNames() []string {
	names := make([]string, len(engine.SortKeys))
	for i, k := range engine.SortKeys {
		names[i] = string(k)
	}
	return names
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
