package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/calendario/internal/view"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		year   int
		month  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the month grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			first, last := a.cfg.FirstYear, a.cfg.LastYear
			if year != 0 {
				first, last = year, year
			}
			grid, err := view.BuildGrid(first, last, a.cfg.DisplayLocale())
			if err != nil {
				return err
			}

			if month != 0 {
				if err := filterMonth(grid, month); err != nil {
					return err
				}
			}

			return WriteGrid(cmd.OutOrStdout(), grid, f)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Only this year (default: configured range)")
	cmd.Flags().IntVar(&month, "month", 0, "Only this month, 1-12")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

func filterMonth(g *view.Grid, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month: %d (must be 1-12)", month)
	}
	for i := range g.Years {
		g.Years[i].Months = g.Years[i].Months[month-1 : month]
	}
	return nil
}

func parseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if f != FormatText && f != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return f, nil
}
