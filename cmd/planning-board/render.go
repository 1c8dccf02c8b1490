package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/planning-board/internal/config"
	"github.com/username/planning-board/internal/planning"
	"github.com/username/planning-board/pkg/dateutil"
	"go.uber.org/zap"
)

// Day-type codes shown in cells without a scheduled item.
const (
	cellWeekend = "WE"
	cellHoliday = "JF" // jour férié
)

func renderCmd() *cobra.Command {
	var (
		envFlag      string
		year         int
		month        int
		startFlag    string
		days         int
		project      string
		unscopedOnly bool
		todayFlag    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the planning grid for one environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if envFlag == "" {
				envFlag = cfg.Planning.DefaultEnvironment
			}
			env, err := planning.ParseEnvironment(envFlag)
			if err != nil {
				return err
			}

			scope, err := scopeFromFlags(project, unscopedOnly)
			if err != nil {
				return err
			}

			axis, err := buildAxis(year, month, startFlag, days)
			if err != nil {
				return err
			}

			today := dateutil.Today()
			if todayFlag != "" {
				if today, err = dateutil.ParseDate(todayFlag); err != nil {
					return err
				}
			}

			items, err := openStore(cfg).Load()
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			classifier, err := buildClassifier(cfg)
			if err != nil {
				return err
			}

			resolver := planning.NewResolver(classifier, logger)
			rows, err := resolver.Grid(items, collectApplications(cfg, items), axis, env, scope, today)
			if err != nil {
				return err
			}

			logger.Info("Rendering grid",
				zap.String("environment", string(env)),
				zap.Int("applications", len(rows)),
				zap.Int("days", len(axis)))

			writeGrid(os.Stdout, rows, axis, env, scope)
			return nil
		},
	}

	cmd.Flags().StringVarP(&envFlag, "env", "e", "", "Environment (PROD, PRE-PROD, TEST/ACCEPTANCE)")
	cmd.Flags().IntVar(&year, "year", 0, "Year for month mode")
	cmd.Flags().IntVar(&month, "month", 0, "Month (1-12) for month mode")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start date (YYYY-MM-DD) for window mode")
	cmd.Flags().IntVar(&days, "days", 31, "Day count for window mode")
	cmd.Flags().StringVar(&project, "project", "", "Project scope (TEST/ACCEPTANCE only)")
	cmd.Flags().BoolVar(&unscopedOnly, "unscoped-only", false, "Show only items without a project (TEST/ACCEPTANCE only)")
	cmd.Flags().StringVar(&todayFlag, "today", "", "Evaluation date treated as today (default: wall clock)")

	return cmd
}

// buildAxis picks month mode when --year/--month are set, window mode
// when --start is set, and defaults to the current month.
func buildAxis(year, month int, start string, days int) ([]time.Time, error) {
	if start != "" {
		if year != 0 || month != 0 {
			return nil, fmt.Errorf("--start and --year/--month are mutually exclusive")
		}
		startDate, err := dateutil.ParseDate(start)
		if err != nil {
			return nil, err
		}
		return planning.WindowAxis(startDate, days)
	}

	if year == 0 && month == 0 {
		now := dateutil.Today()
		return planning.MonthAxis(now.Year(), now.Month())
	}
	return planning.MonthAxis(year, time.Month(month))
}

// writeGrid prints one row per application, one column per axis day.
// A cell shows the first match's bucket code, with +n when more items
// overlap the day; empty weekend and holiday cells show their day-type
// code. The today column is starred in the header.
func writeGrid(w io.Writer, rows []planning.Row, axis []time.Time, env planning.Environment, scope planning.ProjectScope) {
	fmt.Fprintf(w, "Environment: %s%s\n\n", env, scopeLabel(scope))

	appWidth := len("APPLICATION")
	for _, row := range rows {
		if len(row.Application) > appWidth {
			appWidth = len(row.Application)
		}
	}

	fmt.Fprintf(w, "%-*s", appWidth, "APPLICATION")
	for _, day := range axis {
		fmt.Fprintf(w, "|%6s", day.Format("02/01"))
	}
	fmt.Fprintln(w)

	if len(rows) == 0 {
		fmt.Fprintln(w, "(no applications)")
		return
	}

	for _, row := range rows {
		fmt.Fprintf(w, "%-*s", appWidth, row.Application)
		for _, cell := range row.Cells {
			fmt.Fprintf(w, "|%6s", cellText(cell))
		}
		fmt.Fprintln(w)
	}
}

func cellText(cell planning.CellDescriptor) string {
	text := ""
	switch {
	case len(cell.Matches) == 1:
		text = cell.Matches[0].Category.Bucket().Code
	case len(cell.Matches) > 1:
		text = fmt.Sprintf("%s+%d", cell.Matches[0].Category.Bucket().Code, len(cell.Matches)-1)
	case cell.HolidayName != "":
		text = cellHoliday
	case cell.IsWeekend:
		text = cellWeekend
	}
	if cell.IsToday {
		text = "*" + text
	}
	return text
}

func scopeLabel(scope planning.ProjectScope) string {
	switch scope.Kind {
	case planning.ScopeUnscopedOnly:
		return " (unscoped items only)"
	case planning.ScopeProject:
		return fmt.Sprintf(" (project %s)", scope.Project)
	}
	return ""
}
