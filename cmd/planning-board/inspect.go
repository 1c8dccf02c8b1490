package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/username/planning-board/internal/config"
	"github.com/username/planning-board/internal/planning"
	"github.com/username/planning-board/pkg/dateutil"
)

func inspectCmd() *cobra.Command {
	var (
		app          string
		dateFlag     string
		envFlag      string
		project      string
		unscopedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show every scheduled item covering one (application, date) cell",
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

			date, err := dateutil.ParseDate(dateFlag)
			if err != nil {
				return err
			}

			scope, err := scopeFromFlags(project, unscopedOnly)
			if err != nil {
				return err
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
			matches := resolver.Lookup(items, app, date, env, scope)

			class, err := classifier.Classify(date)
			if err != nil {
				return err
			}

			fmt.Printf("%s — %s — %s\n", app, dateutil.FormatISO(date), env)
			if class.IsWeekend {
				fmt.Println("  weekend")
			}
			if class.IsHoliday() {
				fmt.Printf("  holiday: %s\n", class.HolidayName)
			}

			if len(matches) == 0 {
				fmt.Println("  no scheduled items")
				return nil
			}

			for i, item := range matches {
				start, end := item.Window()
				fmt.Printf("  %d. [%s] %s .. %s (%s-%s)",
					i+1, item.Category,
					dateutil.FormatISO(item.StartDate), dateutil.FormatISO(item.EndDate),
					start, end)
				if item.Project != "" {
					fmt.Printf(" project=%s", item.Project)
				}
				if item.Note != "" {
					fmt.Printf(" — %s", item.Note)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&app, "app", "a", "", "Application (required)")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Date (YYYY-MM-DD, required)")
	cmd.Flags().StringVarP(&envFlag, "env", "e", "", "Environment")
	cmd.Flags().StringVar(&project, "project", "", "Project scope (TEST/ACCEPTANCE only)")
	cmd.Flags().BoolVar(&unscopedOnly, "unscoped-only", false, "Show only items without a project")
	cmd.MarkFlagRequired("app")
	cmd.MarkFlagRequired("date")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the non-working holidays for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if year == 0 {
				year = dateutil.Today().Year()
			}

			source, err := buildHolidaySource(cfg)
			if err != nil {
				return err
			}

			holidays, err := source.Holidays(year)
			if err != nil {
				return err
			}

			dates := make([]string, 0, len(holidays))
			for date := range holidays {
				dates = append(dates, date)
			}
			sort.Strings(dates)

			fmt.Printf("Holidays %d:\n", year)
			for _, date := range dates {
				fmt.Printf("  %s  %s\n", date, holidays[date])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")

	return cmd
}
