package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/planning-board/internal/config"
	"github.com/username/planning-board/internal/planning"
	"github.com/username/planning-board/pkg/dateutil"
	"go.uber.org/zap"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every scheduled item in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			items, err := openStore(cfg).Load()
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("no scheduled items")
				return nil
			}

			for i, item := range items {
				fmt.Printf("%3d. %-12s %-15s [%s] %s .. %s",
					i+1, item.Application, item.Environment, item.Category,
					dateutil.FormatISO(item.StartDate), dateutil.FormatISO(item.EndDate))
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
}

func addCmd() *cobra.Command {
	var (
		app       string
		envFlag   string
		category  string
		startFlag string
		endFlag   string
		startTime string
		endTime   string
		project   string
		note      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a scheduled item and save the collection",
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

			start, err := dateutil.ParseDate(startFlag)
			if err != nil {
				return fmt.Errorf("start date: %w", err)
			}
			end, err := dateutil.ParseDate(endFlag)
			if err != nil {
				return fmt.Errorf("end date: %w", err)
			}

			item := planning.ScheduledItem{
				Application: app,
				Environment: env,
				Category:    planning.Category(category),
				StartDate:   start,
				EndDate:     end,
				StartTime:   startTime,
				EndTime:     endTime,
				Project:     project,
				Note:        note,
			}
			if err := item.Validate(); err != nil {
				return err
			}
			if !item.Category.Known() {
				logger.Warn("Unknown category, will render in the fallback bucket",
					zap.String("category", category))
			}

			s := openStore(cfg)
			items, err := s.Load()
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			items = append(items, item)
			if err := s.Replace(items); err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}

			fmt.Printf("Added %s %s [%s] %s .. %s (%d items total)\n",
				item.Application, item.Environment, item.Category,
				dateutil.FormatISO(item.StartDate), dateutil.FormatISO(item.EndDate),
				len(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&app, "app", "a", "", "Application (required)")
	cmd.Flags().StringVarP(&envFlag, "env", "e", "", "Environment")
	cmd.Flags().StringVar(&category, "category", string(planning.CategoryDeployment), "Category")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&startTime, "start-time", "", "Advisory start time (HH:MM)")
	cmd.Flags().StringVar(&endTime, "end-time", "", "Advisory end time (HH:MM)")
	cmd.Flags().StringVar(&project, "project", "", "Project id")
	cmd.Flags().StringVar(&note, "note", "", "Free text note")
	cmd.MarkFlagRequired("app")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func removeCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove one scheduled item by its list position",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			s := openStore(cfg)
			items, err := s.Load()
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			if index < 1 || index > len(items) {
				return fmt.Errorf("invalid index %d (collection has %d items)", index, len(items))
			}

			removed := items[index-1]
			// Deletion is omission from the next saved snapshot
			kept := make([]planning.ScheduledItem, 0, len(items)-1)
			kept = append(kept, items[:index-1]...)
			kept = append(kept, items[index:]...)

			if err := s.Replace(kept); err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}

			fmt.Printf("Removed %s %s [%s] %s .. %s (%d items left)\n",
				removed.Application, removed.Environment, removed.Category,
				dateutil.FormatISO(removed.StartDate), dateutil.FormatISO(removed.EndDate),
				len(kept))
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Item position as shown by list (required)")
	cmd.MarkFlagRequired("index")

	return cmd
}
