package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/username/planning-board/internal/calendar"
	"github.com/username/planning-board/internal/config"
	"github.com/username/planning-board/internal/planning"
	"github.com/username/planning-board/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planning-board",
		Short: "IT change planning calendar",
		Long:  "Displays, per application and environment, which days are covered by scheduled changes (deployments, incidents, maintenance, tests, freezes)",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(removeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildHolidaySource wires the national calendar plus the optional
// closure-day file into one holiday source.
func buildHolidaySource(cfg *config.Config) (calendar.HolidaySource, error) {
	national := calendar.NewFranceCalendar()

	if cfg.Calendar.ExtraHolidaysFile == "" {
		return national, nil
	}

	extra := calendar.NewFileCalendar(cfg.Calendar.ExtraHolidaysFile, logger)
	if err := extra.Load(); err != nil {
		return nil, fmt.Errorf("failed to load extra holidays: %w", err)
	}

	return calendar.NewCompositeCalendar(logger, national, extra), nil
}

func buildClassifier(cfg *config.Config) (*calendar.Classifier, error) {
	source, err := buildHolidaySource(cfg)
	if err != nil {
		return nil, err
	}
	return calendar.NewClassifier(source), nil
}

func openStore(cfg *config.Config) *store.Store {
	return store.NewStore(cfg.Planning.StoreFile, logger)
}

// collectApplications merges the configured application list with the
// applications present in the snapshot, deduplicated.
func collectApplications(cfg *config.Config, items []planning.ScheduledItem) []string {
	seen := make(map[string]bool)
	apps := []string{}

	for _, app := range cfg.Planning.Applications {
		if app != "" && !seen[app] {
			seen[app] = true
			apps = append(apps, app)
		}
	}
	for _, item := range items {
		if item.Application != "" && !seen[item.Application] {
			seen[item.Application] = true
			apps = append(apps, item.Application)
		}
	}

	sort.Strings(apps)
	return apps
}

// scopeFromFlags turns the --project/--unscoped-only flag pair into a
// project scope request.
func scopeFromFlags(project string, unscopedOnly bool) (planning.ProjectScope, error) {
	if unscopedOnly && project != "" {
		return planning.ProjectScope{}, fmt.Errorf("--project and --unscoped-only are mutually exclusive")
	}
	if unscopedOnly {
		return planning.UnscopedOnly(), nil
	}
	if project != "" {
		return planning.ForProject(project), nil
	}
	return planning.AllProjects(), nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
