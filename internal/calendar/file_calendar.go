package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileCalendar implements HolidaySource using a local text file, for
// company closure days the national calendar does not carry.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[int]map[string]string // year -> ISO date -> name
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[int]map[string]string),
	}
}

// Load loads closure days from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD name
		// Example: 2026-05-15 Fermeture annuelle
		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		name := strings.TrimSpace(parts[1])
		if name == "" {
			fc.logger.Warn("Missing holiday name", zap.String("line", line))
			continue
		}

		year := date.Year()
		if fc.data[year] == nil {
			fc.data[year] = make(map[string]string)
		}
		fc.data[year][parts[0]] = name
		count++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.logger.Info("Closure calendar loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", count))

	return nil
}

// Holidays returns the loaded closure days for the given year.
// A year without entries yields an empty table, not an error.
func (fc *FileCalendar) Holidays(year int) (map[string]string, error) {
	holidays, ok := fc.data[year]
	if !ok {
		return map[string]string{}, nil
	}
	return holidays, nil
}
