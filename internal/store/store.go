package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/username/planning-board/internal/planning"
	"github.com/username/planning-board/pkg/dateutil"
	"go.uber.org/zap"
)

// itemRecord is the on-disk shape of one scheduled item. Dates travel
// as ISO YYYY-MM-DD strings at this boundary and are converted to date
// values before they reach the engine.
type itemRecord struct {
	Application string `json:"application"`
	Environment string `json:"environment"`
	Category    string `json:"category"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Project     string `json:"project,omitempty"`
	Note        string `json:"note,omitempty"`
}

type snapshot struct {
	Items []itemRecord `json:"items"`
}

// Store persists the scheduled item collection as a JSON file. Every
// save replaces the whole collection; there are no per-field updates,
// and deletion is omission from the next saved snapshot.
type Store struct {
	filePath string
	logger   *zap.Logger
}

// NewStore creates a new Store
func NewStore(filePath string, logger *zap.Logger) *Store {
	return &Store{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads the current snapshot. A missing file is an empty
// collection, not an error.
func (s *Store) Load() ([]planning.ScheduledItem, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}

	items := make([]planning.ScheduledItem, 0, len(snap.Items))
	for i, record := range snap.Items {
		item, err := toItem(record)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	s.logger.Info("Snapshot loaded",
		zap.String("file", s.filePath),
		zap.Int("items", len(items)))

	return items, nil
}

// Replace validates and persists the full collection, atomically
// replacing the previous snapshot.
func (s *Store) Replace(items []planning.ScheduledItem) error {
	snap := snapshot{Items: make([]itemRecord, 0, len(items))}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d (%s): %w", i, item.Application, err)
		}
		snap.Items = append(snap.Items, toRecord(item))
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	s.logger.Info("Snapshot replaced",
		zap.String("file", s.filePath),
		zap.Int("items", len(items)))

	return nil
}

func toItem(record itemRecord) (planning.ScheduledItem, error) {
	start, err := dateutil.ParseDate(record.StartDate)
	if err != nil {
		return planning.ScheduledItem{}, fmt.Errorf("start date: %w", err)
	}
	end, err := dateutil.ParseDate(record.EndDate)
	if err != nil {
		return planning.ScheduledItem{}, fmt.Errorf("end date: %w", err)
	}

	item := planning.ScheduledItem{
		Application: record.Application,
		Environment: planning.Environment(record.Environment),
		Category:    planning.Category(record.Category),
		StartDate:   start,
		EndDate:     end,
		StartTime:   record.StartTime,
		EndTime:     record.EndTime,
		Project:     record.Project,
		Note:        record.Note,
	}

	if err := item.Validate(); err != nil {
		return planning.ScheduledItem{}, err
	}
	return item, nil
}

func toRecord(item planning.ScheduledItem) itemRecord {
	return itemRecord{
		Application: item.Application,
		Environment: string(item.Environment),
		Category:    string(item.Category),
		StartDate:   dateutil.FormatISO(item.StartDate),
		EndDate:     dateutil.FormatISO(item.EndDate),
		StartTime:   item.StartTime,
		EndTime:     item.EndTime,
		Project:     item.Project,
		Note:        item.Note,
	}
}
