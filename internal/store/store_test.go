package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/username/planning-board/internal/planning"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return NewStore(filepath.Join(t.TempDir(), "planning.json"), logger)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items from missing file, want 0", len(items))
	}
}

func TestStore_ReplaceThenLoad(t *testing.T) {
	s := newTestStore(t)

	items := []planning.ScheduledItem{
		{
			Application: "PAY",
			Environment: planning.EnvProd,
			Category:    planning.CategoryDeployment,
			StartDate:   date(2026, 3, 10),
			EndDate:     date(2026, 3, 12),
			StartTime:   "21:00",
			Note:        "release 26.3",
		},
		{
			Application: "HR",
			Environment: planning.EnvAcceptance,
			Category:    planning.CategoryTest,
			StartDate:   date(2026, 3, 11),
			EndDate:     date(2026, 3, 11),
			Project:     "ALPHA",
		},
	}

	if err := s.Replace(items); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d items, want 2", len(loaded))
	}
	for i := range items {
		if loaded[i] != items[i] {
			t.Errorf("item %d = %+v, want %+v", i, loaded[i], items[i])
		}
	}
}

func TestStore_ReplaceIsWholeCollection(t *testing.T) {
	s := newTestStore(t)

	first := []planning.ScheduledItem{
		{Application: "PAY", Environment: planning.EnvProd, Category: planning.CategoryDeployment,
			StartDate: date(2026, 3, 10), EndDate: date(2026, 3, 12)},
		{Application: "HR", Environment: planning.EnvProd, Category: planning.CategoryIncident,
			StartDate: date(2026, 3, 11), EndDate: date(2026, 3, 11)},
	}
	if err := s.Replace(first); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	// Omission from the next snapshot deletes the item
	second := first[:1]
	if err := s.Replace(second); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 1 || loaded[0].Application != "PAY" {
		t.Errorf("snapshot after omission = %+v, want only PAY item", loaded)
	}
}

func TestStore_ReplaceRejectsInvalidInterval(t *testing.T) {
	s := newTestStore(t)

	bad := []planning.ScheduledItem{
		{Application: "PAY", Environment: planning.EnvProd, Category: planning.CategoryDeployment,
			StartDate: date(2026, 3, 12), EndDate: date(2026, 3, 10)},
	}

	err := s.Replace(bad)
	if err == nil {
		t.Fatal("Replace() accepted inverted interval")
	}
	if !strings.Contains(err.Error(), "before start date") {
		t.Errorf("error %q does not name the invalid interval", err)
	}
}

func TestStore_DatesStoredAsISOStrings(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := filepath.Join(t.TempDir(), "planning.json")
	s := NewStore(path, logger)

	items := []planning.ScheduledItem{
		{Application: "PAY", Environment: planning.EnvProd, Category: planning.CategoryFreeze,
			StartDate: date(2026, 12, 20), EndDate: date(2027, 1, 5)},
	}
	if err := s.Replace(items); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	for _, want := range []string{`"2026-12-20"`, `"2027-01-05"`, `"FREEZE"`, `"PROD"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("store file missing %s", want)
		}
	}
}

func TestStore_LoadRejectsMalformedDate(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := filepath.Join(t.TempDir(), "planning.json")
	content := `{"items":[{"application":"PAY","environment":"PROD","category":"DEPLOYMENT","startDate":"tomorrow","endDate":"2026-03-12"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := NewStore(path, logger)
	if _, err := s.Load(); err == nil {
		t.Error("Load() accepted malformed date")
	}
}

func TestStore_LoadKeepsUnknownEnumValues(t *testing.T) {
	// Unknown categories and environments round-trip; nothing silently
	// disappears, they just render in the fallback bucket.
	logger, _ := zap.NewDevelopment()
	path := filepath.Join(t.TempDir(), "planning.json")
	content := `{"items":[{"application":"PAY","environment":"SANDBOX","category":"MIGRATION","startDate":"2026-03-10","endDate":"2026-03-12"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := NewStore(path, logger)
	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Category.Known() {
		t.Error("free-text category reported as known")
	}
	if items[0].Environment.Known() {
		t.Error("free-text environment reported as known")
	}
}
