package dateutil

import (
	"testing"
	"time"
)

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Monday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), false},
		{"Friday", time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), false},
		{"Saturday", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), true},
		{"Sunday", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekend(tt.date); got != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"January", 2026, time.January, 31},
		{"February non-leap", 2026, time.February, 28},
		{"February leap", 2024, time.February, 29},
		{"February century non-leap", 1900, time.February, 28},
		{"February 400-year leap", 2000, time.February, 29},
		{"April", 2026, time.April, 30},
		{"December", 2026, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"ISO", "2026-03-11", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), false},
		{"French form input", "11/03/2026", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), false},
		{"Empty", "", time.Time{}, true},
		{"Garbage", "not-a-date", time.Time{}, true},
		{"US order rejected", "03/25/2026", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMidnightUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2026, 3, 11, 18, 45, 12, 0, loc)
	got := MidnightUTC(in)
	want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MidnightUTC(%v) = %v, want %v", in, got, want)
	}
}

func TestIsSameDay(t *testing.T) {
	d1 := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 11, 23, 30, 0, 0, time.UTC)
	d3 := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	if !IsSameDay(d1, d2) {
		t.Error("IsSameDay(same day, different hours) = false, want true")
	}
	if IsSameDay(d1, d3) {
		t.Error("IsSameDay(consecutive days) = true, want false")
	}
}
