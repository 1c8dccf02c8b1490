package calendar

import (
	"fmt"
	"sync"
	"time"
)

// FranceCalendar implements HolidaySource for French public holidays.
// Tables are computed per year (fixed dates plus Easter-derived days)
// and cached.
type FranceCalendar struct {
	cache   map[int]map[string]string
	cacheMu sync.RWMutex
}

// NewFranceCalendar creates a new FranceCalendar instance
func NewFranceCalendar() *FranceCalendar {
	return &FranceCalendar{
		cache: make(map[int]map[string]string),
	}
}

// Holidays returns the French public holidays for the given year.
func (fc *FranceCalendar) Holidays(year int) (map[string]string, error) {
	if year <= 0 {
		return nil, fmt.Errorf("invalid year: %d", year)
	}

	fc.cacheMu.RLock()
	if cached, ok := fc.cache[year]; ok {
		fc.cacheMu.RUnlock()
		return cached, nil
	}
	fc.cacheMu.RUnlock()

	holidays := computeFrenchHolidays(year)

	fc.cacheMu.Lock()
	fc.cache[year] = holidays
	fc.cacheMu.Unlock()

	return holidays, nil
}

func computeFrenchHolidays(year int) map[string]string {
	holidays := make(map[string]string)

	// Fixed holidays
	holidays[isoDate(year, 1, 1)] = "Jour de l'An"
	holidays[isoDate(year, 5, 1)] = "Fête du Travail"
	holidays[isoDate(year, 5, 8)] = "Victoire 1945"
	holidays[isoDate(year, 7, 14)] = "Fête Nationale"
	holidays[isoDate(year, 8, 15)] = "Assomption"
	holidays[isoDate(year, 11, 1)] = "Toussaint"
	holidays[isoDate(year, 11, 11)] = "Armistice 1918"
	holidays[isoDate(year, 12, 25)] = "Noël"

	// Easter-based holidays (movable)
	easter := calculateEaster(year)

	holidays[isoDateFromTime(easter.AddDate(0, 0, 1))] = "Lundi de Pâques"
	holidays[isoDateFromTime(easter.AddDate(0, 0, 39))] = "Ascension"
	holidays[isoDateFromTime(easter.AddDate(0, 0, 50))] = "Lundi de Pentecôte"

	return holidays
}

// calculateEaster calculates Easter Sunday using the Meeus/Jones/Butcher algorithm
func calculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	// Noon avoids timezone edge cases when formatting to YYYY-MM-DD
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}

func isoDate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func isoDateFromTime(t time.Time) string {
	return t.Format("2006-01-02")
}
