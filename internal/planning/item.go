package planning

import (
	"fmt"
	"time"

	"github.com/username/planning-board/pkg/dateutil"
)

// Environment represents a deployment tier
type Environment string

const (
	EnvProd       Environment = "PROD"
	EnvPreProd    Environment = "PRE-PROD"
	EnvAcceptance Environment = "TEST/ACCEPTANCE"
)

// Environments lists the known tiers in display order.
var Environments = []Environment{EnvProd, EnvPreProd, EnvAcceptance}

// ParseEnvironment resolves user input to a known environment.
// Common short forms are accepted.
func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "PROD", "prod":
		return EnvProd, nil
	case "PRE-PROD", "PREPROD", "preprod", "pre-prod":
		return EnvPreProd, nil
	case "TEST/ACCEPTANCE", "ACCEPTANCE", "TEST", "acceptance", "test":
		return EnvAcceptance, nil
	}
	return "", fmt.Errorf("unknown environment %q (expected PROD, PRE-PROD or TEST/ACCEPTANCE)", s)
}

// Known reports whether the environment is one of the fixed tiers.
func (e Environment) Known() bool {
	switch e {
	case EnvProd, EnvPreProd, EnvAcceptance:
		return true
	}
	return false
}

// Category represents the kind of scheduled change
type Category string

const (
	CategoryDeployment     Category = "DEPLOYMENT"
	CategoryIncident       Category = "INCIDENT"
	CategoryMaintenance    Category = "MAINTENANCE"
	CategoryTest           Category = "TEST"
	CategoryRegressionTest Category = "REGRESSION-TEST"
	CategoryFreeze         Category = "FREEZE"
)

// Known reports whether the category is part of the fixed enumeration.
// Unknown categories are kept as-is and render in the fallback bucket;
// they never fail classification.
func (c Category) Known() bool {
	switch c {
	case CategoryDeployment, CategoryIncident, CategoryMaintenance,
		CategoryTest, CategoryRegressionTest, CategoryFreeze:
		return true
	}
	return false
}

// Bucket is the display bucket a category renders as: short cell code
// plus the background/foreground color pair the grid uses.
type Bucket struct {
	Code       string
	Background string
	Foreground string
}

var bucketByCategory = map[Category]Bucket{
	CategoryDeployment:     {Code: "MEP", Background: "#0070C0", Foreground: "#FFFFFF"},
	CategoryIncident:       {Code: "INC", Background: "#FF0000", Foreground: "#FFFFFF"},
	CategoryMaintenance:    {Code: "MTN", Background: "#FFC000", Foreground: "#000000"},
	CategoryTest:           {Code: "TST", Background: "#00B050", Foreground: "#FFFFFF"},
	CategoryRegressionTest: {Code: "TNR", Background: "#00B0A0", Foreground: "#FFFFFF"},
	CategoryFreeze:         {Code: "GEL", Background: "#9600C8", Foreground: "#FFFFFF"},
}

// BucketOther is the fallback bucket for categories outside the
// fixed enumeration.
var BucketOther = Bucket{Code: "EVT", Background: "#808080", Foreground: "#FFFFFF"}

// Bucket returns the display bucket for the category, falling back to
// BucketOther for unknown values.
func (c Category) Bucket() Bucket {
	if bucket, ok := bucketByCategory[c]; ok {
		return bucket
	}
	return BucketOther
}

// Default advisory times applied when an item carries no explicit window.
const (
	DefaultStartTime = "00:00"
	DefaultEndTime   = "23:59"
)

// ScheduledItem is one planned or historical event tied to an
// application, environment, category and inclusive date range.
type ScheduledItem struct {
	Application string
	Environment Environment
	Category    Category
	StartDate   time.Time
	EndDate     time.Time
	StartTime   string // HH:MM, advisory only
	EndTime     string // HH:MM, advisory only
	Project     string // empty means not tied to a project
	Note        string
}

// Validate checks the item at the acceptance boundary. The engine
// itself stays total on invalid items (they match no date), but the
// store refuses to persist them.
func (i ScheduledItem) Validate() error {
	if i.Application == "" {
		return fmt.Errorf("application is required")
	}
	if i.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if i.EndDate.IsZero() {
		return fmt.Errorf("end date is required")
	}
	if i.EndDate.Before(i.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			dateutil.FormatISO(i.EndDate), dateutil.FormatISO(i.StartDate))
	}
	if err := validateTime("start time", i.StartTime); err != nil {
		return err
	}
	if err := validateTime("end time", i.EndTime); err != nil {
		return err
	}
	return nil
}

func validateTime(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("%s %q is not a valid HH:MM time", field, value)
	}
	return nil
}

// Covers reports whether the item's inclusive date range contains the
// given day. Times of day are advisory and never exclude a day. An
// inverted range covers nothing.
func (i ScheduledItem) Covers(date time.Time) bool {
	if i.EndDate.Before(i.StartDate) {
		return false
	}
	d := dateutil.MidnightUTC(date)
	start := dateutil.MidnightUTC(i.StartDate)
	end := dateutil.MidnightUTC(i.EndDate)
	return !d.Before(start) && !d.After(end)
}

// Window returns the advisory time-of-day window with defaults applied.
func (i ScheduledItem) Window() (start, end string) {
	start, end = i.StartTime, i.EndTime
	if start == "" {
		start = DefaultStartTime
	}
	if end == "" {
		end = DefaultEndTime
	}
	return start, end
}
