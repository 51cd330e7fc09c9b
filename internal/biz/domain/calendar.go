package domain

import (
	"fmt"
	"regexp"
	"time"
	// Bundle zone data so the job also runs in scratch containers without
	// a system tzdata package.
	_ "time/tzdata"
)

// ymdPattern matches an already-canonical YYYY-MM-DD date.
var ymdPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timestampLayouts are tried in order when a date is not already canonical.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Calendar formats dates in the fixed operating timezone. The clock is
// injectable for tests; Today is recomputed on every call.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a Calendar for the named IANA timezone.
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Calendar{loc: loc, now: time.Now}, nil
}

// NewCalendarAt creates a Calendar with a fixed clock, for tests.
func NewCalendarAt(timezone string, now func() time.Time) (*Calendar, error) {
	c, err := NewCalendar(timezone)
	if err != nil {
		return nil, err
	}
	c.now = now
	return c, nil
}

// CanonicalDate returns raw unchanged when it is already YYYY-MM-DD;
// otherwise it parses raw as a timestamp and reformats it in the calendar's
// timezone. The second return is false when the input is empty or carries no
// usable date.
func (c *Calendar) CanonicalDate(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if ymdPattern.MatchString(raw) {
		return raw, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(c.loc).Format("2006-01-02"), true
		}
	}
	return "", false
}

// Today returns the current date in the calendar's timezone.
func (c *Calendar) Today() string {
	return c.now().In(c.loc).Format("2006-01-02")
}
