package utils

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
)

// Clock reports the current time in the diary's time zone. "Today" for
// streaks, weekly activity and default dates is the wall-clock date of Now.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock returns a Clock for the IANA zone name. An empty name selects the
// process local zone.
func NewClock(zone string) (*Clock, error) {
	loc := time.Local
	if zone != "" {
		var err error
		loc, err = time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("error loading time zone %q: %w", zone, err)
		}
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// FixedClock returns a Clock that always reports t. Used in tests.
func FixedClock(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current time in the clock's zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current calendar date as YYYY-MM-DD.
func (c *Clock) Today() string {
	return models.FormatDate(c.Now())
}

// MonthRange returns the first and last dates of a YYYY-MM month.
func MonthRange(month string) (string, string, error) {
	start, err := time.Parse(models.MonthLayout, month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	end := start.AddDate(0, 1, -1)
	return models.FormatDate(start), models.FormatDate(end), nil
}

// AdjacentDates returns the days before and after date.
func AdjacentDates(date string) (prev, next string, err error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return "", "", err
	}
	return models.FormatDate(day.AddDate(0, 0, -1)), models.FormatDate(day.AddDate(0, 0, 1)), nil
}
