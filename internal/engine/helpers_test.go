package engine

import (
	"testing"
	"time"
)

// uniform returns a check-in with every dimension rated r.
func uniform(date string, r int) DailyCheckIn {
	c := DailyCheckIn{Date: date}
	for _, d := range dimensions {
		c.SetRating(d.Key, r)
	}
	return c
}

// noon returns midday UTC on date.
func noon(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := ParseDate(date)
	if err != nil {
		t.Fatalf("parse %s: %v", date, err)
	}
	return d.Add(12 * time.Hour)
}
