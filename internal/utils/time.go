package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
	layoutHHMM     = "15:04"
)

var departureLayouts = []string{
	time.RFC3339,
	layoutDateTime,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// NowUTC returns current time in UTC.
var NowUTC = func() time.Time {
	return time.Now().UTC()
}

// TodayUTC returns the current UTC day as YYYY-MM-DD.
func TodayUTC() string {
	return NowUTC().Format(layoutDate)
}

// ParseDate parses a strict YYYY-MM-DD value.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.UTC)
}

// ParseDeparture accepts RFC 3339 or "YYYY-MM-DD HH:MM[:SS]" and returns UTC.
// Values without an offset are taken as UTC.
func ParseDeparture(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range departureLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatDate formats time to YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutDateTime)
}

// FormatHHMM formats the clock part of t as HH:MM in UTC.
func FormatHHMM(t time.Time) string {
	return t.UTC().Format(layoutHHMM)
}

// NormalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(layoutHHMM, s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return "", err
		}
	}
	return t.Format(layoutHHMM), nil
}
