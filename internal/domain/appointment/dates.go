package appointment

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseError reports an input that is not a recognised date or clock value.
type ParseError struct {
	Kind  string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
}

var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"02/01/2006",
}

// ParseDate turns any accepted date spelling into a calendar day at UTC midnight.
// Accepted: YYYY-MM-DD, ISO date-times (the time part is dropped) and DD/MM/YYYY.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ParseError{Kind: "date", Input: s}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}

	return time.Time{}, &ParseError{Kind: "date", Input: s}
}

// ParseClock accepts HH:MM or HH:MM:SS and returns the HH:MM form.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{ClockLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ClockLayout), nil
		}
	}

	return "", &ParseError{Kind: "time", Input: s}
}

// DayOf drops the clock part of t, keeping its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// minutesOf converts an HH:MM clock into minutes since midnight.
func minutesOf(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, &ParseError{Kind: "time", Input: clock}
	}
	return t.Hour()*60 + t.Minute(), nil
}

func clockOf(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
