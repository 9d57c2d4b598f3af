package calendar

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO day format used for record dates.
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO day string into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func IsSameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}

func IsToday(t time.Time) bool {
	return IsSameDay(t, time.Now().UTC())
}

func MonthName(t time.Time) string {
	return t.Month().String()
}

// WeekNumber returns the week of the year counting partial first weeks,
// ceil((days since Jan 1 + weekday of Jan 1 + 1) / 7).
func WeekNumber(t time.Time) int {
	t = Day(t)
	jan1 := Date(t.Year(), time.January, 1)
	pastDays := t.Sub(jan1).Hours() / 24
	return int(math.Ceil((pastDays + float64(jan1.Weekday()) + 1) / 7))
}

func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// FirstWeekdayOfMonth returns the weekday of the 1st, Sunday = 0.
func FirstWeekdayOfMonth(year int, month time.Month) time.Weekday {
	return Date(year, month, 1).Weekday()
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMonths shifts by whole months; overflowing days roll into the next
// month the same way time.AddDate normalizes them.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// StartOfWeek returns the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	t = Day(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns the Saturday on or after t.
func EndOfWeek(t time.Time) time.Time {
	t = Day(t)
	return t.AddDate(0, 0, 6-int(t.Weekday()))
}

func StartOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}

func EndOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month()+1, 0)
}

// DaysBetween returns ceil((end - start) in days).
func DaysBetween(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
