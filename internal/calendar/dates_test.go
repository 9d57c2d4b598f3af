package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatAndParseDate(t *testing.T) {
	d := Date(2024, time.January, 15)
	require.Equal(t, "2024-01-15", FormatDate(d))

	parsed, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	require.True(t, parsed.Equal(d))

	_, err = ParseDate("15/01/2024")
	require.Error(t, err)
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2024, time.January, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.January, 15, 23, 0, 0, 0, time.UTC)
	require.True(t, IsSameDay(a, b))
	require.False(t, IsSameDay(a, Date(2024, time.January, 16)))
}

func TestMonthName(t *testing.T) {
	require.Equal(t, "January", MonthName(Date(2024, time.January, 15)))
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DaysInMonth(tt.year, tt.month), "%d-%s", tt.year, tt.month)
	}
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	require.Equal(t, time.Monday, FirstWeekdayOfMonth(2024, time.January))
	require.Equal(t, time.Sunday, FirstWeekdayOfMonth(2023, time.October))
}

func TestAddDaysAndMonths(t *testing.T) {
	d := Date(2024, time.January, 15)
	require.Equal(t, "2024-01-20", FormatDate(AddDays(d, 5)))
	require.Equal(t, "2023-12-31", FormatDate(AddDays(d, -15)))
	require.Equal(t, time.March, AddMonths(d, 2).Month())
	require.Equal(t, "2023-07-15", FormatDate(AddMonths(d, -6)))
}

func TestWeekNumber(t *testing.T) {
	// 2024-01-01 is a Monday.
	require.Equal(t, 1, WeekNumber(Date(2024, time.January, 1)))
	require.Equal(t, 1, WeekNumber(Date(2024, time.January, 5)))
	require.Equal(t, 1, WeekNumber(Date(2024, time.January, 6)))
	require.Equal(t, 2, WeekNumber(Date(2024, time.January, 7)))
}

func TestWeekBounds(t *testing.T) {
	wed := Date(2024, time.January, 17)
	require.Equal(t, "2024-01-14", FormatDate(StartOfWeek(wed)))
	require.Equal(t, "2024-01-20", FormatDate(EndOfWeek(wed)))
}

func TestMonthBounds(t *testing.T) {
	d := Date(2024, time.February, 10)
	require.Equal(t, "2024-02-01", FormatDate(StartOfMonth(d)))
	require.Equal(t, "2024-02-29", FormatDate(EndOfMonth(d)))
}

func TestDaysBetween(t *testing.T) {
	center := Date(2024, time.March, 15)
	require.Equal(t, 366, DaysBetween(AddMonths(center, -6), AddMonths(center, 6)))
}
