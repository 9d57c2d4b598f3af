package calendar

import (
	"time"

	"MarketCalendar/internal/model"
)

// GridCells is the fixed size of a month view: 6 rows of 7 days.
const GridCells = 42

// Weekdays are the grid column headers, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BuildMonth lays out the month containing (year, month) as 42 cells,
// padded with the tail of the previous month and the head of the next one.
// Cells are joined with records of the same date. selected may be zero.
func BuildMonth(year int, month time.Month, data []model.FinancialData, selected, today time.Time) []model.CalendarCell {
	byDate := make(map[string]model.FinancialData, len(data))
	for _, d := range data {
		byDate[d.Date] = d
	}

	first := Date(year, month, 1)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]model.CalendarCell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		day := start.AddDate(0, 0, i)
		key := FormatDate(day)
		rec, ok := byDate[key]
		if !ok {
			rec = model.FinancialData{Date: key}
		}
		cells = append(cells, model.CalendarCell{
			FinancialData:    rec,
			Day:              day,
			DayOfMonth:       day.Day(),
			IsToday:          IsSameDay(day, today),
			IsSelected:       !selected.IsZero() && IsSameDay(day, selected),
			IsInCurrentMonth: day.Month() == month,
			HasData:          ok,
		})
	}
	return cells
}

// Key is a keyboard navigation key of the grid.
type Key string

const (
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
)

// Navigate moves a selection the way the arrow keys do on the grid.
// Unknown keys leave the date unchanged.
func Navigate(t time.Time, k Key) time.Time {
	switch k {
	case KeyLeft:
		return AddDays(t, -1)
	case KeyRight:
		return AddDays(t, 1)
	case KeyUp:
		return AddDays(t, -7)
	case KeyDown:
		return AddDays(t, 7)
	}
	return t
}
