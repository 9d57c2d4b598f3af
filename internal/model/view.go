package model

import "time"

// View is an immutable snapshot of the dashboard: everything a renderer,
// exporter or API response needs for one frame.
type View struct {
	GeneratedAt  time.Time       `json:"generatedAt"`
	CurrentDate  time.Time       `json:"currentDate"`
	SelectedDate *time.Time      `json:"selectedDate,omitempty"`
	Timeframe    Timeframe       `json:"timeframe"`
	Metric       MetricType      `json:"metric"`
	Theme        ColorTheme      `json:"theme"`
	Source       string          `json:"source"`
	Data         []FinancialData `json:"data"`
	Calendar     []CalendarCell  `json:"calendar"`
	Summary      Summary         `json:"summary"`
	Alerts       []Alert         `json:"alerts"`
	Triggered    []Alert         `json:"triggered"`
	Patterns     []PatternMatch  `json:"patterns"`
	Comparison   []PeriodResult  `json:"comparison"`
}

// Selected returns the calendar cell of the selected date, if any.
func (v View) Selected() (CalendarCell, bool) {
	if v.SelectedDate == nil {
		return CalendarCell{}, false
	}
	want := v.SelectedDate.Format("2006-01-02")
	for _, c := range v.Calendar {
		if c.Day.Format("2006-01-02") == want {
			return c, true
		}
	}
	return CalendarCell{}, false
}
