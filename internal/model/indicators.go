package model

import "time"

// Summary holds the metrics panel figures for the visible series.
type Summary struct {
	Latest        *FinancialData  `json:"latest,omitempty"`
	Records       int             `json:"records"`
	AvgVolatility float64         `json:"avgVolatility"`
	TotalVolume   float64         `json:"totalVolume"`
	High          float64         `json:"high"`
	Low           float64         `json:"low"`
	RSI14         float64         `json:"rsi14"`
	SMA20         float64         `json:"sma20"`
	Chart         []FinancialData `json:"chart"`
}

// ComparisonPeriod is a named inclusive date range.
type ComparisonPeriod struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Color     string    `json:"color"`
}

// PeriodMetrics aggregates the records inside a comparison period.
type PeriodMetrics struct {
	AvgVolatility  float64 `json:"avgVolatility"`
	AvgPerformance float64 `json:"avgPerformance"`
	TotalVolume    float64 `json:"totalVolume"`
	AvgPrice       float64 `json:"avgPrice"`
	DataPoints     int     `json:"dataPoints"`
}

// PeriodResult pairs a period with its metrics; Metrics is nil when the
// period holds no records.
type PeriodResult struct {
	Period  ComparisonPeriod `json:"period"`
	Metrics *PeriodMetrics   `json:"metrics"`
}

// CalendarCell is one slot of the 6x7 month grid.
type CalendarCell struct {
	FinancialData
	Day              time.Time `json:"day"`
	DayOfMonth       int       `json:"dayOfMonth"`
	IsToday          bool      `json:"isToday"`
	IsSelected       bool      `json:"isSelected"`
	IsInCurrentMonth bool      `json:"isInCurrentMonth"`
	HasData          bool      `json:"hasData"`
}
