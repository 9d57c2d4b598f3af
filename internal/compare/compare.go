package compare

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"MarketCalendar/internal/calculator"
	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
)

var ErrInvalidPeriod = errors.New("invalid comparison period")

// DefaultPeriods returns the current and previous calendar month of current.
func DefaultPeriods(current time.Time) []model.ComparisonPeriod {
	prev := calendar.AddMonths(calendar.StartOfMonth(current), -1)
	return []model.ComparisonPeriod{
		{ID: "1", Name: "Current Month", StartDate: calendar.StartOfMonth(current), EndDate: calendar.EndOfMonth(current), Color: "#3B82F6"},
		{ID: "2", Name: "Previous Month", StartDate: prev, EndDate: calendar.EndOfMonth(prev), Color: "#10B981"},
	}
}

// NewPeriod validates and builds a period with a fresh ID. The colour
// defaults to amber.
func NewPeriod(name string, start, end time.Time, color string) (model.ComparisonPeriod, error) {
	if strings.TrimSpace(name) == "" {
		return model.ComparisonPeriod{}, fmt.Errorf("%w: name is required", ErrInvalidPeriod)
	}
	if end.Before(start) {
		return model.ComparisonPeriod{}, fmt.Errorf("%w: end date before start date", ErrInvalidPeriod)
	}
	if color == "" {
		color = "#F59E0B"
	}
	return model.ComparisonPeriod{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: calendar.Day(start),
		EndDate:   calendar.Day(end),
		Color:     color,
	}, nil
}

// Filter returns the records dated within the period, bounds inclusive.
func Filter(data []model.FinancialData, p model.ComparisonPeriod) []model.FinancialData {
	from := calendar.FormatDate(p.StartDate)
	to := calendar.FormatDate(p.EndDate)
	var out []model.FinancialData
	for _, d := range data {
		if d.Date >= from && d.Date <= to {
			out = append(out, d)
		}
	}
	return out
}

// Metrics aggregates a period's records; nil when there are none.
func Metrics(records []model.FinancialData) *model.PeriodMetrics {
	if len(records) == 0 {
		return nil
	}
	perf := make([]float64, len(records))
	volume := make([]float64, len(records))
	for i, d := range records {
		perf[i] = d.Performance
		volume[i] = d.Volume
	}
	return &model.PeriodMetrics{
		AvgVolatility:  calculator.Mean(model.Volatilities(records)),
		AvgPerformance: calculator.Mean(perf),
		TotalVolume:    calculator.Sum(volume),
		AvgPrice:       calculator.Mean(model.Closes(records)),
		DataPoints:     len(records),
	}
}

// Compare computes metrics for every period in order.
func Compare(data []model.FinancialData, periods []model.ComparisonPeriod) []model.PeriodResult {
	out := make([]model.PeriodResult, 0, len(periods))
	for _, p := range periods {
		out = append(out, model.PeriodResult{Period: p, Metrics: Metrics(Filter(data, p))})
	}
	return out
}
