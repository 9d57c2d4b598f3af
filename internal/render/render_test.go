package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
	"MarketCalendar/internal/theme"
)

func march() model.View {
	data := []model.FinancialData{
		{Date: "2024-03-01", OpenPrice: 50000, ClosePrice: 51000, HighPrice: 52000, LowPrice: 49000, Volume: 150_000_000, Volatility: 4.25, Liquidity: 0.8, Performance: 2},
		{Date: "2024-03-02", OpenPrice: 51000, ClosePrice: 50500, HighPrice: 51500, LowPrice: 50000, Volume: 120_000_000, Volatility: 9.5, Liquidity: 0.4, Performance: -0.98},
	}
	today := calendar.Date(2024, time.March, 15)
	selected := calendar.Date(2024, time.March, 2)
	return model.View{
		CurrentDate:  today,
		SelectedDate: &selected,
		Timeframe:    model.TimeframeDaily,
		Metric:       model.MetricVolatility,
		Theme:        theme.Get(theme.DefaultID),
		Data:         data,
		Calendar:     calendar.BuildMonth(2024, time.March, data, selected, today),
	}
}

func TestCalendar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Calendar(&buf, march(), Options{}))
	out := buf.String()

	assert.Contains(t, out, "March 2024 · daily · volatility")
	for _, d := range calendar.Weekdays {
		assert.Contains(t, strings.ToUpper(out), strings.ToUpper(d))
	}
	assert.Contains(t, out, "4.25%")
	assert.Contains(t, out, "[2]")
	assert.Contains(t, out, "15*")
	// selected day detail card
	assert.Contains(t, out, "2024-03-02")
	assert.Contains(t, out, "$50,500")
	assert.NotContains(t, out, "\x1b[38;2")
}

func TestCalendar_Color(t *testing.T) {
	snap := march()
	var buf bytes.Buffer
	require.NoError(t, Calendar(&buf, snap, Options{Color: true, Theme: snap.Theme}))
	assert.Contains(t, buf.String(), "\x1b[38;2;239;68;68m9.50%")
}

func TestCalendar_PerformanceMetric(t *testing.T) {
	snap := march()
	snap.Metric = model.MetricPerformance
	var buf bytes.Buffer
	require.NoError(t, Calendar(&buf, snap, Options{}))
	assert.Contains(t, buf.String(), "+2.00%")
	assert.Contains(t, buf.String(), "-0.98%")
}

func TestCalendar_Empty(t *testing.T) {
	require.Error(t, Calendar(&bytes.Buffer{}, model.View{}, Options{}))
}

func TestMetrics(t *testing.T) {
	latest := model.FinancialData{Date: "2024-03-02", ClosePrice: 50500, Performance: -0.98}
	s := model.Summary{Latest: &latest, Records: 2, AvgVolatility: 6.875, TotalVolume: 270_000_000, High: 52000, Low: 49000, RSI14: 50, SMA20: 50500}

	var buf bytes.Buffer
	require.NoError(t, Metrics(&buf, s, Options{}))
	out := buf.String()
	assert.Contains(t, out, "$49,000 - $52,000")
	assert.Contains(t, out, "270 M")
	assert.Contains(t, out, "6.88%")

	buf.Reset()
	require.NoError(t, Metrics(&buf, model.Summary{}, Options{}))
	assert.Contains(t, buf.String(), "No data")
}

func TestData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Data(&buf, march().Data, Options{}))
	out := buf.String()
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "150 M")
	assert.Contains(t, out, "+2.00%")
}

func TestAlerts(t *testing.T) {
	rules := []model.Alert{
		{ID: "1", Type: model.AlertVolatility, Condition: model.ConditionAbove, Threshold: 8, IsActive: true, Message: "High volatility alert (>8%)"},
		{ID: "3", Type: model.AlertVolume, Condition: model.ConditionAbove, Threshold: 200_000_000, IsActive: false, Message: "High volume alert (>200M)"},
	}
	triggered := []model.Alert{{ID: "1", TriggeredDates: []string{"2024-03-02"}}}

	var buf bytes.Buffer
	require.NoError(t, Alerts(&buf, rules, triggered, Options{}))
	out := buf.String()
	assert.Contains(t, out, "Alerts (1 triggered)")
	assert.Contains(t, out, "High volatility alert (>8%)")
	assert.Contains(t, out, "200 M")
	assert.Contains(t, out, "2024-03-02")
}

func TestPatterns(t *testing.T) {
	dates := make([]string, 15)
	for i := range dates {
		dates[i] = calendar.FormatDate(calendar.Date(2024, time.January, i+1))
	}
	patterns := []model.PatternMatch{{Type: model.PatternAnomaly, Dates: dates, Description: "15 extreme volatility events detected (>2σ from mean)", Confidence: 0.9}}

	var buf bytes.Buffer
	require.NoError(t, Patterns(&buf, patterns, Options{}))
	out := buf.String()
	assert.Contains(t, out, "90% high")
	assert.Contains(t, out, "(+3 more)")
	assert.NotContains(t, out, "2024-01-13")

	buf.Reset()
	require.NoError(t, Patterns(&buf, nil, Options{}))
	assert.Contains(t, buf.String(), "No significant patterns detected")
}

func TestPatternDates(t *testing.T) {
	assert.Equal(t, "a, b", patternDates([]string{"a", "b"}))
}

func TestComparison(t *testing.T) {
	results := []model.PeriodResult{
		{
			Period:  model.ComparisonPeriod{Name: "Current Month", StartDate: calendar.Date(2024, time.March, 1), EndDate: calendar.Date(2024, time.March, 31)},
			Metrics: &model.PeriodMetrics{AvgVolatility: 5, AvgPerformance: 1.5, TotalVolume: 1e9, AvgPrice: 50000, DataPoints: 31},
		},
		{Period: model.ComparisonPeriod{Name: "Previous Month", StartDate: calendar.Date(2024, time.February, 1), EndDate: calendar.Date(2024, time.February, 29)}},
	}
	var buf bytes.Buffer
	require.NoError(t, Comparison(&buf, results, Options{}))
	out := buf.String()
	assert.Contains(t, out, "2024-03-01 .. 2024-03-31")
	assert.Contains(t, out, "+1.50%")
	assert.Contains(t, out, "1 G")
	assert.Contains(t, out, "No data")
}

func TestThemes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Themes(&buf, theme.List(), "high-contrast", Options{}))
	out := buf.String()
	assert.Contains(t, out, "Default Dark")
	assert.Contains(t, out, "colorblind-friendly")
	assert.Contains(t, out, "#00FFFF")
}

func TestChart(t *testing.T) {
	tail := []model.FinancialData{
		{Date: "2024-03-01", Volatility: 5, Liquidity: 0.9},
		{Date: "2024-03-02", Volatility: 12, Liquidity: 0.35},
	}
	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, tail, Options{}))
	out := buf.String()
	assert.Contains(t, out, "2-Day Volatility & Liquidity")
	assert.Contains(t, out, "5.00%")
	assert.Contains(t, out, "90%")
	assert.Contains(t, out, "35%")
	assert.Contains(t, out, strings.Repeat("█", 10))
	assert.Contains(t, out, strings.Repeat("█", 20))

	buf.Reset()
	require.NoError(t, Chart(&buf, nil, Options{}))
	assert.Contains(t, buf.String(), "No data")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(-1))
	assert.Equal(t, strings.Repeat("█", 10), bar(0.5))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(3))
}
