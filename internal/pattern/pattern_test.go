package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
)

// series builds consecutive daily records from start with the given closes
// and a flat volatility of vol.
func series(start time.Time, vol float64, closes ...float64) []model.FinancialData {
	out := make([]model.FinancialData, len(closes))
	for i, c := range closes {
		out[i] = model.FinancialData{
			Date:       calendar.FormatDate(calendar.AddDays(start, i)),
			OpenPrice:  c,
			ClosePrice: c,
			Volatility: vol,
		}
	}
	return out
}

func flat(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func byType(patterns []model.PatternMatch, typ model.PatternType) []model.PatternMatch {
	var out []model.PatternMatch
	for _, p := range patterns {
		if p.Type == typ {
			out = append(out, p)
		}
	}
	return out
}

func TestDetect_EmptyInput(t *testing.T) {
	assert.Empty(t, Detect(nil))
}

func TestSeasonal_HighVolatilityMonths(t *testing.T) {
	jan := series(calendar.Date(2024, time.January, 1), 7, flat(31, 100)...)
	feb := series(calendar.Date(2024, time.February, 1), 3, flat(29, 100)...)
	mar := series(calendar.Date(2024, time.March, 1), 8, flat(31, 100)...)
	data := append(append(jan, feb...), mar...)

	got := NewDetector(DefaultConfig()).Seasonal(data)
	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, model.PatternSeasonal, p.Type)
	assert.Equal(t, 0.8, p.Confidence)
	assert.Equal(t, "High volatility season detected in January, March", p.Description)
	assert.Len(t, p.Dates, 62)
	assert.Equal(t, "2024-01-01", p.Dates[0])
	assert.Equal(t, "2024-03-31", p.Dates[61])
}

func TestSeasonal_ThresholdIsExclusive(t *testing.T) {
	data := series(calendar.Date(2024, time.January, 1), 6, flat(31, 100)...)
	assert.Empty(t, NewDetector(DefaultConfig()).Seasonal(data))
}

func TestSeasonal_GroupsAcrossYears(t *testing.T) {
	a := series(calendar.Date(2023, time.June, 1), 9, flat(3, 100)...)
	b := series(calendar.Date(2024, time.June, 1), 5, flat(3, 100)...)
	got := NewDetector(DefaultConfig()).Seasonal(append(a, b...))
	require.Len(t, got, 1)
	assert.Len(t, got[0].Dates, 6)
	assert.Equal(t, "High volatility season detected in June", got[0].Description)
}

func TestAnomalies_InjectedOutlier(t *testing.T) {
	data := series(calendar.Date(2024, time.January, 1), 4, flat(30, 100)...)
	for i := range data {
		if i%2 == 0 {
			data[i].Volatility = 4.2
		}
	}
	data[17].Volatility = 25

	got := NewDetector(DefaultConfig()).Anomalies(data)
	require.Len(t, got, 1)
	assert.Equal(t, model.PatternAnomaly, got[0].Type)
	assert.Equal(t, 0.9, got[0].Confidence)
	assert.Contains(t, got[0].Dates, data[17].Date)
	assert.Equal(t, "1 extreme volatility events detected (>2σ from mean)", got[0].Description)
}

func TestAnomalies_UniformSeries(t *testing.T) {
	data := series(calendar.Date(2024, time.January, 1), 5, flat(30, 100)...)
	assert.Empty(t, NewDetector(DefaultConfig()).Anomalies(data))
}

func TestTrends_MonotonicIncrease(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)*5
	}
	got := NewDetector(DefaultConfig()).Trends(series(calendar.Date(2024, time.January, 1), 3, closes...))
	require.NotEmpty(t, got)

	up := got[0]
	assert.Equal(t, model.PatternTrend, up.Type)
	assert.Contains(t, up.Description, "upward")
	assert.Greater(t, up.Confidence, 0.5)
	assert.LessOrEqual(t, up.Confidence, 0.9)
	assert.Equal(t, "2024-01-20", up.Dates[len(up.Dates)-1])
}

func TestTrends_DownThenFlat(t *testing.T) {
	var closes []float64
	for i := 0; i < 25; i++ {
		closes = append(closes, 1000-float64(i)*20)
	}
	closes = append(closes, flat(40, 500)...)

	got := NewDetector(DefaultConfig()).Trends(series(calendar.Date(2024, time.January, 1), 3, closes...))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Description, "downward")
	assert.Equal(t, 0.9, got[0].Confidence)
}

func TestTrends_ShortRunsIgnored(t *testing.T) {
	assert.Empty(t, NewDetector(DefaultConfig()).Trends(series(calendar.Date(2024, time.January, 1), 3, flat(9, 100)...)))
	assert.Empty(t, NewDetector(DefaultConfig()).Trends(series(calendar.Date(2024, time.January, 1), 3, flat(60, 100)...)))
}

func TestTrends_ConfidenceScalesWithRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrendWindow = 2
	d := NewDetector(cfg)

	// With windows of 2 the rising stretch yields a run shorter than 9.
	closes := []float64{100, 100, 110, 121, 133, 146, 161, 177, 177, 177, 177, 177, 177}
	got := d.Trends(series(calendar.Date(2024, time.January, 1), 3, closes...))
	require.Len(t, got, 1)
	assert.InDelta(t, float64(len(got[0].Dates))/10, got[0].Confidence, 1e-9)
}

func TestNewDetector_FillsDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), NewDetector(Config{}).Config())
}

func TestConfidenceBand(t *testing.T) {
	assert.Equal(t, "high", model.PatternMatch{Confidence: 0.9}.ConfidenceBand())
	assert.Equal(t, "medium", model.PatternMatch{Confidence: 0.6}.ConfidenceBand())
	assert.Equal(t, "low", model.PatternMatch{Confidence: 0.5}.ConfidenceBand())
}
