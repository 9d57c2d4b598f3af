package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketCalendar/internal/model"
)

func closesSeries(closes ...float64) []model.FinancialData {
	out := make([]model.FinancialData, len(closes))
	for i, c := range closes {
		out[i] = model.FinancialData{ClosePrice: c, HighPrice: c + 1, LowPrice: c - 1, Volume: 10, Volatility: float64(i)}
	}
	return out
}

func TestCalculateSMA(t *testing.T) {
	sma, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, sma, 1e-9)

	_, err = CalculateSMA([]float64{1}, 2)
	assert.Error(t, err)
	_, err = CalculateSMA([]float64{1}, 0)
	assert.Error(t, err)
}

func TestCalculateRSI(t *testing.T) {
	rsi, err := CalculateRSI(closesSeries(1, 2, 3), 14)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rsi, "insufficient data defaults to 50")

	up := make([]float64, 20)
	for i := range up {
		up[i] = float64(100 + i)
	}
	rsi, err = CalculateRSI(closesSeries(up...), 14)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rsi)

	down := make([]float64, 20)
	for i := range down {
		down[i] = float64(100 - i)
	}
	rsi, err = CalculateRSI(closesSeries(down...), 14)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, rsi, 1e-9)

	_, err = CalculateRSI(nil, 0)
	assert.Error(t, err)
}

func TestCalculateRange(t *testing.T) {
	data := closesSeries(10, 30, 20, 5)
	h, l, err := CalculateRange(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 31.0, h)
	assert.Equal(t, 4.0, l)

	h, l, err = CalculateRange(data, 2)
	require.NoError(t, err)
	assert.Equal(t, 21.0, h)
	assert.Equal(t, 4.0, l)

	_, _, err = CalculateRange(nil, 0)
	assert.Error(t, err)
}

func TestStatsEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, PopulationStdDev(nil))
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 0.0, Max(nil))
	assert.Equal(t, 0.0, Min(nil))
}

func TestPopulationStdDev(t *testing.T) {
	assert.InDelta(t, 2.0, PopulationStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, model.Summary{}, Summarize(nil))

	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = float64(100 + i)
	}
	s := Summarize(closesSeries(closes...))
	require.NotNil(t, s.Latest)
	assert.Equal(t, 139.0, s.Latest.ClosePrice)
	assert.Equal(t, 40, s.Records)
	assert.Len(t, s.Chart, 30)
	assert.Equal(t, 110.0, s.Chart[0].ClosePrice)
	assert.Equal(t, 400.0, s.TotalVolume)
	assert.InDelta(t, 19.5, s.AvgVolatility, 1e-9)
	assert.Equal(t, 140.0, s.High)
	assert.Equal(t, 99.0, s.Low)
	assert.Equal(t, 100.0, s.RSI14)
	assert.InDelta(t, 129.5, s.SMA20, 1e-9)

	short := Summarize(closesSeries(1, 2))
	assert.Equal(t, 2.0, short.SMA20)
	assert.Equal(t, 50.0, short.RSI14)
}
