package calculator

import (
	"fmt"
	"math"

	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
)

type bucketKey struct {
	year int
	slot int
}

// Aggregate rolls daily records into the requested timeframe. Daily input is
// returned unchanged. Weekly buckets are keyed by (year, ceil(day/7)) and
// monthly buckets by (year, month); buckets keep first-appearance order.
func Aggregate(data []model.FinancialData, tf model.Timeframe) ([]model.FinancialData, error) {
	var keyOf func(d model.FinancialData) (bucketKey, error)
	switch tf {
	case model.TimeframeDaily:
		return data, nil
	case model.TimeframeWeekly:
		keyOf = weekKey
	case model.TimeframeMonthly:
		keyOf = monthKey
	default:
		return nil, fmt.Errorf("unknown timeframe %q", tf)
	}

	var order []bucketKey
	buckets := make(map[bucketKey][]model.FinancialData)
	for _, d := range data {
		k, err := keyOf(d)
		if err != nil {
			return nil, err
		}
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], d)
	}

	out := make([]model.FinancialData, 0, len(order))
	for _, k := range order {
		out = append(out, rollUp(buckets[k]))
	}
	return out, nil
}

func weekKey(d model.FinancialData) (bucketKey, error) {
	t, err := calendar.ParseDate(d.Date)
	if err != nil {
		return bucketKey{}, err
	}
	return bucketKey{year: t.Year(), slot: int(math.Ceil(float64(t.Day()) / 7))}, nil
}

func monthKey(d model.FinancialData) (bucketKey, error) {
	t, err := calendar.ParseDate(d.Date)
	if err != nil {
		return bucketKey{}, err
	}
	return bucketKey{year: t.Year(), slot: int(t.Month())}, nil
}

// rollUp merges a non-empty bucket into one record.
func rollUp(bucket []model.FinancialData) model.FinancialData {
	first := bucket[0]
	last := bucket[len(bucket)-1]

	n := len(bucket)
	highs := make([]float64, n)
	lows := make([]float64, n)
	volumes := make([]float64, n)
	vols := make([]float64, n)
	liqs := make([]float64, n)
	rsis := make([]float64, n)
	mas := make([]float64, n)
	for i, d := range bucket {
		highs[i] = d.HighPrice
		lows[i] = d.LowPrice
		volumes[i] = d.Volume
		vols[i] = d.Volatility
		liqs[i] = d.Liquidity
		rsis[i] = d.RSI
		mas[i] = d.MovingAverage
	}

	var performance float64
	if first.OpenPrice != 0 {
		performance = (last.ClosePrice - first.OpenPrice) / first.OpenPrice * 100
	}

	return model.FinancialData{
		Date:          first.Date,
		OpenPrice:     first.OpenPrice,
		ClosePrice:    last.ClosePrice,
		HighPrice:     Max(highs),
		LowPrice:      Min(lows),
		Volume:        Sum(volumes),
		Volatility:    Mean(vols),
		Liquidity:     Mean(liqs),
		Performance:   performance,
		RSI:           Mean(rsis),
		MovingAverage: Mean(mas),
	}
}
