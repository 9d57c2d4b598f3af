package calculator

import (
	"errors"
	"math"

	"MarketCalendar/internal/model"
)

// CalculateRange scans the most recent lookback records and returns the
// highest high and lowest low. A non-positive lookback scans everything.
func CalculateRange(data []model.FinancialData, lookback int) (high, low float64, err error) {
	if len(data) == 0 {
		return 0, 0, errors.New("no records provided")
	}
	start := 0
	if lookback > 0 && len(data) > lookback {
		start = len(data) - lookback
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, d := range data[start:] {
		if d.HighPrice > high {
			high = d.HighPrice
		}
		if d.LowPrice < low {
			low = d.LowPrice
		}
	}
	return high, low, nil
}
