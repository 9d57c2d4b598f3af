package calculator

import (
	"errors"

	"MarketCalendar/internal/model"
)

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	return Mean(prices[len(prices)-period:]), nil
}

// CalculateCloseSMA returns the SMA of close prices over the last period records.
func CalculateCloseSMA(data []model.FinancialData, period int) (float64, error) {
	return CalculateSMA(model.Closes(data), period)
}
