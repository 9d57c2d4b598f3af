package calculator

import "MarketCalendar/internal/model"

const (
	chartTail = 30
	rsiPeriod = 14
	smaPeriod = 20
)

// Summarize computes the metrics panel for a visible series. Indicators that
// lack enough history fall back to the latest close (SMA) or 50 (RSI).
func Summarize(data []model.FinancialData) model.Summary {
	s := model.Summary{Records: len(data)}
	if len(data) == 0 {
		return s
	}

	latest := data[len(data)-1]
	s.Latest = &latest

	tail := data
	if len(tail) > chartTail {
		tail = tail[len(tail)-chartTail:]
	}
	s.Chart = append([]model.FinancialData(nil), tail...)

	volumes := make([]float64, len(data))
	for i, d := range data {
		volumes[i] = d.Volume
	}
	s.AvgVolatility = Mean(model.Volatilities(data))
	s.TotalVolume = Sum(volumes)

	if h, l, err := CalculateRange(data, 0); err == nil {
		s.High, s.Low = h, l
	}

	if rsi, err := CalculateRSI(data, rsiPeriod); err == nil {
		s.RSI14 = rsi
	} else {
		s.RSI14 = 50
	}

	if sma, err := CalculateCloseSMA(data, smaPeriod); err == nil {
		s.SMA20 = sma
	} else {
		s.SMA20 = latest.ClosePrice
	}
	return s
}
