package model

import "fmt"

// FinancialData is one synthetic trading record. Daily records carry a single
// day; aggregated records carry the first day of their bucket.
type FinancialData struct {
	Date          string  `json:"date" csv:"Date" yaml:"date"`
	OpenPrice     float64 `json:"openPrice" csv:"Open Price" yaml:"open_price"`
	ClosePrice    float64 `json:"closePrice" csv:"Close Price" yaml:"close_price"`
	HighPrice     float64 `json:"highPrice" csv:"High Price" yaml:"high_price"`
	LowPrice      float64 `json:"lowPrice" csv:"Low Price" yaml:"low_price"`
	Volume        float64 `json:"volume" csv:"Volume" yaml:"volume"`
	Volatility    float64 `json:"volatility" csv:"Volatility (%)" yaml:"volatility"`
	Liquidity     float64 `json:"liquidity" csv:"Liquidity" yaml:"liquidity"`
	Performance   float64 `json:"performance" csv:"Performance (%)" yaml:"performance"`
	RSI           float64 `json:"rsi" csv:"RSI" yaml:"rsi"`
	MovingAverage float64 `json:"movingAverage" csv:"Moving Average" yaml:"moving_average"`
}

// Closes extracts close prices in order.
func Closes(data []FinancialData) []float64 {
	out := make([]float64, len(data))
	for i, d := range data {
		out[i] = d.ClosePrice
	}
	return out
}

// Volatilities extracts volatility values in order.
func Volatilities(data []FinancialData) []float64 {
	out := make([]float64, len(data))
	for i, d := range data {
		out[i] = d.Volatility
	}
	return out
}

// Timeframe selects the bucket size of the visible series.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// ParseTimeframe validates a timeframe name.
func ParseTimeframe(s string) (Timeframe, error) {
	switch tf := Timeframe(s); tf {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly:
		return tf, nil
	}
	return "", fmt.Errorf("unknown timeframe %q", s)
}

// MetricType selects which value colours the calendar grid.
type MetricType string

const (
	MetricVolatility  MetricType = "volatility"
	MetricLiquidity   MetricType = "liquidity"
	MetricPerformance MetricType = "performance"
)

// ParseMetric validates a metric name.
func ParseMetric(s string) (MetricType, error) {
	switch m := MetricType(s); m {
	case MetricVolatility, MetricLiquidity, MetricPerformance:
		return m, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// Value returns the metric value of a record.
func (m MetricType) Value(d FinancialData) float64 {
	switch m {
	case MetricLiquidity:
		return d.Liquidity
	case MetricPerformance:
		return d.Performance
	default:
		return d.Volatility
	}
}
