package theme

import "MarketCalendar/internal/model"

// VolatilityLevel buckets a volatility percentage into 0 (calm, < 2) through
// 5 (>= 10) in steps of 2.
func VolatilityLevel(v float64) int {
	switch {
	case v < 2:
		return 0
	case v < 4:
		return 1
	case v < 6:
		return 2
	case v < 8:
		return 3
	case v < 10:
		return 4
	default:
		return 5
	}
}

// PerformanceLevel buckets a performance percentage: 2 strong gain, 1 gain,
// 0 flat, -1 loss, -2 strong loss.
func PerformanceLevel(p float64) int {
	switch {
	case p > 2:
		return 2
	case p > 0:
		return 1
	case p > -2:
		return 0
	case p > -4:
		return -1
	default:
		return -2
	}
}

// LiquidityOpacity maps a liquidity fraction to a display opacity percentage.
func LiquidityOpacity(l float64) int {
	switch {
	case l > 0.8:
		return 100
	case l > 0.6:
		return 80
	case l > 0.4:
		return 60
	case l > 0.2:
		return 40
	default:
		return 20
	}
}

// VolatilityColor picks the theme colour for a volatility percentage.
func VolatilityColor(t model.ColorTheme, v float64) string {
	switch lvl := VolatilityLevel(v); {
	case lvl <= 1:
		return t.Colors.Volatility.Low
	case lvl <= 3:
		return t.Colors.Volatility.Medium
	default:
		return t.Colors.Volatility.High
	}
}

// PerformanceColor picks the theme colour for a performance percentage.
func PerformanceColor(t model.ColorTheme, p float64) string {
	switch lvl := PerformanceLevel(p); {
	case lvl > 0:
		return t.Colors.Performance.Positive
	case lvl < 0:
		return t.Colors.Performance.Negative
	default:
		return t.Colors.Performance.Neutral
	}
}

// MetricColor picks the colour a calendar cell uses for the active metric.
func MetricColor(t model.ColorTheme, m model.MetricType, d model.FinancialData) string {
	switch m {
	case model.MetricPerformance:
		return PerformanceColor(t, d.Performance)
	case model.MetricLiquidity:
		if LiquidityOpacity(d.Liquidity) >= 80 {
			return t.Colors.Primary
		}
		return t.Colors.Secondary
	default:
		return VolatilityColor(t, d.Volatility)
	}
}
