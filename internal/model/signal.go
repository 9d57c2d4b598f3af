package model

import "fmt"

// AlertType is the metric an alert rule watches.
type AlertType string

const (
	AlertVolatility  AlertType = "volatility"
	AlertPerformance AlertType = "performance"
	AlertVolume      AlertType = "volume"
)

// ParseAlertType validates an alert metric name.
func ParseAlertType(s string) (AlertType, error) {
	switch t := AlertType(s); t {
	case AlertVolatility, AlertPerformance, AlertVolume:
		return t, nil
	}
	return "", fmt.Errorf("unknown alert type %q", s)
}

// Value returns the watched value of a record.
func (t AlertType) Value(d FinancialData) float64 {
	switch t {
	case AlertPerformance:
		return d.Performance
	case AlertVolume:
		return d.Volume
	default:
		return d.Volatility
	}
}

// Condition is the comparison direction of an alert rule.
type Condition string

const (
	ConditionAbove Condition = "above"
	ConditionBelow Condition = "below"
)

// ParseCondition validates a condition name.
func ParseCondition(s string) (Condition, error) {
	switch c := Condition(s); c {
	case ConditionAbove, ConditionBelow:
		return c, nil
	}
	return "", fmt.Errorf("unknown condition %q", s)
}

// Holds reports whether value satisfies the condition against threshold.
// Both directions are strict.
func (c Condition) Holds(value, threshold float64) bool {
	if c == ConditionBelow {
		return value < threshold
	}
	return value > threshold
}

// Alert is a threshold rule. TriggeredDates is only populated on the copies
// returned by evaluation.
type Alert struct {
	ID             string    `json:"id" yaml:"id"`
	Type           AlertType `json:"type" yaml:"type"`
	Condition      Condition `json:"condition" yaml:"condition"`
	Threshold      float64   `json:"threshold" yaml:"threshold"`
	IsActive       bool      `json:"isActive" yaml:"is_active"`
	Message        string    `json:"message" yaml:"message"`
	TriggeredDates []string  `json:"triggeredDates" yaml:"-"`
}

// PatternType tags a detected pattern.
type PatternType string

const (
	PatternSeasonal PatternType = "seasonal"
	PatternAnomaly  PatternType = "anomaly"
	PatternTrend    PatternType = "trend"
)

// PatternMatch is one detected pattern over a series.
type PatternMatch struct {
	Type        PatternType `json:"type"`
	Dates       []string    `json:"dates"`
	Description string      `json:"description"`
	Confidence  float64     `json:"confidence"`
}

// ConfidenceBand buckets a confidence score for display.
func (p PatternMatch) ConfidenceBand() string {
	switch {
	case p.Confidence >= 0.8:
		return "high"
	case p.Confidence >= 0.6:
		return "medium"
	default:
		return "low"
	}
}
