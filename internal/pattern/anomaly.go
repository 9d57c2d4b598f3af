package pattern

import (
	"fmt"
	"math"

	"MarketCalendar/internal/calculator"
	"MarketCalendar/internal/model"
)

// Anomalies flags records whose volatility lies more than AnomalySigma
// population standard deviations from the mean, as one pattern.
func (d *Detector) Anomalies(data []model.FinancialData) []model.PatternMatch {
	if len(data) == 0 {
		return nil
	}
	vols := model.Volatilities(data)
	mean := calculator.Mean(vols)
	limit := d.cfg.AnomalySigma * calculator.PopulationStdDev(vols)

	var dates []string
	for _, rec := range data {
		if math.Abs(rec.Volatility-mean) > limit {
			dates = append(dates, rec.Date)
		}
	}
	if len(dates) == 0 {
		return nil
	}

	return []model.PatternMatch{{
		Type:        model.PatternAnomaly,
		Dates:       dates,
		Description: fmt.Sprintf("%d extreme volatility events detected (>%gσ from mean)", len(dates), d.cfg.AnomalySigma),
		Confidence:  d.cfg.AnomalyConfidence,
	}}
}
