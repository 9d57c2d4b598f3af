package pattern

import (
	"fmt"
	"strings"
	"time"

	"MarketCalendar/internal/calculator"
	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
)

// Seasonal groups records by calendar month across years and reports the
// months whose mean volatility exceeds the threshold as one pattern.
func (d *Detector) Seasonal(data []model.FinancialData) []model.PatternMatch {
	var order []time.Month
	byMonth := make(map[time.Month][]model.FinancialData)
	for _, rec := range data {
		t, err := calendar.ParseDate(rec.Date)
		if err != nil {
			continue
		}
		m := t.Month()
		if _, ok := byMonth[m]; !ok {
			order = append(order, m)
		}
		byMonth[m] = append(byMonth[m], rec)
	}

	var (
		months []string
		dates  []string
	)
	for _, m := range order {
		recs := byMonth[m]
		if calculator.Mean(model.Volatilities(recs)) <= d.cfg.SeasonalVolatility {
			continue
		}
		months = append(months, m.String())
		for _, rec := range recs {
			dates = append(dates, rec.Date)
		}
	}
	if len(months) == 0 {
		return nil
	}

	return []model.PatternMatch{{
		Type:        model.PatternSeasonal,
		Dates:       dates,
		Description: fmt.Sprintf("High volatility season detected in %s", strings.Join(months, ", ")),
		Confidence:  d.cfg.SeasonalConfidence,
	}}
}
