package alert

import "MarketCalendar/internal/model"

// Evaluate scans data once per active rule and returns a copy of every rule
// that matched at least one record, with the matching dates attached.
func Evaluate(rules []model.Alert, data []model.FinancialData) []model.Alert {
	var triggered []model.Alert
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		var dates []string
		for _, d := range data {
			if rule.Condition.Holds(rule.Type.Value(d), rule.Threshold) {
				dates = append(dates, d.Date)
			}
		}
		if len(dates) == 0 {
			continue
		}
		hit := rule
		hit.TriggeredDates = dates
		triggered = append(triggered, hit)
	}
	return triggered
}
