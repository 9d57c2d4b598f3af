package pattern

import (
	"fmt"
	"math"

	"MarketCalendar/internal/calculator"
	"MarketCalendar/internal/model"
)

// Direction classifies the move between two consecutive windows.
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionSideways Direction = "sideways"
)

type trendPoint struct {
	date string
	dir  Direction
}

// classify compares the mean close of the window before i with the window
// before that. ok is false when there is no older data to compare against.
func (d *Detector) classify(data []model.FinancialData, i int) (Direction, bool) {
	w := d.cfg.TrendWindow
	olderFrom := i - 2*w
	if olderFrom < 0 {
		olderFrom = 0
	}
	older := data[olderFrom : i-w]
	if len(older) == 0 {
		return "", false
	}
	recentAvg := calculator.Mean(model.Closes(data[i-w : i]))
	olderAvg := calculator.Mean(model.Closes(older))
	if olderAvg == 0 {
		return DirectionSideways, true
	}

	change := (recentAvg - olderAvg) / olderAvg
	switch {
	case change > d.cfg.TrendThreshold:
		return DirectionUp, true
	case change < -d.cfg.TrendThreshold:
		return DirectionDown, true
	default:
		return DirectionSideways, true
	}
}

// Trends labels every point from the window onwards as up, down or sideways
// and reports runs of at least TrendMinRun same-direction points, sideways
// excluded. The run in progress at the end of the series is reported too.
func (d *Detector) Trends(data []model.FinancialData) []model.PatternMatch {
	w := d.cfg.TrendWindow
	if len(data) <= w {
		return nil
	}

	points := make([]trendPoint, 0, len(data)-w)
	for i := w; i < len(data); i++ {
		dir, ok := d.classify(data, i)
		if !ok {
			continue
		}
		points = append(points, trendPoint{date: data[i].Date, dir: dir})
	}

	var out []model.PatternMatch
	flush := func(run []trendPoint) {
		if len(run) < d.cfg.TrendMinRun || run[0].dir == DirectionSideways {
			return
		}
		dates := make([]string, len(run))
		for i, p := range run {
			dates[i] = p.date
		}
		out = append(out, model.PatternMatch{
			Type:        model.PatternTrend,
			Dates:       dates,
			Description: fmt.Sprintf("Sustained %sward trend detected (%d periods)", run[0].dir, len(run)),
			Confidence:  math.Min(d.cfg.TrendMaxConfidence, float64(len(run))/10),
		})
	}

	start := 0
	for i := 1; i <= len(points); i++ {
		if i == len(points) || points[i].dir != points[start].dir {
			flush(points[start:i])
			start = i
		}
	}
	return out
}
