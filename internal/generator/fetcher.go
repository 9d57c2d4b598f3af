package generator

import (
	"context"
	"time"

	"MarketCalendar/internal/model"
)

// Source loads a daily series for a date range.
type Source interface {
	Load(ctx context.Context, start time.Time, days int) ([]model.FinancialData, error)
	Name() string
}

// SyntheticSource serves generated data after an artificial loading delay.
type SyntheticSource struct {
	Generator *Generator
	Delay     time.Duration
}

// NewSyntheticSource wraps g; a zero delay returns immediately.
func NewSyntheticSource(g *Generator, delay time.Duration) *SyntheticSource {
	return &SyntheticSource{Generator: g, Delay: delay}
}

func (s *SyntheticSource) Name() string { return "synthetic" }

func (s *SyntheticSource) Load(ctx context.Context, start time.Time, days int) ([]model.FinancialData, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return s.Generator.Generate(start, days), nil
}
