package generator

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
)

// CSVSource replays a series previously written by the CSV exporter.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

// Load returns the records dated within [start, start+days). A non-positive
// days returns every record in the file.
func (s *CSVSource) Load(ctx context.Context, start time.Time, days int) ([]model.FinancialData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	var rows []model.FinancialData
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", s.Path, err)
	}
	if days <= 0 {
		return rows, nil
	}

	from := calendar.FormatDate(start)
	to := calendar.FormatDate(calendar.AddDays(start, days))
	out := make([]model.FinancialData, 0, len(rows))
	for _, r := range rows {
		// ISO dates compare lexically.
		if r.Date >= from && r.Date < to {
			out = append(out, r)
		}
	}
	return out, nil
}
