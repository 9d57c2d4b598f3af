package export

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"MarketCalendar/internal/model"
)

// CSV writes the visible series with the spreadsheet headers of the
// download (Date, Open Price, ... Moving Average).
type CSV struct{}

func (CSV) ContentType() string { return "text/csv; charset=utf-8" }
func (CSV) Extension() string   { return "csv" }

func (CSV) Export(ctx context.Context, w io.Writer, snap model.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(snap.Data) == 0 {
		return ErrEmptyInput
	}
	if err := gocsv.Marshal(snap.Data, w); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}
