package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"MarketCalendar/internal/model"
)

// JSON writes the whole snapshot.
type JSON struct{}

func (JSON) ContentType() string { return "application/json" }
func (JSON) Extension() string   { return "json" }

func (JSON) Export(ctx context.Context, w io.Writer, snap model.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
