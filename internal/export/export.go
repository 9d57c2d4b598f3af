package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"MarketCalendar/internal/model"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrEmptyInput    = errors.New("nothing to export")
)

// Format names an export encoding.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatPNG    Format = "png"
	FormatJPEG   Format = "jpeg"
	FormatPDF    Format = "pdf"
	FormatSQLite Format = "sqlite"
)

// Exporter writes one dashboard snapshot in a specific encoding.
type Exporter interface {
	Export(ctx context.Context, w io.Writer, snap model.View) error
	ContentType() string
	Extension() string
}

// Formats lists every supported format in menu order.
func Formats() []Format {
	return []Format{FormatPDF, FormatCSV, FormatPNG, FormatJPEG, FormatJSON, FormatSQLite}
}

// For returns the exporter of a format name. "jpg" is accepted for jpeg.
func For(name string) (Exporter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatCSV:
		return CSV{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatPNG:
		return Image{Format: FormatPNG}, nil
	case FormatJPEG, "jpg":
		return Image{Format: FormatJPEG}, nil
	case FormatPDF:
		return PDF{}, nil
	case FormatSQLite:
		return SQLite{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Filename is the download name of an export for the displayed month,
// e.g. market-data-2024-3.csv.
func Filename(current time.Time, e Exporter) string {
	return fmt.Sprintf("market-data-%d-%d.%s", current.Year(), int(current.Month()), e.Extension())
}

// WriteFile exports snap into dir and returns the written path. A partially
// written file is removed on failure.
func WriteFile(ctx context.Context, dir, format string, snap model.View, log *zap.SugaredLogger) (string, error) {
	e, err := For(format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, Filename(snap.CurrentDate, e))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	err = e.Export(ctx, f, snap)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		log.Errorw("export failed", "format", format, "path", path, "error", err)
		return "", fmt.Errorf("export %s: %w", format, err)
	}

	log.Infow("export written", "format", format, "path", path, "records", len(snap.Data))
	return path, nil
}
