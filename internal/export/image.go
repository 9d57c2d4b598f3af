package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"

	"MarketCalendar/internal/model"
	"MarketCalendar/internal/theme"
)

const (
	// Scale multiplies every raster dimension.
	Scale = 2

	cellW   = 96
	cellH   = 64
	gap     = 4
	padding = 16
	band    = 24
	border  = 2

	// Background is the canvas colour of every raster export.
	Background = "#111827"
)

// Image renders the month grid as a heat-map raster.
type Image struct {
	Format Format
}

func (i Image) ContentType() string {
	if i.Format == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

func (i Image) Extension() string { return string(i.Format) }

func (i Image) Export(ctx context.Context, w io.Writer, snap model.View) error {
	img, err := HeatMap(ctx, snap)
	if err != nil {
		return err
	}
	if i.Format == FormatJPEG {
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	} else {
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", i.Format, err)
	}
	return nil
}

// HeatMap draws the calendar cells of snap: a weekday band on top, then six
// rows of seven cells coloured by the active metric. Days outside the month
// are dimmed; the selected day gets an accent border and today a primary one.
func HeatMap(ctx context.Context, snap model.View) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(snap.Calendar) == 0 {
		return nil, ErrEmptyInput
	}

	rows := (len(snap.Calendar) + 6) / 7
	width := (2*padding + 7*cellW + 6*gap) * Scale
	height := (2*padding + band + gap + rows*cellH + (rows-1)*gap) * Scale

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := theme.ParseHex(Background)
	fill(img, img.Bounds(), bg)

	colors := snap.Theme.Colors
	fill(img, scaled(padding, padding, 7*cellW+6*gap, band), theme.ParseHex(colors.Surface))

	top := padding + band + gap
	for n, cell := range snap.Calendar {
		x := padding + (n%7)*(cellW+gap)
		y := top + (n/7)*(cellH+gap)
		r := scaled(x, y, cellW, cellH)

		c := theme.ParseHex(colors.Surface)
		if cell.HasData {
			c = theme.ParseHex(theme.MetricColor(snap.Theme, snap.Metric, cell.FinancialData))
		}
		if !cell.IsInCurrentMonth {
			c = blend(c, bg)
		}
		fill(img, r, c)

		switch {
		case cell.IsSelected:
			outline(img, r, theme.ParseHex(colors.Accent))
		case cell.IsToday:
			outline(img, r, theme.ParseHex(colors.Primary))
		}
	}
	return img, nil
}

func scaled(x, y, w, h int) image.Rectangle {
	return image.Rect(x*Scale, y*Scale, (x+w)*Scale, (y+h)*Scale)
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	b := border * Scale
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+b), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-b, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+b, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-b, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// blend mixes a and b half and half.
func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: 0xff,
	}
}
