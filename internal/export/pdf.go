package export

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"math"

	"github.com/go-pdf/fpdf"

	"MarketCalendar/internal/model"
)

const (
	ReportTitle = "Market Seasonality Report"

	titleY  = 20.0
	imageY  = 30.0
	marginX = 10.0
	marginB = 10.0
)

// PDF lays the heat-map out on a single A4 page under a centred title.
type PDF struct{}

func (PDF) ContentType() string { return "application/pdf" }
func (PDF) Extension() string   { return "pdf" }

func (PDF) Export(ctx context.Context, w io.Writer, snap model.View) error {
	img, err := HeatMap(ctx, snap)
	if err != nil {
		return err
	}
	var raster bytes.Buffer
	if err := png.Encode(&raster, img); err != nil {
		return fmt.Errorf("encode heat-map: %w", err)
	}

	b := img.Bounds()
	orientation := "P"
	if b.Dx() > b.Dy() {
		orientation = "L"
	}

	doc := fpdf.New(orientation, "mm", "A4", "")
	doc.SetTitle(ReportTitle, true)
	doc.AddPage()
	pageW, pageH := doc.GetPageSize()

	doc.SetFont("Helvetica", "B", 16)
	doc.Text((pageW-doc.GetStringWidth(ReportTitle))/2, titleY, ReportTitle)

	ratio := math.Min((pageW-2*marginX)/float64(b.Dx()), (pageH-imageY-marginB)/float64(b.Dy()))
	imgW, imgH := float64(b.Dx())*ratio, float64(b.Dy())*ratio

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("calendar", opts, &raster)
	doc.ImageOptions("calendar", (pageW-imgW)/2, imageY, imgW, imgH, false, opts, 0, "")

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
