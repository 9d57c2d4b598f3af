package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"MarketCalendar/internal/model"
	"MarketCalendar/internal/theme"
)

// Options controls terminal output.
type Options struct {
	Color bool
	Theme model.ColorTheme
}

func newTable(w io.Writer, opts Options) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if opts.Color {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	return tw
}

// paint colours s with a theme hex colour when colour output is on.
func paint(opts Options, hex, s string) string {
	if !opts.Color || hex == "" {
		return s
	}
	return theme.Foreground(hex, s)
}

func title(w io.Writer, opts Options, s string) {
	if opts.Color {
		s = text.Bold.Sprint(s)
	}
	fmt.Fprintln(w, s)
}

func price(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

func volume(v float64) string {
	return humanize.SIWithDigits(v, 1, "")
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func signedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// metricValue formats the active metric of a record the way a calendar
// cell shows it.
func metricValue(m model.MetricType, d model.FinancialData) string {
	switch m {
	case model.MetricLiquidity:
		return fmt.Sprintf("%.0f%%", d.Liquidity*100)
	case model.MetricPerformance:
		return signedPercent(d.Performance)
	default:
		return percent(d.Volatility)
	}
}
