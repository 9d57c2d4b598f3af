package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
	"MarketCalendar/internal/theme"
)

// Calendar prints the month grid of snap. Each cell shows the day number
// and the active metric; the selected day is bracketed and today starred.
func Calendar(w io.Writer, snap model.View, opts Options) error {
	if len(snap.Calendar) == 0 {
		return fmt.Errorf("no calendar cells to render")
	}
	title(w, opts, fmt.Sprintf("%s %d · %s · %s",
		calendar.MonthName(snap.CurrentDate), snap.CurrentDate.Year(), snap.Timeframe, snap.Metric))

	tw := newTable(w, opts)
	tw.Style().Options.SeparateRows = true

	hdr := make(table.Row, len(calendar.Weekdays))
	cfgs := make([]table.ColumnConfig, len(calendar.Weekdays))
	for i, d := range calendar.Weekdays {
		hdr[i] = d
		cfgs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignCenter, AlignHeader: text.AlignCenter, WidthMin: 8}
	}
	tw.AppendHeader(hdr)
	tw.SetColumnConfigs(cfgs)

	row := make(table.Row, 0, 7)
	for _, c := range snap.Calendar {
		row = append(row, cell(snap, c, opts))
		if len(row) == 7 {
			tw.AppendRow(row)
			row = make(table.Row, 0, 7)
		}
	}
	if len(row) > 0 {
		tw.AppendRow(row)
	}
	tw.Render()

	if sel, ok := snap.Selected(); ok {
		fmt.Fprintln(w)
		return Day(w, snap.Metric, sel, opts)
	}
	return nil
}

func cell(snap model.View, c model.CalendarCell, opts Options) string {
	day := strconv.Itoa(c.DayOfMonth)
	switch {
	case c.IsSelected:
		day = "[" + day + "]"
	case c.IsToday:
		day += "*"
	}
	if !c.IsInCurrentMonth {
		day = paint(opts, snap.Theme.Colors.TextSecondary, day)
	}
	if !c.HasData {
		return day + "\n "
	}
	v := metricValue(snap.Metric, c.FinancialData)
	return day + "\n" + paint(opts, theme.MetricColor(snap.Theme, snap.Metric, c.FinancialData), v)
}

// Day prints the detail card of one calendar cell.
func Day(w io.Writer, m model.MetricType, c model.CalendarCell, opts Options) error {
	title(w, opts, calendar.FormatDate(c.Day))
	if !c.HasData {
		fmt.Fprintln(w, "No data for this day")
		return nil
	}
	tw := newTable(w, opts)
	d := c.FinancialData
	tw.AppendRows([]table.Row{
		{"Open", price(d.OpenPrice)},
		{"Close", price(d.ClosePrice)},
		{"High", price(d.HighPrice)},
		{"Low", price(d.LowPrice)},
		{"Volume", volume(d.Volume)},
		{"Volatility", percent(d.Volatility)},
		{"Liquidity", fmt.Sprintf("%.2f", d.Liquidity)},
		{"Performance", signedPercent(d.Performance)},
		{"RSI", fmt.Sprintf("%.1f", d.RSI)},
		{"Moving Avg", price(d.MovingAverage)},
		{"Level", volatilityLabel(d.Volatility)},
	})
	tw.Render()
	return nil
}

func volatilityLabel(v float64) string {
	switch lvl := theme.VolatilityLevel(v); {
	case lvl <= 1:
		return "low"
	case lvl <= 3:
		return "medium"
	default:
		return "high"
	}
}
