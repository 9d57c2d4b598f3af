package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
)

// PatternDates is how many dates a pattern row lists before eliding.
const PatternDates = 12

// Metrics prints the summary panel.
func Metrics(w io.Writer, s model.Summary, opts Options) error {
	title(w, opts, "Market Metrics")
	if s.Latest == nil {
		fmt.Fprintln(w, "No data")
		return nil
	}
	perf := signedPercent(s.Latest.Performance)
	if s.Latest.Performance > 0 {
		perf = paint(opts, opts.Theme.Colors.Performance.Positive, perf)
	} else if s.Latest.Performance < 0 {
		perf = paint(opts, opts.Theme.Colors.Performance.Negative, perf)
	}

	tw := newTable(w, opts)
	tw.AppendRows([]table.Row{
		{"Latest", s.Latest.Date},
		{"Close", price(s.Latest.ClosePrice)},
		{"Change", perf},
		{"Range", price(s.Low) + " - " + price(s.High)},
		{"Avg Volatility", percent(s.AvgVolatility)},
		{"Total Volume", volume(s.TotalVolume)},
		{"RSI(14)", fmt.Sprintf("%.1f", s.RSI14)},
		{"SMA(20)", price(s.SMA20)},
		{"Records", s.Records},
	})
	tw.Render()
	return nil
}

// barWidth is the bar length of a full-scale chart value.
const barWidth = 20

// Chart prints the trailing records of the summary as volatility and
// liquidity bars. Volatility is scaled against 10%, liquidity against 100%.
func Chart(w io.Writer, tail []model.FinancialData, opts Options) error {
	title(w, opts, fmt.Sprintf("%d-Day Volatility & Liquidity", len(tail)))
	if len(tail) == 0 {
		fmt.Fprintln(w, "No data")
		return nil
	}
	tw := newTable(w, opts)
	tw.AppendHeader(table.Row{"Date", "Volatility", "", "Liquidity", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, d := range tail {
		vol := paint(opts, opts.Theme.Colors.Volatility.High, bar(d.Volatility/10))
		liq := paint(opts, opts.Theme.Colors.Primary, bar(d.Liquidity))
		tw.AppendRow(table.Row{d.Date, percent(d.Volatility), vol, fmt.Sprintf("%.0f%%", d.Liquidity*100), liq})
	}
	tw.Render()
	return nil
}

// bar draws frac of barWidth, clamped to [0, 1].
func bar(frac float64) string {
	n := int(math.Round(math.Max(0, math.Min(1, frac)) * barWidth))
	return strings.Repeat("█", n)
}

// Data prints a series as one row per record.
func Data(w io.Writer, data []model.FinancialData, opts Options) error {
	tw := newTable(w, opts)
	tw.AppendHeader(table.Row{"Date", "Open", "Close", "High", "Low", "Volume", "Vol %", "Liq", "Perf %", "RSI"})
	right := make([]table.ColumnConfig, 0, 9)
	for i := 2; i <= 10; i++ {
		right = append(right, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(right)
	for _, d := range data {
		tw.AppendRow(table.Row{
			d.Date, price(d.OpenPrice), price(d.ClosePrice), price(d.HighPrice), price(d.LowPrice),
			volume(d.Volume), percent(d.Volatility), fmt.Sprintf("%.2f", d.Liquidity),
			signedPercent(d.Performance), fmt.Sprintf("%.1f", d.RSI),
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "", "", "", "Records", len(data)})
	tw.Render()
	return nil
}

// Alerts prints the rule book with the number of triggered dates per rule.
func Alerts(w io.Writer, rules, triggered []model.Alert, opts Options) error {
	hits := make(map[string][]string, len(triggered))
	for _, a := range triggered {
		hits[a.ID] = a.TriggeredDates
	}

	title(w, opts, fmt.Sprintf("Alerts (%d triggered)", len(triggered)))
	tw := newTable(w, opts)
	tw.AppendHeader(table.Row{"ID", "Type", "Condition", "Threshold", "Active", "Message", "Triggered", "Last"})
	for _, r := range rules {
		dates := hits[r.ID]
		last := ""
		if len(dates) > 0 {
			last = dates[len(dates)-1]
		}
		count := fmt.Sprint(len(dates))
		if len(dates) > 0 {
			count = paint(opts, opts.Theme.Colors.Accent, count)
		}
		active := "no"
		if r.IsActive {
			active = "yes"
		}
		tw.AppendRow(table.Row{shortID(r.ID), r.Type, r.Condition, threshold(r), active, r.Message, count, last})
	}
	tw.Render()
	return nil
}

func threshold(a model.Alert) string {
	if a.Type == model.AlertVolume {
		return volume(a.Threshold)
	}
	return fmt.Sprintf("%g%%", a.Threshold)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Patterns prints detected patterns, listing at most PatternDates dates each.
func Patterns(w io.Writer, patterns []model.PatternMatch, opts Options) error {
	title(w, opts, "Pattern Analysis")
	if len(patterns) == 0 {
		fmt.Fprintln(w, "No significant patterns detected")
		return nil
	}
	tw := newTable(w, opts)
	tw.AppendHeader(table.Row{"Type", "Confidence", "Description", "Dates"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 4, WidthMax: 60}})
	for _, p := range patterns {
		tw.AppendRow(table.Row{
			p.Type,
			fmt.Sprintf("%.0f%% %s", p.Confidence*100, p.ConfidenceBand()),
			p.Description,
			patternDates(p.Dates),
		})
	}
	tw.Render()
	return nil
}

func patternDates(dates []string) string {
	if len(dates) <= PatternDates {
		return strings.Join(dates, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(dates[:PatternDates], ", "), len(dates)-PatternDates)
}

// Comparison prints one row per period; empty periods show "No data".
func Comparison(w io.Writer, results []model.PeriodResult, opts Options) error {
	title(w, opts, "Period Comparison")
	tw := newTable(w, opts)
	tw.AppendHeader(table.Row{"Period", "Range", "Avg Volatility", "Avg Performance", "Total Volume", "Avg Price", "Points"})
	for _, r := range results {
		name := paint(opts, r.Period.Color, r.Period.Name)
		span := calendar.FormatDate(r.Period.StartDate) + " .. " + calendar.FormatDate(r.Period.EndDate)
		if r.Metrics == nil {
			tw.AppendRow(table.Row{name, span, "No data", "", "", "", 0})
			continue
		}
		m := r.Metrics
		tw.AppendRow(table.Row{
			name, span, percent(m.AvgVolatility), signedPercent(m.AvgPerformance),
			volume(m.TotalVolume), price(m.AvgPrice), m.DataPoints,
		})
	}
	tw.Render()
	return nil
}

// Themes prints the available palettes, marking the active one.
func Themes(w io.Writer, themes []model.ColorTheme, active string, opts Options) error {
	tw := newTable(w, opts)
	tw.AppendHeader(table.Row{"", "ID", "Name", "Palette"})
	for _, t := range themes {
		mark := ""
		if t.ID == active {
			mark = "*"
		}
		c := t.Colors
		swatches := []string{c.Primary, c.Accent, c.Volatility.Low, c.Volatility.Medium, c.Volatility.High}
		for i, hex := range swatches {
			if opts.Color {
				swatches[i] = paint(opts, hex, "■")
			}
		}
		tw.AppendRow(table.Row{mark, t.ID, t.Name, strings.Join(swatches, " ")})
	}
	tw.Render()
	return nil
}
