package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"MarketCalendar/internal/alert"
	"MarketCalendar/internal/calculator"
	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/compare"
	"MarketCalendar/internal/export"
	"MarketCalendar/internal/generator"
	"MarketCalendar/internal/model"
	"MarketCalendar/internal/pattern"
	"MarketCalendar/internal/theme"
)

var (
	ErrNotLoaded      = errors.New("dashboard data not loaded")
	ErrPeriodNotFound = errors.New("comparison period not found")
)

// Settings are the initial view selections.
type Settings struct {
	Date      time.Time
	Timeframe model.Timeframe
	Metric    model.MetricType
	Theme     string
}

// Dashboard holds the view state and derives snapshots from it. Every
// mutation recomputes the snapshot before returning.
type Dashboard struct {
	mu sync.RWMutex

	source   generator.Source
	book     *alert.Book
	detector *pattern.Detector
	log      *zap.SugaredLogger
	now      func() time.Time

	current   time.Time
	selected  time.Time
	timeframe model.Timeframe
	metric    model.MetricType
	themeID   string
	periods   []model.ComparisonPeriod
	daily     []model.FinancialData
	loaded    bool
	// window is the day the loaded series is centred on; gen counts
	// committed loads.
	window time.Time
	gen    uint64

	view model.View
}

// New creates a dashboard. Call Refresh before reading views.
func New(src generator.Source, book *alert.Book, det *pattern.Detector, s Settings, log *zap.SugaredLogger) *Dashboard {
	if s.Date.IsZero() {
		s.Date = time.Now().UTC()
	}
	if s.Timeframe == "" {
		s.Timeframe = model.TimeframeDaily
	}
	if s.Metric == "" {
		s.Metric = model.MetricVolatility
	}
	if s.Theme == "" {
		s.Theme = theme.DefaultID
	}
	current := calendar.Day(s.Date)
	return &Dashboard{
		source:    src,
		book:      book,
		detector:  det,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		current:   current,
		timeframe: s.Timeframe,
		metric:    s.Metric,
		themeID:   s.Theme,
		periods:   compare.DefaultPeriods(current),
	}
}

// Refresh loads the window around the current date and recomputes the view.
// A load overtaken by another commit (e.g. a SetDate that finished first)
// is discarded and the newer view returned.
func (d *Dashboard) Refresh(ctx context.Context) (model.View, error) {
	d.mu.RLock()
	current, gen := d.current, d.gen
	d.mu.RUnlock()

	data, err := d.load(ctx, current)
	if err != nil {
		return model.View{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen {
		d.log.Infow("refresh superseded", "center", calendar.FormatDate(current))
		return d.view, nil
	}
	return d.commit(current, data)
}

// load fetches the window around day without touching dashboard state.
func (d *Dashboard) load(ctx context.Context, day time.Time) ([]model.FinancialData, error) {
	start, days := generator.Window(day)
	data, err := d.source.Load(ctx, start, days)
	if err != nil {
		d.log.Errorw("load failed", "source", d.source.Name(), "center", calendar.FormatDate(day), "error", err)
		return nil, fmt.Errorf("load %s: %w", d.source.Name(), err)
	}
	return data, nil
}

// commit installs a loaded window centred on day. Caller holds the write lock.
func (d *Dashboard) commit(day time.Time, data []model.FinancialData) (model.View, error) {
	d.current = day
	d.window = day
	d.daily = data
	d.loaded = true
	d.gen++
	if err := d.recompute(); err != nil {
		return model.View{}, err
	}
	d.log.Infow("data refreshed",
		"source", d.source.Name(), "center", calendar.FormatDate(day), "records", len(data),
		"triggered", len(d.view.Triggered), "patterns", len(d.view.Patterns))
	return d.view, nil
}

// recompute rebuilds the snapshot: aggregate, then alerts and patterns over
// the visible series. Caller holds the write lock.
func (d *Dashboard) recompute() error {
	if !d.loaded {
		return nil
	}
	data, err := calculator.Aggregate(d.daily, d.timeframe)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", d.timeframe, err)
	}

	v := model.View{
		GeneratedAt: d.now(),
		CurrentDate: d.current,
		Timeframe:   d.timeframe,
		Metric:      d.metric,
		Theme:       theme.Get(d.themeID),
		Source:      d.source.Name(),
		Data:        data,
		Calendar:    calendar.BuildMonth(d.current.Year(), d.current.Month(), data, d.selected, d.now()),
		Summary:     calculator.Summarize(data),
		Alerts:      d.book.List(),
		Triggered:   d.book.Triggered(data),
		Patterns:    d.detector.Detect(data),
		Comparison:  compare.Compare(data, d.periods),
	}
	if !d.selected.IsZero() {
		sel := d.selected
		v.SelectedDate = &sel
	}
	d.view = v
	return nil
}

func (d *Dashboard) update(fn func()) (model.View, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
	if err := d.recompute(); err != nil {
		return model.View{}, err
	}
	return d.view, nil
}

// View returns the latest snapshot.
func (d *Dashboard) View() (model.View, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.loaded {
		return model.View{}, ErrNotLoaded
	}
	return d.view, nil
}

// Daily returns the loaded daily records.
func (d *Dashboard) Daily() []model.FinancialData {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]model.FinancialData(nil), d.daily...)
}

// SetTimeframe switches the bucket size and clears the selection.
func (d *Dashboard) SetTimeframe(tf model.Timeframe) (model.View, error) {
	return d.update(func() {
		d.timeframe = tf
		d.selected = time.Time{}
	})
}

// SetMetric switches the metric colouring the grid.
func (d *Dashboard) SetMetric(m model.MetricType) (model.View, error) {
	return d.update(func() { d.metric = m })
}

// SetTheme selects a palette; unknown IDs render with the default theme.
func (d *Dashboard) SetTheme(id string) (model.View, error) {
	return d.update(func() { d.themeID = id })
}

// Select marks a day; the zero time clears the selection.
func (d *Dashboard) Select(day time.Time) (model.View, error) {
	return d.update(func() {
		if day.IsZero() {
			d.selected = time.Time{}
			return
		}
		d.selected = calendar.Day(day)
	})
}

// SetDate moves the displayed month. Leaving the loaded month reloads the
// window around the new date; the date only changes once that load succeeds.
func (d *Dashboard) SetDate(ctx context.Context, day time.Time) (model.View, error) {
	day = calendar.Day(day)
	d.mu.Lock()
	if d.loaded && sameMonth(day, d.window) {
		defer d.mu.Unlock()
		d.current = day
		if err := d.recompute(); err != nil {
			return model.View{}, err
		}
		return d.view, nil
	}
	gen := d.gen
	d.mu.Unlock()

	data, err := d.load(ctx, day)
	if err != nil {
		return model.View{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen && sameMonth(day, d.window) {
		d.current = day
		if err := d.recompute(); err != nil {
			return model.View{}, err
		}
		return d.view, nil
	}
	return d.commit(day, data)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Navigate moves the selection with an arrow key, starting from the current
// date when nothing is selected. Crossing a month boundary follows it.
func (d *Dashboard) Navigate(ctx context.Context, k calendar.Key) (model.View, error) {
	d.mu.RLock()
	from := d.selected
	if from.IsZero() {
		from = d.current
	}
	d.mu.RUnlock()

	next := calendar.Navigate(from, k)
	if _, err := d.SetDate(ctx, next); err != nil {
		return model.View{}, err
	}
	return d.Select(next)
}

// AddAlert stores a new rule.
func (d *Dashboard) AddAlert(a model.Alert) (model.Alert, model.View, error) {
	created, err := d.book.Add(a)
	if err != nil {
		return model.Alert{}, model.View{}, err
	}
	v, err := d.update(func() {})
	return created, v, err
}

// UpdateAlert patches a rule.
func (d *Dashboard) UpdateAlert(id string, p alert.Patch) (model.Alert, model.View, error) {
	updated, err := d.book.Update(id, p)
	if err != nil {
		return model.Alert{}, model.View{}, err
	}
	v, err := d.update(func() {})
	return updated, v, err
}

// DeleteAlert removes a rule.
func (d *Dashboard) DeleteAlert(id string) (model.View, error) {
	if err := d.book.Delete(id); err != nil {
		return model.View{}, err
	}
	return d.update(func() {})
}

// Periods returns the comparison periods.
func (d *Dashboard) Periods() []model.ComparisonPeriod {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]model.ComparisonPeriod(nil), d.periods...)
}

// AddPeriod appends a comparison period.
func (d *Dashboard) AddPeriod(name string, start, end time.Time, color string) (model.ComparisonPeriod, model.View, error) {
	p, err := compare.NewPeriod(name, start, end, color)
	if err != nil {
		return model.ComparisonPeriod{}, model.View{}, err
	}
	v, err := d.update(func() { d.periods = append(d.periods, p) })
	return p, v, err
}

// RemovePeriod drops a comparison period by ID.
func (d *Dashboard) RemovePeriod(id string) (model.View, error) {
	d.mu.Lock()
	idx := -1
	for i, p := range d.periods {
		if p.ID == id {
			idx = i
			break
		}
	}
	d.mu.Unlock()
	if idx < 0 {
		return model.View{}, fmt.Errorf("%w: %s", ErrPeriodNotFound, id)
	}
	return d.update(func() {
		for i, p := range d.periods {
			if p.ID == id {
				d.periods = append(d.periods[:i:i], d.periods[i+1:]...)
				return
			}
		}
	})
}

// Export writes the current snapshot to dir in the given format.
func (d *Dashboard) Export(ctx context.Context, dir, format string) (string, error) {
	v, err := d.View()
	if err != nil {
		return "", err
	}
	return export.WriteFile(ctx, dir, format, v, d.log)
}
