package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"MarketCalendar/internal/model"
)

// Scheduler refreshes a dashboard on a cron schedule and reports alert
// dates that were not triggered by any earlier refresh.
type Scheduler struct {
	Cron      *cron.Cron
	Dashboard *Dashboard
	Ctx       context.Context

	// OnAlert, when set, receives the newly triggered part of each alert.
	OnAlert func(model.Alert)

	log  *zap.SugaredLogger
	mu   sync.Mutex
	seen map[string]map[string]bool
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, d *Dashboard, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Dashboard: d,
		Ctx:       ctx,
		log:       log,
		seen:      make(map[string]map[string]bool),
	}
}

// Register adds the refresh task under a six-field cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RunNow executes one refresh immediately and returns the new alerts.
func (s *Scheduler) RunNow() []model.Alert {
	return s.refresh()
}

func (s *Scheduler) refreshTask() {
	s.refresh()
}

func (s *Scheduler) refresh() []model.Alert {
	v, err := s.Dashboard.Refresh(s.Ctx)
	if err != nil {
		s.log.Errorw("scheduled refresh", "error", err)
		return nil
	}

	fresh := s.diff(v.Triggered)
	for _, a := range fresh {
		s.log.Warnw("alert triggered",
			"id", a.ID, "message", a.Message, "dates", len(a.TriggeredDates), "last", a.TriggeredDates[len(a.TriggeredDates)-1])
		if s.OnAlert != nil {
			s.OnAlert(a)
		}
	}
	return fresh
}

// diff keeps, per alert, only dates not reported before and remembers them.
func (s *Scheduler) diff(triggered []model.Alert) []model.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Alert
	for _, a := range triggered {
		seen := s.seen[a.ID]
		if seen == nil {
			seen = make(map[string]bool)
			s.seen[a.ID] = seen
		}
		var dates []string
		for _, d := range a.TriggeredDates {
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
		if len(dates) > 0 {
			a.TriggeredDates = dates
			out = append(out, a)
		}
	}
	return out
}
