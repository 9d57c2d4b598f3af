package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"MarketCalendar/internal/logger"
	"MarketCalendar/internal/model"
)

func TestScheduler_ReportsOnlyNewDates(t *testing.T) {
	d := newDashboard(t, &stubSource{})
	s := NewScheduler(context.Background(), d, logger.Nop())

	var reported []model.Alert
	s.OnAlert = func(a model.Alert) { reported = append(reported, a) }

	first := s.RunNow()
	require.NotEmpty(t, first)
	require.Equal(t, first, reported)

	// The stub serves the same series again: nothing new.
	require.Empty(t, s.RunNow())
}

func TestScheduler_Diff(t *testing.T) {
	s := NewScheduler(context.Background(), nil, logger.Nop())

	got := s.diff([]model.Alert{{ID: "1", TriggeredDates: []string{"2024-01-01", "2024-01-02"}}})
	require.Len(t, got, 1)
	require.Len(t, got[0].TriggeredDates, 2)

	got = s.diff([]model.Alert{{ID: "1", TriggeredDates: []string{"2024-01-02", "2024-01-03"}}})
	require.Len(t, got, 1)
	require.Equal(t, []string{"2024-01-03"}, got[0].TriggeredDates)
}

func TestScheduler_Register(t *testing.T) {
	s := NewScheduler(context.Background(), nil, logger.Nop())
	require.Error(t, s.Register("every minute"))
	require.NoError(t, s.Register("0 */5 * * * *"))
	require.Len(t, s.Cron.Entries(), 1)
}
