package generator

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"MarketCalendar/internal/calendar"
)

func TestGenerate_PriceInvariants(t *testing.T) {
	g := New(WithSeed(42))
	data := g.Generate(calendar.Date(2024, time.January, 1), 365)
	require.Len(t, data, 365)

	for _, d := range data {
		require.GreaterOrEqual(t, d.HighPrice, math.Max(d.OpenPrice, d.ClosePrice), d.Date)
		require.LessOrEqual(t, d.LowPrice, math.Min(d.OpenPrice, d.ClosePrice), d.Date)
	}
}

func TestGenerate_Ranges(t *testing.T) {
	data := New(WithSeed(7)).Generate(calendar.Date(2024, time.March, 1), 200)

	require.GreaterOrEqual(t, data[0].OpenPrice, 45000.0)
	require.Less(t, data[0].OpenPrice, 55000.0)

	for i, d := range data {
		require.GreaterOrEqual(t, d.Volatility, 2.0)
		require.LessOrEqual(t, d.Volatility, 10.0)
		require.GreaterOrEqual(t, d.Liquidity, 0.3)
		require.LessOrEqual(t, d.Liquidity, 1.0)
		require.GreaterOrEqual(t, d.RSI, 30.0)
		require.LessOrEqual(t, d.RSI, 70.0)
		require.LessOrEqual(t, math.Abs(d.Performance), 4.01)
		require.Equal(t, d.Volume, math.Round(d.Volume))
		if i > 0 {
			// open is the previous close before rounding
			require.InDelta(t, data[i-1].ClosePrice, d.OpenPrice, 0.011)
		}
	}
}

func TestGenerate_ConsecutiveDates(t *testing.T) {
	start := calendar.Date(2024, time.February, 27)
	data := New(WithSeed(1)).Generate(start, 5)
	got := make([]string, len(data))
	for i, d := range data {
		got[i] = d.Date
	}
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	require.Equal(t, "", cmp.Diff(want, got))
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	start := calendar.Date(2024, time.January, 1)
	a := New(WithSeed(99)).Generate(start, 30)
	b := New(WithSeed(99)).Generate(start, 30)
	require.Equal(t, "", cmp.Diff(a, b))
}

func TestGenerate_Empty(t *testing.T) {
	require.Empty(t, New().Generate(time.Now(), 0))
	require.Empty(t, New().Generate(time.Now(), -3))
}

func TestWindow(t *testing.T) {
	start, days := Window(calendar.Date(2024, time.March, 15))
	require.Equal(t, "2023-09-15", calendar.FormatDate(start))
	require.Equal(t, 366, days)
}

func TestSyntheticSource_CancelledDuringDelay(t *testing.T) {
	src := NewSyntheticSource(New(WithSeed(1)), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Load(ctx, time.Now(), 10)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSyntheticSource_Load(t *testing.T) {
	src := NewSyntheticSource(New(WithSeed(1)), time.Millisecond)
	data, err := src.Load(context.Background(), calendar.Date(2024, time.January, 1), 10)
	require.NoError(t, err)
	require.Len(t, data, 10)
	require.Equal(t, "synthetic", src.Name())
}

func TestCSVSource_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	want := New(WithSeed(3)).Generate(calendar.Date(2024, time.January, 1), 40)

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gocsv.MarshalFile(&want, f))
	require.NoError(t, f.Close())

	src := NewCSVSource(path)
	all, err := src.Load(context.Background(), time.Time{}, 0)
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(want, all))

	jan, err := src.Load(context.Background(), calendar.Date(2024, time.January, 10), 5)
	require.NoError(t, err)
	require.Len(t, jan, 5)
	require.Equal(t, "2024-01-10", jan[0].Date)
	require.Equal(t, "2024-01-14", jan[4].Date)
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background(), time.Now(), 1)
	require.Error(t, err)
}

var _ Source = (*SyntheticSource)(nil)
var _ Source = (*CSVSource)(nil)
