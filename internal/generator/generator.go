package generator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/model"
)

const (
	basePrice      = 45000.0
	basePriceRange = 10000.0
	maxDailyChange = 0.08 // full width of the ±4% band
	minVolatility  = 0.02
	volRange       = 0.08
	baseVolume     = 100_000_000.0
	minLiquidity   = 0.3
)

// Generator produces synthetic daily records with a multiplicative random walk.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Generator)

// WithSeed makes the generated series reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// New returns a generator seeded from the clock unless WithSeed is given.
func New(opts ...Option) *Generator {
	g := &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate returns days consecutive records starting at start. Each close is
// the previous close scaled by a uniform ±4% move.
func (g *Generator) Generate(start time.Time, days int) []model.FinancialData {
	if days <= 0 {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	start = calendar.Day(start)
	data := make([]model.FinancialData, 0, days)
	currentPrice := basePrice + g.rng.Float64()*basePriceRange

	for i := 0; i < days; i++ {
		dailyChange := (g.rng.Float64() - 0.5) * maxDailyChange
		openPrice := currentPrice
		closePrice := currentPrice * (1 + dailyChange)

		volatility := minVolatility + g.rng.Float64()*volRange
		highPrice := math.Max(openPrice, closePrice) * (1 + volatility*g.rng.Float64())
		lowPrice := math.Min(openPrice, closePrice) * (1 - volatility*g.rng.Float64())

		volume := baseVolume * (1 + volatility*5) * (0.5 + g.rng.Float64())
		liquidity := math.Max(minLiquidity, 1-volatility*2)
		performance := (closePrice - openPrice) / openPrice

		rsi := 30 + g.rng.Float64()*40
		movingAverage := currentPrice * (0.98 + g.rng.Float64()*0.04)

		data = append(data, model.FinancialData{
			Date:          calendar.FormatDate(calendar.AddDays(start, i)),
			OpenPrice:     round(openPrice, 2),
			ClosePrice:    round(closePrice, 2),
			HighPrice:     round(highPrice, 2),
			LowPrice:      round(lowPrice, 2),
			Volume:        round(volume, 0),
			Volatility:    round(volatility*100, 2),
			Liquidity:     round(liquidity, 2),
			Performance:   round(performance*100, 2),
			RSI:           round(rsi, 2),
			MovingAverage: round(movingAverage, 2),
		})

		currentPrice = closePrice
	}
	return data
}

// Window returns the start and day count of the range loaded around center:
// six months either side.
func Window(center time.Time) (time.Time, int) {
	center = calendar.Day(center)
	start := calendar.AddMonths(center, -6)
	end := calendar.AddMonths(center, 6)
	return start, calendar.DaysBetween(start, end)
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
