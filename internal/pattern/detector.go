package pattern

import "MarketCalendar/internal/model"

// Config holds the detector thresholds.
type Config struct {
	// SeasonalVolatility is the monthly mean volatility (%) above which a
	// month counts as a high volatility season.
	SeasonalVolatility float64 `yaml:"seasonal_volatility"`
	SeasonalConfidence float64 `yaml:"seasonal_confidence"`
	// AnomalySigma is the deviation, in population standard deviations,
	// beyond which a record is an anomaly.
	AnomalySigma      float64 `yaml:"anomaly_sigma"`
	AnomalyConfidence float64 `yaml:"anomaly_confidence"`
	TrendWindow       int     `yaml:"trend_window"`
	// TrendThreshold is the relative change between consecutive window
	// means that separates up/down from sideways.
	TrendThreshold     float64 `yaml:"trend_threshold"`
	TrendMinRun        int     `yaml:"trend_min_run"`
	TrendMaxConfidence float64 `yaml:"trend_max_confidence"`
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		SeasonalVolatility: 6,
		SeasonalConfidence: 0.8,
		AnomalySigma:       2,
		AnomalyConfidence:  0.9,
		TrendWindow:        10,
		TrendThreshold:     0.02,
		TrendMinRun:        5,
		TrendMaxConfidence: 0.9,
	}
}

// Detector runs the seasonal, anomaly and trend passes.
type Detector struct {
	cfg Config
}

// NewDetector fills zero fields of cfg from DefaultConfig.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.SeasonalVolatility == 0 {
		cfg.SeasonalVolatility = def.SeasonalVolatility
	}
	if cfg.SeasonalConfidence == 0 {
		cfg.SeasonalConfidence = def.SeasonalConfidence
	}
	if cfg.AnomalySigma == 0 {
		cfg.AnomalySigma = def.AnomalySigma
	}
	if cfg.AnomalyConfidence == 0 {
		cfg.AnomalyConfidence = def.AnomalyConfidence
	}
	if cfg.TrendWindow <= 0 {
		cfg.TrendWindow = def.TrendWindow
	}
	if cfg.TrendThreshold == 0 {
		cfg.TrendThreshold = def.TrendThreshold
	}
	if cfg.TrendMinRun <= 0 {
		cfg.TrendMinRun = def.TrendMinRun
	}
	if cfg.TrendMaxConfidence == 0 {
		cfg.TrendMaxConfidence = def.TrendMaxConfidence
	}
	return &Detector{cfg: cfg}
}

// Config returns the effective thresholds.
func (d *Detector) Config() Config { return d.cfg }

// Detect returns seasonal, then anomaly, then trend patterns.
func (d *Detector) Detect(data []model.FinancialData) []model.PatternMatch {
	var out []model.PatternMatch
	out = append(out, d.Seasonal(data)...)
	out = append(out, d.Anomalies(data)...)
	out = append(out, d.Trends(data)...)
	return out
}

// Detect runs every pass with the default thresholds.
func Detect(data []model.FinancialData) []model.PatternMatch {
	return NewDetector(DefaultConfig()).Detect(data)
}
