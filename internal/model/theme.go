package model

// VolatilityPalette colours the three volatility bands.
type VolatilityPalette struct {
	Low    string `json:"low"`
	Medium string `json:"medium"`
	High   string `json:"high"`
}

// PerformancePalette colours gains, losses and flat days.
type PerformancePalette struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
	Neutral  string `json:"neutral"`
}

// ThemeColors is the hex palette of a theme.
type ThemeColors struct {
	Background    string             `json:"background"`
	Surface       string             `json:"surface"`
	Primary       string             `json:"primary"`
	Secondary     string             `json:"secondary"`
	Accent        string             `json:"accent"`
	Text          string             `json:"text"`
	TextSecondary string             `json:"textSecondary"`
	Border        string             `json:"border"`
	Volatility    VolatilityPalette  `json:"volatility"`
	Performance   PerformancePalette `json:"performance"`
}

// ColorTheme is a static palette selected by ID.
type ColorTheme struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
}
