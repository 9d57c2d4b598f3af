package theme

import "MarketCalendar/internal/model"

// DefaultID names the theme returned for unknown IDs.
const DefaultID = "default"

var themes = []model.ColorTheme{
	{
		ID:   DefaultID,
		Name: "Default Dark",
		Colors: model.ThemeColors{
			Background:    "#111827",
			Surface:       "#1F2937",
			Primary:       "#3B82F6",
			Secondary:     "#6B7280",
			Accent:        "#F59E0B",
			Text:          "#FFFFFF",
			TextSecondary: "#9CA3AF",
			Border:        "#374151",
			Volatility:    model.VolatilityPalette{Low: "#10B981", Medium: "#F59E0B", High: "#EF4444"},
			Performance:   model.PerformancePalette{Positive: "#10B981", Negative: "#EF4444", Neutral: "#6B7280"},
		},
	},
	{
		ID:   "high-contrast",
		Name: "High Contrast",
		Colors: model.ThemeColors{
			Background:    "#000000",
			Surface:       "#1A1A1A",
			Primary:       "#00FFFF",
			Secondary:     "#FFFFFF",
			Accent:        "#FFFF00",
			Text:          "#FFFFFF",
			TextSecondary: "#CCCCCC",
			Border:        "#FFFFFF",
			Volatility:    model.VolatilityPalette{Low: "#00FF00", Medium: "#FFFF00", High: "#FF0000"},
			Performance:   model.PerformancePalette{Positive: "#00FF00", Negative: "#FF0000", Neutral: "#FFFFFF"},
		},
	},
	{
		ID:   "colorblind-friendly",
		Name: "Colorblind Friendly",
		Colors: model.ThemeColors{
			Background:    "#1E293B",
			Surface:       "#334155",
			Primary:       "#0EA5E9",
			Secondary:     "#64748B",
			Accent:        "#F97316",
			Text:          "#F8FAFC",
			TextSecondary: "#CBD5E1",
			Border:        "#475569",
			Volatility:    model.VolatilityPalette{Low: "#0EA5E9", Medium: "#F97316", High: "#DC2626"},
			Performance:   model.PerformancePalette{Positive: "#0EA5E9", Negative: "#DC2626", Neutral: "#64748B"},
		},
	},
}

// List returns every theme, default first.
func List() []model.ColorTheme {
	return append([]model.ColorTheme(nil), themes...)
}

// Get returns the theme with the given ID, or the default theme.
func Get(id string) model.ColorTheme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

// Exists reports whether id names a known theme.
func Exists(id string) bool {
	for _, t := range themes {
		if t.ID == id {
			return true
		}
	}
	return false
}
