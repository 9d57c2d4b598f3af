package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MarketCalendar/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "default", cfg.View.Theme)
	require.Equal(t, "daily", cfg.View.Timeframe)
	require.Equal(t, "volatility", cfg.View.Metric)
	require.Equal(t, "exports", cfg.Export.Dir)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
data:
  load_delay: 250ms
  seed: 42
view:
  theme: high-contrast
  timeframe: weekly
patterns:
  seasonal_volatility: 5.5
alerts:
  - type: volume
    condition: below
    threshold: 50000000
    is_active: true
    message: Thin volume
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 250*time.Millisecond, cfg.Data.LoadDelay)
	require.Equal(t, int64(42), cfg.Data.Seed)
	require.Equal(t, "high-contrast", cfg.View.Theme)
	require.Equal(t, 5.5, cfg.Patterns.SeasonalVolatility)
	require.Len(t, cfg.Alerts, 1)
	require.Equal(t, model.AlertVolume, cfg.Alerts[0].Type)
	require.Equal(t, model.ConditionBelow, cfg.Alerts[0].Condition)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CALENDAR_PORT", "7000")
	t.Setenv("CALENDAR_SEED", "9")
	t.Setenv("CALENDAR_TIMEFRAME", "monthly")

	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Server.Port)
	require.Equal(t, int64(9), cfg.Data.Seed)
	require.Equal(t, "monthly", cfg.View.Timeframe)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("CALENDAR_PORT", "eighty")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [1, 2"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.View.Timeframe = "hourly"
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.View.Metric = "rsi"
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.Schedule.RefreshCron = "every minute"
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.Port = 70000
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.Alerts = []model.Alert{{Type: model.AlertVolatility, Condition: model.ConditionAbove, Message: "zero"}}
	require.Error(t, cfg.Validate())
}
