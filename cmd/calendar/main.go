package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"MarketCalendar/internal/alert"
	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/config"
	"MarketCalendar/internal/dashboard"
	"MarketCalendar/internal/generator"
	"MarketCalendar/internal/logger"
	"MarketCalendar/internal/model"
	"MarketCalendar/internal/pattern"
	"MarketCalendar/internal/render"
)

type globalFlags struct {
	config    string
	date      string
	timeframe string
	metric    string
	theme     string
	seed      int64
	color     string
}

// app is the wiring shared by every command.
type app struct {
	cfg  *config.Config
	log  *zap.SugaredLogger
	dash *dashboard.Dashboard
	opts render.Options
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "calendar",
		Short:         "Market seasonality calendar over synthetic daily data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", defaultConfigPath(), "YAML config file")
	pf.StringVar(&flags.date, "date", "", "displayed date, YYYY-MM-DD (default today)")
	pf.StringVar(&flags.timeframe, "timeframe", "", "daily, weekly or monthly")
	pf.StringVar(&flags.metric, "metric", "", "volatility, liquidity or performance")
	pf.StringVar(&flags.theme, "theme", "", "colour theme ID")
	pf.Int64Var(&flags.seed, "seed", 0, "generator seed for a reproducible series")
	pf.StringVar(&flags.color, "color", "auto", "auto, always or never")

	rootCmd.AddCommand(
		calendarCmd(&flags),
		dataCmd(&flags),
		patternsCmd(&flags),
		alertsCmd(&flags),
		compareCmd(&flags),
		themesCmd(&flags),
		exportCmd(&flags),
		watchCmd(&flags),
		serveCmd(&flags),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	if v := os.Getenv("CALENDAR_CONFIG"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// setup loads config, applies flag overrides and builds the dashboard. The
// data window is loaded only when load is set.
func setup(cmd *cobra.Command, flags *globalFlags, load bool) (*app, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	pf := cmd.Flags()
	if pf.Changed("timeframe") {
		cfg.View.Timeframe = flags.timeframe
	}
	if pf.Changed("metric") {
		cfg.View.Metric = flags.metric
	}
	if pf.Changed("theme") {
		cfg.View.Theme = flags.theme
	}
	if pf.Changed("seed") {
		cfg.Data.Seed = flags.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	date := time.Now().UTC()
	if flags.date != "" {
		if date, err = calendar.ParseDate(flags.date); err != nil {
			return nil, fmt.Errorf("--date: %w", err)
		}
	}

	log := logger.New()

	var src generator.Source
	if cfg.Data.CSVPath != "" {
		src = generator.NewCSVSource(cfg.Data.CSVPath)
	} else {
		var opts []generator.Option
		if cfg.Data.Seed != 0 {
			opts = append(opts, generator.WithSeed(cfg.Data.Seed))
		}
		src = generator.NewSyntheticSource(generator.New(opts...), cfg.Data.LoadDelay)
	}

	book := alert.NewBook(alert.DefaultRules())
	for _, a := range cfg.Alerts {
		if _, err := book.Add(a); err != nil {
			return nil, fmt.Errorf("config alert %q: %w", a.Message, err)
		}
	}

	// Parsed values were checked by Validate.
	tf, _ := model.ParseTimeframe(cfg.View.Timeframe)
	metric, _ := model.ParseMetric(cfg.View.Metric)

	d := dashboard.New(src, book, pattern.NewDetector(cfg.Patterns), dashboard.Settings{
		Date:      date,
		Timeframe: tf,
		Metric:    metric,
		Theme:     cfg.View.Theme,
	}, log)

	a := &app{cfg: cfg, log: log, dash: d}
	a.opts = render.Options{Color: useColor(flags.color)}
	if load {
		v, err := d.Refresh(cmd.Context())
		if err != nil {
			return nil, err
		}
		a.opts.Theme = v.Theme
	}
	return a, nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd())
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
