package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"MarketCalendar/internal/api"
	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/dashboard"
	"MarketCalendar/internal/export"
	"MarketCalendar/internal/model"
	"MarketCalendar/internal/render"
	"MarketCalendar/internal/theme"
)

func calendarCmd(flags *globalFlags) *cobra.Command {
	var selected string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Render the month grid with the metrics panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags, true)
			if err != nil {
				return err
			}
			v, err := a.dash.View()
			if err != nil {
				return err
			}
			if selected != "" {
				day, err := calendar.ParseDate(selected)
				if err != nil {
					return fmt.Errorf("--select: %w", err)
				}
				if v, err = a.dash.Select(day); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if err := render.Calendar(out, v, a.opts); err != nil {
				return err
			}
			fmt.Fprintln(out)
			if err := render.Metrics(out, v.Summary, a.opts); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return render.Chart(out, v.Summary.Chart, a.opts)
		},
	}
	cmd.Flags().StringVar(&selected, "select", "", "show the detail card of a day, YYYY-MM-DD")
	return cmd
}

func dataCmd(flags *globalFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Print the visible series for the timeframe",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags, true)
			if err != nil {
				return err
			}
			v, err := a.dash.View()
			if err != nil {
				return err
			}
			switch format {
			case "table":
				return render.Data(cmd.OutOrStdout(), v.Data, a.opts)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v.Data)
			}
			return fmt.Errorf("unknown output format %q", format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "table", "table or json")
	return cmd
}

func patternsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Detect seasonal, anomaly and trend patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags, true)
			if err != nil {
				return err
			}
			v, err := a.dash.View()
			if err != nil {
				return err
			}
			return render.Patterns(cmd.OutOrStdout(), v.Patterns, a.opts)
		},
	}
}

func alertsCmd(flags *globalFlags) *cobra.Command {
	var onlyTriggered bool
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Evaluate the alert rules against the visible series",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags, true)
			if err != nil {
				return err
			}
			v, err := a.dash.View()
			if err != nil {
				return err
			}
			rules := v.Alerts
			if onlyTriggered {
				rules = v.Triggered
			}
			return render.Alerts(cmd.OutOrStdout(), rules, v.Triggered, a.opts)
		},
	}
	cmd.Flags().BoolVar(&onlyTriggered, "triggered", false, "list triggered rules only")
	return cmd
}

func compareCmd(flags *globalFlags) *cobra.Command {
	var periods []string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare metrics across date ranges",
		Long: "Compare the current and previous month, plus any --period given as\n" +
			"NAME:START:END (dates YYYY-MM-DD), e.g. --period Q1:2024-01-01:2024-03-31.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags, true)
			if err != nil {
				return err
			}
			v, err := a.dash.View()
			if err != nil {
				return err
			}
			for _, p := range periods {
				if v, err = addPeriod(a.dash, p); err != nil {
					return err
				}
			}
			return render.Comparison(cmd.OutOrStdout(), v.Comparison, a.opts)
		},
	}
	cmd.Flags().StringArrayVar(&periods, "period", nil, "extra period NAME:START:END")
	return cmd
}

func addPeriod(d *dashboard.Dashboard, spec string) (model.View, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return model.View{}, fmt.Errorf("--period %q: want NAME:START:END", spec)
	}
	start, err := calendar.ParseDate(parts[1])
	if err != nil {
		return model.View{}, fmt.Errorf("--period %q: %w", spec, err)
	}
	end, err := calendar.ParseDate(parts[2])
	if err != nil {
		return model.View{}, fmt.Errorf("--period %q: %w", spec, err)
	}
	_, v, err := d.AddPeriod(parts[0], start, end, "")
	return v, err
}

func themesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List colour themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags, false)
			if err != nil {
				return err
			}
			a.opts.Theme = theme.Get(a.cfg.View.Theme)
			return render.Themes(cmd.OutOrStdout(), theme.List(), a.opts.Theme.ID, a.opts)
		},
	}
}

func exportCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		dir    string
	)
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current view to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags, true)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			path, err := a.dash.Export(cmd.Context(), dir, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", strings.Join(names, ", "))
	cmd.Flags().StringVar(&dir, "out", "", "output directory (default from config)")
	return cmd
}

func watchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate data on the refresh schedule and report new alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			a, err := setup(cmd, flags, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			sched := dashboard.NewScheduler(ctx, a.dash, a.log)
			sched.OnAlert = func(al model.Alert) {
				fmt.Fprintf(out, "%s  %s (%d new, latest %s)\n",
					al.ID, al.Message, len(al.TriggeredDates), al.TriggeredDates[len(al.TriggeredDates)-1])
			}
			if err := sched.Register(a.cfg.Schedule.RefreshCron); err != nil {
				return err
			}
			sched.RunNow()
			if v, err := a.dash.View(); err == nil {
				a.opts.Theme = v.Theme
				if err := render.Calendar(out, v, a.opts); err != nil {
					return err
				}
			}

			sched.Start()
			defer sched.Stop()
			a.log.Infow("watching", "cron", a.cfg.Schedule.RefreshCron)
			<-ctx.Done()
			return nil
		},
	}
}

func serveCmd(flags *globalFlags) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			a, err := setup(cmd, flags, true)
			if err != nil {
				return err
			}
			if port == 0 {
				port = a.cfg.Server.Port
			}

			sched := dashboard.NewScheduler(ctx, a.dash, a.log)
			if err := sched.Register(a.cfg.Schedule.RefreshCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- api.ApiHandler{Dashboard: a.dash, Log: a.log}.StartApi(port)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				a.log.Info("shutdown signal received, stopping")
				return nil
			}
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config)")
	return cmd
}
