package main

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/agentrelay/config"
	"github.com/hupe1980/agentrelay/logging"
	"github.com/hupe1980/agentrelay/metrics"
	"github.com/hupe1980/agentrelay/session"
)

// app holds the wiring shared by all commands.
type app struct {
	in  io.Reader
	out io.Writer

	cfg      *config.Config
	logger   *logging.RelayLogger
	registry *prometheus.Registry
	session  *session.Session
}

func newApp(cli *CLI, in io.Reader, out, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}

	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.NewLogger(logOut)
	if err != nil {
		return nil, err
	}

	a := &app{in: in, out: out, cfg: cfg, logger: logger}

	var recorder metrics.Recorder = metrics.NoopRecorder{}

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()

		rec, err := metrics.NewPrometheusRecorder(a.registry, cfg.Metrics.Namespace)
		if err != nil {
			return nil, err
		}
		recorder = rec
	}

	a.session = session.New(func(o *session.Options) {
		o.Logger = logger
		o.Metrics = recorder
	})

	return a, nil
}

// close reports the collected counters when metrics are enabled.
func (a *app) close() {
	if a.registry == nil {
		return
	}

	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("metrics.gather.failed", "error", err.Error())
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			args := []any{"name", mf.GetName()}
			for _, lp := range m.GetLabel() {
				args = append(args, lp.GetName(), lp.GetValue())
			}

			switch {
			case m.GetCounter() != nil:
				args = append(args, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				args = append(args, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}

			a.logger.Info("metric", args...)
		}
	}
}
