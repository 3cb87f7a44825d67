package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dronepath/geom"
	"github.com/katalvlaran/dronepath/simulate"
)

// session bundles what a subcommand needs to drive the harness.
type session struct {
	log       *logrus.Logger
	collector *simulate.BasicCollector
	runner    *simulate.Runner
	points    []geom.Point
	cfg       simulate.Config
}

func newSession(cmd *cobra.Command) (*session, error) {
	log, err := NewLogger(Cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	cfg := HarnessConfig(Cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dronepath: %w", err)
	}
	points, err := GeneratePoints(Cfg)
	if err != nil {
		return nil, fmt.Errorf("dronepath: %w", err)
	}
	log.WithFields(logrus.Fields{
		"points": len(points),
		"seed":   Cfg.GetInt64("seed"),
		"runs":   cfg.Runs,
	}).Debug("waypoints generated")

	c := &simulate.BasicCollector{}
	return &session{
		log:       log,
		collector: c,
		runner:    simulate.NewRunner(simulate.WithLogger(log), simulate.WithCollector(c)),
		points:    points,
		cfg:       cfg,
	}, nil
}

func (s *session) logTotals() {
	s.log.WithFields(logrus.Fields{
		"brute_force_runs":        s.collector.BruteForceCount.Load(),
		"divide_and_conquer_runs": s.collector.DivideAndConquerCount.Load(),
		"route_runs":              s.collector.RouteCount.Load(),
		"errors":                  s.collector.Errors.Load(),
	}).Debug("harness totals")
}

// NewLogger builds a logrus logger writing to w at the level and in the
// format named by the log-level and log-format keys of cfg.
func NewLogger(cfg *viper.Viper, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("log-level: %v: %w", err, ErrInvalidOption)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	switch format := cfg.GetString("log-format"); format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log-format=%q: %w", format, ErrInvalidOption)
	}

	return log, nil
}
