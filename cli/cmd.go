// Package cli holds the dronepath command tree. Configuration comes from
// flags, an optional --config file, or DRONEPATH_* environment variables.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dronepath/closest"
	"github.com/katalvlaran/dronepath/geom"
	"github.com/katalvlaran/dronepath/pointgen"
	"github.com/katalvlaran/dronepath/simulate"
)

// Version is the dronepath release.
const Version = "0.1.0"

// ErrInvalidOption indicates a configuration value the generator or the
// harness cannot accept.
var ErrInvalidOption = errors.New("dronepath: invalid option")

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "points",
			usage: `
              points is the number of waypoints to generate.`,
			shorthand:  "n",
			defaultVal: 1000,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "seed",
			usage: `
              seed seeds the waypoint generator. 0 selects a fixed default
              seed, so runs are reproducible unless a seed is given.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "max-x",
			usage: `
              max-x is the exclusive upper bound of generated X coordinates.`,
			defaultVal: pointgen.DefaultBound,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "max-y",
			usage: `
              max-y is the exclusive upper bound of generated Y coordinates.`,
			defaultVal: pointgen.DefaultBound,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "duplicates",
			usage: `
              duplicates plants that many coincident waypoints in the
              generated set. At most half of the points may be duplicates.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "runs",
			usage: `
              runs is the number of timed repetitions per algorithm.`,
			shorthand:  "r",
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "parallel",
			usage: `
              parallel splits large divide-and-conquer sub-problems
              across goroutines.`,
			shorthand:  "p",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), pairCmd.Flags()},
		},
		{
			name: "parallel-threshold",
			usage: `
              parallel-threshold is the smallest sub-problem size that is
              split across goroutines when --parallel is set.`,
			defaultVal: closest.DefaultParallelThreshold,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), pairCmd.Flags()},
		},
		{
			name: "return-to-base",
			usage: `
              return-to-base closes the flight route back at the first
              waypoint.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), routeCmd.Flags()},
		},
		{
			name: "log-level",
			usage: `
              log-level is one of panic, fatal, error, warn, info, debug
              or trace.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "log-format",
			usage: `
              log-format is either text or json.`,
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
			case int:
				set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
			default:
				panic("invalid argument type")
			}
		}
	}

	Cfg = newConfig()

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(pairCmd)
	Root.AddCommand(routeCmd)
}

// newConfig returns a viper instance bound to every option flag.
func newConfig() *viper.Viper {
	v := viper.New()

	// Set the prefix for configuration environment variables.
	v.SetEnvPrefix("DRONEPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, option := range options {
		for _, set := range option.flagsets {
			if err := v.BindPFlag(option.name, set.Lookup(option.name)); err != nil {
				panic(err)
			}
		}
	}

	return v
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("dronepath: problem reading configuration file: %w", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "dronepath",
	Short: "Closest-pair detection and greedy routing for drone waypoints.",
	Long: `dronepath generates random drone waypoints, finds the closest pair of
waypoints with both a brute-force and a divide-and-conquer search, and plans
a nearest-neighbour flight route through them.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'DRONEPATH_var' where 'var'
is the upper-case name of the option with dashes replaced by underscores.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of dronepath.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dronepath v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every algorithm on generated waypoints.",
	Long: `run generates waypoints, times the brute-force and divide-and-conquer
closest-pair searches and the greedy route, and prints a report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		rep, err := s.runner.Run(cmd.Context(), s.points, s.cfg)
		if err != nil {
			return err
		}
		s.logTotals()
		return writeReport(cmd.OutOrStdout(), rep)
	},
	DisableAutoGenTag: true,
}

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Find the closest pair of generated waypoints.",
	Long: `pair generates waypoints and times both closest-pair searches,
reporting whether they agree.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		rep, err := s.runner.ClosestPair(cmd.Context(), s.points, s.cfg)
		if err != nil {
			return err
		}
		s.logTotals()
		w := cmd.OutOrStdout()
		if err := writePoints(w, len(s.points)); err != nil {
			return err
		}
		return writePairs(w, rep)
	},
	DisableAutoGenTag: true,
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Plan a greedy flight route through generated waypoints.",
	Long: `route generates waypoints and plans a nearest-neighbour route that
starts at the first waypoint.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		out, err := s.runner.Route(cmd.Context(), s.points, s.cfg)
		if err != nil {
			return err
		}
		s.logTotals()
		w := cmd.OutOrStdout()
		if err := writePoints(w, len(s.points)); err != nil {
			return err
		}
		return writeRoute(w, out)
	},
	DisableAutoGenTag: true,
}

// HarnessConfig reads the simulate.Config from cfg.
func HarnessConfig(cfg *viper.Viper) simulate.Config {
	return simulate.Config{
		Runs:              cfg.GetInt("runs"),
		Parallel:          cfg.GetBool("parallel"),
		ParallelThreshold: cfg.GetInt("parallel-threshold"),
		ReturnToBase:      cfg.GetBool("return-to-base"),
	}
}

// GeneratePoints builds waypoints from the generator options in cfg.
func GeneratePoints(cfg *viper.Viper) ([]geom.Point, error) {
	maxX, maxY := cfg.GetInt("max-x"), cfg.GetInt("max-y")
	if maxX <= 0 || maxY <= 0 {
		return nil, fmt.Errorf("max-x=%d max-y=%d: bounds must be positive: %w", maxX, maxY, ErrInvalidOption)
	}
	dups := cfg.GetInt("duplicates")
	if dups < 0 {
		return nil, fmt.Errorf("duplicates=%d: must not be negative: %w", dups, ErrInvalidOption)
	}

	return pointgen.Generate(cfg.GetInt("points"),
		pointgen.WithSeed(cfg.GetInt64("seed")),
		pointgen.WithBounds(maxX, maxY),
		pointgen.WithDuplicates(dups),
	)
}
