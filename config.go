package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "sinestats"

// Config holds the run settings. Environment variables (SINESTATS_*) set the
// defaults and command line flags override them.
type Config struct {
	Points    int     `envconfig:"POINTS" default:"100"`
	Start     float64 `envconfig:"START" default:"0"`
	Stop      float64 `envconfig:"STOP" default:"6.283185307179586"`
	Precision int     `envconfig:"PRECISION" default:"4"`
	PlotPath  string  `envconfig:"PLOT"`
	Verbose   bool    `envconfig:"VERBOSE"`
}

// loadConfig reads the environment, then parses args over it. The remaining
// positional arguments are returned as the explicit sample, if any.
func loadConfig(args []string, stderr io.Writer) (Config, []string, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	fs := flag.NewFlagSet("sinestats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Points, "points", cfg.Points, "number of sine wave points")
	fs.Float64Var(&cfg.Start, "start", cfg.Start, "first x value")
	fs.Float64Var(&cfg.Stop, "stop", cfg.Stop, "last x value")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimal places in the report")
	fs.StringVar(&cfg.PlotPath, "plot", cfg.PlotPath, "save the sine wave plot to this file (.png, .svg, .pdf)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log timing and allocation of the summary")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: sinestats [flags] [value ...]\n\n")
		fmt.Fprintf(fs.Output(), "Without values a sine wave sample is generated.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate checks the generator range and report precision.
func (c Config) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("%w: points must be at least 2, got %d", ErrInvalidArgument, c.Points)
	}
	if !isFinite(c.Start) || !isFinite(c.Stop) || c.Stop <= c.Start {
		return fmt.Errorf("%w: stop (%v) must be greater than start (%v)", ErrInvalidArgument, c.Stop, c.Start)
	}
	if c.Precision < 0 || c.Precision > 15 {
		return fmt.Errorf("%w: precision must be within [0, 15], got %d", ErrInvalidArgument, c.Precision)
	}
	return nil
}
