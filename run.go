package main

import (
	"fmt"
	"io"
	"log"
)

// run summarizes either the values given on the command line or a generated
// sine wave, and writes the report to out. Nothing is written to out unless
// the whole sample is valid.
func run(cfg Config, args []string, out io.Writer) error {
	var sample Sample
	if len(args) > 0 {
		values, err := parseSample(args)
		if err != nil {
			return err
		}
		if cfg.PlotPath != "" {
			log.Printf("ignoring -plot %s: only the generated sine wave is plotted", cfg.PlotPath)
		}
		log.Printf("read %d values from the command line", len(values))
		sample = values
	} else {
		x, y, err := sineWave(cfg.Points, cfg.Start, cfg.Stop)
		if err != nil {
			return err
		}
		log.Printf("generated %d data points", len(y))

		p, err := newSinePlot(x, y)
		if err != nil {
			return err
		}
		if cfg.PlotPath != "" {
			if err := savePlot(p, cfg.PlotPath); err != nil {
				return err
			}
			log.Printf("saved plot to %s", cfg.PlotPath)
		}
		sample = y
	}

	res, m, err := measureSummary(func() (StatisticsResult, error) {
		return summarize(sample)
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	if cfg.Verbose {
		log.Printf("summarized points=%d duration=%s alloc_bytes=%d", len(sample), m.Elapsed, m.AllocBytes)
	}
	return writeReport(out, res, cfg.Precision)
}
