package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// sineWave returns points evenly spaced values over [start, stop], both ends
// included, and their sines.
func sineWave(points int, start, stop float64) ([]float64, Sample, error) {
	if points < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidArgument, points)
	}
	if !isFinite(start) || !isFinite(stop) || stop <= start {
		return nil, nil, fmt.Errorf("%w: bad range [%v, %v]", ErrInvalidArgument, start, stop)
	}

	x := floats.Span(make([]float64, points), start, stop)
	y := make(Sample, points)
	for i, v := range x {
		y[i] = math.Sin(v)
	}
	return x, y, nil
}

// parseSample turns command line arguments into a Sample. An argument may
// hold several comma separated values.
func parseSample(args []string) (Sample, error) {
	var values Sample
	pos := 0
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			pos++
			v, err := parseValue(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: value #%d %q: %v", ErrInvalidArgument, pos, tok, err)
			}
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values given", ErrInvalidArgument)
	}
	return values, nil
}

// parseValue accepts any finite float literal.
func parseValue(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("not finite")
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
