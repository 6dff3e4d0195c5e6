package main

import (
	"errors"
	"fmt"
	"math"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidArgument is wrapped by every error caused by bad input.
var ErrInvalidArgument = errors.New("invalid argument")

// Statistic names, in report order.
const (
	StatMean   = "mean"
	StatMedian = "median"
	StatStd    = "std"
	StatMin    = "min"
	StatMax    = "max"
)

var statNames = []string{StatMean, StatMedian, StatStd, StatMin, StatMax}

// Sample is a non-empty sequence of observed or generated values.
type Sample []float64

// StatisticsResult maps each statistic name to its value. Keys are always
// the five names in statNames, in that order.
type StatisticsResult struct {
	values *orderedmap.OrderedMap[string, float64]
}

func newStatisticsResult(mean, median, std, min, max float64) StatisticsResult {
	m := orderedmap.New[string, float64](len(statNames))
	m.Set(StatMean, mean)
	m.Set(StatMedian, median)
	m.Set(StatStd, std)
	m.Set(StatMin, min)
	m.Set(StatMax, max)
	return StatisticsResult{values: m}
}

// Get returns the named statistic.
func (r StatisticsResult) Get(name string) (float64, bool) {
	if r.values == nil {
		return 0, false
	}
	return r.values.Get(name)
}

// Mean, Median, Std, Min and Max return the named statistic, or 0 for the
// zero value.
func (r StatisticsResult) Mean() float64 {
	v, _ := r.Get(StatMean)
	return v
}

func (r StatisticsResult) Median() float64 {
	v, _ := r.Get(StatMedian)
	return v
}

func (r StatisticsResult) Std() float64 {
	v, _ := r.Get(StatStd)
	return v
}

func (r StatisticsResult) Min() float64 {
	v, _ := r.Get(StatMin)
	return v
}

func (r StatisticsResult) Max() float64 {
	v, _ := r.Get(StatMax)
	return v
}

// Len is 5 for any result produced by summarize and 0 for the zero value.
func (r StatisticsResult) Len() int {
	if r.values == nil {
		return 0
	}
	return r.values.Len()
}

// Keys returns the statistic names in insertion order.
func (r StatisticsResult) Keys() []string {
	keys := make([]string, 0, r.Len())
	r.Each(func(name string, _ float64) bool {
		keys = append(keys, name)
		return true
	})
	return keys
}

// Each calls fn for every statistic in order until fn returns false.
func (r StatisticsResult) Each(fn func(name string, value float64) bool) {
	if r.values == nil {
		return
	}
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

func validateSample(samples Sample) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: sample is empty", ErrInvalidArgument)
	}
	for i, v := range samples {
		if !isFinite(v) {
			return fmt.Errorf("%w: sample[%d] is not a finite number (%v)", ErrInvalidArgument, i, v)
		}
	}
	return nil
}

// summarize computes mean, median, population std, min and max of samples.
// The input is left untouched.
func summarize(samples Sample) (StatisticsResult, error) {
	if err := validateSample(samples); err != nil {
		return StatisticsResult{}, err
	}

	min, max := floats.Min(samples), floats.Max(samples)
	if min == max {
		return newStatisticsResult(min, min, 0, min, max), nil
	}

	mean, std := scaledMeanStdDev(samples, math.Max(math.Abs(min), math.Abs(max)))
	// rounding in the sum can push the mean one ulp past an extremum
	mean = math.Max(min, math.Min(max, mean))
	if std == 0 {
		// distinct values whose spread underflows
		std = math.SmallestNonzeroFloat64
	}

	s := append([]float64(nil), samples...)
	sort.Float64s(s)
	n := len(s)
	var median float64
	if n%2 == 1 {
		median = s[n/2]
	} else {
		median = midpoint(s[n/2-1], s[n/2])
	}

	return newStatisticsResult(mean, median, std, min, max), nil
}

// scaledMeanStdDev divides samples by scale before handing them to gonum so
// the squared deviations neither overflow nor underflow, then scales back.
func scaledMeanStdDev(samples Sample, scale float64) (mean, std float64) {
	scaled := make([]float64, len(samples))
	for i, v := range samples {
		scaled[i] = v / scale
	}
	mean, std = stat.PopMeanStdDev(scaled, nil)
	return mean * scale, std * scale
}

// midpoint returns (a+b)/2 for a <= b without overflowing.
func midpoint(a, b float64) float64 {
	if (a < 0) != (b < 0) {
		return (a + b) / 2
	}
	return a + (b-a)/2
}
