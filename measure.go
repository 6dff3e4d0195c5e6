package main

import (
	"runtime"
	"time"
)

var (
	readMemStatsFunc = runtime.ReadMemStats
	nowFunc          = time.Now
)

type measurement struct {
	Elapsed    time.Duration
	AllocBytes uint64
}

// measureSummary runs fn and reports how long it took and how many heap bytes
// it allocated.
func measureSummary(fn func() (StatisticsResult, error)) (StatisticsResult, measurement, error) {
	var before, after runtime.MemStats
	readMemStatsFunc(&before)
	start := nowFunc()

	res, err := fn()

	elapsed := nowFunc().Sub(start)
	readMemStatsFunc(&after)

	var alloc uint64
	if after.TotalAlloc > before.TotalAlloc {
		alloc = after.TotalAlloc - before.TotalAlloc
	}
	return res, measurement{Elapsed: elapsed, AllocBytes: alloc}, err
}
