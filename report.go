package main

import (
	"bufio"
	"fmt"
	"io"
)

// writeReport prints one "name: value" line per statistic, in result order.
func writeReport(w io.Writer, res StatisticsResult, precision int) error {
	if res.Len() == 0 {
		return fmt.Errorf("%w: empty statistics result", ErrInvalidArgument)
	}
	bw := bufio.NewWriter(w)
	var err error
	res.Each(func(name string, v float64) bool {
		_, err = fmt.Fprintf(bw, "%s: %.*f\n", name, precision, v)
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
