package main

import (
	"bufio"
	"fmt"
	"io"
)

// writeReport emits one "key;min;mean;max" line per key in ascending key
// order, every field rounded to one fractional digit.
func writeReport(w io.Writer, final *table) error {
	var sorted sortedStats
	final.each(sorted.put)

	bw := bufio.NewWriter(w)
	sorted.items()(func(key string, s stats) bool {
		fmt.Fprintf(bw, "%s;%s;%s;%s\n",
			key, formatTenths(s.min), formatTenths(s.meanTenths()), formatTenths(s.max))
		return true
	})
	return bw.Flush()
}
