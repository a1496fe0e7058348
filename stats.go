package main

import "fmt"

// stats accumulates observations for one key. Values are tenths-scaled
// integers (23.1 is stored as 231), so min/max/sum are exact and merging
// shards is bit-for-bit order-independent.
type stats struct {
	min, max, sum int64
	count         uint64
}

func newStats(v int64) stats {
	return stats{v, v, v, 1}
}

func (s *stats) observe(v int64) {
	if v < s.min {
		s.min = v
	} else if v > s.max {
		s.max = v
	}
	s.sum, s.count = s.sum+v, s.count+1
}

func (s *stats) merge(o stats) {
	if o.min < s.min {
		s.min = o.min
	}
	if o.max > s.max {
		s.max = o.max
	}
	s.sum, s.count = s.sum+o.sum, s.count+o.count
}

// meanTenths rounds half away from zero. sum fits well inside int64 even at
// a billion observations, so 2*sum cannot overflow.
func (s *stats) meanTenths() int64 {
	n, c := s.sum, int64(s.count)
	if n >= 0 {
		return (2*n + c) / (2 * c)
	}
	return (2*n - c) / (2 * c)
}

// formatTenths renders a tenths-scaled value as a decimal with exactly one
// fractional digit, e.g. -7 -> "-0.7".
func formatTenths(v int64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}
