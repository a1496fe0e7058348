package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const readBufferSize = 1 << 20

var errBadValue = errors.New("value must match -?[0-9]+.[0-9]")

// parseTenths converts a value of the form -?[0-9]+.[0-9] to its
// tenths-scaled integer, e.g. "23.1" -> 231. Exact integer arithmetic, no
// rounding.
func parseTenths(b []byte) (int64, error) {
	neg := len(b) > 0 && b[0] == '-'
	if neg {
		b = b[1:]
	}
	if len(b) < 3 || b[len(b)-2] != '.' {
		return 0, errBadValue
	}
	var v int64
	for i, c := range b {
		if i == len(b)-2 {
			continue // the decimal point
		}
		if c < '0' || c > '9' {
			return 0, errBadValue
		}
		v = v*10 + int64(c-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

// parseChunk aggregates every line of [c.start, c.end) into a fresh table.
// The section reader bounds consumption to the range, so the cursor never
// reads another worker's bytes; the planner guarantees the range holds only
// whole lines. Malformed input fails the whole run.
func parseChunk(data source, c chunkRange) (*table, error) {
	var (
		sr = io.NewSectionReader(data, int64(c.start), int64(c.end-c.start))
		br = bufio.NewReaderSize(sr, readBufferSize)
		t  = newTable()
	)
	for {
		line, err := br.ReadSlice('\n')
		switch {
		case err == io.EOF:
			if len(line) == 0 {
				return t, nil
			}
			// last line of the file, no terminator
		case err == bufio.ErrBufferFull:
			return nil, fmt.Errorf("record exceeds %d bytes at offset %d", readBufferSize, c.start)
		case err != nil:
			return nil, err
		}
		rec := trimLineEnding(line)
		sep := bytes.IndexByte(rec, ';')
		if sep <= 0 {
			return nil, fmt.Errorf("malformed record %q: missing separator", rec)
		}
		v, perr := parseTenths(rec[sep+1:])
		if perr != nil {
			return nil, fmt.Errorf("malformed record %q: %w", rec, perr)
		}
		t.observe(rec[:sep], v)
		if err == io.EOF {
			return t, nil
		}
	}
}

func trimLineEnding(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}
