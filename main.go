package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"

	"github.com/avamsi/ergo/assert"
	"github.com/pkg/profile"
	"golang.org/x/exp/mmap"
)

// processFile runs the whole pipeline: map the file, plan line-aligned
// chunks, parse them in parallel, merge and write the sorted report to w.
func processFile(path string, w io.Writer, workers int) error {
	data, err := mmap.Open(path)
	if err != nil {
		return err
	}
	defer data.Close()
	final, err := aggregate(data, workers)
	if err != nil {
		return err
	}
	return writeReport(w, final)
}

func main() {
	var (
		input    = flag.String("input", "measurements.txt", "input file of key;value lines")
		workers  = flag.Int("workers", runtime.NumCPU(), "number of parse workers")
		rows     = flag.Int64("rows", 1_000_000_000, "rows to generate when the input file is missing")
		profiled = flag.Bool("profile", false, "write a CPU profile")
	)
	flag.Parse()
	if *profiled {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if _, err := os.Stat(*input); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "%s not found, generating %d rows\n", *input, *rows)
		assert.Nil(generateFile(*input, *rows))
		return
	}
	assert.Nil(processFile(*input, os.Stdout, *workers))
}
