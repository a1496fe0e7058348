package main

import "golang.org/x/sync/errgroup"

// aggregate parses every chunk concurrently and folds the per-chunk tables
// into one. Each worker owns its table until Wait returns, and the merge is
// associative and commutative on integer fields, so the result does not
// depend on completion or fold order. The first worker error aborts the run.
func aggregate(data source, workers int) (*table, error) {
	var (
		chunks  = planChunks(data, workers)
		results = make([]*table, len(chunks))
		g       errgroup.Group
	)
	for i, c := range chunks {
		g.Go(func() error {
			t, err := parseChunk(data, c)
			results[i] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	final := newTable()
	for _, t := range results {
		final.mergeFrom(t)
	}
	return final, nil
}
