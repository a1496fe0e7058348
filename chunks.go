package main

// source is the read-only view of the input file shared by the planner and
// the parse workers. *mmap.ReaderAt satisfies it.
type source interface {
	ReadAt(p []byte, off int64) (n int, err error)
	At(i int) byte
	Len() int
}

// chunkRange is a half-open byte interval [start, end) of the input,
// ending exactly at a line terminator or at EOF.
type chunkRange struct {
	start, end int
}

// planChunks splits [0, size) into up to workers contiguous ranges. Each
// candidate boundary is advanced forward past the next '\n' so no line
// straddles two ranges; the last range absorbs the remainder. An empty file
// yields no ranges.
func planChunks(data source, workers int) []chunkRange {
	size := data.Len()
	if size == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := size / workers
	if chunkSize < 1 {
		chunkSize = 1
	}
	var (
		chunks []chunkRange
		start  int
	)
	for i := 0; i < workers && start < size; i++ {
		end := start + chunkSize
		if i == workers-1 || end >= size {
			end = size
		} else {
			for end < size {
				b := data.At(end)
				end++
				if b == '\n' {
					break
				}
			}
		}
		chunks = append(chunks, chunkRange{start, end})
		start = end
	}
	return chunks
}
