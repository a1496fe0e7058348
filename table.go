package main

import "github.com/zeebo/xxh3"

const minTableSize = 1 << 10 // slots; must stay a power of two

// entry is one occupied slot. count == 0 marks a free slot, which is safe
// because a live aggregate always has count >= 1.
type entry struct {
	hash uint64
	key  string
	s    stats
}

// table maps keys to their aggregates with xxh3 hashing and linear probing.
// Lookups for keys already present compare the probe key bytes against the
// stored string directly and never allocate; only first-sight keys copy.
type table struct {
	entries []entry
	n       int
}

func newTable() *table {
	return &table{entries: make([]entry, minTableSize)}
}

func (t *table) observe(key []byte, v int64) {
	h := xxh3.Hash(key)
	mask := uint64(len(t.entries) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		e := &t.entries[i]
		if e.s.count == 0 {
			e.hash, e.key, e.s = h, string(key), newStats(v)
			t.grow()
			return
		}
		if e.hash == h && e.key == string(key) {
			e.s.observe(v)
			return
		}
	}
}

func (t *table) mergeEntry(o *entry) {
	mask := uint64(len(t.entries) - 1)
	for i := o.hash & mask; ; i = (i + 1) & mask {
		e := &t.entries[i]
		if e.s.count == 0 {
			*e = *o
			t.grow()
			return
		}
		if e.hash == o.hash && e.key == o.key {
			e.s.merge(o.s)
			return
		}
	}
}

// mergeFrom folds every entry of o into t. Both tables remain valid; o is
// normally discarded by the caller afterwards.
func (t *table) mergeFrom(o *table) {
	for i := range o.entries {
		if o.entries[i].s.count != 0 {
			t.mergeEntry(&o.entries[i])
		}
	}
}

func (t *table) each(f func(key string, s stats)) {
	for i := range t.entries {
		if e := &t.entries[i]; e.s.count != 0 {
			f(e.key, e.s)
		}
	}
}

// grow accounts for one insertion and rehashes at 3/4 load.
func (t *table) grow() {
	t.n++
	if 4*t.n <= 3*len(t.entries) {
		return
	}
	old := t.entries
	t.entries = make([]entry, 2*len(old))
	mask := uint64(len(t.entries) - 1)
	for i := range old {
		if old[i].s.count == 0 {
			continue
		}
		for j := old[i].hash & mask; ; j = (j + 1) & mask {
			if t.entries[j].s.count == 0 {
				t.entries[j] = old[i]
				break
			}
		}
	}
}
