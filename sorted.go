package main

import "math/rand/v2"

// sortedStats keeps report rows in ascending key order. It's a skiplist:
// inserts are O(log n) without the sort-all-keys-at-the-end step, and
// iteration is a plain walk of level 0.
type sortedStats struct {
	head statsNode
}

type statsNode struct {
	key  string
	s    stats
	next []*statsNode
}

func randHeight() int {
	h := 1
	for h < 42 && rand.IntN(2) == 0 {
		h++
	}
	return h
}

func (l *sortedStats) put(key string, s stats) {
	var (
		h = randHeight()
		p = &statsNode{key, s, make([]*statsNode, h)}
		n = &l.head
	)
	if h > len(n.next) {
		n.next = append(n.next,
			make([]*statsNode, h-len(n.next))...)
	}
	for i := len(n.next) - 1; i >= 0; {
		if n.next[i] == nil || n.next[i].key >= key {
			if i < h {
				p.next[i] = n.next[i]
				n.next[i] = p
			}
			i--
		} else {
			n = n.next[i]
		}
	}
}

func (l *sortedStats) items() func(yield func(string, stats) bool) {
	return func(yield func(string, stats) bool) {
		if len(l.head.next) == 0 {
			return
		}
		for n := &l.head; n.next[0] != nil; {
			n = n.next[0]
			if !yield(n.key, n.s) {
				return
			}
		}
	}
}
