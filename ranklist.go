// Package ranklist implements an in-memory ordered collection that
// answers order-statistic queries (the k-th smallest element, and the
// rank of a given key) in logarithmic expected time. It is a skip
// list whose forward pointers carry element-distance spans, letting
// rank queries descend the tower instead of scanning level 0.
//
// A List is not safe for concurrent use; callers sharing one across
// goroutines must serialize access externally.
package ranklist

import (
	randv2 "math/rand/v2"
)

// List is a ranked skip list ordered by a user-supplied comparator.
// Duplicate keys are permitted and occupy consecutive distinct ranks.
// The zero value is not usable; construct with New.
type List[K any] struct {
	less      Less[K]
	head      *node[K]
	levels    int
	length    int
	maxHeight int
	source    randv2.Source
	pool      nodePool[K]

	// Scratch buffers for the mutating traversals, reused across calls
	// so Insert and Remove stay allocation-free once warmed up. Safe
	// because the list requires external serialization anyway.
	update []*node[K]
	steps  []int
}

// New returns an empty List ordered by less.
func New[K any](less Less[K], opts ...Option) *List[K] {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = newSource()
	}
	return &List[K]{
		less:      less,
		head:      newHead[K](cfg.maxHeight),
		maxHeight: cfg.maxHeight,
		source:    cfg.source,
		update:    make([]*node[K], cfg.maxHeight),
		steps:     make([]int, cfg.maxHeight),
	}
}

// Len returns the number of elements currently stored, counting
// duplicates separately.
func (l *List[K]) Len() int {
	return l.length
}

// Insert adds key to the list. It always succeeds; a key equal to
// existing ones is placed after all of them.
//
// The traversal runs in two passes. The descending pass records, per
// level, the rightmost node that still orders at or before the new key
// and the number of bottom-level elements stepped over at that level;
// levels the new tower will not reach get their covering span
// stretched by one on the way down. The ascending pass then splices
// bottom-up, turning the recorded step counts into the new node's
// offset from each predecessor.
func (l *List[K]) Insert(key K) {
	height := l.randomHeight()

	x := l.head
	for i := l.levels - 1; i >= 0; i-- {
		steps := 0
		for next := x.tower[i].next; next != nil && !l.less(key, next.key); next = x.tower[i].next {
			steps += x.tower[i].span
			x = next
		}
		l.update[i] = x
		l.steps[i] = steps
		if i >= height && x.tower[i].next != nil {
			x.tower[i].span++
		}
	}

	n := l.pool.acquire(key, height)
	pos := 0
	for i := 0; i < height; i++ {
		pred := l.update[i]
		n.tower[i].next = pred.tower[i].next
		pred.tower[i].next = n
		if n.tower[i].next != nil {
			n.tower[i].span = pred.tower[i].span - pos
		} else {
			n.tower[i].span = 0
		}
		pred.tower[i].span = pos + 1
		pos += l.steps[i]
	}
	l.length++
}

// Remove deletes one occurrence of key and reports whether one was
// found. With duplicates present, the earliest-ranked occurrence goes
// first. Removing an absent key leaves the list untouched.
func (l *List[K]) Remove(key K) bool {
	x := l.head
	for i := l.levels - 1; i >= 0; i-- {
		for next := x.tower[i].next; next != nil && l.less(next.key, key); next = x.tower[i].next {
			x = next
		}
		l.update[i] = x
	}

	target := x.tower[0].next
	if target == nil || l.less(key, target.key) {
		return false
	}

	// Ascending span repair. Where the target's tower was linked, its
	// span folds into the predecessor's; above the tower, predecessors
	// simply cover one element fewer. The tower height is captured once
	// and never mutated mid-removal.
	height := target.height()
	for i := 0; i < l.levels; i++ {
		pred := l.update[i]
		if i < height && pred.tower[i].next == target {
			pred.tower[i].span += target.tower[i].span - 1
			pred.tower[i].next = target.tower[i].next
			if pred.tower[i].next == nil {
				pred.tower[i].span = 0
			}
		} else if pred.tower[i].next != nil {
			pred.tower[i].span--
		}
	}

	for l.levels > 0 && l.head.tower[l.levels-1].next == nil {
		l.levels--
	}
	l.length--
	l.pool.release(target)
	return true
}

// Contains reports whether at least one occurrence of key is present.
func (l *List[K]) Contains(key K) bool {
	x := l.head
	for i := l.levels - 1; i >= 0; i-- {
		for next := x.tower[i].next; next != nil && l.less(next.key, key); next = x.tower[i].next {
			x = next
		}
		if next := x.tower[i].next; next != nil && !l.less(key, next.key) {
			return true
		}
	}
	return false
}

// Rank returns the 1-based rank of the first occurrence of key, or -1
// when the key is absent.
func (l *List[K]) Rank(key K) int {
	x := l.head
	rank := 0
	for i := l.levels - 1; i >= 0; i-- {
		for next := x.tower[i].next; next != nil && l.less(next.key, key); next = x.tower[i].next {
			rank += x.tower[i].span
			x = next
		}
	}
	next := x.tower[0].next
	if next == nil || l.less(key, next.key) {
		return -1
	}
	return rank + x.tower[0].span
}

// Select returns the key of 1-based rank i. The second result is false
// when i is outside [1, Len()].
func (l *List[K]) Select(i int) (K, bool) {
	if n := l.nodeAt(i); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// nodeAt walks the tower accumulating spans until the traversed
// distance lands exactly on rank. The up-front range check keeps the
// descent total for every input, including an empty list.
func (l *List[K]) nodeAt(rank int) *node[K] {
	if rank < 1 || rank > l.length {
		return nil
	}
	x := l.head
	traversed := 0
	for i := l.levels - 1; i >= 0; i-- {
		for x.tower[i].next != nil && traversed+x.tower[i].span <= rank {
			traversed += x.tower[i].span
			x = x.tower[i].next
		}
		if traversed == rank {
			return x
		}
	}
	return nil
}

// Min returns the smallest key. The second result is false when the
// list is empty.
func (l *List[K]) Min() (K, bool) {
	if first := l.head.tower[0].next; first != nil {
		return first.key, true
	}
	var zero K
	return zero, false
}

// Max returns the largest key. The second result is false when the
// list is empty.
func (l *List[K]) Max() (K, bool) {
	x := l.head
	for i := l.levels - 1; i >= 0; i-- {
		for x.tower[i].next != nil {
			x = x.tower[i].next
		}
	}
	if x == l.head {
		var zero K
		return zero, false
	}
	return x.key, true
}

// Clear removes all elements, resetting the list to its initial state.
// The comparator, height ceiling and randomness source are kept.
func (l *List[K]) Clear() {
	l.head = newHead[K](l.maxHeight)
	l.levels = 0
	l.length = 0
	l.pool = nodePool[K]{}
}
