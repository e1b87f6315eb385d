package ranklist

// Iterator provides a forward-only view over the list in rank order.
// It is invalidated by any mutation of the underlying list.
type Iterator[K any] struct {
	l       *List[K]
	current *node[K]
	rank    int
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (l *List[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{l: l}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K]) Key() K {
	var zero K
	if it == nil || !it.valid {
		return zero
	}
	return it.current.key
}

// Rank returns the 1-based rank of the iterator's current position, or
// 0 when the iterator is not valid.
func (it *Iterator[K]) Rank() int {
	if it == nil || !it.valid {
		return 0
	}
	return it.rank
}

// Next advances the iterator and reports whether it moved onto an
// element. If the iterator was not valid prior to the call, it
// advances to the first element.
func (it *Iterator[K]) Next() bool {
	if it == nil || it.l == nil {
		return false
	}
	if !it.valid {
		return it.Seek(1)
	}
	next := it.current.tower[0].next
	if next == nil {
		it.invalidate()
		return false
	}
	it.current = next
	it.rank++
	return true
}

// Seek positions the iterator at the element of 1-based rank i and
// reports whether that rank exists.
func (it *Iterator[K]) Seek(i int) bool {
	if it == nil || it.l == nil {
		return false
	}
	it.invalidate()
	n := it.l.nodeAt(i)
	if n == nil {
		return false
	}
	it.current = n
	it.rank = i
	it.valid = true
	return true
}

// SeekGE positions the iterator at the first element whose key is
// greater than or equal to the provided key. It returns true if such
// an element exists.
func (it *Iterator[K]) SeekGE(key K) bool {
	if it == nil || it.l == nil {
		return false
	}
	it.invalidate()

	l := it.l
	x := l.head
	rank := 0
	for i := l.levels - 1; i >= 0; i-- {
		for next := x.tower[i].next; next != nil && l.less(next.key, key); next = x.tower[i].next {
			rank += x.tower[i].span
			x = next
		}
	}
	next := x.tower[0].next
	if next == nil {
		return false
	}
	it.current = next
	it.rank = rank + 1
	it.valid = true
	return true
}

func (it *Iterator[K]) invalidate() {
	if it == nil {
		return
	}
	it.current = nil
	it.rank = 0
	it.valid = false
}
