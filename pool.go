package ranklist

// nodePool recycles removed nodes through an intrusive free list
// chained via the first tower slot. Towers keep their backing capacity
// on release, so a reinsertion with a height that fits allocates
// nothing. The pool belongs to one List and shares its single-threaded
// contract.
type nodePool[K any] struct {
	free *node[K]
}

func (p *nodePool[K]) acquire(key K, height int) *node[K] {
	n := p.free
	if n == nil || cap(n.tower) < height {
		return &node[K]{key: key, tower: make([]link[K], height)}
	}
	p.free = n.tower[0].next
	n.tower = n.tower[:height]
	for i := range n.tower {
		n.tower[i] = link[K]{}
	}
	n.key = key
	return n
}

func (p *nodePool[K]) release(n *node[K]) {
	if n == nil || cap(n.tower) == 0 {
		return
	}
	var zero K
	n.key = zero
	n.tower = n.tower[:cap(n.tower)]
	for i := range n.tower {
		n.tower[i] = link[K]{}
	}
	n.tower[0].next = p.free
	p.free = n
}
