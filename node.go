package ranklist

// link is one slot of a node's tower: the forward pointer at that level
// and the span it covers. span counts bottom-level elements from the
// owning node up to and including the destination, so a span of 1 means
// the destination is the immediate level-0 successor. While next is nil
// the span is kept at zero.
type link[K any] struct {
	next *node[K]
	span int
}

type node[K any] struct {
	key   K
	tower []link[K]
}

// height is the number of levels the node participates in.
func (n *node[K]) height() int {
	return len(n.tower)
}

// newHead builds the sentinel. It holds no key and owns a full-height
// tower so every level always has a well-defined entry point.
func newHead[K any](maxHeight int) *node[K] {
	return &node[K]{tower: make([]link[K], maxHeight)}
}
