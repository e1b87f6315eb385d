package ranklist

import (
	"math/bits"
	randv2 "math/rand/v2"
)

func newSource() randv2.Source {
	return randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
}

// sampleLevels draws one word and counts its consecutive low-order one
// bits: each additional level appears with probability 1/2, independent
// of the previous ones, truncated at limit.
func sampleLevels(src randv2.Source, limit int) int {
	h := bits.TrailingZeros64(^src.Uint64())
	if h > limit {
		h = limit
	}
	return h
}

// randomHeight picks the tower height for a new node. The sample is
// truncated at the current active level count, and a sample that hits
// the cap raises that count, so the list grows at most one level per
// insertion and the top level is never populated ahead of use.
func (l *List[K]) randomHeight() int {
	limit := l.levels
	if limit > l.maxHeight-1 {
		limit = l.maxHeight - 1
	}
	h := sampleLevels(l.source, limit)
	if h == l.levels && l.levels < l.maxHeight {
		l.levels++
	}
	return h + 1
}
