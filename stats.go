package ranklist

// LevelStat describes one active level of the tower.
type LevelStat struct {
	// Level is the zero-based level index.
	Level int
	// Nodes is the number of nodes participating at this level.
	Nodes int
	// HeadSpan is the distance covered by the sentinel's forward
	// pointer at this level, i.e. the rank of the level's first node.
	HeadSpan int
}

// Stats is a point-in-time occupancy profile of the list. It exists
// for inspection and reporting; nothing in the core algorithms reads
// it back.
type Stats struct {
	Length    int
	Levels    int
	MaxHeight int
	PerLevel  []LevelStat
}

// Stats walks every active level and reports its population. It runs
// in O(n) on the bottom level and geometrically less above, and does
// not mutate the list.
func (l *List[K]) Stats() Stats {
	s := Stats{
		Length:    l.length,
		Levels:    l.levels,
		MaxHeight: l.maxHeight,
		PerLevel:  make([]LevelStat, l.levels),
	}
	for i := 0; i < l.levels; i++ {
		count := 0
		for x := l.head.tower[i].next; x != nil; x = x.tower[i].next {
			count++
		}
		s.PerLevel[i] = LevelStat{
			Level:    i,
			Nodes:    count,
			HeadSpan: l.head.tower[i].span,
		}
	}
	return s
}
