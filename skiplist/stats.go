package skiplist

type statCounters struct {
	inserts     int64
	deletes     int64
	searches    int64
	promotions  int64
	comparisons int64
}

// Stats is a snapshot of the list's operation counters.
type Stats struct {
	// Inserts and Deletes count successful mutations; Searches counts
	// every lookup, hit or miss.
	Inserts  int64
	Deletes  int64
	Searches int64

	// Promotions counts levels granted above the base across all inserts.
	Promotions int64

	// Comparisons counts comparator invocations across all operations.
	Comparisons int64

	// Heights[h] is the number of live elements with height h; index 0 is
	// unused since every element participates at level 0.
	Heights []int
}

// Stats returns a copy of the list's counters. Useful for verifying the
// promotion distribution and for reporting traversal cost in benchmarks.
func (l *List[K]) Stats() Stats {
	heights := make([]int, len(l.heights))
	copy(heights, l.heights)
	return Stats{
		Inserts:     l.stats.inserts,
		Deletes:     l.stats.deletes,
		Searches:    l.stats.searches,
		Promotions:  l.stats.promotions,
		Comparisons: l.stats.comparisons,
		Heights:     heights,
	}
}
