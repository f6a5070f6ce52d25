package skiplist

import (
	randv2 "math/rand/v2"

	"github.com/pkg/errors"

	"github.com/repmop/datalib/element"
)

// List is an ordered index of elements keyed through a caller-supplied
// comparator. Duplicate keys are permitted and keep their insertion order.
// All storage lives in a per-list arena; the list exclusively owns every
// block it has linked, and elements returned by Search must not be retained
// across a Delete of that key.
type List[K any] struct {
	cmp     Comparator[K]
	cfg     Config
	arena   *arena[K]
	heads   []uint32
	length  int
	src     randv2.Source
	stats   statCounters
	heights []int
}

// New creates an empty List ordered by cmp. The number of levels, promotion
// probability, capacity, and random source come from opts; see NewConfig for
// the defaults.
func New[K any](cmp Comparator[K], opts ...Option) (*List[K], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}

	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.src == nil {
		cfg.src = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	}

	return &List[K]{
		cmp:     cmp,
		cfg:     cfg,
		arena:   newArena[K](cfg.levels, cfg.capacity),
		heads:   make([]uint32, cfg.levels),
		src:     cfg.src,
		heights: make([]int, cfg.levels+1),
	}, nil
}

// Levels returns the fixed number of levels chosen at construction.
func (l *List[K]) Levels() int {
	return l.cfg.levels
}

// Len returns the number of elements currently stored in the list.
func (l *List[K]) Len() int {
	return l.length
}

// Min returns the element with the smallest key, or nil when the list is
// empty. Among equal smallest keys it returns the earliest inserted.
func (l *List[K]) Min() *element.Element[K] {
	if l.heads[0] == nilIdx {
		return nil
	}
	return l.arena.rec(l.heads[0]).elem
}

// compare funnels every comparator call so traversal cost is observable
// through Stats.
func (l *List[K]) compare(a, b K) int {
	l.stats.comparisons++
	return l.cmp(a, b)
}

func (l *List[K]) keyAt(idx uint32) K {
	return l.arena.rec(idx).elem.Key()
}

// Insert links e into the list. It fails only for a nil element or an
// exhausted arena; on failure the structure is unchanged.
//
// A key smaller than the current minimum becomes the new head and is given
// the full height rather than a rolled one. An equal-to-minimum key takes
// the ordinary descent path so duplicates keep insertion order.
func (l *List[K]) Insert(e *element.Element[K]) error {
	if e == nil {
		return ErrNilElement
	}
	levels := l.cfg.levels

	// Empty list: the first element spans every level.
	if l.length == 0 {
		base, err := l.arena.allocBlock(e)
		if err != nil {
			return err
		}
		l.link(base, levels, nil)
		return nil
	}

	// Strictly below the minimum: prepend at every level.
	if l.compare(e.Key(), l.keyAt(l.heads[0])) < 0 {
		base, err := l.arena.allocBlock(e)
		if err != nil {
			return err
		}
		l.link(base, levels, nil)
		return nil
	}

	frontier := l.descend(e.Key(), false)

	base, err := l.arena.allocBlock(e)
	if err != nil {
		return err
	}
	l.link(base, l.rollHeight(), frontier)
	return nil
}

// descend walks the levels top-down and records the predecessor frontier:
// for each level, the last record whose key is less than key (strict mode)
// or less than or equal to key (splice mode, used by insertion so new
// duplicates land after existing equals). A nilIdx entry means key precedes
// everything present at that level.
//
// Dropping a level never re-traverses: the record one level below the
// current one belongs to the same block and sits at the adjacent arena
// index.
func (l *List[K]) descend(key K, strict bool) []uint32 {
	frontier := make([]uint32, l.cfg.levels)
	cur := nilIdx

	for i := l.cfg.levels - 1; i >= 0; i-- {
		if cur == nilIdx {
			head := l.heads[i]
			if head == nilIdx || !l.precedes(head, key, strict) {
				frontier[i] = nilIdx
				continue
			}
			cur = head
		}
		for {
			next := l.arena.rec(cur).next
			if next == nilIdx || !l.precedes(next, key, strict) {
				break
			}
			cur = next
		}
		frontier[i] = cur
		if i > 0 {
			cur--
		}
	}
	return frontier
}

// precedes reports whether the record at idx sorts before the splice point
// for key: strictly smaller in strict mode, smaller or equal otherwise.
func (l *List[K]) precedes(idx uint32, key K, strict bool) bool {
	c := l.compare(l.keyAt(idx), key)
	if strict {
		return c < 0
	}
	return c <= 0
}

// link splices the block at base into levels 0..height-1, using the
// frontier recorded by descend. A nil frontier prepends at every level
// (empty-list and new-minimum cases).
func (l *List[K]) link(base uint32, height int, frontier []uint32) {
	l.arena.rec(base).height = height
	for i := 0; i < height; i++ {
		r := base + uint32(i)
		if frontier == nil || frontier[i] == nilIdx {
			l.arena.rec(r).next = l.heads[i]
			l.heads[i] = r
		} else {
			pred := l.arena.rec(frontier[i])
			l.arena.rec(r).next = pred.next
			pred.next = r
		}
	}
	l.length++
	l.heights[height]++
	l.stats.inserts++
	l.stats.promotions += int64(height - 1)
}

// Search returns the element matching key, or nil and false when no such
// key is present. When a match is met at a high level the walk exits early;
// the element is shared by every record of its block, so the result is
// identical to the base-level record's element. Among duplicates the match
// returned is unspecified.
func (l *List[K]) Search(key K) (*element.Element[K], bool) {
	l.stats.searches++
	cur := nilIdx

	for i := l.cfg.levels - 1; i >= 0; i-- {
		if cur == nilIdx {
			head := l.heads[i]
			if head == nilIdx {
				continue
			}
			c := l.compare(l.keyAt(head), key)
			if c == 0 {
				return l.arena.rec(head).elem, true
			}
			if c > 0 {
				// Everything at this level exceeds the target.
				continue
			}
			cur = head
		}
		for {
			next := l.arena.rec(cur).next
			if next == nilIdx {
				break
			}
			c := l.compare(l.keyAt(next), key)
			if c == 0 {
				return l.arena.rec(next).elem, true
			}
			if c > 0 {
				break
			}
			cur = next
		}
		if i > 0 {
			cur--
		}
	}
	return nil, false
}

// Delete unlinks the first element whose key matches and reclaims its
// block. It reports whether an element was removed; deleting an absent key
// is a no-op, not an error.
//
// The block is returned to the arena only after the record at every
// participating level has been unlinked, so a partially removed element can
// never leave a head or next index dangling.
func (l *List[K]) Delete(key K) bool {
	if l.length == 0 {
		return false
	}

	frontier := l.descend(key, true)

	var target uint32
	if frontier[0] == nilIdx {
		target = l.heads[0]
	} else {
		target = l.arena.rec(frontier[0]).next
	}
	if target == nilIdx || l.compare(l.keyAt(target), key) != 0 {
		return false
	}

	base := target // level-0 record is the block base
	height := l.arena.rec(base).height
	for i := height - 1; i >= 0; i-- {
		r := base + uint32(i)
		switch {
		case l.heads[i] == r:
			l.heads[i] = l.arena.rec(r).next
		case frontier[i] != nilIdx && l.arena.rec(frontier[i]).next == r:
			l.arena.rec(frontier[i]).next = l.arena.rec(r).next
		default:
			l.unlink(i, frontier[i], r)
		}
	}

	l.arena.freeBlock(base)
	l.length--
	l.heights[height]--
	l.stats.deletes++
	return true
}

// unlink scans level from start (or the level head when start is nilIdx)
// for the predecessor of r and bypasses r. The frontier normally lands on
// the direct predecessor; this fallback covers equal-keyed records sitting
// between the strict frontier and the target. An unreachable target means
// the participation invariant is broken, which is fatal.
func (l *List[K]) unlink(level int, start, r uint32) {
	cur := start
	if cur == nilIdx {
		cur = l.heads[level]
	}
	for guard := l.length + 1; cur != nilIdx && guard > 0; guard-- {
		rec := l.arena.rec(cur)
		if rec.next == r {
			rec.next = l.arena.rec(r).next
			return
		}
		cur = rec.next
	}
	panic(errors.Wrapf(ErrCorrupted, "record %d unreachable at level %d", r, level))
}
