package skiplist

import (
	"github.com/repmop/datalib/element"
)

// nilIdx is the reserved null arena index. Record 0 is never handed out, so
// a zero next-index always means "end of level".
const nilIdx uint32 = 0

// record is one (element, level) pair. A block of levels contiguous records
// represents a single element: the record for level i of a block based at b
// sits at arena index b+i, and all records of a block share the same
// element. The next index is meaningful only while the element participates
// at the record's level.
type record[K any] struct {
	elem *element.Element[K]
	next uint32

	// height is the number of levels the element participates in,
	// recorded on the block's level-0 record only.
	height int
}

// arena owns every record block in one growable slice. Blocks are addressed
// by the index of their level-0 record; reclaimed blocks go on a free list
// and are reissued before the slice grows again, so live indices are stable
// for the lifetime of the list.
type arena[K any] struct {
	levels   int
	recs     []record[K]
	free     []uint32
	capacity int
	live     int
}

func newArena[K any](levels, capacity int) *arena[K] {
	a := &arena[K]{
		levels:   levels,
		capacity: capacity,
	}
	// Slot 0 is the nil record.
	a.recs = make([]record[K], 1, 1+levels*16)
	return a
}

// allocBlock reserves one contiguous block of levels records, every record
// referencing elem and every next index cleared. It returns the block's base
// index, or ErrArenaFull when the capacity cap is reached.
func (a *arena[K]) allocBlock(elem *element.Element[K]) (uint32, error) {
	if a.capacity > 0 && a.live >= a.capacity {
		return nilIdx, ErrArenaFull
	}

	var base uint32
	if n := len(a.free); n > 0 {
		base = a.free[n-1]
		a.free = a.free[:n-1]
		for i := 0; i < a.levels; i++ {
			a.recs[base+uint32(i)] = record[K]{elem: elem}
		}
	} else {
		base = uint32(len(a.recs))
		for i := 0; i < a.levels; i++ {
			a.recs = append(a.recs, record[K]{elem: elem})
		}
	}

	a.live++
	return base, nil
}

// freeBlock clears a block and returns it to the free list. The caller must
// have unlinked the block from every level first: a block still reachable
// from any head would dangle once its records are cleared.
func (a *arena[K]) freeBlock(base uint32) {
	for i := 0; i < a.levels; i++ {
		a.recs[base+uint32(i)] = record[K]{}
	}
	a.free = append(a.free, base)
	a.live--
}

// rec returns the record at idx. The pointer is invalidated by the next
// allocBlock call, so it must not be retained across allocations.
func (a *arena[K]) rec(idx uint32) *record[K] {
	return &a.recs[idx]
}
