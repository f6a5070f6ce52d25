package skiplist

import "github.com/repmop/datalib/element"

// Iterator provides a forward-only view over the base level, which contains
// every element in key order. Mutating the list invalidates any outstanding
// iterator.
type Iterator[K any] struct {
	l       *List[K]
	current uint32
	started bool
}

// Iterator returns a new iterator positioned before the first element.
func (l *List[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{l: l}
}

// Next advances the iterator and reports whether it landed on an element.
func (it *Iterator[K]) Next() bool {
	if it == nil || it.l == nil {
		return false
	}
	if !it.started {
		it.started = true
		it.current = it.l.heads[0]
	} else if it.current != nilIdx {
		it.current = it.l.arena.rec(it.current).next
	}
	return it.current != nilIdx
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K]) Valid() bool {
	return it != nil && it.started && it.current != nilIdx
}

// Element returns the element at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K]) Element() *element.Element[K] {
	if !it.Valid() {
		return nil
	}
	return it.l.arena.rec(it.current).elem
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K]) Key() K {
	var zero K
	if !it.Valid() {
		return zero
	}
	return it.l.keyAt(it.current)
}
