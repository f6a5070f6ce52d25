package skiplist

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Render returns a per-level listing of the structure for inspection, top
// level first. Each line is the level index followed by the ordered key
// sequence and the end-of-level marker:
//
//	level 1: |2| -> |7| -|
//	level 0: |2| -> |5| -> |7| -|
//
// Rendering never mutates the list. Every level walk is bounded by the
// number of live elements, so a corrupted structure trips a panic instead
// of looping forever.
func (l *List[K]) Render() string {
	var b strings.Builder
	for i := l.cfg.levels - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "level %d:", i)
		guard := l.length
		for cur := l.heads[i]; cur != nilIdx; cur = l.arena.rec(cur).next {
			if guard == 0 {
				panic(errors.Wrapf(ErrCorrupted, "cycle rendering level %d", i))
			}
			guard--
			if cur != l.heads[i] {
				b.WriteString(" ->")
			}
			fmt.Fprintf(&b, " |%v|", l.keyAt(cur))
		}
		b.WriteString(" -|\n")
	}
	return b.String()
}
