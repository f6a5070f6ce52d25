package skiplist

import (
	"strings"
	"testing"
)

func TestRenderFormat(t *testing.T) {
	src := &stubRandSource{values: []uint64{^uint64(0)}}
	list := intList(t, WithLevels(3), WithRandSource(src))
	mustInsert(t, list, 4, 6, 5)

	got := list.Render()
	want := "level 2: |4| -|\n" +
		"level 1: |4| -|\n" +
		"level 0: |4| -> |5| -> |6| -|\n"
	if got != want {
		t.Fatalf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	list := intList(t, WithLevels(4))
	mustInsert(t, list, 3, 1, 2)

	before := list.Render()
	after := list.Render()
	if before != after {
		t.Fatal("consecutive renders differ")
	}
	checkInvariants(t, list)
}

func TestRenderGuardTripsOnCycle(t *testing.T) {
	list := intList(t, WithLevels(2))
	mustInsert(t, list, 1, 2)

	// Corrupt the base level into a cycle; Render must panic instead of
	// hanging.
	head := list.heads[0]
	next := list.arena.rec(head).next
	list.arena.rec(next).next = head

	defer func() {
		if recover() == nil {
			t.Fatal("Render on a cyclic level did not panic")
		}
	}()
	list.Render()
}
