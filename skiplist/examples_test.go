package skiplist

import (
	"cmp"
	"fmt"

	"github.com/repmop/datalib/element"
)

func ExampleList_Insert() {
	list, _ := New[int](cmp.Compare[int])
	list.Insert(element.Pack([]byte("one"), 1))
	list.Insert(element.Pack([]byte("two"), 2))
	fmt.Println(list.Len())
	// Output: 2
}

func ExampleList_Search() {
	list, _ := New[string](cmp.Compare[string])
	list.Insert(element.Pack([]byte("payload"), "a"))
	e, ok := list.Search("a")
	fmt.Printf("%s %t\n", e.Value(), ok)
	_, ok = list.Search("b")
	fmt.Println(ok)
	// Output: payload true
	// false
}

func ExampleList_Delete() {
	list, _ := New[int](cmp.Compare[int])
	list.Insert(element.Pack([]byte("one"), 1))
	list.Insert(element.Pack([]byte("two"), 2))
	fmt.Println(list.Delete(1))
	fmt.Println(list.Delete(1))
	fmt.Println(list.Len())
	// Output: true
	// false
	// 1
}

func ExampleList_Render() {
	// A replayed random source keeps promotion deterministic: all-ones
	// draws roll height 1 for every insert after the first.
	src := &stubRandSource{values: []uint64{^uint64(0)}}
	list, _ := New[int](cmp.Compare[int], WithLevels(2), WithRandSource(src))
	list.Insert(element.Pack(nil, 1))
	list.Insert(element.Pack(nil, 3))
	list.Insert(element.Pack(nil, 2))
	fmt.Print(list.Render())
	// Output: level 1: |1| -|
	// level 0: |1| -> |2| -> |3| -|
}

func ExampleList_Iterator() {
	list, _ := New[int](cmp.Compare[int])
	list.Insert(element.Pack([]byte("three"), 3))
	list.Insert(element.Pack([]byte("one"), 1))
	list.Insert(element.Pack([]byte("two"), 2))
	it := list.Iterator()
	for it.Next() {
		fmt.Printf("%d:%s ", it.Key(), it.Element().Value())
	}
	fmt.Println()
	// Output: 1:one 2:two 3:three
}
