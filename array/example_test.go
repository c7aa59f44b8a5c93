package array_test

import (
	"cmp"
	"fmt"

	"github.com/sailfishos-mirror/glib/array"
)

func ExampleArray_BinarySearch() {
	a := array.New[int](false, false)
	a.AppendVals(8, 3, 5, 3, 1)
	a.Sort(cmp.Compare[int])

	idx, ok := a.BinarySearch(3, cmp.Compare[int])
	fmt.Println(a.Data(), idx, ok)
	// Output: [1 3 3 5 8] 1 true
}

func ExamplePtrArray_Steal() {
	a := array.NewPtrArrayWithFreeFunc(func(s string) { fmt.Println("free", s) })
	a.Add("kept")
	a.Add("dropped")
	a.RemoveIndex(1)

	owned := a.Steal()
	a.Unref()
	fmt.Println(owned)
	// Output:
	// free dropped
	// [kept]
}
