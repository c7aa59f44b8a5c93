package array

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_AppendTwentyInt32(t *testing.T) {
	a := New[int32](false, false)
	assert.Equal(t, 4, a.ElementSize())
	assert.Zero(t, a.Cap())

	for i := int32(0); i < 20; i++ {
		a.AppendVals(i)
	}
	require.Equal(t, 20, a.Len())
	for i := 0; i < 20; i++ {
		assert.Equal(t, int32(i), a.Index(i))
	}
}

func TestArray_ZeroTerminated(t *testing.T) {
	a := New[uint16](true, false)
	assert.True(t, a.IsZeroTerminated())
	assert.Greater(t, a.Cap(), 0, "terminated arrays allocate up front")

	a.AppendVals(1, 2, 3)
	full := a.Data()[:a.Len()+1]
	assert.Equal(t, []uint16{1, 2, 3, 0}, full)

	a.RemoveIndex(0)
	full = a.Data()[:a.Len()+1]
	assert.Equal(t, []uint16{2, 3, 0}, full)
}

func TestArray_ChainingAndInsert(t *testing.T) {
	a := SizedNew[string](false, true, 8)
	a.AppendVals("c").PrependVals("a").InsertVals(1, "b").InsertVals(5, "f")
	assert.Equal(t, []string{"a", "b", "c", "", "", "f"}, a.Data())

	a.RemoveRange(3, 2).RemoveIndexFast(0)
	assert.Equal(t, []string{"f", "b", "c"}, a.Data())
	assert.Equal(t, "[f b c]", a.String())
}

func TestArray_ClearFuncReceivesPointer(t *testing.T) {
	type resource struct {
		name   string
		closed bool
	}
	a := New[resource](false, false)
	var closed []string
	a.SetClearFunc(func(r *resource) {
		r.closed = true
		closed = append(closed, r.name)
	})
	a.AppendVals(resource{name: "x"}, resource{name: "y"}, resource{name: "z"})

	a.RemoveIndex(1)
	assert.Equal(t, []string{"y"}, closed)

	a.SetSize(1)
	assert.Equal(t, []string{"y", "z"}, closed)

	a.Unref()
	assert.Equal(t, []string{"y", "z", "x"}, closed)
}

func TestArray_SetAndAt(t *testing.T) {
	a := New[int](false, true)
	a.SetSize(3)
	a.Set(1, 5)
	*a.At(2) = 7
	assert.Equal(t, []int{0, 5, 7}, a.Data())
	assert.Panics(t, func() { a.Set(3, 1) })
}

func TestArray_SortAndSearch(t *testing.T) {
	a := New[int](false, false)
	a.AppendVals(9, 4, 4, 1, 7, 4)
	a.Sort(cmp.Compare[int])
	assert.Equal(t, []int{1, 4, 4, 4, 7, 9}, a.Data())

	idx, ok := a.BinarySearch(4, cmp.Compare[int])
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = a.BinarySearch(5, cmp.Compare[int])
	assert.False(t, ok)
}

func TestArray_StableSortOfRecords(t *testing.T) {
	type rec struct {
		group string
		order int
	}
	a := New[rec](false, false)
	a.AppendVals(
		rec{"b", 0}, rec{"a", 1}, rec{"b", 2}, rec{"a", 3}, rec{"c", 4}, rec{"a", 5},
	)
	a.Sort(func(x, y rec) int { return strings.Compare(x.group, y.group) })

	var order []int
	for _, r := range a.All() {
		order = append(order, r.order)
	}
	assert.Equal(t, []int{1, 3, 5, 0, 2, 4}, order)
}

func TestArray_AllStopsEarly(t *testing.T) {
	a := New[int](false, false)
	a.AppendVals(1, 2, 3, 4)
	var seen []int
	for i, v := range a.All() {
		if i == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestArray_StealThenUnrefSkipsClear(t *testing.T) {
	calls := 0
	a := New[int](true, false)
	a.SetClearFunc(func(*int) { calls++ })
	a.AppendVals(1, 2, 3)

	data := a.Steal()
	assert.Equal(t, []int{1, 2, 3}, data)
	assert.Zero(t, a.Len())
	a.Unref()
	assert.Zero(t, calls)
}

func TestArray_FreeSharedKeepsWrapper(t *testing.T) {
	a := New[int](false, false)
	a.AppendVals(1, 2)
	b := a.Ref()

	seg := a.Free(false)
	assert.Equal(t, []int{1, 2}, seg)
	assert.Zero(t, b.Len())
	b.AppendVals(3)
	assert.Equal(t, []int{3}, b.Data())
	b.Unref()
	assert.Panics(t, func() { b.Len() })
}

func TestArray_Copy(t *testing.T) {
	a := New[int](true, true)
	a.AppendVals(1, 2, 3)
	c := a.Copy()
	c.AppendVals(4)
	assert.Equal(t, []int{1, 2, 3}, a.Data())
	assert.Equal(t, []int{1, 2, 3, 4}, c.Data())
	assert.True(t, c.IsZeroTerminated())
}

func TestArray_NewTake(t *testing.T) {
	a := NewTake([]int{5, 6}, false)
	a.AppendVals(7)
	assert.Equal(t, []int{5, 6, 7}, a.Data())

	empty := NewTake[int](nil, false)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Cap())
}

func TestArray_NewTakeZeroTerminated(t *testing.T) {
	a := NewTakeZeroTerminated([]int{3, 2, 1, 0, 9}, false)
	assert.Equal(t, []int{3, 2, 1}, a.Data())
	assert.True(t, a.IsZeroTerminated())

	b := NewTakeZeroTerminated([]int{4, 5}, false)
	assert.Equal(t, []int{4, 5}, b.Data())
	assert.Equal(t, 0, b.Data()[:3][2], "terminator added when missing")

	c := NewTakeZeroTerminated[int](nil, false)
	assert.Zero(t, c.Len())
	c.AppendVals(1)
	assert.Equal(t, []int{1}, c.Data())
}

func TestArray_ContractViolationsPanic(t *testing.T) {
	a := New[int](false, false)
	a.AppendVals(1)
	assert.Panics(t, func() { a.RemoveIndex(1) })
	assert.Panics(t, func() { a.RemoveRange(0, 2) })
	assert.Panics(t, func() { a.InsertVals(-1, 1) })
	assert.Panics(t, func() { a.SetSize(-1) })
	assert.Panics(t, func() { a.Sort(nil) })
	assert.Panics(t, func() { New[struct{}](false, false) })
}
