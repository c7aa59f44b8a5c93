package array

import (
	"fmt"
	"iter"

	"github.com/sailfishos-mirror/glib/internal/growbuf"
)

// Array is a growable array of values.
type Array[T any] struct {
	buf *growbuf.Buffer[T]
}

// New creates an empty array. With zeroTerminated set, a zero-valued element
// is kept after the last one; with clear set, slots exposed by SetSize or by
// inserting past the end are zero-filled.
func New[T any](zeroTerminated, clear bool) *Array[T] {
	return SizedNew[T](zeroTerminated, clear, 0)
}

// SizedNew is New with room reserved for reserved elements.
func SizedNew[T any](zeroTerminated, clear bool, reserved int) *Array[T] {
	return &Array[T]{buf: growbuf.New[T](growbuf.Options{
		Terminated: zeroTerminated,
		Clear:      clear,
		Reserved:   reserved,
	})}
}

// NewTake creates an array that owns data. The caller must not use data
// afterwards.
func NewTake[T any](data []T, clear bool) *Array[T] {
	return &Array[T]{buf: growbuf.Take(data, len(data), growbuf.Options{Clear: clear})}
}

// NewTakeZeroTerminated creates a zero-terminated array owning data, whose
// length is the index of the first zero element. A terminator is added when
// data has none.
func NewTakeZeroTerminated[T comparable](data []T, clear bool) *Array[T] {
	var zero T
	n := len(data)
	for i, v := range data {
		if v == zero {
			n = i
			break
		}
	}
	if n == len(data) {
		data = append(data[:n:n], zero)
	}
	return &Array[T]{buf: growbuf.Take(data, n, growbuf.Options{Terminated: true, Clear: clear})}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.buf.Len() }

// Cap returns the number of allocated slots, including the terminator.
func (a *Array[T]) Cap() int { return a.buf.Cap() }

// ElementSize returns the size of one element in bytes.
func (a *Array[T]) ElementSize() int { return a.buf.ElemSize() }

// IsZeroTerminated reports whether the array keeps a terminator slot.
func (a *Array[T]) IsZeroTerminated() bool { return a.buf.Terminated() }

// Index returns element i.
func (a *Array[T]) Index(i int) T { return *a.buf.At(i) }

// At returns a pointer to element i, valid until the array next grows.
func (a *Array[T]) At(i int) *T { return a.buf.At(i) }

// Set replaces element i without running the clear function.
func (a *Array[T]) Set(i int, v T) { *a.buf.At(i) = v }

// Data returns the elements as a slice aliasing the array.
func (a *Array[T]) Data() []T { return a.buf.Data() }

// All iterates over index/element pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.buf.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// AppendVals adds vals to the end of the array.
func (a *Array[T]) AppendVals(vals ...T) *Array[T] {
	a.buf.Append(vals...)
	return a
}

// PrependVals adds vals to the start of the array. Existing elements move up.
func (a *Array[T]) PrependVals(vals ...T) *Array[T] {
	a.buf.Prepend(vals...)
	return a
}

// InsertVals inserts vals at index. If index is past the end, the array is
// extended first and the gap is zero-filled when the array clears new slots.
func (a *Array[T]) InsertVals(index int, vals ...T) *Array[T] {
	a.buf.Insert(index, vals...)
	return a
}

// SetSize sets the number of elements. Shrinking runs the clear function on
// the dropped tail.
func (a *Array[T]) SetSize(n int) *Array[T] {
	a.buf.SetLength(n)
	return a
}

// RemoveIndex removes element i, moving the following elements down.
func (a *Array[T]) RemoveIndex(i int) *Array[T] {
	a.buf.RemoveIndex(i, false, true)
	return a
}

// RemoveIndexFast removes element i by moving the last element into its place.
func (a *Array[T]) RemoveIndexFast(i int) *Array[T] {
	a.buf.RemoveIndex(i, true, true)
	return a
}

// RemoveRange removes n elements starting at index.
func (a *Array[T]) RemoveRange(index, n int) *Array[T] {
	a.buf.RemoveRange(index, n)
	return a
}

// Sort sorts the array with cmp, which returns a negative number when a < b,
// zero when a == b and a positive number when a > b. The sort is stable.
func (a *Array[T]) Sort(cmp func(a, b T) int) {
	a.buf.Sort(cmp)
}

// BinarySearch reports whether target is in the array, which must already be
// sorted by cmp. When it occurs more than once, the lowest index is returned.
func (a *Array[T]) BinarySearch(target T, cmp func(a, b T) int) (int, bool) {
	return a.buf.BinarySearch(target, cmp)
}

// SetClearFunc sets a function called with a pointer to each element that is
// removed, or that is still present when the array is destroyed.
func (a *Array[T]) SetClearFunc(fn func(*T)) {
	a.buf.SetClearFunc(fn)
}

// Ref increments the reference count.
func (a *Array[T]) Ref() *Array[T] {
	a.buf.Ref()
	return a
}

// Unref decrements the reference count, destroying the array when it drops to zero.
func (a *Array[T]) Unref() {
	a.buf.Unref()
}

// Free drops a reference. With freeSegment the elements are cleared and nil
// is returned; otherwise the elements are returned to the caller. If other
// references remain the array stays valid but empty.
func (a *Array[T]) Free(freeSegment bool) []T {
	return a.buf.Free(freeSegment)
}

// Steal returns the elements and leaves the array empty, without running the
// clear function.
func (a *Array[T]) Steal() []T {
	return a.buf.Steal()
}

// Copy returns a shallow copy with a reference count of one. The clear
// function is not copied.
func (a *Array[T]) Copy() *Array[T] {
	return &Array[T]{buf: a.buf.Copy()}
}

// String implements fmt.Stringer.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.buf.Data())
}
