package array

import (
	"fmt"
	"iter"

	"github.com/sailfishos-mirror/glib/internal/growbuf"
)

// PtrArray is a growable array of references. The zero value of T plays the
// role of a null reference: SetSize fills with it and a null-terminated array
// keeps one after the last element.
//
// Vacated slots are always reset to the zero value so the garbage collector
// can reclaim what they pointed to.
type PtrArray[T comparable] struct {
	buf      *growbuf.Buffer[T]
	freeFunc func(T)
}

// NewPtrArray creates an empty array without a free function.
func NewPtrArray[T comparable]() *PtrArray[T] {
	return NewPtrArrayNullTerminated[T](0, nil, false)
}

// SizedNewPtrArray creates an empty array with room for reserved elements.
func SizedNewPtrArray[T comparable](reserved int) *PtrArray[T] {
	return NewPtrArrayNullTerminated[T](reserved, nil, false)
}

// NewPtrArrayWithFreeFunc creates an empty array whose elements are passed
// to free when they are removed or when the array is destroyed.
func NewPtrArrayWithFreeFunc[T comparable](free func(T)) *PtrArray[T] {
	return NewPtrArrayNullTerminated(0, free, false)
}

// NewPtrArrayFull combines SizedNewPtrArray and NewPtrArrayWithFreeFunc.
func NewPtrArrayFull[T comparable](reserved int, free func(T)) *PtrArray[T] {
	return NewPtrArrayNullTerminated(reserved, free, false)
}

// NewPtrArrayNullTerminated is NewPtrArrayFull with optional null termination.
func NewPtrArrayNullTerminated[T comparable](reserved int, free func(T), nullTerminated bool) *PtrArray[T] {
	a := &PtrArray[T]{buf: growbuf.New[T](growbuf.Options{
		Terminated: nullTerminated,
		Clear:      true,
		Scrub:      true,
		Reserved:   reserved,
	})}
	a.SetFreeFunc(free)
	return a
}

// NewPtrArrayTake creates an array owning data.
func NewPtrArrayTake[T comparable](data []T, free func(T)) *PtrArray[T] {
	a := &PtrArray[T]{buf: growbuf.Take(data, len(data), growbuf.Options{Clear: true, Scrub: true})}
	a.SetFreeFunc(free)
	return a
}

// NewPtrArrayTakeNullTerminated creates a null-terminated array owning data,
// whose length is the index of the first zero element.
func NewPtrArrayTakeNullTerminated[T comparable](data []T, free func(T)) *PtrArray[T] {
	n := nullIndex(data)
	if n == len(data) {
		var zero T
		data = append(data[:n:n], zero)
	}
	a := &PtrArray[T]{buf: growbuf.Take(data, n, growbuf.Options{Terminated: true, Clear: true, Scrub: true})}
	a.SetFreeFunc(free)
	return a
}

// NewPtrArrayFromArray creates an array holding copies of data. When copyFn
// is nil the elements are copied as-is.
func NewPtrArrayFromArray[T comparable](data []T, copyFn func(T) T, free func(T)) *PtrArray[T] {
	return newPtrArrayFrom(data, copyFn, free, false)
}

// NewPtrArrayFromNullTerminatedArray is NewPtrArrayFromArray for data that
// ends at its first zero element. The result is null-terminated.
func NewPtrArrayFromNullTerminatedArray[T comparable](data []T, copyFn func(T) T, free func(T)) *PtrArray[T] {
	return newPtrArrayFrom(data[:nullIndex(data)], copyFn, free, true)
}

func newPtrArrayFrom[T comparable](data []T, copyFn func(T) T, free func(T), nullTerminated bool) *PtrArray[T] {
	a := NewPtrArrayNullTerminated(len(data), free, nullTerminated)
	if copyFn == nil {
		a.buf.Append(data...)
		return a
	}
	for _, v := range data {
		a.buf.Append(copyFn(v))
	}
	return a
}

func nullIndex[T comparable](data []T) int {
	var zero T
	for i, v := range data {
		if v == zero {
			return i
		}
	}
	return len(data)
}

// SetFreeFunc sets the function run on elements that are removed or still
// present when the array is destroyed. A nil free disables it.
func (a *PtrArray[T]) SetFreeFunc(free func(T)) {
	a.freeFunc = free
	if free == nil {
		a.buf.SetClearFunc(nil)
		return
	}
	a.buf.SetClearFunc(func(p *T) { a.freeFunc(*p) })
}

// IsNullTerminated reports whether a zero value is kept after the last element.
func (a *PtrArray[T]) IsNullTerminated() bool { return a.buf.Terminated() }

// Len returns the number of elements.
func (a *PtrArray[T]) Len() int { return a.buf.Len() }

// Index returns element i.
func (a *PtrArray[T]) Index(i int) T { return *a.buf.At(i) }

// Data returns the elements as a slice aliasing the array.
func (a *PtrArray[T]) Data() []T { return a.buf.Data() }

// All iterates over index/element pairs.
func (a *PtrArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.buf.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Add appends v.
func (a *PtrArray[T]) Add(v T) {
	a.buf.Append(v)
}

// Insert places v at index, or appends it when index is -1.
func (a *PtrArray[T]) Insert(index int, v T) {
	n := a.buf.Len()
	if index < -1 || index > n {
		panic(fmt.Sprintf("array: insert index %d out of range [-1,%d]", index, n))
	}
	if index == -1 {
		index = n
	}
	a.buf.Insert(index, v)
}

// SetSize sets the number of elements. New slots hold the zero value;
// shrinking frees the dropped tail.
func (a *PtrArray[T]) SetSize(n int) {
	a.buf.SetLength(n)
}

// RemoveIndex removes element i, frees it and returns it.
func (a *PtrArray[T]) RemoveIndex(i int) T {
	return a.buf.RemoveIndex(i, false, true)
}

// RemoveIndexFast is RemoveIndex that fills the hole with the last element.
func (a *PtrArray[T]) RemoveIndexFast(i int) T {
	return a.buf.RemoveIndex(i, true, true)
}

// StealIndex removes element i without freeing it and returns it.
func (a *PtrArray[T]) StealIndex(i int) T {
	return a.buf.RemoveIndex(i, false, false)
}

// StealIndexFast is StealIndex that fills the hole with the last element.
func (a *PtrArray[T]) StealIndexFast(i int) T {
	return a.buf.RemoveIndex(i, true, false)
}

// RemoveRange frees and removes n elements starting at index.
func (a *PtrArray[T]) RemoveRange(index, n int) {
	a.buf.RemoveRange(index, n)
}

// Remove frees and removes the first occurrence of v, preserving order.
func (a *PtrArray[T]) Remove(v T) bool {
	i, ok := a.Find(v)
	if ok {
		a.buf.RemoveIndex(i, false, true)
	}
	return ok
}

// RemoveFast is Remove that fills the hole with the last element.
func (a *PtrArray[T]) RemoveFast(v T) bool {
	i, ok := a.Find(v)
	if ok {
		a.buf.RemoveIndex(i, true, true)
	}
	return ok
}

// Find returns the index of the first element equal to needle.
func (a *PtrArray[T]) Find(needle T) (int, bool) {
	for i, v := range a.buf.Data() {
		if v == needle {
			return i, true
		}
	}
	return -1, false
}

// FindWithEqualFunc is Find with a caller-supplied equality. A nil eq
// compares with ==.
func (a *PtrArray[T]) FindWithEqualFunc(needle T, eq func(a, b T) bool) (int, bool) {
	if eq == nil {
		return a.Find(needle)
	}
	for i, v := range a.buf.Data() {
		if eq(v, needle) {
			return i, true
		}
	}
	return -1, false
}

// Foreach calls fn on every element in order.
func (a *PtrArray[T]) Foreach(fn func(T)) {
	for _, v := range a.buf.Data() {
		fn(v)
	}
}

// Extend appends the elements of src, transformed by copyFn when it is not nil.
// src may be a itself.
func (a *PtrArray[T]) Extend(src *PtrArray[T], copyFn func(T) T) {
	vals := src.buf.Data()
	if len(vals) == 0 {
		return
	}
	if copyFn == nil {
		a.buf.Append(vals...)
		return
	}
	copied := make([]T, len(vals))
	for i, v := range vals {
		copied[i] = copyFn(v)
	}
	a.buf.Append(copied...)
}

// ExtendAndSteal moves every element of src into a and drops the caller's
// reference to src. The moved elements are not freed.
func (a *PtrArray[T]) ExtendAndSteal(src *PtrArray[T]) {
	a.Extend(src, nil)
	src.buf.Steal()
	src.Unref()
}

// Sort sorts the array with cmp. The sort is stable.
func (a *PtrArray[T]) Sort(cmp func(a, b T) int) {
	a.buf.Sort(cmp)
}

// BinarySearch reports the lowest index holding target in an array sorted by cmp.
func (a *PtrArray[T]) BinarySearch(target T, cmp func(a, b T) int) (int, bool) {
	return a.buf.BinarySearch(target, cmp)
}

// Copy returns a new array with the same free function and termination,
// whose elements are produced by copyFn (or copied as-is when it is nil).
func (a *PtrArray[T]) Copy(copyFn func(T) T) *PtrArray[T] {
	c := NewPtrArrayNullTerminated(a.buf.Len(), a.freeFunc, a.buf.Terminated())
	c.Extend(a, copyFn)
	return c
}

// Steal returns the elements and leaves the array empty, without freeing them.
func (a *PtrArray[T]) Steal() []T {
	return a.buf.Steal()
}

// Ref increments the reference count.
func (a *PtrArray[T]) Ref() *PtrArray[T] {
	a.buf.Ref()
	return a
}

// Unref decrements the reference count, freeing every element and the array
// when it drops to zero.
func (a *PtrArray[T]) Unref() {
	a.buf.Unref()
}

// Free drops a reference. With freeSegment the elements are freed and nil is
// returned; otherwise they are returned to the caller. A null-terminated
// array never returns a nil slice in that case.
func (a *PtrArray[T]) Free(freeSegment bool) []T {
	nullTerminated := a.buf.Terminated()
	segment := a.buf.Free(freeSegment)
	if !freeSegment && segment == nil && nullTerminated {
		segment = make([]T, 0, 1)
	}
	return segment
}
