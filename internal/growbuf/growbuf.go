package growbuf

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"
	"unsafe"

	"github.com/sailfishos-mirror/glib/internal/buf"
)

// MinBlockSize is the smallest allocation, in bytes, a Buffer ever makes.
const MinBlockSize = 16

// Options configures a new Buffer.
type Options struct {
	// Terminated keeps one zero-valued element allocated after the last
	// live element.
	Terminated bool

	// Clear zero-fills slots exposed by SetLength and by inserting past the end.
	Clear bool

	// Scrub always zeroes vacated slots on removal, regardless of the
	// gc-friendly debug setting.
	Scrub bool

	// Reserved is the initial capacity, in elements, excluding the terminator.
	Reserved int
}

// Buffer is a growable block of T with an explicit capacity policy.
//
// len(b.data) is the capacity. Slots in [length, capacity) are spare; when
// the buffer is terminated, b.data[length] is always the zero value.
type Buffer[T any] struct {
	data       []T
	length     int
	elemSize   int
	terminated bool
	clear      bool
	scrub      bool
	clearFunc  func(*T)
	refs       atomic.Int32
}

// New allocates a Buffer with a reference count of one. Storage is allocated
// immediately only for terminated buffers or a non-zero Reserved count.
func New[T any](opts Options) *Buffer[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if err := ValidateElemSize(size); err != nil {
		panic("growbuf: " + err.Error())
	}
	if opts.Reserved < 0 {
		panic(fmt.Sprintf("growbuf: negative reserved size %d", opts.Reserved))
	}

	b := &Buffer[T]{
		elemSize:   size,
		terminated: opts.Terminated,
		clear:      opts.Clear,
		scrub:      opts.Scrub,
	}
	b.refs.Store(1)

	if b.terminated || opts.Reserved > 0 {
		b.maybeExpand(opts.Reserved)
		b.terminate()
	}
	return b
}

// Take wraps data without copying. The first length elements are live; a
// terminated buffer requires len(data) > length and zeroes data[length].
func Take[T any](data []T, length int, opts Options) *Buffer[T] {
	b := New[T](Options{Clear: opts.Clear, Scrub: opts.Scrub})
	b.terminated = opts.Terminated

	need := length
	if b.terminated {
		need++
	}
	if length < 0 || len(data) < need {
		panic(fmt.Sprintf("growbuf: take of %d elements from a block of %d", length, len(data)))
	}
	if len(data) > 0 {
		b.data = data
	}
	b.length = length
	b.terminate()
	return b
}

// ValidateElemSize rejects element sizes that are zero or too large for the
// byte count of even a single element to stay within half the address space.
func ValidateElemSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("element size must be non-zero, got %d", size)
	}
	if size > math.MaxInt/2-1 {
		return fmt.Errorf("element size %d exceeds maximum %d", size, math.MaxInt/2-1)
	}
	return nil
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	b.checkLive()
	return b.length
}

// Cap returns the number of allocated element slots, including any terminator.
func (b *Buffer[T]) Cap() int {
	b.checkLive()
	return len(b.data)
}

// ElemSize returns the size of T in bytes.
func (b *Buffer[T]) ElemSize() int { return b.elemSize }

// Terminated reports whether a terminator slot is maintained.
func (b *Buffer[T]) Terminated() bool { return b.terminated }

// Data returns the live elements. The slice aliases the buffer and is
// invalidated by any operation that grows it.
func (b *Buffer[T]) Data() []T {
	b.checkLive()
	if b.data == nil {
		return nil
	}
	return b.data[:b.length]
}

// At returns a pointer to element i.
func (b *Buffer[T]) At(i int) *T {
	b.checkLive()
	b.checkIndex(i)
	return &b.data[i]
}

// SetClearFunc installs fn to be called with a pointer to every element that
// is removed or destroyed. Steal does not call it.
func (b *Buffer[T]) SetClearFunc(fn func(*T)) {
	b.checkLive()
	b.clearFunc = fn
}

// Reserve makes room for n more elements without changing the length.
func (b *Buffer[T]) Reserve(n int) {
	b.checkLive()
	if n < 0 {
		panic(fmt.Sprintf("growbuf: negative reserve %d", n))
	}
	b.maybeExpand(n)
	b.terminate()
}

// Append adds vals after the last element.
func (b *Buffer[T]) Append(vals ...T) {
	b.checkLive()
	if len(vals) == 0 {
		return
	}
	b.maybeExpand(len(vals))
	copy(b.data[b.length:], vals)
	b.length += len(vals)
	b.terminate()
}

// Prepend adds vals before the first element, shifting existing ones up.
func (b *Buffer[T]) Prepend(vals ...T) {
	b.checkLive()
	if len(vals) == 0 {
		return
	}
	b.maybeExpand(len(vals))
	copy(b.data[len(vals):], b.data[:b.length])
	copy(b.data, vals)
	b.length += len(vals)
	b.terminate()
}

// Insert places vals at index. An index at or past the end grows the buffer
// first; the gap is zero-filled only when the buffer clears exposed slots.
func (b *Buffer[T]) Insert(index int, vals ...T) {
	b.checkLive()
	if index < 0 {
		panic(fmt.Sprintf("growbuf: negative insert index %d", index))
	}
	if len(vals) == 0 {
		return
	}
	if index >= b.length {
		b.maybeExpand(index - b.length + len(vals))
		b.SetLength(index)
		b.Append(vals...)
		return
	}

	b.maybeExpand(len(vals))
	copy(b.data[index+len(vals):], b.data[index:b.length])
	copy(b.data[index:], vals)
	b.length += len(vals)
	b.terminate()
}

// SetLength grows or shrinks the live region. Shrinking removes the tail
// through RemoveRange, so the clear function runs on every dropped element.
func (b *Buffer[T]) SetLength(n int) {
	b.checkLive()
	if n < 0 {
		panic(fmt.Sprintf("growbuf: negative length %d", n))
	}
	switch {
	case n > b.length:
		b.maybeExpand(n - b.length)
		if b.clear {
			clear(b.data[b.length:n])
		}
		b.length = n
	case n < b.length:
		b.RemoveRange(n, b.length-n)
	}
	b.terminate()
}

// RemoveIndex removes element i and returns its value as it was before the
// clear function ran. With fast set, the last element fills the hole and
// order is not preserved. runClear selects whether the clear function runs.
func (b *Buffer[T]) RemoveIndex(i int, fast, runClear bool) T {
	b.checkLive()
	b.checkIndex(i)

	removed := b.data[i]
	if runClear && b.clearFunc != nil {
		b.clearFunc(&b.data[i])
	}

	last := b.length - 1
	if i != last {
		if fast {
			b.data[i] = b.data[last]
		} else {
			copy(b.data[i:], b.data[i+1:b.length])
		}
	}
	b.length--
	b.vacate(b.length, 1)
	return removed
}

// RemoveRange removes count elements starting at index, running the clear
// function on each of them before the tail is shifted down.
func (b *Buffer[T]) RemoveRange(index, count int) {
	b.checkLive()
	if err := buf.CheckRange(b.length, index, count); err != nil {
		panic("growbuf: remove range: " + err.Error())
	}

	if count == 0 {
		return
	}
	if b.clearFunc != nil {
		for i := index; i < index+count; i++ {
			b.clearFunc(&b.data[i])
		}
	}
	if index+count != b.length {
		copy(b.data[index:], b.data[index+count:b.length])
	}
	b.length -= count
	b.vacate(b.length, count)
}

// Sort orders the live elements by cmp. Elements comparing equal keep their
// relative order.
func (b *Buffer[T]) Sort(cmp func(a, b T) int) {
	b.checkLive()
	if cmp == nil {
		panic("growbuf: nil comparison function")
	}
	if b.length > 1 {
		slices.SortStableFunc(b.data[:b.length], cmp)
	}
}

// BinarySearch looks for target in a buffer sorted ascending by cmp, which is
// called as cmp(element, target). Among equal elements the lowest index is
// returned. The result is meaningless if the buffer is not sorted.
func (b *Buffer[T]) BinarySearch(target T, cmp func(a, b T) int) (int, bool) {
	b.checkLive()
	if cmp == nil {
		panic("growbuf: nil comparison function")
	}

	match := -1
	left, right := 0, b.length-1
	for left <= right {
		middle := left + (right-left)/2
		switch c := cmp(b.data[middle], target); {
		case c == 0:
			match = middle
			right = middle - 1
		case c < 0:
			left = middle + 1
		default:
			right = middle - 1
		}
	}
	return match, match >= 0
}

// Steal detaches the storage and returns the live elements without running
// the clear function. The buffer is left empty and unallocated.
func (b *Buffer[T]) Steal() []T {
	b.checkLive()
	var segment []T
	if b.data != nil {
		segment = b.data[:b.length]
	}
	b.data = nil
	b.length = 0
	return segment
}

// Copy returns a new buffer with the same options, capacity and contents.
// The clear function is not copied.
func (b *Buffer[T]) Copy() *Buffer[T] {
	b.checkLive()
	reserved := len(b.data)
	if b.terminated && reserved > 0 {
		reserved--
	}
	c := New[T](Options{
		Terminated: b.terminated,
		Clear:      b.clear,
		Scrub:      b.scrub,
		Reserved:   reserved,
	})
	if b.length > 0 {
		copy(c.data, b.data[:b.length])
		c.length = b.length
	}
	c.terminate()
	return c
}

// Ref increments the reference count.
func (b *Buffer[T]) Ref() *Buffer[T] {
	if b.refs.Add(1) <= 1 {
		panic("growbuf: ref of a released buffer")
	}
	return b
}

// Unref decrements the reference count. Dropping the last reference runs the
// clear function over every live element and releases the storage.
func (b *Buffer[T]) Unref() {
	switch n := b.refs.Add(-1); {
	case n == 0:
		b.runClearAll()
		b.data = nil
		b.length = 0
	case n < 0:
		panic("growbuf: unref of a released buffer")
	}
}

// Free drops one reference. With freeSegment the elements are cleared and
// nil is returned; otherwise the live elements are handed to the caller.
// If other references remain, the buffer survives but is left empty.
func (b *Buffer[T]) Free(freeSegment bool) []T {
	n := b.refs.Add(-1)
	if n < 0 {
		panic("growbuf: free of a released buffer")
	}

	var segment []T
	if freeSegment {
		b.runClearAll()
	} else if b.data != nil {
		segment = b.data[:b.length]
	}
	b.data = nil
	b.length = 0
	return segment
}

// RefCount returns the current reference count.
func (b *Buffer[T]) RefCount() int {
	return int(b.refs.Load())
}

func (b *Buffer[T]) runClearAll() {
	if b.clearFunc == nil || b.data == nil {
		return
	}
	data := b.data[:b.length]
	b.data = nil
	for i := range data {
		b.clearFunc(&data[i])
	}
}

// maybeExpand guarantees room for n more elements plus the terminator.
func (b *Buffer[T]) maybeExpand(n int) {
	maxLen := buf.MaxElements(b.elemSize, b.terminated)
	if maxLen-b.length < n {
		fatalf("adding %d to array would overflow", n)
	}

	want := b.length + n
	if b.terminated {
		want++
	}
	if want <= len(b.data) {
		return
	}

	wantBytes, _ := buf.MulOverflowSafe(want, b.elemSize)
	alloc := max(buf.NearestPow(wantBytes), MinBlockSize)
	grown := make([]T, alloc/b.elemSize)
	copy(grown, b.data)
	b.data = grown
}

// vacate handles count slots starting at from that just left the live region.
func (b *Buffer[T]) vacate(from, count int) {
	if b.scrub || GCFriendly() {
		clear(b.data[from : from+count])
		return
	}
	b.terminate()
}

func (b *Buffer[T]) terminate() {
	if b.terminated && b.data != nil {
		var zero T
		b.data[b.length] = zero
	}
}

func (b *Buffer[T]) checkIndex(i int) {
	if i < 0 || i >= b.length {
		panic(fmt.Sprintf("growbuf: index %d out of range [0,%d)", i, b.length))
	}
}

func (b *Buffer[T]) checkLive() {
	if b.refs.Load() <= 0 {
		panic("growbuf: use of a released buffer")
	}
}
