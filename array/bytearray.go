package array

import (
	"io"
)

// ByteArray is a growable array of bytes.
type ByteArray struct {
	arr *Array[byte]
}

var _ io.Writer = (*ByteArray)(nil)

// NewByteArray creates an empty byte array.
func NewByteArray() *ByteArray {
	return SizedNewByteArray(0)
}

// SizedNewByteArray creates an empty byte array with room for reserved bytes.
func SizedNewByteArray(reserved int) *ByteArray {
	return &ByteArray{arr: SizedNew[byte](false, false, reserved)}
}

// NewByteArrayTake creates a byte array owning data.
func NewByteArrayTake(data []byte) *ByteArray {
	return &ByteArray{arr: NewTake(data, false)}
}

// Len returns the number of bytes.
func (b *ByteArray) Len() int { return b.arr.Len() }

// Bytes returns the contents, aliasing the array.
func (b *ByteArray) Bytes() []byte { return b.arr.Data() }

// String returns the contents as a string.
func (b *ByteArray) String() string { return string(b.arr.Data()) }

// Append adds data to the end.
func (b *ByteArray) Append(data ...byte) *ByteArray {
	b.arr.AppendVals(data...)
	return b
}

// Prepend adds data to the start.
func (b *ByteArray) Prepend(data ...byte) *ByteArray {
	b.arr.PrependVals(data...)
	return b
}

// Write appends p. It never fails.
func (b *ByteArray) Write(p []byte) (int, error) {
	b.arr.AppendVals(p...)
	return len(p), nil
}

// SetSize sets the length. New bytes are not cleared.
func (b *ByteArray) SetSize(n int) *ByteArray {
	b.arr.SetSize(n)
	return b
}

// RemoveIndex removes byte i, moving the following bytes down.
func (b *ByteArray) RemoveIndex(i int) *ByteArray {
	b.arr.RemoveIndex(i)
	return b
}

// RemoveIndexFast removes byte i by moving the last byte into its place.
func (b *ByteArray) RemoveIndexFast(i int) *ByteArray {
	b.arr.RemoveIndexFast(i)
	return b
}

// RemoveRange removes n bytes starting at index.
func (b *ByteArray) RemoveRange(index, n int) *ByteArray {
	b.arr.RemoveRange(index, n)
	return b
}

// Sort sorts the bytes with cmp. The sort is stable.
func (b *ByteArray) Sort(cmp func(a, b byte) int) {
	b.arr.Sort(cmp)
}

// Steal returns the contents and leaves the array empty.
func (b *ByteArray) Steal() []byte {
	return b.arr.Steal()
}

// Ref increments the reference count.
func (b *ByteArray) Ref() *ByteArray {
	b.arr.Ref()
	return b
}

// Unref decrements the reference count.
func (b *ByteArray) Unref() {
	b.arr.Unref()
}

// Free drops a reference, returning the contents unless freeSegment is set.
func (b *ByteArray) Free(freeSegment bool) []byte {
	return b.arr.Free(freeSegment)
}

// FreeToBytes drops a reference and returns the contents. The result is
// never nil.
func (b *ByteArray) FreeToBytes() []byte {
	data := b.arr.Free(false)
	if data == nil {
		data = []byte{}
	}
	return data
}
