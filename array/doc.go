// Package array provides growable, reference-counted arrays.
//
// Three flavours share one growth engine:
//
//   - Array[T] holds values of any type, optionally zero-filling new slots
//     and optionally keeping a zero-valued terminator after the last element.
//   - PtrArray[T] holds references (pointers, interfaces, strings, ...) and
//     runs an optional free function when an element is removed.
//   - ByteArray is an Array[byte] that also implements io.Writer.
//
// # Quick Start
//
//	a := array.New[int32](false, true)
//	for i := int32(0); i < 20; i++ {
//	    a.AppendVals(i)
//	}
//	a.Sort(cmp.Compare[int32])
//	idx, ok := a.BinarySearch(7, cmp.Compare[int32])
//
// # Ownership
//
// Every constructor returns an array with a reference count of one. Ref and
// Unref are safe from any goroutine; dropping the last reference runs the
// clear (or free) function over each live element exactly once. Steal hands
// the elements to the caller without running it.
//
// Contents are not synchronized. Goroutines sharing an array must serialize
// every call other than Ref and Unref.
//
// # Contract violations
//
// Out-of-range indexes and use of an array after its last reference was
// dropped panic. Growth past the addressable maximum terminates the process.
package array
