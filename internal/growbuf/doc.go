// Package growbuf implements the growable, reference-counted block that backs
// every array type in this module.
//
// # Growth policy
//
// A Buffer grows to the next power of two number of bytes that can hold the
// requested element count, never less than MinBlockSize bytes. When the
// buffer keeps a terminator slot, that slot is part of the request, so
// Cap() >= Len()+1 holds whenever storage is allocated.
//
// # Failure model
//
// Contract violations (out-of-range indexes, zero-sized element types, use
// after the last reference was dropped) panic. Growth that would overflow the
// address space is fatal: the diagnostic is logged and the process exits,
// because continuing would corrupt memory.
//
// # Concurrency
//
// Ref and Unref are atomic and may be called from any goroutine. Every other
// method mutates or reads the contents and must be serialized by the caller.
package growbuf
