// Package fileutil writes, reads and creates files with explicit durability
// guarantees.
//
// # Writing
//
// SetContentsFull replaces a file's contents. Flags pick the point on the
// speed/safety spectrum:
//
//   - None writes straight into the target after truncating it. A crash can
//     leave the file empty or partially written.
//   - Consistent writes a sibling temporary file and renames it over the
//     target, so readers see either the old or the new contents.
//   - Durable fsyncs the data before returning. Combined with Consistent the
//     containing directory is fsynced after the rename as well.
//   - OnlyExisting skips the fsyncs when the target is missing or empty,
//     since no previous data is at risk.
//
// SetContents is the common case: Consistent|OnlyExisting with mode 0666.
//
// # Errors
//
// Every failure is an *Error carrying the operation that failed and a
// platform-independent ErrorCode:
//
//	err := fileutil.SetContents(path, data)
//	if errors.Is(err, fileutil.CodeNoSpace) {
//	    // disk full
//	}
//
// In Consistent mode the temporary file is removed before an error is
// returned and the target is left untouched.
//
// # Blocking
//
// All functions block on file system I/O and fsync can take a long time on
// rotating media. Call them off latency-sensitive goroutines.
package fileutil
