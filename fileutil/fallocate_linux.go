//go:build linux

package fileutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// preallocate reserves size bytes for f. Failure is ignored: the write that
// follows reports any real space problem.
func preallocate(f *os.File, size int) {
	if size <= 0 {
		return
	}
	_ = unix.Fallocate(int(f.Fd()), 0, 0, int64(size))
}
