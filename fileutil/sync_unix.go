//go:build linux || freebsd

package fileutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data to stable storage.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// syncDir fsyncs a directory so a rename inside it survives a crash.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	return unix.Fsync(fd)
}
