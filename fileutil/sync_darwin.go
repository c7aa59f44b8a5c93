//go:build darwin

package fileutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data to the physical disk.
//
// On macOS fsync() only reaches the drive cache; F_FULLFSYNC is needed for
// power-loss durability. Some file systems reject it, so fall back to fsync.
func fdatasync(f *os.File) error {
	if _, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(int(f.Fd()))
}

func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	return unix.Fsync(fd)
}
