//go:build unix

package fileutil

import (
	"errors"
	"runtime"

	"golang.org/x/sys/unix"
)

const openNoFollow = unix.O_NOFOLLOW

// isSymlinkLoop reports whether an O_NOFOLLOW open failed because the final
// path component is a symbolic link. FreeBSD reports EMLINK instead of ELOOP.
func isSymlinkLoop(err error) bool {
	if errors.Is(err, unix.ELOOP) {
		return true
	}
	return runtime.GOOS == "freebsd" && errors.Is(err, unix.EMLINK)
}
