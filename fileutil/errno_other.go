//go:build !unix

package fileutil

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrorFromErrno maps an OS error number onto the ErrorCode taxonomy.
// Platforms without errno values only distinguish the portable fs errors.
func ErrorFromErrno(errno syscall.Errno) ErrorCode {
	switch {
	case errors.Is(errno, fs.ErrNotExist):
		return CodeNoEnt
	case errors.Is(errno, fs.ErrExist):
		return CodeExist
	case errors.Is(errno, fs.ErrPermission):
		return CodeAccess
	default:
		return CodeFailed
	}
}
