//go:build windows

package fileutil

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync flushes file data and metadata using FlushFileBuffers.
func fdatasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// syncDir is a no-op: directory handles cannot be flushed on Windows and
// MoveFileEx already persists the rename.
func syncDir(string) error { return nil }
