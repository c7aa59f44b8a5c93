package fileutil

import (
	"os"
	"sync/atomic"
)

// I/O hooks let tests inject short writes, fsync failures and rename
// failures without relying on file system quirks. Hooks are global; tests
// that install one must not run in parallel with other hook users.

type (
	writeHookFn  func(f *os.File, p []byte) (int, error)
	syncHookFn   func(f *os.File) error
	renameHookFn func(oldpath, newpath string) error
)

var (
	writeHook  atomic.Pointer[writeHookFn]
	syncHook   atomic.Pointer[syncHookFn]
	renameHook atomic.Pointer[renameHookFn]
)

// installHook stores hook in slot and returns a restore function.
// Passing nil removes any previously-installed hook.
func installHook[F any](slot *atomic.Pointer[F], hook *F) func() {
	prev := slot.Swap(hook)
	return func() { slot.Store(prev) }
}

func setWriteHook(h writeHookFn) func() {
	if h == nil {
		return installHook(&writeHook, nil)
	}
	return installHook(&writeHook, &h)
}

func setSyncHook(h syncHookFn) func() {
	if h == nil {
		return installHook(&syncHook, nil)
	}
	return installHook(&syncHook, &h)
}

func setRenameHook(h renameHookFn) func() {
	if h == nil {
		return installHook(&renameHook, nil)
	}
	return installHook(&renameHook, &h)
}

func fileWrite(f *os.File, p []byte) (int, error) {
	if hook := writeHook.Load(); hook != nil {
		return (*hook)(f, p)
	}
	return f.Write(p)
}

func fileSync(f *os.File) error {
	if hook := syncHook.Load(); hook != nil {
		return (*hook)(f)
	}
	return fdatasync(f)
}

func fileRename(oldpath, newpath string) error {
	if hook := renameHook.Load(); hook != nil {
		return (*hook)(oldpath, newpath)
	}
	return os.Rename(oldpath, newpath)
}
