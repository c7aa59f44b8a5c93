package fileutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sailfishos-mirror/glib/internal/logger"
)

// Flags control the safety guarantees of SetContentsFull.
type Flags uint

const (
	// None truncates and writes the target in place.
	None Flags = 0
	// Consistent writes a temporary file and renames it over the target.
	Consistent Flags = 1 << 0
	// Durable fsyncs the data, and with Consistent the directory too.
	Durable Flags = 1 << 1
	// OnlyExisting limits fsyncs to targets that already hold data.
	OnlyExisting Flags = 1 << 2
)

// DefaultMode is the creation mode used by SetContents, before the umask.
const DefaultMode os.FileMode = 0o666

func (f Flags) String() string {
	if f == None {
		return "none"
	}
	var parts []string
	if f&Consistent != 0 {
		parts = append(parts, "consistent")
	}
	if f&Durable != 0 {
		parts = append(parts, "durable")
	}
	if f&OnlyExisting != 0 {
		parts = append(parts, "only-existing")
	}
	return strings.Join(parts, "|")
}

// SetContents replaces the contents of path with data using
// Consistent|OnlyExisting and mode 0666.
func SetContents(path string, data []byte) error {
	return SetContentsFull(path, data, Consistent|OnlyExisting, DefaultMode)
}

// SetContentsFull replaces the contents of path with data.
//
// perm applies when a new file is created. In Consistent mode an existing
// target's permission bits are carried over to the replacement. If the target
// is a symbolic link, non-Consistent writes fall back to Consistent mode so the
// link is replaced instead of followed.
func SetContentsFull(path string, data []byte, flags Flags, perm os.FileMode) error {
	if path == "" {
		return &Error{Op: OpOpen, Code: CodeInval, Path: path}
	}
	if flags&Consistent != 0 {
		return setConsistent(path, data, flags, perm)
	}
	return setDirect(path, data, flags, perm)
}

func setConsistent(path string, data []byte, flags Flags, perm os.FileMode) error {
	f, err := MkstempFull(path+".XXXXXX", os.O_RDWR, perm)
	if err != nil {
		return err
	}
	tmpPath := f.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		if rerr := os.Remove(tmpPath); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
			logger.L.Warn("temp file cleanup failed", "path", tmpPath, "error", rerr)
		}
	}()

	// Carry the old file's mode over, not just the one requested by perm.
	if st, err := os.Stat(path); err == nil {
		mode := st.Mode() & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)
		if err := f.Chmod(mode); err != nil {
			f.Close()
			return newError(OpChmod, tmpPath, err)
		}
	}

	doSync := shouldFsync(path, flags)
	if err := writeToFile(f, data, tmpPath, doSync); err != nil {
		return err
	}
	if err := renameFile(tmpPath, path, doSync && flags&Durable != 0); err != nil {
		return err
	}
	committed = true
	logger.L.Debug("contents replaced", "path", path, "bytes", len(data), "flags", flags, "fsync", doSync)
	return nil
}

func setDirect(path string, data []byte, flags Flags, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|openNoFollow, perm)
	if err != nil {
		if isSymlinkLoop(err) {
			logger.L.Debug("target is a symlink, replacing it", "path", path)
			return setConsistent(path, data, flags|Consistent, perm)
		}
		return newError(OpOpen, path, err)
	}

	// Decide before truncating, otherwise OnlyExisting always sees an empty file.
	doSync := shouldFsync(path, flags)

	for {
		err = f.Truncate(0)
		if !errors.Is(err, syscall.EINTR) {
			break
		}
	}
	if err != nil {
		f.Close()
		return newError(OpTruncate, path, err)
	}

	if err := writeToFile(f, data, path, doSync); err != nil {
		return err
	}
	logger.L.Debug("contents written in place", "path", path, "bytes", len(data), "flags", flags, "fsync", doSync)
	return nil
}

// shouldFsync reports whether the data written for path must be flushed
// before the write is considered complete.
func shouldFsync(path string, flags Flags) bool {
	if flags&(Consistent|Durable) == 0 {
		return false
	}
	if flags&OnlyExisting == 0 {
		return true
	}
	st, err := os.Lstat(path)
	switch {
	case err == nil:
		return st.Size() > 0
	case errors.Is(err, fs.ErrNotExist):
		return false
	default:
		// Cannot tell whether data is at risk.
		return true
	}
}

// writeToFile writes all of data to f, optionally fsyncs it, and closes f.
// f is closed on every path.
func writeToFile(f *os.File, data []byte, path string, doSync bool) error {
	preallocate(f, len(data))

	for len(data) > 0 {
		n, err := fileWrite(f, data)
		if n > 0 {
			data = data[n:]
		}
		if err == nil && n == 0 {
			err = io.ErrShortWrite
		}
		if err != nil {
			if errors.Is(err, syscall.EINTR) || (errors.Is(err, io.ErrShortWrite) && n > 0) {
				continue
			}
			f.Close()
			return newError(OpWrite, path, err)
		}
	}

	if doSync {
		if err := fileSync(f); err != nil {
			f.Close()
			return newError(OpSync, path, err)
		}
	}

	if err := f.Close(); err != nil {
		return newError(OpClose, path, err)
	}
	return nil
}

// renameFile moves oldpath over newpath, fsyncing the parent directory when
// syncParent is set. A failed directory fsync is logged, not returned: the
// rename itself already happened.
func renameFile(oldpath, newpath string, syncParent bool) error {
	if err := fileRename(oldpath, newpath); err != nil {
		e := newError(OpRename, oldpath, err)
		e.Dest = newpath
		return e
	}
	if syncParent {
		dir := filepath.Dir(newpath)
		if err := syncDir(dir); err != nil {
			logger.L.Warn("directory fsync failed", "dir", dir, "error", err)
		}
	}
	return nil
}
