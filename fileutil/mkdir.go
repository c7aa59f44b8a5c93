package fileutil

import (
	"os"
)

// MkdirWithParents creates path and any missing parents with perm. An
// existing directory is not an error; an existing non-directory anywhere in
// the path is CodeNotDir.
func MkdirWithParents(path string, perm os.FileMode) error {
	if path == "" {
		return &Error{Op: OpMkdir, Code: CodeInval, Path: path}
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return newError(OpMkdir, path, err)
	}
	return nil
}
