package fileutil

import (
	"errors"
	"io/fs"
	"os"
)

// GetContents reads the whole file at path.
func GetContents(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	op := OpRead
	var pe *fs.PathError
	if errors.As(err, &pe) && pe.Op == "open" {
		op = OpOpen
	}
	return nil, newError(op, path, err)
}
