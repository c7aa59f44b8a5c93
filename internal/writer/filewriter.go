// Package writer exposes sinks for emitted file contents.
package writer

import (
	"os"

	"github.com/sailfishos-mirror/glib/fileutil"
)

// Sink receives a complete buffer of file contents.
type Sink interface {
	WriteContents(buf []byte) error
}

// FileWriter replaces the file at Path with each buffer it receives.
type FileWriter struct {
	Path  string
	Flags fileutil.Flags
	// Mode applies to newly created files. Zero means fileutil.DefaultMode.
	Mode os.FileMode
}

// NewFileWriter returns a FileWriter with the safe default flags used by
// fileutil.SetContents.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{
		Path:  path,
		Flags: fileutil.Consistent | fileutil.OnlyExisting,
		Mode:  fileutil.DefaultMode,
	}
}

// WriteContents writes buf to the configured path.
func (w *FileWriter) WriteContents(buf []byte) error {
	mode := w.Mode
	if mode == 0 {
		mode = fileutil.DefaultMode
	}
	return fileutil.SetContentsFull(w.Path, buf, w.Flags, mode)
}
