package fileutil

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
)

const (
	tmpPlaceholder = "XXXXXX"
	tmpLetters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tmpAttempts    = 100
	tmpStride      = 7777

	// DefaultTmpTemplate is used by OpenTmp and DirMakeTmp when the template is empty.
	DefaultTmpTemplate = ".XXXXXX"
)

var tmpCounter atomic.Uint64

// nextTmpValue seeds a run of candidate names. The counter separates
// concurrent callers that draw the same random value.
var nextTmpValue = func() uint64 {
	return rand.Uint64() + tmpCounter.Add(1)
}

// fillTemplate replaces the last XXXXXX in tmpl with six characters drawn
// from value.
func fillTemplate(tmpl string, at int, value uint64) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	b.WriteString(tmpl[:at])
	for range len(tmpPlaceholder) {
		b.WriteByte(tmpLetters[value%uint64(len(tmpLetters))])
		value /= uint64(len(tmpLetters))
	}
	b.WriteString(tmpl[at+len(tmpPlaceholder):])
	return b.String()
}

// createTemp tries create on up to tmpAttempts names derived from tmpl and
// returns the name that succeeded. Only collisions are retried.
func createTemp(tmpl string, create func(name string) error) (string, error) {
	at := strings.LastIndex(tmpl, tmpPlaceholder)
	if at < 0 {
		return "", &Error{Op: OpTemplate, Code: CodeInval, Path: tmpl}
	}

	value := nextTmpValue()
	for range tmpAttempts {
		name := fillTemplate(tmpl, at, value)
		err := create(name)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", newError(OpCreate, name, err)
		}
		value += tmpStride
	}
	return "", &Error{Op: OpCreate, Code: CodeExist, Path: tmpl, Err: syscall.EEXIST}
}

// MkstempFull creates and opens a new file named after tmpl, whose last
// XXXXXX is replaced with a unique string. flag is combined with
// O_CREATE|O_EXCL. The returned file's Name is the chosen path.
func MkstempFull(tmpl string, flag int, perm os.FileMode) (*os.File, error) {
	var f *os.File
	_, err := createTemp(tmpl, func(name string) error {
		var err error
		f, err = os.OpenFile(name, flag|os.O_CREATE|os.O_EXCL, perm)
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Mkstemp is MkstempFull with O_RDWR and mode 0600.
func Mkstemp(tmpl string) (*os.File, error) {
	return MkstempFull(tmpl, os.O_RDWR, 0o600)
}

// MkdtempFull creates a new directory named after tmpl and returns its path.
func MkdtempFull(tmpl string, perm os.FileMode) (string, error) {
	return createTemp(tmpl, func(name string) error {
		return os.Mkdir(name, perm)
	})
}

// Mkdtemp is MkdtempFull with mode 0700.
func Mkdtemp(tmpl string) (string, error) {
	return MkdtempFull(tmpl, 0o700)
}

// tmpTemplate validates a bare template for the system temp directory and
// returns its full path.
func tmpTemplate(tmpl string) (string, error) {
	if tmpl == "" {
		tmpl = DefaultTmpTemplate
	}
	if strings.ContainsRune(tmpl, '/') || strings.ContainsRune(tmpl, filepath.Separator) {
		return "", &Error{Op: OpTemplate, Code: CodeFailed, Path: tmpl,
			Err: errors.New("template must not contain a path separator")}
	}
	if !strings.Contains(tmpl, tmpPlaceholder) {
		return "", &Error{Op: OpTemplate, Code: CodeFailed, Path: tmpl,
			Err: errors.New("template does not contain XXXXXX")}
	}
	return filepath.Join(os.TempDir(), tmpl), nil
}

// OpenTmp creates a file in the system temp directory. tmpl is a base name
// containing XXXXXX; empty means DefaultTmpTemplate.
func OpenTmp(tmpl string) (*os.File, error) {
	full, err := tmpTemplate(tmpl)
	if err != nil {
		return nil, err
	}
	return MkstempFull(full, os.O_RDWR, 0o600)
}

// DirMakeTmp creates a directory in the system temp directory, like OpenTmp.
func DirMakeTmp(tmpl string) (string, error) {
	full, err := tmpTemplate(tmpl)
	if err != nil {
		return "", err
	}
	return MkdtempFull(full, 0o700)
}
