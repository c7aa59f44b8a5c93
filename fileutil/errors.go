package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// ErrorCode is a platform-independent classification of file system errors.
// ErrorCode values are errors themselves, so errors.Is(err, CodeNoEnt) works
// on any *Error.
type ErrorCode int

const (
	CodeExist       ErrorCode = iota // file already exists
	CodeIsDir                        // file is a directory
	CodeAccess                       // permission denied by file mode
	CodeNameTooLong                  // file name too long
	CodeNoEnt                        // no such file or directory
	CodeNotDir                       // a path component is not a directory
	CodeNXIO                         // no such device or address
	CodeNoDev                        // operation not supported by the device
	CodeROFS                         // read-only file system
	CodeTxtBsy                       // text file busy
	CodeFault                        // bad address
	CodeLoop                         // too many levels of symbolic links
	CodeNoSpace                      // no space left on device
	CodeNoMem                        // out of memory
	CodeMFile                        // too many open files in this process
	CodeNFile                        // too many open files in the system
	CodeBadF                         // bad file descriptor
	CodeInval                        // invalid argument
	CodePipe                         // broken pipe
	CodeAgain                        // resource temporarily unavailable
	CodeIntr                         // interrupted system call
	CodeIO                           // input/output error
	CodePerm                         // operation not permitted
	CodeNoSys                        // function not implemented
	CodeFailed                       // anything else
)

var codeNames = [...]string{
	CodeExist:       "file exists",
	CodeIsDir:       "is a directory",
	CodeAccess:      "permission denied",
	CodeNameTooLong: "file name too long",
	CodeNoEnt:       "no such file or directory",
	CodeNotDir:      "not a directory",
	CodeNXIO:        "no such device or address",
	CodeNoDev:       "no such device",
	CodeROFS:        "read-only file system",
	CodeTxtBsy:      "text file busy",
	CodeFault:       "bad address",
	CodeLoop:        "too many levels of symbolic links",
	CodeNoSpace:     "no space left on device",
	CodeNoMem:       "out of memory",
	CodeMFile:       "too many open files",
	CodeNFile:       "too many open files in system",
	CodeBadF:        "bad file descriptor",
	CodeInval:       "invalid argument",
	CodePipe:        "broken pipe",
	CodeAgain:       "resource temporarily unavailable",
	CodeIntr:        "interrupted system call",
	CodeIO:          "input/output error",
	CodePerm:        "operation not permitted",
	CodeNoSys:       "function not implemented",
	CodeFailed:      "failed",
}

func (c ErrorCode) Error() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Op names the operation class that failed.
type Op string

const (
	OpOpen     Op = "open"
	OpCreate   Op = "create"
	OpRead     Op = "read"
	OpWrite    Op = "write"
	OpTruncate Op = "truncate"
	OpSync     Op = "fsync"
	OpClose    Op = "close"
	OpRename   Op = "rename"
	OpChmod    Op = "chmod"
	OpStat     Op = "stat"
	OpMkdir    Op = "mkdir"
	OpTemplate Op = "template"
)

// Error is returned by every function in this package.
type Error struct {
	Op   Op
	Code ErrorCode
	Path string
	Dest string // rename target, empty for other operations
	Err  error  // underlying cause, possibly nil
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.Op {
	case OpRename:
		msg = fmt.Sprintf("failed to rename file %q to %q", DisplayName(e.Path), DisplayName(e.Dest))
	case OpTemplate:
		msg = fmt.Sprintf("invalid template %q", DisplayName(e.Path))
	default:
		msg = fmt.Sprintf("failed to %s %q", e.Op, DisplayName(e.Path))
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": " + e.Code.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrorCode targets against e.Code.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

// newError wraps an OS error, translating it into the ErrorCode taxonomy.
func newError(op Op, path string, err error) *Error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		err = le.Err
	}
	return &Error{Op: op, Code: codeOf(err), Path: path, Err: err}
}

// codeOf classifies err, preferring the raw errno when one is present.
func codeOf(err error) ErrorCode {
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return ErrorFromErrno(errno)
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeNoEnt
	case errors.Is(err, fs.ErrExist):
		return CodeExist
	case errors.Is(err, fs.ErrPermission):
		return CodeAccess
	case errors.Is(err, fs.ErrInvalid):
		return CodeInval
	default:
		return CodeFailed
	}
}
