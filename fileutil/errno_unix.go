//go:build unix

package fileutil

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var errnoCodes = map[syscall.Errno]ErrorCode{
	unix.EEXIST:       CodeExist,
	unix.EISDIR:       CodeIsDir,
	unix.EACCES:       CodeAccess,
	unix.ENAMETOOLONG: CodeNameTooLong,
	unix.ENOENT:       CodeNoEnt,
	unix.ENOTDIR:      CodeNotDir,
	unix.ENXIO:        CodeNXIO,
	unix.ENODEV:       CodeNoDev,
	unix.EROFS:        CodeROFS,
	unix.ETXTBSY:      CodeTxtBsy,
	unix.EFAULT:       CodeFault,
	unix.ELOOP:        CodeLoop,
	unix.ENOSPC:       CodeNoSpace,
	unix.ENOMEM:       CodeNoMem,
	unix.EMFILE:       CodeMFile,
	unix.ENFILE:       CodeNFile,
	unix.EBADF:        CodeBadF,
	unix.EINVAL:       CodeInval,
	unix.EPIPE:        CodePipe,
	unix.EAGAIN:       CodeAgain,
	unix.EINTR:        CodeIntr,
	unix.EIO:          CodeIO,
	unix.EPERM:        CodePerm,
	unix.ENOSYS:       CodeNoSys,
}

// ErrorFromErrno maps an OS error number onto the ErrorCode taxonomy.
func ErrorFromErrno(errno syscall.Errno) ErrorCode {
	if code, ok := errnoCodes[errno]; ok {
		return code
	}
	return CodeFailed
}
