// File: internal/platform/errno.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"errors"
	"syscall"
)

// ErrnoMessage renders a negative status into the OS's human-readable error
// text, e.g. "no such file or directory".
func ErrnoMessage(status int64) string {
	if status >= 0 {
		return ""
	}
	return syscall.Errno(-status).Error()
}

// errnoOf digs the errno out of a wrapped OS error (PathError,
// SyscallError, LinkError all unwrap to one). Unrecognized errors collapse
// to EIO so a failure always has a representable status.
func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return syscall.EIO
}

// retval converts a (result, error) syscall pair into a single status.
func retval(n int, err error) int64 {
	if err != nil {
		return -int64(errnoOf(err))
	}
	return int64(n)
}
