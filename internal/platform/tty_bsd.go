// File: internal/platform/tty_bsd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package platform

import "golang.org/x/sys/unix"

// IsTerminal reports whether fd refers to an interactive terminal.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	return err == nil
}
