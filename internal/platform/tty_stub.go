// File: internal/platform/tty_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package platform

// IsTerminal always reports false where termios is unavailable.
func IsTerminal(fd int) bool { return false }
