// File: internal/platform/flags_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build unix

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/asyncfs/api"
)

// MapFileFlags translates the portable open-flag bitset into native O_*
// flags. Pure function: same bitset in, same native flags out.
func MapFileFlags(flags api.FileFlags) int {
	result := 0
	if flags&api.FlagReadOnly != 0 {
		result |= unix.O_RDONLY
	}
	if flags&api.FlagWriteOnly != 0 {
		result |= unix.O_WRONLY
	}
	if flags&api.FlagReadWrite != 0 {
		result |= unix.O_RDWR
	}
	if flags&api.FlagSync != 0 {
		result |= unix.O_SYNC
	}
	if flags&api.FlagCreate != 0 {
		result |= unix.O_CREAT
	}
	if flags&api.FlagTruncate != 0 {
		result |= unix.O_TRUNC
	}
	if flags&api.FlagExclusive != 0 {
		result |= unix.O_EXCL
	}
	return result
}
