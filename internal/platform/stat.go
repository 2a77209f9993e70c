// File: internal/platform/stat.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

// POSIX file-type mask and the two types the bridge distinguishes. The
// values are stable across the platforms we build for, so they live here
// rather than behind a build tag.
const (
	modeTypeMask = 0o170000
	modeTypeDir  = 0o040000
	modeTypeReg  = 0o100000
)

// Stat is a frozen snapshot of file metadata taken at the moment a stat
// operation completed. It is copied by value and never updated afterwards.
type Stat struct {
	Size          int64
	Blocks        int64
	BlockSize     int64
	Device        uint64
	Group         uint32
	User          uint32
	Inode         uint64
	LinkCount     uint64
	Mode          uint32
	SpecialDevice uint64
}

// IsDir reports whether the mode bits describe a directory.
func (s Stat) IsDir() bool {
	return s.Mode&modeTypeMask == modeTypeDir
}

// IsRegular reports whether the mode bits describe a regular file.
func (s Stat) IsRegular() bool {
	return s.Mode&modeTypeMask == modeTypeReg
}
