// File: internal/platform/fs_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unix implementations of the filesystem shims, built on golang.org/x/sys.
// Positioned reads and writes keep file-handle state out of the kernel's
// shared offset, so independent operations never race over it.

//go:build unix

package platform

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Open opens path with already-native flags and permission bits.
func Open(path string, flags int, perm uint32) int64 {
	fd, err := unix.Open(path, flags, perm)
	return retval(fd, err)
}

// Close releases a descriptor.
func Close(fd int) int64 {
	return retval(0, unix.Close(fd))
}

// Pread reads up to len(buf) bytes at offset. A short count, including
// zero at end-of-file, is a valid success result.
func Pread(fd int, buf []byte, offset int64) int64 {
	n, err := unix.Pread(fd, buf, offset)
	return retval(n, err)
}

// Pwrite writes buf at offset.
func Pwrite(fd int, buf []byte, offset int64) int64 {
	n, err := unix.Pwrite(fd, buf, offset)
	return retval(n, err)
}

// Unlink removes the directory entry at path.
func Unlink(path string) int64 {
	return retval(0, unix.Unlink(path))
}

// FstatSnapshot captures metadata for an open descriptor.
func FstatSnapshot(fd int) (Stat, int64) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return Stat{}, retval(0, err)
	}
	return newStat(&st), 0
}

// StatSnapshot captures metadata for a path.
func StatSnapshot(path string) (Stat, int64) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Stat{}, retval(0, err)
	}
	return newStat(&st), 0
}

func newStat(st *unix.Stat_t) Stat {
	return Stat{
		Size:          st.Size,
		Blocks:        int64(st.Blocks),
		BlockSize:     int64(st.Blksize),
		Device:        uint64(st.Dev),
		Group:         uint32(st.Gid),
		User:          uint32(st.Uid),
		Inode:         uint64(st.Ino),
		LinkCount:     uint64(st.Nlink),
		Mode:          uint32(st.Mode),
		SpecialDevice: uint64(st.Rdev),
	}
}

// RealPath canonicalizes path, resolving symlinks and relative segments.
func RealPath(path string) (string, int64) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", retval(0, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", retval(0, err)
	}
	return resolved, 0
}

// ScanDir returns entry names in the order the OS reports them. Readdirnames
// is used instead of os.ReadDir precisely because the latter sorts.
func ScanDir(path string) ([]string, int64) {
	f, err := os.Open(path)
	if err != nil {
		return nil, retval(0, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, retval(0, err)
	}
	return names, 0
}

// Read reads from fd at the current stream position (stdin path).
func Read(fd int, buf []byte) int64 {
	n, err := unix.Read(fd, buf)
	return retval(n, err)
}

// Write writes to fd at the current stream position (wake-pipe path).
func Write(fd int, buf []byte) int64 {
	n, err := unix.Write(fd, buf)
	return retval(n, err)
}

// Pipe creates a unidirectional pipe.
func Pipe() (r, w int, status int64) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return 0, 0, retval(0, err)
	}
	return p[0], p[1], 0
}

// Dup duplicates a descriptor so the caller owns an independent copy.
func Dup(fd int) int64 {
	nfd, err := unix.Dup(fd)
	return retval(nfd, err)
}

// WaitReadable blocks until at least one of fds is readable and reports
// which ones are. EINTR wakeups retry transparently.
func WaitReadable(fds []int) ([]bool, int64) {
	pollFds := make([]unix.PollFd, len(fds))
	for i, fd := range fds {
		pollFds[i] = unix.PollFd{Fd: int32(fd), Events: unix.POLLIN}
	}
	for {
		_, err := unix.Poll(pollFds, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, retval(0, err)
		}
		break
	}
	ready := make([]bool, len(fds))
	for i := range pollFds {
		ready[i] = pollFds[i].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0
	}
	return ready, 0
}
