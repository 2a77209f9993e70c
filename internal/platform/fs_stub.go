// File: internal/platform/fs_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stubs for platforms without the unix shims. Every operation fails with
// ENOSYS so callers surface a translated error instead of crashing.

//go:build !unix

package platform

import "syscall"

func unsupported() int64 { return -int64(syscall.ENOSYS) }

func Open(path string, flags int, perm uint32) int64 { return unsupported() }

func Close(fd int) int64 { return unsupported() }

func Pread(fd int, buf []byte, offset int64) int64 { return unsupported() }

func Pwrite(fd int, buf []byte, offset int64) int64 { return unsupported() }

func Unlink(path string) int64 { return unsupported() }

func FstatSnapshot(fd int) (Stat, int64) { return Stat{}, unsupported() }

func StatSnapshot(path string) (Stat, int64) { return Stat{}, unsupported() }

func RealPath(path string) (string, int64) { return "", unsupported() }

func ScanDir(path string) ([]string, int64) { return nil, unsupported() }

func Read(fd int, buf []byte) int64 { return unsupported() }

func Write(fd int, buf []byte) int64 { return unsupported() }

func Pipe() (r, w int, status int64) { return 0, 0, unsupported() }

func Dup(fd int) int64 { return unsupported() }

func WaitReadable(fds []int) ([]bool, int64) { return nil, unsupported() }
