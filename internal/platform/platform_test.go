// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build unix

package platform

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/asyncfs/api"
)

func TestMapFileFlags_IsPure(t *testing.T) {
	in := api.FlagReadWrite | api.FlagCreate | api.FlagTruncate
	assert.Equal(t, MapFileFlags(in), MapFileFlags(in))
}

func TestMapFileFlags_ReadOnlyCreate(t *testing.T) {
	got := MapFileFlags(api.FlagReadOnly | api.FlagCreate)
	assert.Equal(t, unix.O_RDONLY|unix.O_CREAT, got)
}

func TestMapFileFlags_AllBits(t *testing.T) {
	got := MapFileFlags(api.FlagReadOnly | api.FlagWriteOnly | api.FlagReadWrite |
		api.FlagSync | api.FlagCreate | api.FlagTruncate | api.FlagExclusive)
	want := unix.O_RDONLY | unix.O_WRONLY | unix.O_RDWR |
		unix.O_SYNC | unix.O_CREAT | unix.O_TRUNC | unix.O_EXCL
	assert.Equal(t, want, got)
}

func TestErrnoMessage(t *testing.T) {
	assert.Equal(t, syscall.ENOENT.Error(), ErrnoMessage(-int64(syscall.ENOENT)))
	assert.Empty(t, ErrnoMessage(0))
}

func TestOpenPreadPwrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")

	fd := Open(path, unix.O_RDWR|unix.O_CREAT, 0o600)
	require.GreaterOrEqual(t, fd, int64(0))
	defer Close(int(fd))

	n := Pwrite(int(fd), []byte("hello"), 0)
	require.Equal(t, int64(5), n)

	buf := make([]byte, 5)
	n = Pread(int(fd), buf, 0)
	require.Equal(t, int64(5), n)
	assert.Equal(t, "hello", string(buf))
}

func TestPread_ShortReadAtEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	fd := Open(path, unix.O_RDONLY, 0)
	require.GreaterOrEqual(t, fd, int64(0))
	defer Close(int(fd))

	buf := make([]byte, 16)
	n := Pread(int(fd), buf, 0)
	assert.Equal(t, int64(3), n)

	n = Pread(int(fd), buf, 3)
	assert.Equal(t, int64(0), n)
}

func TestOpen_MissingFile(t *testing.T) {
	status := Open(filepath.Join(t.TempDir(), "nope"), unix.O_RDONLY, 0)
	assert.Equal(t, -int64(syscall.ENOENT), status)
}

func TestStatSnapshot_Fields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o600))

	snap, status := StatSnapshot(path)
	require.Equal(t, int64(0), status)
	assert.Equal(t, int64(5), snap.Size)
	assert.True(t, snap.IsRegular())
	assert.False(t, snap.IsDir())
	assert.Greater(t, snap.LinkCount, uint64(0))
	assert.NotZero(t, snap.Inode)
}

func TestStatSnapshot_Directory(t *testing.T) {
	snap, status := StatSnapshot(t.TempDir())
	require.Equal(t, int64(0), status)
	assert.True(t, snap.IsDir())
	assert.False(t, snap.IsRegular())
}

func TestFstatSnapshot_MatchesPathStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("xy"), 0o600))

	fd := Open(path, unix.O_RDONLY, 0)
	require.GreaterOrEqual(t, fd, int64(0))
	defer Close(int(fd))

	byFd, status := FstatSnapshot(int(fd))
	require.Equal(t, int64(0), status)
	byPath, status := StatSnapshot(path)
	require.Equal(t, int64(0), status)
	assert.Equal(t, byPath, byFd)
}

func TestUnlink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.Equal(t, int64(0), Unlink(path))
	assert.Equal(t, -int64(syscall.ENOENT), Unlink(path))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	names, status := ScanDir(dir)
	require.Equal(t, int64(0), status)
	assert.Empty(t, names)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	names, status = ScanDir(dir)
	require.Equal(t, int64(0), status)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, names)
}

func TestScanDir_Missing(t *testing.T) {
	_, status := ScanDir(filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, -int64(syscall.ENOENT), status)
}

func TestRealPath_ResolvesSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, nil, 0o600))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	resolved, status := RealPath(link)
	require.Equal(t, int64(0), status)

	// The tempdir itself may live behind a symlink (macOS /tmp), so
	// compare against the canonical target.
	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wantDir, "target"), resolved)
}

func TestWaitReadable_PipeAndWake(t *testing.T) {
	r, w, status := Pipe()
	require.Equal(t, int64(0), status)
	defer Close(r)
	defer Close(w)

	require.Equal(t, int64(1), Write(w, []byte{'x'}))
	ready, status := WaitReadable([]int{r})
	require.Equal(t, int64(0), status)
	assert.True(t, ready[0])

	buf := make([]byte, 1)
	assert.Equal(t, int64(1), Read(r, buf))
}
