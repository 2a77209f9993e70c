// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build unix

package iobridge_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/asyncfs/api"
	"github.com/momentics/asyncfs/fake"
)

func TestListDirectory_Empty(t *testing.T) {
	h := newHarness(t)

	h.run(func() { h.b.ListDirectory(t.TempDir(), api.NewContinuation("list")) })
	ev := h.next(t)
	require.Empty(t, ev.Err)
	require.True(t, ev.HasValue)
	assert.Empty(t, h.vm.Slot(2).(*fake.List).Items)
}

func TestListDirectory_Entries(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	h.run(func() { h.b.ListDirectory(dir, api.NewContinuation("list")) })
	ev := h.next(t)
	require.Empty(t, ev.Err)

	// Order is whatever the OS reported; assert set equality only.
	assert.ElementsMatch(t, []any{"a", "b", "c"}, h.vm.Slot(2).(*fake.List).Items)
}

func TestListDirectory_Missing(t *testing.T) {
	h := newHarness(t)

	h.run(func() {
		h.b.ListDirectory(filepath.Join(t.TempDir(), "absent"), api.NewContinuation("list"))
	})
	assert.Equal(t, syscall.ENOENT.Error(), h.next(t).Err)
}
