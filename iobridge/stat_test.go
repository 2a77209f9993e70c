// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build unix

package iobridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/asyncfs/internal/platform"
	"github.com/momentics/asyncfs/iobridge"
)

func TestStat_AccessorsArePureReads(t *testing.T) {
	st := iobridge.NewStat(platform.Stat{
		Size:          42,
		Blocks:        8,
		BlockSize:     4096,
		Device:        11,
		Group:         20,
		User:          1000,
		Inode:         987654,
		LinkCount:     2,
		Mode:          0o100644,
		SpecialDevice: 0,
	})

	assert.Equal(t, int64(42), st.Size())
	assert.Equal(t, st.Size(), st.Size())
	assert.Equal(t, int64(8), st.BlockCount())
	assert.Equal(t, int64(4096), st.BlockSize())
	assert.Equal(t, uint64(11), st.Device())
	assert.Equal(t, uint32(20), st.Group())
	assert.Equal(t, uint32(1000), st.User())
	assert.Equal(t, uint64(987654), st.Inode())
	assert.Equal(t, uint64(2), st.LinkCount())
	assert.Equal(t, uint32(0o100644), st.Mode())
	assert.Equal(t, uint64(0), st.SpecialDevice())
	assert.Equal(t, st.Mode(), st.Mode())
}

func TestStat_TypePredicates(t *testing.T) {
	file := iobridge.NewStat(platform.Stat{Mode: 0o100644})
	assert.True(t, file.IsFile())
	assert.False(t, file.IsDirectory())

	dir := iobridge.NewStat(platform.Stat{Mode: 0o040755})
	assert.True(t, dir.IsDirectory())
	assert.False(t, dir.IsFile())

	fifo := iobridge.NewStat(platform.Stat{Mode: 0o010644})
	assert.False(t, fifo.IsFile())
	assert.False(t, fifo.IsDirectory())
}
