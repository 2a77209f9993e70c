// File: iobridge/stat.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package iobridge

import "github.com/momentics/asyncfs/internal/platform"

// Stat is the foreign value wrapping a frozen metadata snapshot. Every
// accessor is a pure read over the snapshot taken when the stat operation
// completed; the entity never refreshes.
type Stat struct {
	snap platform.Stat
}

// NewStat freezes a snapshot into a Stat entity.
func NewStat(snap platform.Stat) *Stat {
	return &Stat{snap: snap}
}

// Size returns the file size in bytes.
func (s *Stat) Size() int64 { return s.snap.Size }

// BlockCount returns the number of allocated blocks.
func (s *Stat) BlockCount() int64 { return s.snap.Blocks }

// BlockSize returns the filesystem's preferred I/O block size.
func (s *Stat) BlockSize() int64 { return s.snap.BlockSize }

// Device returns the id of the device containing the file.
func (s *Stat) Device() uint64 { return s.snap.Device }

// Group returns the owning group id.
func (s *Stat) Group() uint32 { return s.snap.Group }

// User returns the owning user id.
func (s *Stat) User() uint32 { return s.snap.User }

// Inode returns the inode number.
func (s *Stat) Inode() uint64 { return s.snap.Inode }

// LinkCount returns the number of hard links.
func (s *Stat) LinkCount() uint64 { return s.snap.LinkCount }

// Mode returns the raw mode bits.
func (s *Stat) Mode() uint32 { return s.snap.Mode }

// SpecialDevice returns the device id for special files.
func (s *Stat) SpecialDevice() uint64 { return s.snap.SpecialDevice }

// IsDirectory reports whether the mode bits describe a directory.
func (s *Stat) IsDirectory() bool { return s.snap.IsDir() }

// IsFile reports whether the mode bits describe a regular file.
func (s *Stat) IsFile() bool { return s.snap.IsRegular() }
