// File: api/flags.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// FileFlags is the portable open-mode bitset exposed to callers. The bit
// positions are part of the caller-facing contract and must stay in sync
// with any host-side enumeration mirroring them.
type FileFlags int

const (
	FlagReadOnly  FileFlags = 1 << iota // 0x01
	FlagWriteOnly                       // 0x02
	FlagReadWrite                       // 0x04
	FlagSync                            // 0x08
	FlagCreate                          // 0x10
	FlagTruncate                        // 0x20
	FlagExclusive                       // 0x40
)
