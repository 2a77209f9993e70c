// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package api defines the boundary contracts of the asyncfs bridge: the host
// task scheduler that suspends and resumes logical tasks, the embedding VM's
// numbered value slots and foreign-object storage, and the portable open-flag
// bitset shared with callers. The bridge consumes these interfaces; it never
// implements the scheduler or the VM itself.
package api
