// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides in-memory doubles for the asyncfs boundaries: a
// Scheduler that records resumptions and a VM with real slot, list,
// foreign-object, and call-handle behavior. Tests and examples embed the
// bridge against these instead of a host runtime.
package fake
