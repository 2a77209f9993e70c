// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package loop provides the single-threaded completion dispatcher of the
// asyncfs bridge. Blocking syscalls run on an executor pool; their
// completions are posted to one FIFO and delivered, strictly serialized, on
// the loop's control goroutine. Request records pair each in-flight
// operation with the continuation of its suspended task, and the error
// translator is the one place a failed status becomes a task-visible error.
package loop
