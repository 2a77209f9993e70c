// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package concurrency implements the worker pool that executes blocking
// filesystem syscalls on behalf of the loop. The loop's control goroutine
// never blocks on I/O: operations are submitted here and their completions
// posted back for serialized dispatch.
package concurrency
