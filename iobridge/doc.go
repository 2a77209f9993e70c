// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package iobridge is the task-facing surface of asyncfs: file handle
// operations, stat snapshots, directory listing, and the persistent stdin
// stream. Every entry point issues one asynchronous operation and resumes
// the suspended task exactly once with either a value or a translated
// error. Entry points and completion callbacks run on the loop's control
// goroutine.
package iobridge
