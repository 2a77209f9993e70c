// File: iobridge/file.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// File handle entity and its operations. A handle is in exactly one of two
// states, Open or Closed, and Closed is terminal: it is reached once,
// through explicit close or through the foreign-object release path, and no
// operation is issued against a closed handle.

package iobridge

import (
	"github.com/momentics/asyncfs/api"
	"github.com/momentics/asyncfs/internal/platform"
	"github.com/momentics/asyncfs/loop"
)

// defaultPerm is the permission for newly created files: owner read+write.
const defaultPerm = 0o600

const errClosedFile = "file is closed"

// File wraps an open descriptor with close-once semantics.
type File struct {
	fd     int
	closed bool
}

// NewFile wraps a descriptor produced by a successful open.
func NewFile(fd int) *File {
	return &File{fd: fd}
}

// Descriptor returns the numeric descriptor, or -1 once closed. The -1 is
// only the caller-facing encoding; internally the state is the tagged
// closed flag.
func (f *File) Descriptor() int {
	if f.closed {
		return -1
	}
	return f.fd
}

// Closed reports whether the handle has been closed.
func (f *File) Closed() bool { return f.closed }

// Dispose closes the descriptor synchronously and idempotently. It backs
// the foreign-object release path, so a collected handle releases its
// descriptor through the same close-once logic as an explicit close.
func (f *File) Dispose() {
	if f.closed {
		return
	}
	f.closed = true
	platform.Close(f.fd)
}

// OpenFile maps the portable flags to native ones and issues an async open.
// The task resumes with the new descriptor as a number.
func (b *Bridge) OpenFile(path string, flags api.FileFlags, c *api.Continuation) {
	native := platform.MapFileFlags(flags)
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		return loop.Outcome{Result: platform.Open(path, native, defaultPerm)}
	}, b.openCallback)
}

func (b *Bridge) openCallback(req *loop.Request, out loop.Outcome) {
	if b.loop.HandleError(b.sched, req, out) {
		return
	}
	fd := float64(out.Result)
	cont, _ := b.loop.Complete(req)
	b.sched.Resume(cont, true)
	b.vm.SetSlotDouble(resultSlot, fd)
	b.sched.FinishResume()
}

// CloseFile closes the handle. If it is already closed this returns true
// and the caller reports success synchronously, without consuming the
// continuation or touching the OS. Otherwise the handle is marked closed
// immediately, before the async close even starts, so nothing can race a
// reuse of the descriptor; the task resumes with no value on completion.
func (b *Bridge) CloseFile(f *File, c *api.Continuation) bool {
	if f.closed {
		return true
	}
	fd := f.fd
	f.closed = true
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		return loop.Outcome{Result: platform.Close(fd)}
	}, b.resumeNoValue)
	return false
}

// ReadBytes issues a positioned read of length bytes. The task resumes with
// the bytes actually read, which may be fewer than requested — zero at
// end-of-file — never an error for a short read.
func (b *Bridge) ReadBytes(f *File, length int, offset int64, c *api.Continuation) {
	if f.closed {
		b.sched.ResumeError(c, errClosedFile)
		return
	}
	if length < 0 {
		b.sched.ResumeError(c, "invalid read length")
		return
	}
	fd := f.fd
	req := b.loop.NewBufferRequest(c, length)
	buf := req.Buffer()
	b.issue(req, func() loop.Outcome {
		return loop.Outcome{Result: platform.Pread(fd, buf, offset)}
	}, b.readCallback)
}

func (b *Bridge) readCallback(req *loop.Request, out loop.Outcome) {
	if b.loop.HandleError(b.sched, req, out) {
		return
	}
	count := out.Result
	cont, buf := b.loop.Complete(req)
	b.sched.Resume(cont, true)
	b.vm.SetSlotBytes(resultSlot, buf[:count])
	b.sched.FinishResume()
	// The buffer stays alive until the resumed task has copied the bytes
	// out of the slot; only then may it recycle.
	b.loop.ReleaseBuffer(buf)
}

// WriteBytes copies data into an owned buffer — the caller's bytes are not
// assumed to outlive this call — and issues a positioned write. The task
// resumes with no value.
func (b *Bridge) WriteBytes(f *File, data []byte, offset int64, c *api.Continuation) {
	if f.closed {
		b.sched.ResumeError(c, errClosedFile)
		return
	}
	fd := f.fd
	req := b.loop.NewBufferRequest(c, len(data))
	buf := req.Buffer()
	copy(buf, data)
	b.issue(req, func() loop.Outcome {
		return loop.Outcome{Result: platform.Pwrite(fd, buf, offset)}
	}, b.resumeNoValue)
}

// Size resumes the task with the handle's file size as a number.
func (b *Bridge) Size(f *File, c *api.Continuation) {
	if f.closed {
		b.sched.ResumeError(c, errClosedFile)
		return
	}
	fd := f.fd
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		snap, status := platform.FstatSnapshot(fd)
		return loop.Outcome{Result: status, Value: snap}
	}, b.sizeCallback)
}

// SizePath resumes the task with the size of the file at path.
func (b *Bridge) SizePath(path string, c *api.Continuation) {
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		snap, status := platform.StatSnapshot(path)
		return loop.Outcome{Result: status, Value: snap}
	}, b.sizeCallback)
}

func (b *Bridge) sizeCallback(req *loop.Request, out loop.Outcome) {
	if b.loop.HandleError(b.sched, req, out) {
		return
	}
	size := float64(out.Value.(platform.Stat).Size)
	cont, _ := b.loop.Complete(req)
	b.sched.Resume(cont, true)
	b.vm.SetSlotDouble(resultSlot, size)
	b.sched.FinishResume()
}

// StatHandle resumes the task with a full Stat entity for the open handle.
func (b *Bridge) StatHandle(f *File, c *api.Continuation) {
	if f.closed {
		b.sched.ResumeError(c, errClosedFile)
		return
	}
	fd := f.fd
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		snap, status := platform.FstatSnapshot(fd)
		return loop.Outcome{Result: status, Value: snap}
	}, b.statCallback)
}

// StatPath resumes the task with a full Stat entity for the file at path.
func (b *Bridge) StatPath(path string, c *api.Continuation) {
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		snap, status := platform.StatSnapshot(path)
		return loop.Outcome{Result: status, Value: snap}
	}, b.statCallback)
}

func (b *Bridge) statCallback(req *loop.Request, out loop.Outcome) {
	if b.loop.HandleError(b.sched, req, out) {
		return
	}
	snap := out.Value.(platform.Stat)
	b.vm.EnsureSlots(3)
	b.vm.SetSlotHandle(resultSlot, b.statClassHandle())
	b.vm.SetSlotNewForeign(resultSlot, resultSlot, NewStat(snap))
	cont, _ := b.loop.Complete(req)
	b.sched.Resume(cont, true)
	b.sched.FinishResume()
}

// Delete unlinks the file at path. The task resumes with no value.
func (b *Bridge) Delete(path string, c *api.Continuation) {
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		return loop.Outcome{Result: platform.Unlink(path)}
	}, b.resumeNoValue)
}

// RealPath canonicalizes path. The task resumes with the resolved string.
func (b *Bridge) RealPath(path string, c *api.Continuation) {
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		resolved, status := platform.RealPath(path)
		return loop.Outcome{Result: status, Value: resolved}
	}, b.realPathCallback)
}

func (b *Bridge) realPathCallback(req *loop.Request, out loop.Outcome) {
	if b.loop.HandleError(b.sched, req, out) {
		return
	}
	b.vm.EnsureSlots(3)
	b.vm.SetSlotString(resultSlot, out.Value.(string))
	cont, _ := b.loop.Complete(req)
	b.sched.Resume(cont, true)
	b.sched.FinishResume()
}
