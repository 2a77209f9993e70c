// File: iobridge/bridge.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bridge is the explicitly owned context of the I/O layer. It replaces what
// a C embedding would keep in mutable globals: the cached class and method
// handles and the stdin stream all live here, resolved through get-or-create
// accessors and released together by Close.

package iobridge

import (
	"github.com/momentics/asyncfs/api"
	"github.com/momentics/asyncfs/loop"
)

const (
	ioModule        = "io"
	statClassName   = "Stat"
	stdinClassName  = "Stdin"
	onDataSignature = "onData_(_)"

	// resultSlot is where value-producing completions write their result;
	// slot 0 holds the receiver and slot 1 scratch values.
	resultSlot = 2
)

// Bridge wires the loop, the host scheduler, and the embedding VM together.
// All methods must be called on the loop's control goroutine.
type Bridge struct {
	loop  *loop.Loop
	sched api.Scheduler
	vm    api.VM

	statClass   api.Handle
	stdinClass  api.Handle
	stdinOnData api.Handle

	stdin         *stdinStream
	stdinFd       int
	stdinHeld     []heldChunk
	stdinShutdown bool
	closed        bool
}

// Option customizes bridge initialization.
type Option func(*Bridge)

// WithStdinDescriptor overrides the descriptor the stdin subsystem reads
// from. Tests point this at a pipe.
func WithStdinDescriptor(fd int) Option {
	return func(b *Bridge) { b.stdinFd = fd }
}

// New creates a Bridge bound to a loop, a scheduler, and a VM.
func New(l *loop.Loop, s api.Scheduler, vm api.VM, opts ...Option) *Bridge {
	b := &Bridge{
		loop:    l,
		sched:   s,
		vm:      vm,
		stdinFd: stdinDescriptor,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Close releases the stdin subsystem and every cached VM handle. After
// Close the stdin subsystem cannot be restarted. Idempotent.
func (b *Bridge) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.shutdownStdin()
	if b.statClass != nil {
		b.vm.ReleaseHandle(b.statClass)
		b.statClass = nil
	}
}

// statClassHandle resolves the Stat class once and caches it for the
// lifetime of the bridge.
func (b *Bridge) statClassHandle() api.Handle {
	if b.statClass == nil {
		b.vm.EnsureSlots(1)
		b.vm.GetVariable(ioModule, statClassName, 0)
		b.statClass = b.vm.GetSlotHandle(0)
	}
	return b.statClass
}

// stdinClassHandle resolves the Stdin class once and caches it until the
// stdin subsystem shuts down.
func (b *Bridge) stdinClassHandle() api.Handle {
	if b.stdinClass == nil {
		b.vm.EnsureSlots(1)
		b.vm.GetVariable(ioModule, stdinClassName, 0)
		b.stdinClass = b.vm.GetSlotHandle(0)
	}
	return b.stdinClass
}

// stdinOnDataHandle builds the data-handler call handle once.
func (b *Bridge) stdinOnDataHandle() api.Handle {
	if b.stdinOnData == nil {
		b.stdinOnData = b.vm.MakeCallHandle(onDataSignature)
	}
	return b.stdinOnData
}

// issue hands a record to the loop. If the loop refuses (shutdown), the
// record is freed and the task resumed on the error path right here, so the
// one-shot contract holds on every path.
func (b *Bridge) issue(req *loop.Request, op loop.Op, cb loop.Callback) {
	if err := b.loop.Issue(req, op, cb); err != nil {
		cont, buf := b.loop.Complete(req)
		b.loop.ReleaseBuffer(buf)
		b.sched.ResumeError(cont, err.Error())
	}
}

// resumeNoValue is the completion callback shared by close, delete, and
// write: free the record (releasing any owned buffer), then resume with no
// value in a single phase.
func (b *Bridge) resumeNoValue(req *loop.Request, out loop.Outcome) {
	if b.loop.HandleError(b.sched, req, out) {
		return
	}
	cont, buf := b.loop.Complete(req)
	b.loop.ReleaseBuffer(buf)
	b.sched.Resume(cont, false)
}
