// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build unix

package iobridge_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/asyncfs/fake"
	"github.com/momentics/asyncfs/iobridge"
	"github.com/momentics/asyncfs/loop"
)

// harness runs a real loop against fake scheduler/VM boundaries. Bridge
// entry points must execute on the control goroutine, so tests call them
// through run.
type harness struct {
	l     *loop.Loop
	sched *fake.Scheduler
	vm    *fake.VM
	b     *iobridge.Bridge
}

func newHarness(t *testing.T, opts ...iobridge.Option) *harness {
	t.Helper()
	l := loop.New(loop.WithWorkers(2))
	go l.Run()

	sched := fake.NewScheduler()
	vm := fake.NewVM()
	vm.RegisterVariable("io", "Stat", "class:Stat")
	vm.RegisterVariable("io", "Stdin", "class:Stdin")

	b := iobridge.New(l, sched, vm, opts...)
	h := &harness{l: l, sched: sched, vm: vm, b: b}
	t.Cleanup(func() {
		h.run(b.Close)
		l.Stop()
	})
	return h
}

// run executes fn on the loop's control goroutine and waits for it.
func (h *harness) run(fn func()) {
	done := make(chan struct{})
	if !h.l.Async(func() {
		fn()
		close(done)
	}) {
		close(done)
	}
	<-done
}

// next waits for the next observed resumption.
func (h *harness) next(t *testing.T) fake.Event {
	t.Helper()
	ev, ok := h.sched.Next(5 * time.Second)
	require.True(t, ok, "timed out waiting for a resumption")
	return ev
}
