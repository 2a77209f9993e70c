// File: api/scheduler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scheduler boundary. A suspended task is represented by a one-shot
// Continuation; the bridge hands each continuation to the scheduler exactly
// once, on either the value path or the error path, never both.

package api

import "sync/atomic"

// Continuation is a one-shot resumption token for a suspended logical task.
// It owns an opaque scheduler token and can be consumed at most once;
// consuming it twice is a bug in the caller and panics.
type Continuation struct {
	token    any
	consumed atomic.Bool
}

// NewContinuation wraps a scheduler-owned token in a fresh continuation.
func NewContinuation(token any) *Continuation {
	return &Continuation{token: token}
}

// Take consumes the continuation and returns the scheduler token.
// Scheduler implementations call Take inside Resume/ResumeError; the panic
// turns a double resumption into an immediate, loud failure instead of a
// silently corrupted task.
func (c *Continuation) Take() any {
	if !c.consumed.CompareAndSwap(false, true) {
		panic("asyncfs: continuation resumed twice")
	}
	return c.token
}

// Consumed reports whether the continuation has already been taken.
func (c *Continuation) Consumed() bool {
	return c.consumed.Load()
}

// Scheduler is the host task scheduler consumed by the bridge.
//
// Resume with hasValue=true begins a two-phase hand-off: the resumed task's
// execution context exists after Resume returns, the bridge then writes the
// result into the task's value slot, and FinishResume transfers control.
// Resume with hasValue=false completes in one phase. ResumeError delivers a
// translated failure message on the task's error path.
type Scheduler interface {
	Resume(c *Continuation, hasValue bool)
	ResumeError(c *Continuation, message string)
	FinishResume()
}
