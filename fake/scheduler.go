// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"time"

	"github.com/momentics/asyncfs/api"
)

// Event records one observed task resumption.
type Event struct {
	HasValue bool
	Err      string
	Token    any
}

// Scheduler is a test double for the host scheduler. A one-phase resume is
// published immediately; a two-phase resume is held back until
// FinishResume, so an observer that receives the event is guaranteed the
// result slot has been written.
type Scheduler struct {
	events  chan Event
	pending *Event
}

// NewScheduler creates a scheduler double.
func NewScheduler() *Scheduler {
	return &Scheduler{events: make(chan Event, 64)}
}

// Resume consumes the continuation. hasValue=true opens the two-phase
// window; hasValue=false publishes a value-less resumption at once.
func (s *Scheduler) Resume(c *api.Continuation, hasValue bool) {
	token := c.Take()
	ev := Event{HasValue: hasValue, Token: token}
	if hasValue {
		s.pending = &ev
		return
	}
	s.events <- ev
}

// ResumeError consumes the continuation and publishes an error resumption.
func (s *Scheduler) ResumeError(c *api.Continuation, message string) {
	s.events <- Event{Err: message, Token: c.Take()}
}

// FinishResume closes the two-phase window and publishes the held event.
func (s *Scheduler) FinishResume() {
	if s.pending != nil {
		s.events <- *s.pending
		s.pending = nil
	}
}

// Next waits for the next resumption, reporting false on timeout.
func (s *Scheduler) Next(d time.Duration) (Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	case <-time.After(d):
		return Event{}, false
	}
}

// TryNext reports an already-published resumption without waiting.
func (s *Scheduler) TryNext() (Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	default:
		return Event{}, false
	}
}
