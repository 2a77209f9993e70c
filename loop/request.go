// File: loop/request.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Request records. Exactly one record exists per in-flight operation: it is
// taken from the pool immediately before issuing and returned inside the
// completion path, on exactly one of the value or error branches. The record
// goes back to the pool BEFORE the task is resumed — resumption is reentrant
// and may recycle the record into a new operation — while an owned buffer
// outlives resumption and is released by the caller afterwards.

package loop

import "github.com/momentics/asyncfs/api"

// Request pairs the continuation of a suspended task with an optionally
// owned byte buffer. Only read and write operations carry a buffer.
type Request struct {
	cont *api.Continuation
	buf  []byte
}

// Buffer returns the owned buffer, or nil for buffer-less operations.
func (r *Request) Buffer() []byte { return r.buf }

// Reset clears the record before it returns to the pool.
func (r *Request) Reset() {
	r.cont = nil
	r.buf = nil
}

// NewRequest allocates a record resuming c on completion. Operations
// without a continuation are not representable: nothing would ever observe
// their result.
func (l *Loop) NewRequest(c *api.Continuation) *Request {
	if c == nil {
		panic("asyncfs: operation issued without a continuation")
	}
	req := l.requests.Get()
	req.cont = c
	return req
}

// NewBufferRequest allocates a record that owns a buffer of length size,
// drawn from the loop's byte pool.
func (l *Loop) NewBufferRequest(c *api.Continuation, size int) *Request {
	req := l.NewRequest(c)
	req.buf = l.buffers.Get(size)
	return req
}

// Complete detaches the continuation and buffer from req and returns the
// record to the pool. The caller owns both returned values: it resumes the
// continuation exactly once and releases the buffer when resumption has
// finished with it.
func (l *Loop) Complete(req *Request) (*api.Continuation, []byte) {
	cont, buf := req.cont, req.buf
	l.requests.Put(req)
	return cont, buf
}

// ReleaseBuffer returns a buffer obtained through a request to the pool.
// Safe to call with nil.
func (l *Loop) ReleaseBuffer(buf []byte) {
	if buf != nil {
		l.buffers.Put(buf)
	}
}

// AcquireBuffer hands out a pooled buffer outside the request path; the
// stdin reader borrows its chunk buffers here.
func (l *Loop) AcquireBuffer(size int) []byte {
	return l.buffers.Get(size)
}
