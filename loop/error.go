// File: loop/error.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package loop

import (
	"github.com/momentics/asyncfs/api"
	"github.com/momentics/asyncfs/internal/platform"
)

// HandleError is the single failure short-circuit of the bridge. If out
// carries a negative status, it translates the errno into a readable
// message, frees the request record (and its buffer, which no error path
// ever delivers), resumes the waiting task on the error path, and reports
// true so the callback returns immediately. Every completion callback calls
// this first; it guarantees a record is freed on every exit path.
func (l *Loop) HandleError(s api.Scheduler, req *Request, out Outcome) bool {
	if out.Result >= 0 {
		return false
	}
	message := platform.ErrnoMessage(out.Result)
	cont, buf := l.Complete(req)
	l.ReleaseBuffer(buf)
	s.ResumeError(cont, message)
	return true
}
