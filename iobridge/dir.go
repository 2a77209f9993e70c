// File: iobridge/dir.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package iobridge

import (
	"github.com/momentics/asyncfs/api"
	"github.com/momentics/asyncfs/internal/platform"
	"github.com/momentics/asyncfs/loop"
)

// ListDirectory issues an async directory scan. On success the task resumes
// with a fresh ordered sequence of entry names, in the order the OS reported
// them — not sorted. An empty directory resumes with an empty sequence.
func (b *Bridge) ListDirectory(path string, c *api.Continuation) {
	req := b.loop.NewRequest(c)
	b.issue(req, func() loop.Outcome {
		names, status := platform.ScanDir(path)
		return loop.Outcome{Result: status, Value: names}
	}, b.listCallback)
}

func (b *Bridge) listCallback(req *loop.Request, out loop.Outcome) {
	if b.loop.HandleError(b.sched, req, out) {
		return
	}
	names := out.Value.([]string)
	b.vm.EnsureSlots(3)
	b.vm.SetSlotNewList(resultSlot)
	for _, name := range names {
		b.vm.SetSlotString(1, name)
		b.vm.InsertInList(resultSlot, -1, 1)
	}
	cont, _ := b.loop.Complete(req)
	b.sched.Resume(cont, true)
	b.sched.FinishResume()
}
