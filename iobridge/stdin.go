// File: iobridge/stdin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stdin stream subsystem. Unlike file operations, which pair one request
// record with one completion, stdin is a single long-lived channel: one
// stream, lazily created on the first start, pushing chunks into a fixed
// handler until end-of-stream tears the whole subsystem down exactly once.
//
// The reader goroutine multiplexes the stream descriptor with a self-pipe,
// so Stop and shutdown never wait on a pending read. Chunk delivery and the
// state machine itself run on the loop's control goroutine.

package iobridge

import (
	"github.com/pkg/errors"

	"github.com/momentics/asyncfs/api"
	"github.com/momentics/asyncfs/internal/platform"
	"github.com/momentics/asyncfs/pool"
)

const stdinDescriptor = 0

// Chunk sizes per stream kind: interactive terminals deliver small
// line-oriented chunks, pipes and redirected files full buffers.
const (
	ttyChunkSize  = 4 * 1024
	pipeChunkSize = pool.DefaultBufferSize
)

type stdinCommand int

const (
	stdinPause stdinCommand = iota
	stdinResumeRead
	stdinQuit
)

// heldChunk is a read chunk whose delivery was overtaken by a stop. It keeps
// its pooled buffer until replay or shutdown.
type heldChunk struct {
	buf []byte
	n   int
}

// stdinStream owns a duplicated descriptor, the self-pipe that interrupts
// its poll, and the reader goroutine. At most one stream exists per bridge.
type stdinStream struct {
	fd          int
	wakeR       int
	wakeW       int
	interactive bool
	reading     bool

	cmdCh  chan stdinCommand
	doneCh chan struct{}
}

// StartStdin begins (or resumes) delivery of stdin data to the handler
// method of the Stdin class. The first start classifies the descriptor as a
// terminal or a pipe and creates the stream; a start after a stop simply
// resumes reading. After end-of-stream shutdown the subsystem is gone for
// good and StartStdin reports ErrStreamShutdown.
func (b *Bridge) StartStdin() error {
	if b.stdinShutdown || b.closed {
		return api.ErrStreamShutdown
	}
	if b.stdin == nil {
		s, err := newStdinStream(b.stdinFd)
		if err != nil {
			return err
		}
		b.stdin = s
		go s.readLoop(b)
		return nil
	}
	if !b.stdin.reading {
		b.stdin.reading = true
		b.stdin.signal(stdinResumeRead)
		b.replayHeldStdin()
	}
	return nil
}

// replayHeldStdin delivers chunks that a stop caught in flight, in their
// original order, before any fresh reads arrive.
func (b *Bridge) replayHeldStdin() {
	held := b.stdinHeld
	b.stdinHeld = nil
	for _, c := range held {
		b.deliverStdinChunk(c.buf, c.n)
	}
}

// StopStdin pauses delivery without destroying the stream or the cached
// handles, so a later StartStdin resumes cheaply. Stopping a subsystem that
// was never started is a no-op.
func (b *Bridge) StopStdin() {
	if b.stdin == nil || !b.stdin.reading {
		return
	}
	b.stdin.reading = false
	b.stdin.signal(stdinPause)
}

func newStdinStream(fd int) (*stdinStream, error) {
	owned := platform.Dup(fd)
	if owned < 0 {
		return nil, errors.Errorf("dup stdin descriptor: %s", platform.ErrnoMessage(owned))
	}
	wakeR, wakeW, status := platform.Pipe()
	if status < 0 {
		platform.Close(int(owned))
		return nil, errors.Errorf("create stdin wake pipe: %s", platform.ErrnoMessage(status))
	}
	return &stdinStream{
		fd:          int(owned),
		wakeR:       wakeR,
		wakeW:       wakeW,
		interactive: platform.IsTerminal(fd),
		reading:     true,
		// Buffered past any realistic toggle burst. A full queue only
		// stalls the sender until the reader's next drain, which always
		// empties the queue in full.
		cmdCh:       make(chan stdinCommand, 16),
		doneCh:      make(chan struct{}),
	}, nil
}

// signal queues a command and pokes the self-pipe so a blocked poll wakes.
func (s *stdinStream) signal(cmd stdinCommand) {
	s.cmdCh <- cmd
	platform.Write(s.wakeW, []byte{0})
}

func (s *stdinStream) chunkSize() int {
	if s.interactive {
		return ttyChunkSize
	}
	return pipeChunkSize
}

// readLoop runs on its own goroutine. It never touches the VM: chunks and
// end-of-stream are handed to the loop for delivery on the control
// goroutine.
func (s *stdinStream) readLoop(b *Bridge) {
	defer close(s.doneCh)
	paused := false
	for {
		if paused {
			cmd, ok := <-s.cmdCh
			if !ok || cmd == stdinQuit {
				return
			}
			if cmd == stdinResumeRead {
				paused = false
			}
			// A toggle burst may have queued more commands behind this
			// one; the last command wins.
			if s.drainCommands(&paused) {
				return
			}
			continue
		}

		ready, status := platform.WaitReadable([]int{s.fd, s.wakeR})
		if status < 0 {
			b.loop.Async(func() { b.deliverStdinEOF() })
			return
		}
		if ready[1] {
			var drain [8]byte
			platform.Read(s.wakeR, drain[:])
			if s.drainCommands(&paused) {
				return
			}
			continue
		}
		if !ready[0] {
			continue
		}

		buf := b.loop.AcquireBuffer(s.chunkSize())
		n := platform.Read(s.fd, buf)
		if n <= 0 {
			b.loop.ReleaseBuffer(buf)
			b.loop.Async(func() { b.deliverStdinEOF() })
			return
		}
		if !b.loop.Async(func() { b.deliverStdinChunk(buf, int(n)) }) {
			// Loop already stopped; nothing will drain us anymore.
			b.loop.ReleaseBuffer(buf)
			return
		}
	}
}

// drainCommands empties the command queue, applying every entry. The wake
// pipe is drained in bulk, so one wake byte can stand for several queued
// commands; a single pop here would strand the rest of a stop/start/stop
// burst. Reports true when a quit command was seen.
func (s *stdinStream) drainCommands(paused *bool) bool {
	for {
		select {
		case cmd := <-s.cmdCh:
			switch cmd {
			case stdinQuit:
				return true
			case stdinPause:
				*paused = true
			case stdinResumeRead:
				*paused = false
			}
		default:
			return false
		}
	}
}

// deliverStdinChunk invokes the cached handler with the received bytes,
// then releases the chunk buffer. Control goroutine only. A chunk that was
// already read when a stop landed is held, not delivered: the next start
// replays it before fresh data.
func (b *Bridge) deliverStdinChunk(buf []byte, n int) {
	if b.stdin == nil {
		// Shutdown raced a queued chunk; nothing left to deliver to.
		b.loop.ReleaseBuffer(buf)
		return
	}
	if !b.stdin.reading {
		b.stdinHeld = append(b.stdinHeld, heldChunk{buf: buf, n: n})
		return
	}
	class := b.stdinClassHandle()
	onData := b.stdinOnDataHandle()
	b.vm.EnsureSlots(2)
	b.vm.SetSlotHandle(0, class)
	b.vm.SetSlotBytes(1, buf[:n])
	_ = b.vm.Call(onData)
	b.loop.ReleaseBuffer(buf)
}

// deliverStdinEOF invokes the handler once with a null payload, then tears
// the whole subsystem down. The teardown is terminal for this bridge.
func (b *Bridge) deliverStdinEOF() {
	if b.stdin == nil || b.stdinShutdown {
		return
	}
	class := b.stdinClassHandle()
	onData := b.stdinOnDataHandle()
	b.vm.EnsureSlots(2)
	b.vm.SetSlotHandle(0, class)
	b.vm.SetSlotNull(1)
	_ = b.vm.Call(onData)
	b.shutdownStdin()
}

// shutdownStdin releases the stream and the cached class and method handles
// together. From the caller's point of view the subsystem disappears
// atomically: no delivery happens after this returns.
func (b *Bridge) shutdownStdin() {
	b.stdinShutdown = true
	if b.stdin != nil {
		b.stdin.destroy()
		b.stdin = nil
	}
	if b.stdinClass != nil {
		b.vm.ReleaseHandle(b.stdinClass)
		b.stdinClass = nil
	}
	if b.stdinOnData != nil {
		b.vm.ReleaseHandle(b.stdinOnData)
		b.stdinOnData = nil
	}
	for _, c := range b.stdinHeld {
		b.loop.ReleaseBuffer(c.buf)
	}
	b.stdinHeld = nil
}

// destroy stops the reader goroutine and closes every descriptor the
// stream owns.
func (s *stdinStream) destroy() {
	s.signal(stdinQuit)
	<-s.doneCh
	platform.Close(s.wakeR)
	platform.Close(s.wakeW)
	platform.Close(s.fd)
}
