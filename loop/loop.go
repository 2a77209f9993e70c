// File: loop/loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Loop is the control thread of the bridge. Operations are issued from the
// control goroutine, executed on the worker pool, and completed back on the
// control goroutine. Callbacks may reentrantly issue new operations; they
// are queued behind the running callback and dispatched in post order.

package loop

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/momentics/asyncfs/api"
	"github.com/momentics/asyncfs/internal/concurrency"
	"github.com/momentics/asyncfs/pool"
)

// Outcome is the raw result of one finished operation: a libuv-style status
// (non-negative value on success, negated errno on failure) plus an
// op-specific payload for operations that produce more than a number.
type Outcome struct {
	Result int64
	Value  any
}

// Op is a blocking operation executed on a worker goroutine. It must not
// touch the VM or the scheduler; only the completion callback may.
type Op func() Outcome

// Callback handles a completed operation on the control goroutine.
type Callback func(req *Request, out Outcome)

// completion is one queued dispatch: either an operation result or a plain
// closure posted via Async.
type completion struct {
	req *Request
	out Outcome
	cb  Callback
	fn  func()
}

// Loop owns the pending-completion FIFO, the executor pool, and the pools
// backing request records and transient buffers.
type Loop struct {
	mu      sync.Mutex
	pending *queue.Queue
	closed  bool

	wakeCh  chan struct{}
	quitCh  chan struct{}
	doneCh  chan struct{}
	running atomic.Bool

	exec     *concurrency.Executor
	log      *logrus.Logger
	requests *pool.SyncPool[*Request]
	buffers  *pool.BytePool
}

// Option customizes loop initialization.
type Option func(*cfg)

type cfg struct {
	workers    int
	bufferSize int
	log        *logrus.Logger
}

// WithWorkers sets the number of executor workers.
func WithWorkers(n int) Option {
	return func(c *cfg) { c.workers = n }
}

// WithBufferSize sets the pooled buffer capacity class.
func WithBufferSize(n int) Option {
	return func(c *cfg) { c.bufferSize = n }
}

// WithLogger overrides the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *cfg) { c.log = l }
}

// New creates a Loop. Run must be called on the goroutine that is to act as
// the control thread.
func New(opts ...Option) *Loop {
	c := cfg{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	return &Loop{
		pending:  queue.New(),
		wakeCh:   make(chan struct{}, 1),
		quitCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		exec:     concurrency.NewExecutor(c.workers),
		log:      c.log,
		requests: pool.NewSyncPool(func() *Request { return &Request{} }),
		buffers:  pool.NewBytePool(c.bufferSize),
	}
}

// Issue submits op to the executor on behalf of req. When op finishes, cb
// runs on the control goroutine with the outcome. The caller keeps
// ownership of req only until Issue returns; after that the record belongs
// to the completion path.
func (l *Loop) Issue(req *Request, op Op, cb Callback) error {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return api.ErrLoopClosed
	}
	err := l.exec.Submit(func() {
		out := op()
		l.post(completion{req: req, out: out, cb: cb})
	})
	if err != nil {
		return errors.Wrap(err, "issue operation")
	}
	return nil
}

// Async schedules fn to run on the control goroutine. Reports false if the
// loop has stopped.
func (l *Loop) Async(fn func()) bool {
	return l.post(completion{fn: fn})
}

// Run dispatches completions until Stop is called. It is the control
// goroutine: every callback in the bridge executes here, one at a time.
func (l *Loop) Run() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer func() {
		close(l.doneCh)
		l.running.Store(false)
	}()

	for {
		l.drain()
		select {
		case <-l.wakeCh:
		case <-l.quitCh:
			l.drain()
			return
		}
	}
}

// Stop shuts the executor down first and waits for every in-flight
// operation to post its completion, then ends dispatch after a final drain.
// A task suspended on an operation at the moment of Stop is therefore still
// resumed exactly once; only completions posted after Stop returns are
// dropped, with a warning. Must not be called from the control goroutine.
// Idempotent.
func (l *Loop) Stop() {
	l.exec.Close()
	l.mu.Lock()
	already := l.closed
	l.closed = true
	l.mu.Unlock()
	if !already {
		close(l.quitCh)
	}
	if l.running.Load() {
		<-l.doneCh
	}
}

// Pending returns the number of queued, not yet dispatched completions.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending.Length()
}

// drain dispatches everything queued at the time of each iteration,
// including completions queued by the callbacks themselves.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if l.pending.Length() == 0 {
			l.mu.Unlock()
			return
		}
		c := l.pending.Remove().(completion)
		l.mu.Unlock()
		l.dispatch(c)
	}
}

func (l *Loop) dispatch(c completion) {
	if c.fn != nil {
		c.fn()
		return
	}
	c.cb(c.req, c.out)
}

// post enqueues a completion from any goroutine and wakes the control
// goroutine. The FIFO is unbounded, so workers never block here.
func (l *Loop) post(c completion) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.log.Warn("asyncfs: completion dropped after loop stop")
		return false
	}
	l.pending.Add(c)
	l.mu.Unlock()

	select {
	case l.wakeCh <- struct{}{}:
	default:
	}
	return true
}
