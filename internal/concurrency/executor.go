// File: internal/concurrency/executor.go
// Package concurrency implements the blocking-syscall executor behind the loop.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across a fixed pool of worker goroutines fed by
// one bounded queue. Tasks here are individual blocking syscalls; ordering
// between tasks is deliberately unspecified, matching the bridge's contract
// that relative completion order across operations is up to the reactor.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// TaskFunc is a unit of work to execute.
type TaskFunc func()

// Executor manages a pool of worker goroutines.
type Executor struct {
	tasks   chan TaskFunc
	closeCh chan struct{}
	closed  atomic.Bool
	wg      sync.WaitGroup

	numWorkers int

	// statistics
	totalTasks     int64
	completedTasks int64
}

// NewExecutor creates an Executor with the given number of workers.
// If numWorkers <= 0, defaults to runtime.NumCPU().
func NewExecutor(numWorkers int) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{
		tasks:      make(chan TaskFunc, numWorkers*4),
		closeCh:    make(chan struct{}),
		numWorkers: numWorkers,
	}
	e.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go e.run()
	}
	return e
}

// Submit enqueues a task for execution, returning ErrExecutorClosed if the
// executor is closed. Submit blocks while the queue is full so issuers
// apply natural backpressure instead of dropping operations.
func (e *Executor) Submit(task TaskFunc) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}
	atomic.AddInt64(&e.totalTasks, 1)
	select {
	case e.tasks <- task:
		return nil
	case <-e.closeCh:
		return ErrExecutorClosed
	}
}

// NumWorkers returns the number of workers.
func (e *Executor) NumWorkers() int { return e.numWorkers }

// Close shuts the executor down and waits for workers to finish the tasks
// already queued. Idempotent. The task channel is never closed so a racing
// Submit can fail cleanly instead of panicking on a closed channel.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		close(e.closeCh)
		e.wg.Wait()
	}
}

// Stats returns basic executor metrics.
func (e *Executor) Stats() map[string]int64 {
	total := atomic.LoadInt64(&e.totalTasks)
	done := atomic.LoadInt64(&e.completedTasks)
	return map[string]int64{
		"total_tasks":     total,
		"completed_tasks": done,
		"pending_tasks":   total - done,
		"num_workers":     int64(e.numWorkers),
	}
}

// run is the main loop for a worker. On shutdown the queue is drained so
// every submitted task still executes and posts its completion.
func (e *Executor) run() {
	defer e.wg.Done()
	for {
		select {
		case task := <-e.tasks:
			e.executeTask(task)
		case <-e.closeCh:
			for {
				select {
				case task := <-e.tasks:
					e.executeTask(task)
				default:
					return
				}
			}
		}
	}
}

// executeTask runs the task and updates statistics, recovering from panics
// so one faulting syscall closure cannot kill the pool.
func (e *Executor) executeTask(task TaskFunc) {
	defer func() {
		if r := recover(); r != nil {
			// swallow panic to keep worker alive
		}
		atomic.AddInt64(&e.completedTasks, 1)
	}()
	task()
}
