// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_RunsSubmittedTasks(t *testing.T) {
	e := NewExecutor(4)
	defer e.Close()

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		require.NoError(t, e.Submit(func() {
			count.Add(1)
			wg.Done()
		}))
	}
	wg.Wait()
	assert.Equal(t, int64(100), count.Load())
}

func TestExecutor_SubmitAfterClose(t *testing.T) {
	e := NewExecutor(1)
	e.Close()
	assert.ErrorIs(t, e.Submit(func() {}), ErrExecutorClosed)
}

func TestExecutor_CloseIsIdempotent(t *testing.T) {
	e := NewExecutor(2)
	e.Close()
	e.Close()
}

func TestExecutor_SurvivesPanickingTask(t *testing.T) {
	e := NewExecutor(1)
	defer e.Close()

	done := make(chan struct{})
	require.NoError(t, e.Submit(func() { panic("boom") }))
	require.NoError(t, e.Submit(func() { close(done) }))
	<-done
}

func TestExecutor_DefaultWorkerCount(t *testing.T) {
	e := NewExecutor(0)
	defer e.Close()
	assert.Greater(t, e.NumWorkers(), 0)
}
