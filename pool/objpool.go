// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "sync"

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// Resetter is implemented by pooled objects that must clear their state
// before reuse. Request records implement it so a recycled record can never
// leak a stale continuation or buffer.
type Resetter interface {
	Reset()
}

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns obj to the pool, resetting it first when supported.
func (sp *SyncPool[T]) Put(obj T) {
	if r, ok := any(obj).(Resetter); ok {
		r.Reset()
	}
	sp.pool.Put(obj)
}
