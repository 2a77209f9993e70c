// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

// DefaultBufferSize is the pooled buffer class. It matches the chunk size
// suggested to stream readers, so stdin chunks and typical file reads both
// recycle instead of allocating.
const DefaultBufferSize = 64 * 1024

// BytePool recycles byte buffers of one capacity class. Requests larger
// than the class are satisfied with a fresh allocation and not retained.
type BytePool struct {
	size int
	pool sync.Pool
}

// NewBytePool creates a pool whose recycled buffers have capacity size.
func NewBytePool(size int) *BytePool {
	if size <= 0 {
		size = DefaultBufferSize
	}
	b := &BytePool{size: size}
	b.pool.New = func() any {
		buf := make([]byte, b.size)
		return &buf
	}
	return b
}

// Get returns a buffer of length n. Buffers within the capacity class come
// from the pool; oversized ones are allocated directly.
func (b *BytePool) Get(n int) []byte {
	if n > b.size {
		return make([]byte, n)
	}
	buf := *(b.pool.Get().(*[]byte))
	return buf[:n]
}

// Put returns a buffer to the pool. Only buffers of the pool's capacity
// class are retained; the rest are left to the GC.
func (b *BytePool) Put(buf []byte) {
	if cap(buf) != b.size {
		return
	}
	buf = buf[:b.size]
	b.pool.Put(&buf)
}
