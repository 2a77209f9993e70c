// Package pool
// Author: momentics <momentics@gmail.com>
//
// Buffer and object pooling for the asyncfs bridge. Read/write operations
// borrow their transient byte regions from a BytePool; in-flight request
// records recycle through a generic SyncPool. See bytepool.go and
// objpool.go for details.
package pool
