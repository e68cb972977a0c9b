// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	SetString(s string)
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the default buffer pool used for transient rendering targets.
//
// Every buffer taken from it must be reset and returned on all exit paths:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
// [With] wraps exactly that pattern.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// With borrows a buffer from p for the duration of fn.
//
// The buffer is reset and returned to p when fn returns, whether fn
// succeeds, fails, or panics. fn must not retain the buffer or any slice
// obtained from [Buffer.Bytes]; copy what must outlive the call.
func With(p Pool, fn func(buf Buffer) error) error {
	if p == nil {
		p = Default
	}

	buf := p.Get()
	defer func() {
		buf.Reset()
		p.Put(buf)
	}()

	return fn(buf)
}

// Tracker is a Pool that counts acquisitions and releases of an underlying pool.
//
// It is used to prove that every code path hands back what it borrowed.
// Tracker is safe for concurrent use by multiple goroutines.
type Tracker struct {
	pool Pool
	gets atomic.Int64
	puts atomic.Int64
}

// NewTracker wraps p. A nil p tracks [Default].
func NewTracker(p Pool) *Tracker {
	if p == nil {
		p = Default
	}
	return &Tracker{pool: p}
}

// Get returns a buffer from the underlying pool and records the acquisition.
func (t *Tracker) Get() Buffer {
	t.gets.Add(1)
	return t.pool.Get()
}

// Put returns b to the underlying pool and records the release.
func (t *Tracker) Put(b Buffer) {
	t.puts.Add(1)
	t.pool.Put(b)
}

// Outstanding reports how many buffers are currently borrowed.
func (t *Tracker) Outstanding() int64 { return t.gets.Load() - t.puts.Load() }

// Acquired reports the total number of Get calls.
func (t *Tracker) Acquired() int64 { return t.gets.Load() }
