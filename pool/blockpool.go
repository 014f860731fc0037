// File: pool/blockpool.go
// Package pool implements layout-keyed recycling of array storage blocks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BlockPool decorates an inner allocator with per-layout FIFO free lists
// so arrays of the same shape churn without round-tripping the system
// allocator. All methods are thread-safe.

package pool

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-array/api"
)

const defaultRetain = 64

// BlockPool is an api.Allocator that retains released blocks for reuse.
type BlockPool struct {
	inner  api.Allocator
	retain int

	mu   sync.Mutex
	free map[api.Layout]*queue.Queue

	hits       atomic.Int64
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

var _ api.Allocator = (*BlockPool)(nil)

// New wraps inner with free lists retaining at most retain blocks per
// layout; retain <= 0 selects the default.
func New(inner api.Allocator, retain int) *BlockPool {
	if retain <= 0 {
		retain = defaultRetain
	}
	return &BlockPool{
		inner:  inner,
		retain: retain,
		free:   make(map[api.Layout]*queue.Queue),
	}
}

// Alloc reuses a retained block of the same layout when available, and
// falls through to the inner allocator otherwise. Recycled blocks hold
// stale bytes; the array never reads slots it has not written.
func (p *BlockPool) Alloc(l api.Layout) (unsafe.Pointer, error) {
	if l.Size == 0 {
		return nil, nil
	}
	p.mu.Lock()
	if q, ok := p.free[l]; ok && q.Length() > 0 {
		ptr := q.Remove().(unsafe.Pointer)
		p.mu.Unlock()
		p.hits.Add(1)
		p.totalAlloc.Add(1)
		return ptr, nil
	}
	p.mu.Unlock()

	ptr, err := p.inner.Alloc(l)
	if err != nil {
		return nil, err
	}
	p.totalAlloc.Add(1)
	return ptr, nil
}

// Free retains the block for reuse, or releases it to the inner
// allocator once the layout's free list is at the retention cap.
func (p *BlockPool) Free(ptr unsafe.Pointer, l api.Layout) {
	if ptr == nil && l.Size == 0 {
		return
	}
	p.mu.Lock()
	q, ok := p.free[l]
	if !ok {
		q = queue.New()
		p.free[l] = q
	}
	if q.Length() < p.retain {
		q.Add(ptr)
		p.mu.Unlock()
		p.totalFree.Add(1)
		return
	}
	p.mu.Unlock()

	p.inner.Free(ptr, l)
	p.totalFree.Add(1)
}

// Traceable follows the inner allocator.
func (p *BlockPool) Traceable() bool { return p.inner.Traceable() }

func (p *BlockPool) Stats() api.AllocStats {
	a, f := p.totalAlloc.Load(), p.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}

// Hits returns how many allocations were served from the free lists.
func (p *BlockPool) Hits() int64 { return p.hits.Load() }

// Drain releases every retained block to the inner allocator.
func (p *BlockPool) Drain() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for l, q := range p.free {
		for q.Length() > 0 {
			p.inner.Free(q.Remove().(unsafe.Pointer), l)
		}
		delete(p.free, l)
	}
}
