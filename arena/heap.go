// File: arena/heap.go
// Package arena
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default allocator serving aligned blocks from the Go heap. Backing
// slices are pinned in a registry until Free so the runtime cannot
// reclaim them while raw pointers into them are live.

package arena

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-array/api"
)

type heapBlock struct {
	buf    []byte
	layout api.Layout
}

type heapAllocator struct {
	mu     sync.Mutex
	pinned map[uintptr]heapBlock

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

var defaultHeap = &heapAllocator{pinned: make(map[uintptr]heapBlock)}

// Default returns the process-wide heap allocator.
func Default() api.Allocator { return defaultHeap }

// Heap returns a fresh heap allocator with independent accounting.
func Heap() api.Allocator {
	return &heapAllocator{pinned: make(map[uintptr]heapBlock)}
}

func (h *heapAllocator) Alloc(l api.Layout) (unsafe.Pointer, error) {
	checkLayout(l)
	if l.Size == 0 {
		return nil, nil
	}
	// Over-allocate so a properly aligned address exists inside the slice.
	buf := make([]byte, l.Size+l.Align-1)
	base := uintptr(unsafe.Pointer(&buf[0]))
	off := (l.Align - base&(l.Align-1)) & (l.Align - 1)
	p := unsafe.Pointer(&buf[off])

	h.mu.Lock()
	h.pinned[uintptr(p)] = heapBlock{buf: buf, layout: l}
	h.mu.Unlock()
	h.totalAlloc.Add(1)
	return p, nil
}

func (h *heapAllocator) Free(p unsafe.Pointer, l api.Layout) {
	if p == nil && l.Size == 0 {
		return
	}
	h.mu.Lock()
	blk, ok := h.pinned[uintptr(p)]
	if ok && blk.layout == l {
		delete(h.pinned, uintptr(p))
	}
	h.mu.Unlock()

	if !ok {
		panic("arena: free of unknown block")
	}
	if blk.layout != l {
		panic("arena: free layout does not match allocation")
	}
	h.totalFree.Add(1)
}

// Traceable is false: byte blocks carry no pointer map, so the collector
// never scans them.
func (h *heapAllocator) Traceable() bool { return false }

func (h *heapAllocator) Stats() api.AllocStats {
	a, f := h.totalAlloc.Load(), h.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}

// checkLayout rejects layouts no allocator can honor.
func checkLayout(l api.Layout) {
	if l.Align == 0 || l.Align&(l.Align-1) != 0 {
		panic("arena: layout alignment must be a non-zero power of two")
	}
}
