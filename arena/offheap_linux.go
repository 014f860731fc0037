//go:build linux
// +build linux

// File: arena/offheap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Off-heap allocator backed by anonymous private mmap regions.

package arena

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-array/api"
)

// offHeapAllocator maps pages outside the Go heap. Blocks are
// page-aligned and never scanned by the collector.
type offHeapAllocator struct {
	mu     sync.Mutex
	mapped map[uintptr]offHeapBlock

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

type offHeapBlock struct {
	buf    []byte
	layout api.Layout
}

// OffHeap returns an allocator backed by anonymous mmap regions.
func OffHeap() api.Allocator {
	return &offHeapAllocator{mapped: make(map[uintptr]offHeapBlock)}
}

func (o *offHeapAllocator) Alloc(l api.Layout) (unsafe.Pointer, error) {
	checkLayout(l)
	if l.Size == 0 {
		return nil, nil
	}
	if l.Align > uintptr(unix.Getpagesize()) {
		// Page alignment is the strongest this path can honor.
		return nil, api.ErrAllocFailed
	}
	buf, err := unix.Mmap(-1, 0, int(l.Size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, api.ErrAllocFailed
	}
	p := unsafe.Pointer(&buf[0])

	o.mu.Lock()
	o.mapped[uintptr(p)] = offHeapBlock{buf: buf, layout: l}
	o.mu.Unlock()
	o.totalAlloc.Add(1)
	return p, nil
}

func (o *offHeapAllocator) Free(p unsafe.Pointer, l api.Layout) {
	if p == nil && l.Size == 0 {
		return
	}
	o.mu.Lock()
	blk, ok := o.mapped[uintptr(p)]
	if ok && blk.layout == l {
		delete(o.mapped, uintptr(p))
	}
	o.mu.Unlock()

	if !ok {
		panic("arena: free of unknown mapping")
	}
	if blk.layout != l {
		panic("arena: free layout does not match allocation")
	}
	if err := unix.Munmap(blk.buf); err != nil {
		panic("arena: munmap failed: " + err.Error())
	}
	o.totalFree.Add(1)
}

func (o *offHeapAllocator) Traceable() bool { return false }

func (o *offHeapAllocator) Stats() api.AllocStats {
	a, f := o.totalAlloc.Load(), o.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}
