//go:build windows
// +build windows

// File: arena/offheap_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Off-heap allocator backed by VirtualAlloc committed regions.

package arena

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-array/api"
)

// offHeapAllocator commits pages outside the Go heap. Blocks are
// page-aligned and never scanned by the collector.
type offHeapAllocator struct {
	mu     sync.Mutex
	mapped map[uintptr]api.Layout

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// OffHeap returns an allocator backed by VirtualAlloc regions.
func OffHeap() api.Allocator {
	return &offHeapAllocator{mapped: make(map[uintptr]api.Layout)}
}

const windowsPageSize = 4096

func (o *offHeapAllocator) Alloc(l api.Layout) (unsafe.Pointer, error) {
	checkLayout(l)
	if l.Size == 0 {
		return nil, nil
	}
	if l.Align > windowsPageSize {
		return nil, api.ErrAllocFailed
	}
	addr, err := windows.VirtualAlloc(0, l.Size,
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return nil, api.ErrAllocFailed
	}

	o.mu.Lock()
	o.mapped[addr] = l
	o.mu.Unlock()
	o.totalAlloc.Add(1)
	return unsafe.Pointer(addr), nil
}

func (o *offHeapAllocator) Free(p unsafe.Pointer, l api.Layout) {
	if p == nil && l.Size == 0 {
		return
	}
	o.mu.Lock()
	got, ok := o.mapped[uintptr(p)]
	if ok && got == l {
		delete(o.mapped, uintptr(p))
	}
	o.mu.Unlock()

	if !ok {
		panic("arena: free of unknown region")
	}
	if got != l {
		panic("arena: free layout does not match allocation")
	}
	if err := windows.VirtualFree(uintptr(p), 0, windows.MEM_RELEASE); err != nil {
		panic("arena: VirtualFree failed: " + err.Error())
	}
	o.totalFree.Add(1)
}

func (o *offHeapAllocator) Traceable() bool { return false }

func (o *offHeapAllocator) Stats() api.AllocStats {
	a, f := o.totalAlloc.Load(), o.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}
