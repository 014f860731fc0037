// File: arena/managed.go
// Package arena
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// GC-traceable allocator holding typed storage. This is the memory source
// for element types that contain Go pointers: the collector scans the
// backing slice, so stored pointers keep their referents alive.

package arena

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-array/api"
)

type managedAllocator[T any] struct {
	mu     sync.Mutex
	pinned map[uintptr]managedBlock[T]

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

type managedBlock[T any] struct {
	slots  []T
	layout api.Layout
}

// Managed returns a traceable allocator whose blocks hold T values
// visible to the garbage collector. Layouts must describe whole T slots.
func Managed[T any]() api.Allocator {
	return &managedAllocator[T]{pinned: make(map[uintptr]managedBlock[T])}
}

func (m *managedAllocator[T]) Alloc(l api.Layout) (unsafe.Pointer, error) {
	checkLayout(l)
	if l.Size == 0 {
		return nil, nil
	}
	var zero T
	stride := unsafe.Sizeof(zero)
	if stride == 0 || l.Size%stride != 0 || l.Align != unsafe.Alignof(zero) {
		return nil, api.ErrAllocFailed
	}
	slots := make([]T, l.Size/stride)
	p := unsafe.Pointer(&slots[0])

	m.mu.Lock()
	m.pinned[uintptr(p)] = managedBlock[T]{slots: slots, layout: l}
	m.mu.Unlock()
	m.totalAlloc.Add(1)
	return p, nil
}

func (m *managedAllocator[T]) Free(p unsafe.Pointer, l api.Layout) {
	if p == nil && l.Size == 0 {
		return
	}
	m.mu.Lock()
	blk, ok := m.pinned[uintptr(p)]
	if ok && blk.layout == l {
		delete(m.pinned, uintptr(p))
	}
	m.mu.Unlock()

	if !ok {
		panic("arena: free of unknown block")
	}
	if blk.layout != l {
		panic("arena: free layout does not match allocation")
	}
	m.totalFree.Add(1)
}

func (m *managedAllocator[T]) Traceable() bool { return true }

func (m *managedAllocator[T]) Stats() api.AllocStats {
	a, f := m.totalAlloc.Load(), m.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}
