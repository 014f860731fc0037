// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"
	"unsafe"

	"github.com/momentics/hioload-array/api"
	"github.com/momentics/hioload-array/arena"
)

// FakeAllocator wraps a real allocator and records every block it hands
// out, so tests can assert layout round-trips and exactly-once release.
// Invalid frees are counted instead of panicking.
type FakeAllocator struct {
	Inner api.Allocator

	mu   sync.Mutex
	live map[uintptr]api.Layout

	Allocs int
	Frees  int
	// Mismatches counts Free calls whose pointer or layout did not match
	// a recorded allocation.
	Mismatches int
}

var _ api.Allocator = (*FakeAllocator)(nil)

// NewAllocator returns a recording allocator over a fresh heap allocator.
func NewAllocator() *FakeAllocator {
	return &FakeAllocator{
		Inner: arena.Heap(),
		live:  make(map[uintptr]api.Layout),
	}
}

func (f *FakeAllocator) Alloc(l api.Layout) (unsafe.Pointer, error) {
	p, err := f.Inner.Alloc(l)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.Allocs++
	if p != nil {
		f.live[uintptr(p)] = l
	}
	f.mu.Unlock()
	return p, nil
}

func (f *FakeAllocator) Free(p unsafe.Pointer, l api.Layout) {
	if p == nil && l.Size == 0 {
		return
	}
	f.mu.Lock()
	f.Frees++
	got, ok := f.live[uintptr(p)]
	if ok && got == l {
		delete(f.live, uintptr(p))
	} else {
		ok = false
		f.Mismatches++
	}
	f.mu.Unlock()

	if ok {
		f.Inner.Free(p, l)
	}
}

func (f *FakeAllocator) Traceable() bool { return f.Inner.Traceable() }

func (f *FakeAllocator) Stats() api.AllocStats { return f.Inner.Stats() }

// Live returns the number of outstanding blocks.
func (f *FakeAllocator) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}
