// File: api/alloc.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocation layout descriptors and the allocator contract backing
// array storage.

package api

import "unsafe"

// Layout describes one contiguous allocation: total byte size and the
// alignment of its base address. The layout passed to Free must be
// bit-identical to the one passed to Alloc.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutFor computes the layout of n contiguous slots with the given
// element size and alignment. Element size is taken as the array stride,
// so it must already include trailing padding (unsafe.Sizeof does).
func LayoutFor(elemSize, elemAlign uintptr, n int) (Layout, error) {
	if n < 0 {
		return Layout{}, ErrLayoutOverflow
	}
	if elemSize > 0 && uintptr(n) > ^uintptr(0)/elemSize {
		return Layout{}, ErrLayoutOverflow
	}
	return Layout{Size: elemSize * uintptr(n), Align: elemAlign}, nil
}

// Allocator is a byte-granular memory source for array storage.
// Implementations are safe for concurrent use.
type Allocator interface {
	// Alloc obtains one block described by l, aligned to l.Align.
	// A zero-size layout yields a nil pointer and no error.
	Alloc(l Layout) (unsafe.Pointer, error)
	// Free releases a block previously returned by Alloc. The layout
	// must match the one used at allocation; anything else is memory
	// corruption and panics.
	Free(p unsafe.Pointer, l Layout)
	// Traceable reports whether stored elements are scanned by the
	// garbage collector. Element types containing Go pointers require
	// a traceable allocator.
	Traceable() bool
	// Stats returns allocation counters.
	Stats() AllocStats
}

// AllocStats aggregates allocator accounting.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
