// File: array/array.go
// Package array
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core container over raw memory. Slot addressing is pointer arithmetic
// on the base of the backing block; slots past Len are uninitialized
// storage and are never read.

package array

import (
	"reflect"
	"unsafe"

	"github.com/momentics/hioload-array/api"
	"github.com/momentics/hioload-array/arena"
)

// StaticArray is a fixed-capacity contiguous container. Only Push moves
// the boundary between the live prefix and uninitialized storage, and
// only forward.
type StaticArray[T any] struct {
	base   unsafe.Pointer
	alloc  api.Allocator
	layout api.Layout
	stride uintptr
	cap    int
	size   int
	freed  bool
}

var _ api.Array[int] = (*StaticArray[int])(nil)

// zeroSized anchors arrays whose element type occupies no bytes; reads
// through it move zero bytes.
var zeroSized byte

// New constructs an empty array with room for capacity elements. The
// whole block is requested up front; layout overflow and allocation
// failure are fatal, not returned. Element types containing Go pointers
// must be paired with a traceable allocator (arena.Managed); otherwise
// New panics, since raw blocks are invisible to the collector and stored
// pointers would dangle after a collection.
func New[T any](capacity int, opts ...Option) *StaticArray[T] {
	if capacity < 0 {
		panic("array: negative capacity")
	}
	cfg := config{alloc: arena.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.alloc.Traceable() && arena.HasPointers(reflect.TypeFor[T]()) {
		panic("array: element type holds Go pointers; use a traceable allocator")
	}

	var zero T
	layout, err := api.LayoutFor(unsafe.Sizeof(zero), unsafe.Alignof(zero), capacity)
	if err != nil {
		panic(err)
	}
	a := &StaticArray[T]{
		alloc:  cfg.alloc,
		layout: layout,
		stride: unsafe.Sizeof(zero),
		cap:    capacity,
	}
	switch {
	case layout.Size > 0:
		p, err := cfg.alloc.Alloc(layout)
		if err != nil {
			panic(err)
		}
		a.base = p
	case capacity > 0:
		a.base = unsafe.Pointer(&zeroSized)
	}
	return a
}

// From constructs an array at exactly the capacity of items and fills it
// in order. The returned array is full.
func From[T any](items ...T) *StaticArray[T] {
	a := New[T](len(items))
	for _, item := range items {
		if err := a.Push(item); err != nil {
			panic(err) // unreachable: capacity equals len(items)
		}
	}
	return a
}

func (a *StaticArray[T]) slot(i int) *T {
	return (*T)(unsafe.Add(a.base, uintptr(i)*a.stride))
}

// Push appends item to the live prefix. Fails with api.ErrCapacityExceeded
// when the array is full; item is passed by value, so the caller's copy is
// untouched on failure.
func (a *StaticArray[T]) Push(item T) error {
	if a.size == a.cap {
		return api.ErrCapacityExceeded
	}
	*a.slot(a.size) = item
	a.size++
	return nil
}

// Get returns a copy of the element at index i.
func (a *StaticArray[T]) Get(i int) (T, error) {
	if a.OutOfRange(i) {
		var zero T
		return zero, api.ErrOutOfRange
	}
	return *a.slot(i), nil
}

// Ref returns a pointer to the element at index i, valid until Free.
// Writing through the pointer mutates the element in place.
func (a *StaticArray[T]) Ref(i int) (*T, error) {
	if a.OutOfRange(i) {
		return nil, api.ErrOutOfRange
	}
	return a.slot(i), nil
}

// Index is the infallible accessor: an out-of-range index is a contract
// violation and panics.
func (a *StaticArray[T]) Index(i int) *T {
	p, err := a.Ref(i)
	if err != nil {
		panic(err)
	}
	return p
}

// OutOfRange reports whether i falls outside the live prefix.
func (a *StaticArray[T]) OutOfRange(i int) bool { return i < 0 || i >= a.size }

// Full reports whether the live prefix has reached capacity.
func (a *StaticArray[T]) Full() bool { return a.size == a.cap }

// Len returns the number of initialized elements.
func (a *StaticArray[T]) Len() int { return a.size }

// Cap returns the immutable capacity.
func (a *StaticArray[T]) Cap() int { return a.cap }

// Free returns the backing block to the allocator using the layout
// captured at construction. Element access after Free is a contract
// violation. A second Free is a no-op.
func (a *StaticArray[T]) Free() {
	if a.freed {
		return
	}
	a.freed = true
	if a.layout.Size > 0 {
		a.alloc.Free(a.base, a.layout)
	}
	a.base = nil
	a.size = 0
}
