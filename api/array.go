// File: api/array.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity array and iterator contracts.

package api

// Array is a fixed-capacity contiguous container. Capacity is chosen at
// construction and never changes; the backing block is acquired once and
// released once by Free.
type Array[T any] interface {
	// Push appends item, returns ErrCapacityExceeded when full.
	Push(item T) error
	// Get returns a copy of the element at i, ErrOutOfRange past Len.
	Get(i int) (T, error)
	// Ref returns a pointer to the element at i for in-place reads and
	// writes, ErrOutOfRange past Len.
	Ref(i int) (*T, error)
	// Index is the infallible accessor; out of range panics.
	Index(i int) *T
	// Full reports Len == Cap.
	Full() bool
	// OutOfRange reports whether i falls outside the live prefix.
	OutOfRange(i int) bool
	// Len returns the number of initialized elements.
	Len() int
	// Cap returns the immutable capacity.
	Cap() int
	// Free releases the backing block exactly once.
	Free()
}

// Iterator is a forward cursor over an Array's live prefix. Exhaustion
// is permanent.
type Iterator[T any] interface {
	// Next yields the next element; false once the prefix is consumed.
	Next() (T, bool)
}
