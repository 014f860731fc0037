// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error kinds surfaced by array operations. Each kind is a bare sentinel
// with no payload; callers compare with errors.Is.

package api

import "errors"

var (
	// ErrCapacityExceeded indicates a push against a full array.
	ErrCapacityExceeded = errors.New("array is at capacity")

	// ErrOutOfRange indicates an index at or past the live prefix.
	ErrOutOfRange = errors.New("index out of range")

	// ErrLayoutOverflow indicates the requested slot count does not fit
	// in the address space.
	ErrLayoutOverflow = errors.New("layout size overflows address space")

	// ErrAllocFailed indicates the allocator could not obtain memory.
	ErrAllocFailed = errors.New("allocation failed")
)
