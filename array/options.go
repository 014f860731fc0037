// File: array/options.go
// Package array defines functional options for array construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package array

import "github.com/momentics/hioload-array/api"

// Option customizes array construction.
type Option func(*config)

type config struct {
	alloc api.Allocator
}

// WithAllocator selects the memory source backing the array. The default
// is the process-wide pinned heap allocator.
func WithAllocator(a api.Allocator) Option {
	return func(c *config) {
		c.alloc = a
	}
}
