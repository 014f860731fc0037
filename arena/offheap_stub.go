//go:build !linux && !windows
// +build !linux,!windows

// File: arena/offheap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

import "github.com/momentics/hioload-array/api"

// OffHeap falls back to a pinned heap allocator on platforms without a
// dedicated mapping path.
func OffHeap() api.Allocator { return Heap() }
