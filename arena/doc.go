// Package arena
// Author: momentics <momentics@gmail.com>
//
// Memory sources for fixed-capacity array storage.
// Provides a pinned Go-heap allocator (default), true off-heap system
// memory on Linux and Windows, and GC-traceable typed storage for
// pointer-bearing element types.
// All allocators are safe for concurrent use and keep atomic counters.
// See heap.go, offheap_linux.go, offheap_windows.go, managed.go.
package arena
