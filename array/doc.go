// Package array
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, heap-allocated, homogeneous array container.
// StaticArray[T] owns one contiguous block sized for exactly Cap elements,
// acquired at construction and released once by Free. It never grows,
// never reallocates, never shrinks. Appends fill the live prefix in
// order; reads, in-place mutation, and forward iteration cover the
// prefix only.
//
// The container is not synchronized. Use it from one goroutine, or share
// under external mutual exclusion. Pointers returned by Ref and Index are
// valid until Free.
package array
