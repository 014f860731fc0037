// File: array/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Forward cursor over the live prefix, plus a range-over-func bridge.

package array

import (
	"iter"

	"github.com/momentics/hioload-array/api"
)

// Iterator is a forward cursor over the live prefix of a StaticArray.
// It borrows the array: the array must not be freed while the cursor is
// in use. Exhaustion is permanent; a finished cursor keeps reporting the
// end even if the array grows afterwards.
type Iterator[T any] struct {
	src  *StaticArray[T]
	pos  int
	done bool
}

var _ api.Iterator[int] = (*Iterator[int])(nil)

// Iter returns a fresh cursor positioned before the first element.
func (a *StaticArray[T]) Iter() *Iterator[T] {
	return &Iterator[T]{src: a}
}

// Next yields the element at the cursor and advances. The second return
// is false once the live prefix is consumed.
func (it *Iterator[T]) Next() (T, bool) {
	if it.done || it.src.OutOfRange(it.pos) {
		it.done = true
		var zero T
		return zero, false
	}
	v := *it.src.slot(it.pos)
	it.pos++
	return v, true
}

// Values adapts the array to a range-over-func sequence:
//
//	for v := range a.Values() { ... }
//
// Each ranging starts a fresh cursor over the prefix live at that moment.
func (a *StaticArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
