package array_test

import (
	"testing"

	"github.com/momentics/hioload-array/array"
)

func TestIteratorYieldsPrefix(t *testing.T) {
	a := array.From(1, 2, 3, 4, 5)
	defer a.Free()

	it := a.Iter()
	for i := 0; i < 5; i++ {
		v, ok := it.Next()
		if !ok {
			t.Fatalf("Next #%d: unexpected end", i)
		}
		if v != i+1 {
			t.Errorf("Next #%d = %d, want %d", i, v, i+1)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("sixth Next should report the end")
	}
}

func TestIteratorExhaustionIsSticky(t *testing.T) {
	a := array.New[int](2)
	defer a.Free()
	_ = a.Push(1)

	it := a.Iter()
	if v, ok := it.Next(); !ok || v != 1 {
		t.Fatalf("Next = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("cursor should be exhausted")
	}

	// Growth after exhaustion must not revive the cursor.
	_ = a.Push(2)
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("exhausted cursor yielded a value")
		}
	}

	// A fresh cursor sees the grown prefix.
	n := 0
	for it2 := a.Iter(); ; n++ {
		if _, ok := it2.Next(); !ok {
			break
		}
	}
	if n != 2 {
		t.Errorf("fresh cursor yielded %d values, want 2", n)
	}
}

func TestIteratorOnEmptyArray(t *testing.T) {
	a := array.New[int](3)
	defer a.Free()

	if _, ok := a.Iter().Next(); ok {
		t.Error("empty array cursor should start exhausted")
	}
}

func TestValuesRange(t *testing.T) {
	a := array.From(2, 4, 6, 8)
	defer a.Free()

	var got []int
	for v := range a.Values() {
		got = append(got, v)
	}
	if len(got) != 4 {
		t.Fatalf("ranged %d values, want 4", len(got))
	}
	for i, v := range got {
		if v != (i+1)*2 {
			t.Errorf("got[%d] = %d, want %d", i, v, (i+1)*2)
		}
	}

	// Early break stops the sequence cleanly.
	seen := 0
	for range a.Values() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("break after 2 ranged %d values", seen)
	}
}

func TestIterationMatchesGet(t *testing.T) {
	a := array.From(9, 8, 7, 6)
	defer a.Free()

	i := 0
	for it := a.Iter(); ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		w, err := a.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if v != w {
			t.Errorf("position %d: Next = %d, Get = %d", i, v, w)
		}
	}
	if i != a.Len() {
		t.Errorf("cursor yielded %d values, want Len = %d", i, a.Len())
	}
}
