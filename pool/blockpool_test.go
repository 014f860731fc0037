package pool_test

import (
	"testing"
	"unsafe"

	"github.com/momentics/hioload-array/api"
	"github.com/momentics/hioload-array/array"
	"github.com/momentics/hioload-array/fake"
	"github.com/momentics/hioload-array/pool"
)

func TestBlockPoolReuse(t *testing.T) {
	inner := fake.NewAllocator()
	p := pool.New(inner, 8)

	l := api.Layout{Size: 256, Align: 8}
	b1, err := p.Alloc(l)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	p.Free(b1, l)

	b2, err := p.Alloc(l)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if b2 != b1 {
		t.Error("same-layout block was not reused")
	}
	if p.Hits() != 1 {
		t.Errorf("Hits = %d, want 1", p.Hits())
	}
	if inner.Allocs != 1 {
		t.Errorf("inner Allocs = %d, want 1 (reuse failed)", inner.Allocs)
	}

	// A different layout misses the free list.
	other := api.Layout{Size: 512, Align: 8}
	if _, err := p.Alloc(other); err != nil {
		t.Fatalf("Alloc(other): %v", err)
	}
	if inner.Allocs != 2 {
		t.Errorf("inner Allocs = %d, want 2", inner.Allocs)
	}
}

func TestBlockPoolRetentionCap(t *testing.T) {
	inner := fake.NewAllocator()
	p := pool.New(inner, 1)

	l := api.Layout{Size: 64, Align: 8}
	b1, _ := p.Alloc(l)
	b2, _ := p.Alloc(l)

	p.Free(b1, l) // retained
	p.Free(b2, l) // over the cap, released to inner
	if inner.Frees != 1 {
		t.Errorf("inner Frees = %d, want 1", inner.Frees)
	}
	if inner.Live() != 1 {
		t.Errorf("inner Live = %d, want 1 (the retained block)", inner.Live())
	}
}

func TestBlockPoolDrain(t *testing.T) {
	inner := fake.NewAllocator()
	p := pool.New(inner, 8)

	l := api.Layout{Size: 128, Align: 8}
	var blocks []unsafe.Pointer
	for i := 0; i < 4; i++ {
		b, err := p.Alloc(l)
		if err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
		blocks = append(blocks, b)
	}
	for _, b := range blocks {
		p.Free(b, l)
	}

	p.Drain()
	if inner.Live() != 0 {
		t.Errorf("inner Live = %d after Drain, want 0", inner.Live())
	}
	if inner.Mismatches != 0 {
		t.Errorf("Drain produced %d mismatched frees", inner.Mismatches)
	}
}

func TestBlockPoolBacksArrays(t *testing.T) {
	inner := fake.NewAllocator()
	p := pool.New(inner, 8)

	a := array.New[int64](16, array.WithAllocator(p))
	for i := int64(0); i < 16; i++ {
		if err := a.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	a.Free()

	// Same shape: the next array reuses the recycled block.
	b := array.New[int64](16, array.WithAllocator(p))
	defer b.Free()
	if err := b.Push(42); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if v, _ := b.Get(0); v != 42 {
		t.Errorf("Get(0) = %d, want 42", v)
	}
	// Recycled storage must not leak the previous array's length.
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
	if p.Hits() != 1 {
		t.Errorf("Hits = %d, want 1", p.Hits())
	}
	if inner.Allocs != 1 {
		t.Errorf("inner Allocs = %d, want 1", inner.Allocs)
	}
}

func TestBlockPoolTraceablePassThrough(t *testing.T) {
	inner := fake.NewAllocator()
	p := pool.New(inner, 0)
	if p.Traceable() != inner.Traceable() {
		t.Error("Traceable must follow the inner allocator")
	}
}
