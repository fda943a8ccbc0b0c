package xdbuf

import (
	"errors"
	"testing"
)

func TestPoolGetReturnsFilled(t *testing.T) {
	p := NewPool[float64]()

	b, err := p.Get(1.5, 2, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		if v, _ := b.Get(i); v != 1.5 {
			t.Fatalf("Get(%d) = %v, want 1.5", i, v)
		}
	}

	p.Put(b)
}

func TestPoolReuseIsRefilled(t *testing.T) {
	p := NewPool[int]()

	// Get, write data, return.
	b, err := p.Get(0, 2, 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b.Values()[0] = 42
	p.Put(b)

	// Get again — contents must be the fill value regardless of reuse.
	b2, err := p.Get(7, 2, 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	for i := 0; i < b2.Len(); i++ {
		if v, _ := b2.Get(i); v != 7 {
			t.Fatalf("reused Get(%d) = %d, want 7", i, v)
		}
	}

	p.Put(b2)
}

func TestPoolGetInvalidDims(t *testing.T) {
	p := NewPool[int]()
	if _, err := p.Get(0, 2, 0); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("Get(_, 2, 0) = %v, want ErrInvalidDimension", err)
	}
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool[int]()
	p.Put(nil) // must not panic
}

func TestPoolGetInvalidatesOldWalkers(t *testing.T) {
	p := NewPool[int]()

	b, err := p.Get(0, 3, 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	w, err := b.Walker(0, 0)
	if err != nil {
		t.Fatalf("Walker: %v", err)
	}
	p.Put(b)

	b2, err := p.Get(0, 3, 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer p.Put(b2)

	// If the same buffer came back, the old walker must read as stale.
	if b2 == b && !w.Stale(b2) {
		t.Fatal("walker from before Put not stale after pool reuse")
	}
}
