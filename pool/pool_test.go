package pool

import (
	"testing"
)

type thing struct {
	id    int
	dirty bool
}

func newTestPool(initial int) (*Pool[*thing], *int) {
	created := 0
	p := New(
		func() *thing {
			created++
			return &thing{id: created}
		},
		func(t *thing) { t.dirty = false },
		initial,
	)
	return p, &created
}

func TestPoolPrePopulation(t *testing.T) {
	p, created := newTestPool(4)

	if *created != 4 {
		t.Errorf("Expected 4 factory calls, got %d", *created)
	}
	if p.AvailableCount() != 4 {
		t.Errorf("Expected AvailableCount to be 4, got %d", p.AvailableCount())
	}
	if p.ActiveCount() != 0 {
		t.Errorf("Expected ActiveCount to be 0, got %d", p.ActiveCount())
	}
}

func TestPoolAcquireReusesLIFO(t *testing.T) {
	p, _ := newTestPool(0)

	a := p.Acquire()
	b := p.Acquire()
	p.Release(a)
	p.Release(b)

	// Most recently released comes back first
	if got := p.Acquire(); got != b {
		t.Errorf("Expected LIFO reuse of %v, got %v", b, got)
	}
	if got := p.Acquire(); got != a {
		t.Errorf("Expected second acquire to return %v, got %v", a, got)
	}
}

func TestPoolGrowsOnDemand(t *testing.T) {
	p, created := newTestPool(1)

	for i := 0; i < 5; i++ {
		p.Acquire()
	}

	if *created != 5 {
		t.Errorf("Expected 5 instances created, got %d", *created)
	}
	if p.ActiveCount() != 5 {
		t.Errorf("Expected ActiveCount to be 5, got %d", p.ActiveCount())
	}
	if p.AvailableCount() != 0 {
		t.Errorf("Expected AvailableCount to be 0, got %d", p.AvailableCount())
	}
}

func TestPoolReleaseResets(t *testing.T) {
	p, _ := newTestPool(1)

	obj := p.Acquire()
	obj.dirty = true
	p.Release(obj)

	if obj.dirty {
		t.Error("Expected reset to run on release")
	}
	if p.ActiveCount() != 0 || p.AvailableCount() != 1 {
		t.Errorf("Expected 0 active / 1 available, got %d / %d",
			p.ActiveCount(), p.AvailableCount())
	}
}

func TestPoolDoubleReleaseIgnored(t *testing.T) {
	p, _ := newTestPool(0)

	obj := p.Acquire()
	p.Release(obj)
	p.Release(obj)
	p.Release(&thing{id: 999}) // never acquired

	if p.AvailableCount() != 1 {
		t.Errorf("Expected AvailableCount to be 1 after double release, got %d",
			p.AvailableCount())
	}
}

func TestPoolPartitionInvariant(t *testing.T) {
	p, created := newTestPool(3)
	r := []*thing{}

	// Arbitrary interleaving of acquire/release
	for i := 0; i < 20; i++ {
		if i%3 == 0 && len(r) > 0 {
			p.Release(r[0])
			r = r[1:]
		} else {
			r = append(r, p.Acquire())
		}

		total := p.ActiveCount() + p.AvailableCount()
		if total != *created {
			t.Fatalf("Step %d: active+available = %d, want %d instances ever created",
				i, total, *created)
		}
	}
}

func TestPoolClearDisposesAll(t *testing.T) {
	p, _ := newTestPool(2)
	p.Acquire()

	disposed := 0
	p.Clear(func(*thing) { disposed++ })

	if disposed != 2 {
		t.Errorf("Expected 2 instances disposed, got %d", disposed)
	}
	if p.ActiveCount() != 0 || p.AvailableCount() != 0 {
		t.Errorf("Expected empty pool after Clear, got %d / %d",
			p.ActiveCount(), p.AvailableCount())
	}
}

func TestPoolClearNilDisposer(t *testing.T) {
	p, _ := newTestPool(2)
	p.Acquire()
	p.Clear(nil)

	if p.ActiveCount() != 0 || p.AvailableCount() != 0 {
		t.Errorf("Expected empty pool after Clear(nil), got %d / %d",
			p.ActiveCount(), p.AvailableCount())
	}
}
