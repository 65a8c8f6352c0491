package cache

import (
	"sync"
	"testing"
)

// constant returns a create func that counts its calls.
func constant(v int, calls *int) func() int {
	return func() int {
		*calls++
		return v
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, []int](8)
	calls := 0
	create := func() []int {
		calls++
		return []int{calls}
	}

	first := c.GetOrCreate(5, create)
	second := c.GetOrCreate(5, create)
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if first[0] != second[0] {
		t.Errorf("got %v then %v, want the same value", first, second)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Len != 1 || s.Capacity != 8 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 1 of 8 entries", s)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	calls := 0
	for k := 1; k <= 3; k++ {
		c.GetOrCreate(k, constant(k, &calls))
	}

	// Touch 1 so that 2 becomes the oldest.
	c.GetOrCreate(1, constant(1, &calls))
	c.GetOrCreate(4, constant(4, &calls))
	if s := c.Stats(); s.Evictions != 1 || s.Len != 3 {
		t.Errorf("Stats() = %+v, want 1 eviction and 3 entries", s)
	}

	calls = 0
	for _, k := range []int{1, 3, 4} {
		if got := c.GetOrCreate(k, constant(-1, &calls)); got != k {
			t.Errorf("GetOrCreate(%d) = %d, want the cached %d", k, got, k)
		}
	}
	if calls != 0 {
		t.Errorf("%d surviving keys were rebuilt", calls)
	}
	c.GetOrCreate(2, constant(2, &calls))
	if calls != 1 {
		t.Error("key 2 should have been evicted")
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	calls := 0
	for i := 0; i < 1000; i++ {
		c.GetOrCreate(i, constant(i, &calls))
	}
	if s := c.Stats(); s.Len != 1000 || s.Evictions != 0 {
		t.Errorf("Stats() = %+v, want 1000 entries and no evictions", s)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := i % 32
				if got := c.GetOrCreate(k, func() int { return k }); got != k {
					t.Errorf("GetOrCreate(%d) = %d", k, got)
				}
			}
		}()
	}
	wg.Wait()
	s := c.Stats()
	if s.Len > 16 {
		t.Errorf("Len = %d exceeds capacity 16", s.Len)
	}
	if s.Hits+s.Misses != 8*200 {
		t.Errorf("hits %d + misses %d, want %d lookups", s.Hits, s.Misses, 8*200)
	}
}
