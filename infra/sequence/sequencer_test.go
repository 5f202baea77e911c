package sequence

import (
	"sync"
	"testing"
)

func TestNextIsMonotonic(t *testing.T) {
	s := New(0)
	if s.Next() != 1 || s.Next() != 2 {
		t.Fatal("expected 1, 2")
	}
	if s.Current() != 2 {
		t.Fatalf("expected current 2, got %d", s.Current())
	}
}

func TestReset(t *testing.T) {
	s := New(0)
	s.Reset(100)
	if s.Next() != 101 {
		t.Fatal("expected 101 after reset to 100")
	}
}

func TestNextUniqueUnderContention(t *testing.T) {
	s := New(0)
	const workers, perWorker = 8, 1000

	var mu sync.Mutex
	seen := make(map[uint64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, s.Next())
			}
			mu.Lock()
			for _, v := range local {
				if seen[v] {
					t.Errorf("duplicate sequence %d", v)
				}
				seen[v] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique values, got %d", workers*perWorker, len(seen))
	}
}
