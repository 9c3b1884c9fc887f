package sequence

import (
	"sync"
	"testing"
)

func TestNextIsMonotonic(t *testing.T) {
	s := New(0)
	prev := uint64(0)
	for i := 0; i < 100; i++ {
		got := s.Next()
		if got <= prev {
			t.Fatalf("Next() = %d after %d, want strictly increasing", got, prev)
		}
		prev = got
	}
	if s.Current() != prev {
		t.Fatalf("Current() = %d, want %d", s.Current(), prev)
	}
}

func TestStartOffset(t *testing.T) {
	s := New(41)
	if got := s.Next(); got != 42 {
		t.Fatalf("Next() = %d, want 42", got)
	}
}

func TestConcurrentNextIsUnique(t *testing.T) {
	s := New(0)
	const workers, per = 8, 1000

	out := make(chan uint64, workers*per)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				out <- s.Next()
			}
		}()
	}
	wg.Wait()
	close(out)

	seen := make(map[uint64]bool, workers*per)
	for v := range out {
		if seen[v] {
			t.Fatalf("sequence %d issued twice", v)
		}
		seen[v] = true
	}
	if len(seen) != workers*per {
		t.Fatalf("issued %d unique sequences, want %d", len(seen), workers*per)
	}
}
