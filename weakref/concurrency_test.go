package weakref_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/topokit/topokit/weakref"
)

// TestConcurrent_SerialsNeverCollide allocates lineages from many
// goroutines and verifies every serial is unique (never reused).
func TestConcurrent_SerialsNeverCollide(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 500

	var mu sync.Mutex
	seen := make(map[uint64]struct{}, goroutines*perGoroutine)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s := weakref.New(i)
				mu.Lock()
				seen[s.Serial()] = struct{}{}
				mu.Unlock()
				s.Release()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine)
}

// TestConcurrent_LockVsRelease races promotions against the final
// release: every successful Lock must observe a live value, and the
// count must drain to zero once all owners are gone.
func TestConcurrent_LockVsRelease(t *testing.T) {
	const goroutines = 8

	s := weakref.New("payload")
	w := s.Weak()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				promoted, ok := w.Lock()
				if !ok {
					return // lineage expired underneath us, done
				}
				if promoted.Value() == nil {
					t.Error("successful Lock observed a discarded value")
				}
				promoted.Release()
			}
		}()
	}

	s.Release()
	wg.Wait()

	assert.True(t, w.Expired())
	_, ok := w.Lock()
	assert.False(t, ok)
}
