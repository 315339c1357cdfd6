package weakref_test

import (
	"testing"

	"github.com/topokit/topokit/weakref"
)

// BenchmarkLockRelease measures the promotion round-trip on a live
// lineage: one CAS to acquire, one atomic decrement to drop.
func BenchmarkLockRelease(b *testing.B) {
	s := weakref.New(42)
	defer s.Release()
	w := s.Weak()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		promoted, ok := w.Lock()
		if !ok {
			b.Fatal("unexpected expiry")
		}
		promoted.Release()
	}
}

// BenchmarkCompare measures the identity comparator, which reduces to
// two serial comparisons.
func BenchmarkCompare(b *testing.B) {
	s1 := weakref.New(1)
	s2 := weakref.New(2)
	defer s1.Release()
	defer s2.Release()
	w1, w2 := s1.Weak(), s2.Weak()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = weakref.Compare(w1, w2)
	}
}

// BenchmarkWeakHash measures hashing through promotion on a live
// reference: CAS, xxhash over 8 bytes, decrement.
func BenchmarkWeakHash(b *testing.B) {
	s := weakref.New(42)
	defer s.Release()
	w := s.Weak()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Hash()
	}
}
