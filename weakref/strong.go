// This file implements the owning handle: allocation, retain/release
// lifecycle, and the strong side of the hash extension point.
package weakref

import "sync/atomic"

// Strong is an owning handle over a shared value of type T. Each
// Strong represents one ownership unit; the value is discarded when
// the last owner calls Release. Handles are not copyable ownership:
// use Retain to create additional owners.
type Strong[T any] struct {
	b        *block[T]
	released atomic.Bool
}

// New allocates a fresh ownership lineage owning v and returns its
// first Strong handle.
// Complexity: O(1).
func New[T any](v T) *Strong[T] {
	b := &block[T]{
		serial: nextSerial.Add(1),
		value:  &v,
	}
	b.strong.Store(1)

	return &Strong[T]{b: b}
}

// Value returns the shared value. It must only be called on a live
// handle (before Release); after Release the handle no longer owns
// anything and Value returns nil.
func (s *Strong[T]) Value() *T {
	if s.released.Load() {
		return nil
	}

	return s.b.value
}

// Retain registers an additional owner of the same lineage and
// returns its handle. The value now requires one more Release before
// it is discarded. Retain must be called on a live (not yet released)
// handle.
// Complexity: O(1).
func (s *Strong[T]) Retain() *Strong[T] {
	s.b.strong.Add(1)

	return &Strong[T]{b: s.b}
}

// Release drops this handle's ownership. When the last owner
// releases, the value is discarded and every Weak of the lineage
// expires at once. Releasing the same handle twice is a no-op.
// Complexity: O(1).
func (s *Strong[T]) Release() {
	if s.released.Swap(true) {
		return
	}
	if s.b.strong.Add(-1) == 0 {
		s.b.value = nil // expired: drop the value, keep the identity
	}
}

// Weak derives a non-owning view of this handle's lineage. The weak
// never extends the value's lifetime and stays usable for identity
// comparison after expiry.
func (s *Strong[T]) Weak() Weak[T] {
	return Weak[T]{b: s.b}
}

// Serial reports the lineage's allocation serial: the unique,
// never-reused identity token ownership comparisons are built on.
func (s *Strong[T]) Serial() uint64 { return s.b.serial }

// UseCount reports the current number of owners. Zero means the
// lineage has expired. Intended for tests and diagnostics; any
// non-zero result is stale the moment it is returned under
// concurrent use.
func (s *Strong[T]) UseCount() int64 { return s.b.strong.Load() }

// Hash returns the lineage identity hash. Equal lineages hash
// identically, and a live Weak of the same lineage hashes to the same
// value.
// Complexity: O(1).
func (s *Strong[T]) Hash() uint64 { return hashSerial(s.b.serial) }
