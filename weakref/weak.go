// This file implements the non-owning handle: promotion, expiry
// probing, owner ordering, and the identity comparator.
package weakref

// Weak is a non-owning view of an ownership lineage. The zero value
// refers to nothing. A Weak never keeps the shared value alive, yet
// its identity (serial, ordering, comparison, hash after promotion)
// remains stable after the value is discarded.
//
// Weak is a comparable struct: two weaks of one lineage are == and may
// be used directly as map keys.
type Weak[T any] struct {
	b *block[T]
}

// serial reports the lineage serial, 0 for the zero value.
func (w Weak[T]) serial() uint64 {
	if w.b == nil {
		return 0
	}

	return w.b.serial
}

// Expired reports whether the lineage no longer owns a value. The
// zero value is always expired. Note the result is advisory under
// concurrency: prefer Lock when the value is actually needed.
// Complexity: O(1).
func (w Weak[T]) Expired() bool {
	return w.b == nil || w.b.strong.Load() == 0
}

// Lock promotes the weak reference to a new owning handle. It
// succeeds iff the lineage still owns its value, in which case the
// returned Strong must eventually be released like any other owner.
// Promotion and the liveness check are a single atomic step.
// Complexity: O(1).
func (w Weak[T]) Lock() (*Strong[T], bool) {
	if w.b == nil {
		return nil, false
	}
	for {
		n := w.b.strong.Load()
		if n == 0 {
			return nil, false // already expired, cannot resurrect
		}
		if w.b.strong.CompareAndSwap(n, n+1) {
			return &Strong[T]{b: w.b}, true
		}
	}
}

// OwnerBefore reports whether w's lineage strictly precedes o's under
// the ownership order. The order is total over lineages, independent
// of value address and content, and stable across expiry; all
// zero-value weaks are mutually unordered.
// Complexity: O(1).
func (w Weak[T]) OwnerBefore(o Weak[T]) bool {
	return w.serial() < o.serial()
}

// Hash returns the hash of the promoted strong reference, so a live
// weak hashes identically to any strong handle of its lineage. Every
// expired or zero-value weak returns ExpiredHash; see the package
// documentation for the implications of that collision.
// Complexity: O(1).
func (w Weak[T]) Hash() uint64 {
	s, ok := w.Lock()
	if !ok {
		return ExpiredHash
	}
	defer s.Release()

	return s.Hash()
}

// Compare reports whether a and b designate the same ownership
// lineage: neither owner-precedes the other. The relation is
// reflexive, symmetric and transitive, and keeps holding after both
// references expire.
//
// Compare establishes identity only, never validity: callers must
// check Expired or Lock separately when liveness matters.
// Complexity: O(1).
func Compare[T any](a, b Weak[T]) bool {
	return !a.OwnerBefore(b) && !b.OwnerBefore(a)
}
