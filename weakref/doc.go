// Package weakref provides owning and non-owning handles over shared
// values, with identity comparison and hashing that stay correct even
// after the shared value is gone.
//
// What:
//
//   - Strong[T]: an owning, reference-counted handle. The value lives
//     while at least one owner holds it; the last Release discards it.
//   - Weak[T]: a non-owning view of the same lineage. It never keeps
//     the value alive; Lock promotes it back to a Strong when the
//     value still exists.
//   - OwnerBefore: a strict weak order over ownership lineages,
//     derived from a per-lineage allocation serial that is unique and
//     never reused within the process. The order is independent of
//     the value's address or content and survives expiry.
//   - Compare: owner-identity equality, defined as "neither
//     owner-precedes the other". Reflexive, symmetric and transitive
//     regardless of expiration state.
//   - Hash: the hash of a weak reference is the hash of its promoted
//     strong reference, so live weak and strong handles of one
//     lineage always hash identically.
//
// Why:
//   - Key associative lookups of graph nodes/edges by references that
//     must compare consistently even after removal
//   - Avoid raw-pointer comparison, which is unsafe once a value is
//     destroyed
//   - Keep validity checking (Expired, Lock) a separate, explicit
//     caller responsibility, never folded into identity
//
// Identity vs. validity: Compare establishes "same lineage", nothing
// more. Two expired weaks of one lineage still compare equal; pair
// Compare with Expired or Lock whenever liveness matters.
//
// Expired hashing: every expired or zero-value weak reference hashes
// to the same fixed ExpiredHash, mirroring "hash of whatever a failed
// promotion yields". All expired keys therefore collide; prune them
// promptly when using weak references in hash-keyed structures.
//
// Concurrency: reference counts and the serial allocator are atomic,
// so Retain, Release and Lock are safe to race across handles of one
// lineage. The value itself gets whatever thread-safety T provides;
// this package adds no locking around it.
//
// Go note: Weak[T] is a comparable struct, so two weaks of one
// lineage are also == and usable directly as map keys; Compare is the
// portable, ordering-derived form of the same relation.
//
// Functions:
//
//   - New[T](v T) *Strong[T]            allocate a fresh lineage owning v
//   - Compare[T](a, b Weak[T]) bool     owner-identity equality
//
// Complexity: every operation is O(1).
package weakref
