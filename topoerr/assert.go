// This file declares the assertion helpers: the single choke point the
// topology engine uses to report invariant violations.
package topoerr

// Factory builds a domain error of kind E from a human-readable
// message. It stands in for "constructible from a string": any error
// kind usable with AssertWith supplies one.
type Factory[E error] func(msg string) E

// Assert checks cond and returns a *TopologyError carrying msg when
// the check fails, nil otherwise. An empty msg yields DefaultMessage.
//
// The check is unconditional: Assert is an ordinary function, not a
// debug-gated macro, so it runs the same in every build mode.
// Complexity: O(1).
func Assert(cond bool, msg string) error {
	if cond {
		return nil
	}

	return New(msg)
}

// AssertWith checks cond and returns build(msg) when the check fails,
// nil otherwise. It generalizes Assert over the error kind: call sites
// raise more specific errors while reusing one code path.
//
//	err := topoerr.AssertWith(n != nil, newStorageError, "nil node")
//
// Complexity: O(1) plus the factory's own cost.
func AssertWith[E error](cond bool, build Factory[E], msg string) error {
	if cond {
		return nil
	}

	return build(msg)
}
