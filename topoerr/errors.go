// Package topoerr declares the TopologyError kind and its sentinel.
package topoerr

import "errors"

// DefaultMessage is the description carried by a TopologyError built
// from an empty message.
const DefaultMessage = "topoerr: unrecoverable topology error"

// ErrBadTopology is the sentinel for the topology error taxonomy.
// Every TopologyError unwraps to it, so errors.Is(err, ErrBadTopology)
// classifies any topology failure without parsing messages.
var ErrBadTopology = errors.New("topoerr: bad topology")

// TopologyError signals an unrecoverable structural or invariant
// violation in a topology. It is a value-style error: immutable once
// constructed, carrying only a human-readable message.
type TopologyError struct {
	msg string
}

// New builds a TopologyError carrying msg. An empty msg defaults to
// DefaultMessage so a raised error is never silent.
// Complexity: O(1).
func New(msg string) *TopologyError {
	if msg == "" {
		msg = DefaultMessage
	}

	return &TopologyError{msg: msg}
}

// Error returns the message exactly as it was constructed.
func (e *TopologyError) Error() string { return e.msg }

// Unwrap reports ErrBadTopology as the underlying kind, wiring
// TopologyError into the errors.Is chain.
func (e *TopologyError) Unwrap() error { return ErrBadTopology }
