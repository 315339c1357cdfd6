// Package topokit is the utility core of a graph-topology engine:
// the small, dependency-light layer every other part of a topology
// library leans on.
//
// 🚀 What is topokit?
//
//	A foundation layer that brings together:
//		• Topology errors: one unrecoverable error kind plus an
//		  always-on assertion helper that reports violations through it
//		• Weak references: owner-identity comparison and hashing for
//		  non-owning handles, stable even after the target is gone
//		• Container configurations: compile-time insert/remove
//		  customization points, so an engine can be written once over
//		  any container family (slice, set, list or your own)
//
// ✨ Why choose topokit?
//
//   - Stateless by construction: every operation is a pure computation
//     over caller-supplied values
//   - No hidden checks: assertions run identically in every build mode
//   - Zero-overhead dispatch: container operations resolve at compile
//     time through generic constraints, never through virtual calls
//
// Under the hood, everything is organized under three subpackages:
//
//	topoerr/   — TopologyError, ErrBadTopology and the Assert helpers
//	weakref/   — Strong/Weak handles, owner ordering, identity & hashing
//	container/ — Ops contract plus slice, set and list configurations
//
// Quick taste:
//
//	if err := topoerr.Assert(g.Has(node), "node already exists"); err != nil {
//	    return err
//	}
//
// A topology engine parametrizes itself over a container configuration,
// mutates its node and edge containers only through that configuration,
// and keys associative lookups by weak references. topokit supplies all
// three contracts; the engine itself lives elsewhere.
package topokit
