// Package container defines the container-configuration contract a
// topology engine mutates its node and edge containers through, plus
// the standard-library family of configurations.
//
// What:
//
//   - Ops[C, T]: the contract itself. A configuration for a container
//     family is a stateless type providing Insert and Remove for each
//     concrete container type C it supports. Everything resolves at
//     compile time; there are no runtime instances and no virtual
//     dispatch.
//   - Insert / Remove: the engine-facing entry points, parametrized
//     by a configuration. The engine calls containers exclusively
//     through these; it never branches on container kind.
//   - SliceOps, SetOps, ListOps: the standard-library configurations
//     covering the sequence ([]T), unique-associative
//     (map[T]struct{}) and linked-list (*list.List) families.
//
// Why:
//   - Write the engine once over any container family: standard
//     library, UI-framework containers, custom intrusive structures
//   - Keep dispatch zero-overhead, resolved by the compiler
//   - Fail at build time, not run time, when a configuration lacks
//     support for a container type the engine actually uses: a type
//     argument that does not satisfy Ops[C, T] is a compile error at
//     the call site
//
// Semantics every configuration must match:
//
//   - Insert adds item to the container using the family's natural
//     idiom: append for sequences, set-insert for unique containers.
//   - Remove deletes the first (or only) occurrence of item. Removing
//     an absent item is a no-op in all configurations shipped here;
//     custom configurations should document their own choice.
//
// Complexity is the container family's own: amortized O(1) to O(n).
// This package defines the contract, not the bound.
package container
