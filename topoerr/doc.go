// Package topoerr defines the error kind raised on topology invariant
// violations and the assertion helper that raises it.
//
// What:
//
//   - TopologyError: an immutable, message-carrying error value
//     representing unrecoverable structural corruption detected by a
//     topology engine (duplicate node insertion, removal of a missing
//     edge, failed consistency checks). A single kind with no
//     sub-kinds; callers needing finer classification must inspect
//     the message.
//   - ErrBadTopology: the sentinel every TopologyError unwraps to, so
//     errors.Is(err, topoerr.ErrBadTopology) matches any topology
//     failure.
//   - Assert: turns a boolean check into a returned TopologyError.
//     Unlike language-native assertion macros it is never compiled
//     out: the check runs identically in every build configuration.
//   - AssertWith: the generic form, parametrized by an error factory
//     so call sites can raise more specific kinds while sharing one
//     code path.
//
// Why:
//   - Give the (external) topology engine a single choke point for
//     reporting invariant violations
//   - Preserve failure messages verbatim from construction to
//     retrieval
//   - Let callers substitute any error kind constructible from a
//     message string
//
// Errors:
//
//   - ErrBadTopology      sentinel matched by every TopologyError
//
// Functions:
//
//   - New(msg string) *TopologyError
//     build the error kind; an empty msg yields DefaultMessage
//   - Assert(cond bool, msg string) error
//     nil when cond holds, otherwise New(msg)
//   - AssertWith[E error](cond bool, build Factory[E], msg string) error
//     nil when cond holds, otherwise build(msg)
//
// Propagation policy: errors are raised at the point of violation and
// never caught or retried in this layer; recovery belongs to the
// caller.
package topoerr
