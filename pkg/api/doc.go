// Package api contains the core building blocks of the fpsemi word-problem
// solver. It provides the low-level primitives for describing presentations,
// driving decision strategies, and observing their behavior.
//
// Most users interact with the higher-level fpsemi package, which re-exports
// selected types and helpers from this package. The api package is intended
// for advanced use cases, such as driving a single strategy by hand or
// implementing a custom observer.
//
// # Concepts
//
// The api package centers around a small set of concepts:
//
//   - Words and relations
//   - Presentations
//   - Strategies
//   - Cancellation signals
//   - Observability
//
// # Words and Presentations
//
// A Word is a sequence of generator indices; the empty word denotes the
// identity of the quotient monoid. A Presentation fixes a generator count,
// defining relations, and extra congruence-generating pairs. Presentations
// are immutable once constructed and are referenced, never owned, by the
// strategies that compute with them.
//
// # Strategies
//
// A Strategy is one interchangeable procedure for answering word-problem
// queries: whether two words denote the same quotient element (Equals), how
// their classes compare in a consistent total order (LessThan), and the
// stable integer index of a word's class (ClassIndex). Strategies are
// incremental: RunSteps performs a bounded batch of work and guarantees
// forward progress, Run iterates the bounded form to completion, and decision
// queries can often be answered before the quotient is fully enumerated.
//
// Queries that cannot yet be answered report Unknown rather than failing;
// calling an operation whose precondition does not hold (for example
// ClassIndex before IsDone) is a caller bug and panics.
//
// # Cancellation
//
// A Signal is a shared atomic flag owned by whoever races several strategies
// on the same problem. Strategies observe it cooperatively at fixed
// checkpoints; an in-flight rule derivation or enumeration batch always runs
// to its own completion first.
//
// # Observability
//
// The Observer interface receives lifecycle events from strategies and the
// scheduler: completion phases, enumeration progress, and race outcomes.
// Ready-made implementations cover structured logging (LoggingObserver),
// in-memory counters (BasicMetrics), and fan-out (CompositeObserver).
//
// See the fpsemi package documentation and the examples directory for
// end-to-end usage.
package api
