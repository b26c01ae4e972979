// Package fpsemi decides word problems in finitely presented semigroups and
// monoids.
//
// A presentation names a number of generators and a list of defining
// relations (pairs of words declared equal). On top of that, an optional set
// of extra pairs generates a further congruence. Fpsemi answers whether two
// words lie in the same congruence class, orders classes, and, when the
// quotient is finite, enumerates it and assigns every class a stable index.
//
// # Core Concepts
//
// The programming model is intentionally small and idiomatic:
//
//  1. Presentation
//  2. Strategy
//  3. Congruence
//  4. Signal
//  5. Observer
//
// A Presentation describes the input. A Strategy is one complete decision
// procedure over it; two variants exist, Knuth-Bendix completion followed by
// closure enumeration (KBFP) and Todd-Coxeter coset enumeration. A
// Congruence is the usual entry point: it races the variants against each
// other and answers queries from whichever finishes first.
//
// # Partiality
//
// The word problem is undecidable in general, so every decision query is
// tri-state: True, False, or Unknown. Unknown only ever means "not decided
// yet", never "no". All long-running work is cooperatively cancellable
// through a shared Signal, and Congruence methods take a context so callers
// can bound them with deadlines; a computation cut short resumes on the next
// query instead of starting over.
//
// # Quick Start
//
//	pres, err := fpsemi.NewPresentation(2, []fpsemi.Relation{
//		fpsemi.Rel(fpsemi.W(0, 0), fpsemi.W(0)),
//		fpsemi.Rel(fpsemi.W(1, 0), fpsemi.W(0, 1)),
//	}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cong := fpsemi.NewCongruence(pres)
//	switch cong.Equals(ctx, fpsemi.W(0, 1), fpsemi.W(1, 0)) {
//	case fpsemi.True:
//		// same class
//	case fpsemi.False:
//		// different classes
//	case fpsemi.Unknown:
//		// the context expired before either strategy could decide
//	}
//
// # Observability
//
// Strategies report lifecycle events through an Observer. The package ships
// a no-op default, a slog-backed LoggingObserver, a BasicMetrics collector
// with atomic counters, and a CompositeObserver for fanning out to several
// at once. See pkg/api for the full interface.
//
// # Persistence
//
// Knuth-Bendix completion can be expensive and is worth doing once. Passing
// a SQLite handle via NewCongruenceWithCache caches every confluent rule
// system under a fingerprint of its presentation, so later processes skip
// completion entirely for presentations they have already seen.
//
// For examples, see the /examples directory or the project README.
package fpsemi
