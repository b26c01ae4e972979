package api

// Undefined is returned by index lookups for elements that have not been
// assigned a class index.
const Undefined = -1

// Strategy is one interchangeable way of deciding word problems for a fixed
// Presentation. A scheduler may race several variants concurrently on the
// same problem; the set of variants is closed and selected at construction
// time.
//
// A single Strategy instance is single-threaded and synchronous: every method
// runs to completion on the caller's goroutine, polling the shared Signal at
// internal checkpoints. Concurrency exists only across instances.
//
// Expected incompleteness is reported through TriState results. Precondition
// violations (ClassIndex or NrClasses before IsDone, RunSteps after IsDone)
// are caller bugs and panic.
type Strategy interface {
	// Run runs the strategy until it is done or the shared signal is
	// cancelled. It stays promptly cancellable because it is built from
	// bounded RunSteps calls.
	Run()

	// RunSteps performs a bounded amount of work: it initializes the strategy
	// if needed, then grows the underlying enumeration by at least one
	// element (unless the quotient is already fully closed), using steps as
	// the internal batching hint. It must not be called once IsDone reports
	// true.
	RunSteps(steps int)

	// IsDone reports whether the strategy has fully determined the quotient
	// and can answer every query definitely.
	IsDone() bool

	// IsCancelled reports whether the shared signal is currently flipped.
	IsCancelled() bool

	// NrClasses returns the total number of congruence classes.
	// Precondition: IsDone.
	NrClasses() int

	// ClassIndex maps a word to the stable index of its congruence class.
	// Precondition: IsDone. Indices never change once assigned.
	ClassIndex(w Word) int

	// Equals decides whether two words denote the same quotient element.
	// Unknown is returned only when the strategy was cancelled before it
	// could reach a decision procedure.
	Equals(w1, w2 Word) TriState

	// LessThan decides a consistent total order between the classes of two
	// words. Like Equals it returns Unknown when cancelled too early.
	LessThan(w1, w2 Word) TriState

	// Name identifies the variant ("kbfp", "todd-coxeter") for reporting.
	Name() string

	// ID is a unique identifier for this instance, used to correlate
	// observer events across a race.
	ID() string
}
