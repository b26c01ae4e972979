package api

import "sync/atomic"

// Signal is a shared cancellation flag. It is owned by whoever races
// strategies against each other (the scheduler); every Strategy instance
// racing on the same problem observes the same Signal but never owns it.
//
// Strategies poll the Signal cooperatively at fixed checkpoints: between rule
// derivations during completion and between enumeration batches. Cancellation
// therefore takes effect at the next checkpoint, not instantaneously.
//
// A nil *Signal behaves like a signal that is never cancelled, so a Strategy
// run outside any race can simply be given nil.
type Signal struct {
	flag atomic.Bool
}

// NewSignal returns a fresh, uncancelled Signal.
func NewSignal() *Signal {
	return &Signal{}
}

// Cancel flips the signal. Strategies observing it stop at their next
// checkpoint. Cancelling an already cancelled signal is a no-op.
func (s *Signal) Cancel() {
	if s != nil {
		s.flag.Store(true)
	}
}

// Cancelled reports whether the signal has been flipped.
func (s *Signal) Cancelled() bool {
	return s != nil && s.flag.Load()
}

// Reset clears the signal. Only the owner of the signal should call this,
// and only once every strategy observing it has stopped; it exists so a
// scheduler can resume a partially-run winner after a race.
func (s *Signal) Reset() {
	if s != nil {
		s.flag.Store(false)
	}
}
