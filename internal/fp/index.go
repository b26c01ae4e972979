// Package fp implements incremental closure enumeration of a finitely
// generated quotient monoid: starting from the identity and the generators,
// it discovers every element reachable by right multiplication, assigning
// each a stable non-negative class index in discovery order.
package fp

import "github.com/petrijr/fpsemi/pkg/api"

// Element is what an Index enumerates: a canonical value with a stable key
// and right multiplication by generator index. The constraint is
// self-referential so concrete element types multiply into themselves.
type Element[E any] interface {
	// Key uniquely identifies the element's congruence class.
	Key() string
	// MulGen right-multiplies by generator gen.
	MulGen(gen int) E
}

// defaultBatchSize matches the enumeration default of the reference
// implementation; callers that want finer pacing use SetBatchSize.
const defaultBatchSize = 8192

// Index enumerates the closure of its seed elements under right
// multiplication, in caller-controlled batches. Indices, once assigned,
// never change, and CurrentSize never decreases.
type Index[E Element[E]] struct {
	nrGens    int
	elements  []E
	position  map[string]int
	applied   int // elements[:applied] have been multiplied by every generator
	batchSize int
}

// NewIndex seeds an index with the identity element (always class 0) and the
// generator elements in order. Duplicate generators collapse onto one class.
func NewIndex[E Element[E]](one E, gens []E) *Index[E] {
	ix := &Index[E]{
		nrGens:    len(gens),
		position:  make(map[string]int),
		batchSize: defaultBatchSize,
	}
	ix.add(one)
	for _, g := range gens {
		ix.add(g)
	}
	return ix
}

func (ix *Index[E]) add(x E) {
	if _, ok := ix.position[x.Key()]; ok {
		return
	}
	ix.position[x.Key()] = len(ix.elements)
	ix.elements = append(ix.elements, x)
}

// SetBatchSize hints how much internal work one Grow call should do beyond
// its target. It trades call latency against per-call throughput and has no
// effect on correctness.
func (ix *Index[E]) SetBatchSize(n int) {
	if n > 0 {
		ix.batchSize = n
	}
}

// CurrentSize returns the number of discovered elements. Monotone
// non-decreasing.
func (ix *Index[E]) CurrentSize() int { return len(ix.elements) }

// IsDone reports whether the closure is complete: every discovered element
// has been multiplied by every generator without finding anything new.
func (ix *Index[E]) IsDone() bool { return ix.applied == len(ix.elements) }

// Position returns the class index assigned to x, or api.Undefined if x has
// not been discovered. It never triggers discovery.
func (ix *Index[E]) Position(x E) int {
	if pos, ok := ix.position[x.Key()]; ok {
		return pos
	}
	return api.Undefined
}

// At returns the element with class index pos.
func (ix *Index[E]) At(pos int) E { return ix.elements[pos] }

// Grow enumerates until CurrentSize reaches target, the closure completes,
// or sig is cancelled. The effective limit is raised to at least one batch
// beyond the current size; sig is polled between batches only, so the
// element being closed over always finishes all its products first.
func (ix *Index[E]) Grow(sig *api.Signal, target int) {
	if ix.IsDone() || target <= len(ix.elements) || sig.Cancelled() {
		return
	}
	limit := satAdd(len(ix.elements), ix.batchSize)
	if target > limit {
		limit = target
	}
	for ix.applied < len(ix.elements) && len(ix.elements) < limit {
		if sig.Cancelled() {
			return
		}
		x := ix.elements[ix.applied]
		for g := 0; g < ix.nrGens; g++ {
			ix.add(x.MulGen(g))
		}
		ix.applied++
	}
}

func satAdd(a, b int) int {
	if c := a + b; c > a {
		return c
	}
	return int(^uint(0) >> 1)
}
