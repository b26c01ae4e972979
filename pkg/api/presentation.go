package api

import "fmt"

// MaxGenerators is the largest generator count a presentation may have.
// Rewriting internally encodes one generator per byte.
const MaxGenerators = 256

// Presentation describes a finitely presented semigroup or monoid together
// with extra congruence-generating pairs. A Presentation is fixed before any
// Strategy exists and is referenced, never owned, by strategies.
//
// Relations may be expensive to materialize (for example when they are read
// off an enumerated structure), which is why the accessor takes a Signal and
// may report failure when cancelled.
type Presentation interface {
	// NrGenerators returns the number of generators.
	NrGenerators() int

	// Relations materializes and returns the defining relations. The bool is
	// false if materialization was cancelled before completing; the returned
	// slice must then be ignored.
	Relations(sig *Signal) ([]Relation, bool)

	// Extra returns the additional congruence-generating pairs. These are
	// always available without materialization.
	Extra() []Relation
}

// FinitePresentation is the immutable, eagerly known implementation of
// Presentation: a generator count and explicit relation lists.
type FinitePresentation struct {
	nrGens    int
	relations []Relation
	extra     []Relation
}

var _ Presentation = (*FinitePresentation)(nil)

// NewPresentation validates and builds a FinitePresentation. Every letter of
// every relation must lie in [0, nrGens).
func NewPresentation(nrGens int, relations, extra []Relation) (*FinitePresentation, error) {
	if nrGens < 1 || nrGens > MaxGenerators {
		return nil, fmt.Errorf("fpsemi: generator count %d out of range [1, %d]", nrGens, MaxGenerators)
	}
	check := func(kind string, rels []Relation) error {
		for i, rel := range rels {
			for _, w := range []Word{rel.Left, rel.Right} {
				for _, letter := range w {
					if letter < 0 || letter >= nrGens {
						return fmt.Errorf("fpsemi: %s %d uses letter %d, want [0, %d)", kind, i, letter, nrGens)
					}
				}
			}
		}
		return nil
	}
	if err := check("relation", relations); err != nil {
		return nil, err
	}
	if err := check("extra pair", extra); err != nil {
		return nil, err
	}

	p := &FinitePresentation{nrGens: nrGens}
	p.relations = copyRelations(relations)
	p.extra = copyRelations(extra)
	return p, nil
}

func copyRelations(rels []Relation) []Relation {
	out := make([]Relation, len(rels))
	for i, rel := range rels {
		out[i] = Relation{
			Left:  append(Word(nil), rel.Left...),
			Right: append(Word(nil), rel.Right...),
		}
	}
	return out
}

func (p *FinitePresentation) NrGenerators() int { return p.nrGens }

// Relations never blocks: the relations are already known, so the signal is
// not consulted.
func (p *FinitePresentation) Relations(*Signal) ([]Relation, bool) {
	return p.relations, true
}

func (p *FinitePresentation) Extra() []Relation { return p.extra }
