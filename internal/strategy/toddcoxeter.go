package strategy

import "github.com/petrijr/fpsemi/pkg/api"

// ToddCoxeter decides word problems by coset enumeration over the congruence
// classes: a growing transition table maps (class, generator) to a class,
// every defining relation and extra pair is enforced at every class, and
// classes proven equal are merged through a union-find coincidence queue.
//
// Unlike KBFP it cannot answer Equals definitely before the enumeration
// closes (two tentative classes may still merge later), but it often closes
// finite quotients that Knuth-Bendix completion struggles with, which is why
// a scheduler races the two.
type ToddCoxeter struct {
	pres api.Presentation
	sig  *api.Signal
	obs  api.Observer
	id   string

	inited bool
	nrGens int
	rels   []api.Relation // defining relations followed by extra pairs

	table   [][]int // table[c][g]: transition, or Undefined
	parent  []int   // union-find over cosets; roots are the live classes
	alive   int
	applied int      // cosets below this have had every relation applied
	pend    [][2]int // coincidence queue, reused across merges

	done      bool
	classOf   []int // contiguous renumbering of live cosets, set on finish
	nrClasses int
}

var _ api.Strategy = (*ToddCoxeter)(nil)

// NewToddCoxeter builds a Todd-Coxeter strategy over pres, observing sig for
// cancellation.
func NewToddCoxeter(pres api.Presentation, sig *api.Signal, cfg Config) *ToddCoxeter {
	return &ToddCoxeter{
		pres: pres,
		sig:  sig,
		obs:  cfg.observer(),
		id:   newID(),
	}
}

func (t *ToddCoxeter) Name() string { return "todd-coxeter" }
func (t *ToddCoxeter) ID() string   { return t.id }

func (t *ToddCoxeter) init() {
	if t.inited {
		return
	}
	rels, ok := t.pres.Relations(t.sig)
	if !ok {
		return
	}
	t.nrGens = t.pres.NrGenerators()
	t.rels = append(append([]api.Relation(nil), rels...), t.pres.Extra()...)
	t.newCoset() // coset 0: the class of the empty word
	t.inited = true
}

func (t *ToddCoxeter) newCoset() int {
	c := len(t.table)
	row := make([]int, t.nrGens)
	for g := range row {
		row[g] = api.Undefined
	}
	t.table = append(t.table, row)
	t.parent = append(t.parent, c)
	t.alive++
	return c
}

func (t *ToddCoxeter) find(c int) int {
	for t.parent[c] != c {
		t.parent[c] = t.parent[t.parent[c]]
		c = t.parent[c]
	}
	return c
}

// traceDefine walks w from coset c, defining new cosets for missing
// transitions, and returns the endpoint.
func (t *ToddCoxeter) traceDefine(c int, w api.Word) int {
	c = t.find(c)
	for _, g := range w {
		n := t.table[c][g]
		if n == api.Undefined {
			n = t.newCoset()
			t.table[c][g] = n
		} else {
			n = t.find(n)
		}
		c = n
	}
	return c
}

// trace walks w from coset c without defining anything; Undefined if the
// path is incomplete.
func (t *ToddCoxeter) trace(c int, w api.Word) int {
	c = t.find(c)
	for _, g := range w {
		n := t.table[c][g]
		if n == api.Undefined {
			return api.Undefined
		}
		c = t.find(n)
	}
	return c
}

// coincide records that x and y are the same class and processes the
// resulting merges. The smaller-numbered coset survives; the dead row is
// folded into it, conflicting entries queueing further coincidences.
func (t *ToddCoxeter) coincide(x, y int) {
	t.pend = append(t.pend[:0], [2]int{x, y})
	for len(t.pend) > 0 {
		p := t.pend[len(t.pend)-1]
		t.pend = t.pend[:len(t.pend)-1]
		a, b := t.find(p[0]), t.find(p[1])
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		t.parent[b] = a
		t.alive--
		for g := 0; g < t.nrGens; g++ {
			d := t.table[b][g]
			if d == api.Undefined {
				continue
			}
			if e := t.table[a][g]; e == api.Undefined {
				t.table[a][g] = d
			} else {
				t.pend = append(t.pend, [2]int{d, e})
			}
		}
	}
}

// step applies every relation at the next unprocessed coset, then completes
// its generator transitions so the table eventually closes.
func (t *ToddCoxeter) step() {
	c := t.applied
	t.applied++
	if t.parent[c] != c {
		return // merged away before being processed
	}
	for _, rel := range t.rels {
		a := t.traceDefine(c, rel.Left)
		b := t.traceDefine(c, rel.Right)
		t.coincide(a, b)
		if t.find(c) != c {
			// c merged into an earlier, already-processed coset.
			return
		}
	}
	row := t.table[c]
	for g := 0; g < t.nrGens; g++ {
		if row[g] == api.Undefined {
			row[g] = t.newCoset()
		}
	}
}

func (t *ToddCoxeter) finish() {
	t.classOf = make([]int, len(t.table))
	n := 0
	for c := range t.table {
		if t.parent[c] == c {
			t.classOf[c] = n
			n++
		}
	}
	t.nrClasses = n
	t.done = true
	t.obs.OnStrategyDone(t.id, t.Name(), n)
}

// RunSteps applies relations at up to steps cosets, polling the signal
// between cosets.
func (t *ToddCoxeter) RunSteps(steps int) {
	if t.done {
		panic("fpsemi: RunSteps called on a finished strategy")
	}
	t.init()
	if !t.inited {
		return
	}
	for budget := steps; budget > 0; budget-- {
		if t.sig.Cancelled() {
			return
		}
		if t.applied == len(t.table) {
			break
		}
		t.step()
	}
	if t.applied == len(t.table) {
		t.finish()
	}
	t.obs.OnEnumerationProgress(t.id, t.alive)
}

// Run iterates RunSteps until done or cancelled.
func (t *ToddCoxeter) Run() {
	for !t.sig.Cancelled() && !t.done {
		t.RunSteps(maxSteps)
	}
}

func (t *ToddCoxeter) IsDone() bool      { return t.done }
func (t *ToddCoxeter) IsCancelled() bool { return t.sig.Cancelled() }

func (t *ToddCoxeter) NrClasses() int {
	if !t.done {
		panic("fpsemi: NrClasses queried before coset enumeration finished")
	}
	return t.nrClasses
}

func (t *ToddCoxeter) ClassIndex(w api.Word) int {
	api.CheckLetters(t.pres.NrGenerators(), w)
	if !t.done {
		panic("fpsemi: ClassIndex queried before coset enumeration finished")
	}
	c := t.trace(0, w)
	if c == api.Undefined {
		panic("fpsemi: incomplete transition table after coset enumeration finished")
	}
	return t.classOf[c]
}

// Equals is definite once the table has closed. Before that it can only
// answer True, and only when both words already trace to the same tentative
// class: classes merge but never split, so such an answer is stable.
func (t *ToddCoxeter) Equals(w1, w2 api.Word) api.TriState {
	api.CheckLetters(t.pres.NrGenerators(), w1)
	api.CheckLetters(t.pres.NrGenerators(), w2)
	t.init()
	if t.done {
		return api.FromBool(t.trace(0, w1) == t.trace(0, w2))
	}
	if !t.inited {
		return api.Unknown
	}
	if a := t.trace(0, w1); a != api.Undefined && a == t.trace(0, w2) {
		return api.True
	}
	return api.Unknown
}

// LessThan orders classes by their index once enumeration has finished.
func (t *ToddCoxeter) LessThan(w1, w2 api.Word) api.TriState {
	api.CheckLetters(t.pres.NrGenerators(), w1)
	api.CheckLetters(t.pres.NrGenerators(), w2)
	if t.done {
		return api.FromBool(t.ClassIndex(w1) < t.ClassIndex(w2))
	}
	if t.Equals(w1, w2) == api.True {
		return api.False // equal classes are never strictly ordered
	}
	return api.Unknown
}
