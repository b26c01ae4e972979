package strategy

import (
	"github.com/petrijr/fpsemi/internal/fp"
	"github.com/petrijr/fpsemi/internal/kb"
	"github.com/petrijr/fpsemi/internal/persistence"
	"github.com/petrijr/fpsemi/pkg/api"
)

// KBFP decides word problems by completing the presentation's relations into
// a confluent rewriting system, then enumerating the quotient's elements by
// closure over the generators. Equality and order queries are answered from
// the completed system alone; class indices additionally need the
// enumeration to have closed.
//
// A KBFP instance is single-threaded; concurrency exists only across
// instances racing on the same shared signal.
type KBFP struct {
	pres api.Presentation
	sig  *api.Signal
	obs  api.Observer
	id   string

	cache *persistence.RuleStore

	sys        *kb.System
	rulesAdded bool
	index      *fp.Index[kb.Element]
}

var _ api.Strategy = (*KBFP)(nil)

// NewKBFP builds a KBFP strategy over pres, observing sig for cancellation.
func NewKBFP(pres api.Presentation, sig *api.Signal, cfg Config) *KBFP {
	return &KBFP{
		pres:  pres,
		sig:   sig,
		obs:   cfg.observer(),
		id:    newID(),
		cache: cfg.RuleCache,
		sys:   kb.NewSystem(),
	}
}

func (s *KBFP) Name() string { return "kbfp" }
func (s *KBFP) ID() string   { return s.id }

// init lazily builds the rewriting system and the enumeration index, at most
// once per instance. If cancelled anywhere along the way the instance is left
// un-ready: IsDone stays false and decision queries report Unknown.
func (s *KBFP) init() {
	if s.index != nil {
		return
	}
	if !s.rulesAdded {
		rels, ok := s.pres.Relations(s.sig)
		if !ok {
			return // cancelled while materializing
		}
		s.sys.AddRelations(rels)
		s.sys.AddRelations(s.pres.Extra())
		s.rulesAdded = true
	}

	if !s.sys.IsConfluent() && s.cache != nil {
		s.restoreFromCache()
	}
	if !s.sys.IsConfluent() {
		s.obs.OnCompletionStart(s.id)
		s.sys.KnuthBendix(s.sig)
		s.obs.OnCompletionFinished(s.id, s.sys.NrRules(), s.sig.Cancelled())
		if s.sig.Cancelled() {
			return
		}
		if !s.sys.IsConfluent() {
			panic("fpsemi: completion finished without reaching confluence")
		}
		s.saveToCache()
	}

	gens := make([]kb.Element, s.pres.NrGenerators())
	for i := range gens {
		gens[i] = kb.GeneratorElement(s.sys, i)
	}
	s.index = fp.NewIndex(kb.Identity(s.sys), gens)
}

// RunSteps ensures initialization, then grows the enumeration to one past
// its current size. The "+1" target guarantees at least one new element per
// call whenever any remain; steps only controls internal batching, so a call
// may do much more work than one element's worth, never less.
func (s *KBFP) RunSteps(steps int) {
	if s.IsDone() {
		panic("fpsemi: RunSteps called on a finished strategy")
	}
	s.init()
	if s.sig.Cancelled() || s.index == nil {
		return
	}
	s.index.SetBatchSize(steps)
	s.index.Grow(s.sig, s.index.CurrentSize()+1)
	s.obs.OnEnumerationProgress(s.id, s.index.CurrentSize())
	if s.index.IsDone() {
		s.obs.OnStrategyDone(s.id, s.Name(), s.index.CurrentSize())
	}
}

// Run iterates RunSteps until done or cancelled; it stays promptly
// cancellable because every iteration is bounded.
func (s *KBFP) Run() {
	for !s.sig.Cancelled() && !s.IsDone() {
		s.RunSteps(maxSteps)
	}
}

func (s *KBFP) IsDone() bool {
	return s.index != nil && s.index.IsDone()
}

func (s *KBFP) IsCancelled() bool { return s.sig.Cancelled() }

func (s *KBFP) NrClasses() int {
	if !s.IsDone() {
		panic("fpsemi: NrClasses queried before enumeration finished")
	}
	return s.index.CurrentSize()
}

func (s *KBFP) ClassIndex(w api.Word) int {
	api.CheckLetters(s.pres.NrGenerators(), w)
	if !s.IsDone() {
		panic("fpsemi: ClassIndex queried before enumeration finished")
	}
	pos := s.index.Position(kb.NewElement(s.sys, w))
	if pos == api.Undefined {
		// A closed index contains every canonical form; missing one is an
		// internal consistency fault, not an operational condition.
		panic("fpsemi: canonical form missing from a closed enumeration")
	}
	return pos
}

func (s *KBFP) Equals(w1, w2 api.Word) api.TriState {
	api.CheckLetters(s.pres.NrGenerators(), w1)
	api.CheckLetters(s.pres.NrGenerators(), w2)
	s.init()
	if !s.sys.IsConfluent() {
		return api.Unknown // cancelled before confluence
	}
	return api.FromBool(s.sys.Rewrite(kb.FromWord(w1)) == s.sys.Rewrite(kb.FromWord(w2)))
}

func (s *KBFP) LessThan(w1, w2 api.Word) api.TriState {
	api.CheckLetters(s.pres.NrGenerators(), w1)
	api.CheckLetters(s.pres.NrGenerators(), w2)
	s.init()
	if !s.sys.IsConfluent() {
		return api.Unknown
	}
	return api.FromBool(s.sys.Less(kb.FromWord(w1), kb.FromWord(w2)))
}

func (s *KBFP) restoreFromCache() {
	rels, ok := s.pres.Relations(nil)
	if !ok {
		return
	}
	fpr := persistence.Fingerprint(s.pres.NrGenerators(), rels, s.pres.Extra())
	dump, ok, err := s.cache.Load(fpr)
	if err != nil || !ok {
		return
	}
	rules, err := kb.ParseDump(dump)
	if err != nil {
		return
	}
	restored := kb.NewSystem()
	restored.Restore(rules)
	restored.SetConfluent(true)
	s.sys = restored
}

func (s *KBFP) saveToCache() {
	if s.cache == nil {
		return
	}
	rels, ok := s.pres.Relations(nil)
	if !ok {
		return
	}
	fpr := persistence.Fingerprint(s.pres.NrGenerators(), rels, s.pres.Extra())
	// Best effort: a failed save only costs a future completion run.
	_ = s.cache.Save(fpr, s.sys.Dump(), s.sys.NrRules())
}
