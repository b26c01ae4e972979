package fpsemi

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/petrijr/fpsemi/internal/persistence"
	"github.com/petrijr/fpsemi/internal/strategy"
	"github.com/petrijr/fpsemi/pkg/api"
)

// ErrCancelled is returned by total queries (ClassIndex, NrClasses) that
// were cut short before any strategy could finish.
var ErrCancelled = errors.New("fpsemi: computation cancelled before completion")

// defaultStepBudget is the per-batch step budget the scheduler hands to
// goal-driven runs. Smaller budgets poll goals and cancellation more often;
// larger ones spend less time re-checking.
const defaultStepBudget = 128

// Congruence answers word-problem queries over one presentation by racing
// the available strategy variants against each other. All variants share one
// cancellation signal: the first to reach an answer cancels the rest, and
// that winner is retained so every later query reuses its finished state.
//
// Partial work is never thrown away. If a query's context expires mid-run,
// the strategies keep their state and the next query resumes them.
//
// A Congruence serializes its queries internally, so it is safe for
// concurrent use; the parallelism lives in the strategies underneath.
type Congruence struct {
	pres  api.Presentation
	obs   api.Observer
	steps int
	cache *persistence.RuleStore

	mu    sync.Mutex
	sig   *api.Signal
	cands []api.Strategy
	data  api.Strategy // retained winner, nil until a race concludes
}

// Option configures a Congruence at construction time.
type Option func(*Congruence)

// WithObserver routes strategy lifecycle events to obs. Strategies run on
// separate goroutines, so obs must be safe for concurrent use; every
// observer in pkg/api is.
func WithObserver(obs Observer) Option {
	return func(c *Congruence) { c.obs = obs }
}

// WithStepBudget overrides the per-batch step budget used by goal-driven
// runs. It trades goal-polling latency against batch throughput and has no
// effect on answers.
func WithStepBudget(steps int) Option {
	return func(c *Congruence) {
		if steps > 0 {
			c.steps = steps
		}
	}
}

// NewCongruence builds a Congruence over pres. Nothing runs until the first
// query.
func NewCongruence(pres Presentation, opts ...Option) *Congruence {
	c := &Congruence{
		pres:  pres,
		obs:   api.NoopObserver{},
		steps: defaultStepBudget,
		sig:   api.NewSignal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCongruenceWithCache is NewCongruence with a SQLite-backed rule-set
// cache: confluent rewriting systems produced by the KBFP strategy are
// stored in db and reused across processes.
func NewCongruenceWithCache(db *sql.DB, pres Presentation, opts ...Option) (*Congruence, error) {
	store, err := persistence.NewRuleStore(db)
	if err != nil {
		return nil, err
	}
	c := NewCongruence(pres, opts...)
	c.cache = store
	return c, nil
}

// Equals reports whether w1 and w2 lie in the same congruence class.
// Unknown means ctx expired before any strategy could decide; asking again
// resumes where the strategies left off.
func (c *Congruence) Equals(ctx context.Context, w1, w2 Word) TriState {
	c.checkWords(w1, w2)
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.begin(ctx)()

	d := c.winner(func(s api.Strategy) bool { return s.Equals(w1, w2) != api.Unknown })
	if d == nil {
		return api.Unknown
	}
	return d.Equals(w1, w2)
}

// LessThan reports whether the class of w1 strictly precedes the class of
// w2 in the winning strategy's order. Unknown means ctx expired before any
// strategy could decide.
func (c *Congruence) LessThan(ctx context.Context, w1, w2 Word) TriState {
	c.checkWords(w1, w2)
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.begin(ctx)()

	d := c.winner(func(s api.Strategy) bool { return s.LessThan(w1, w2) != api.Unknown })
	if d == nil {
		return api.Unknown
	}
	return d.LessThan(w1, w2)
}

// ClassIndex returns the index of w's congruence class. It needs a full
// enumeration of the quotient, so it terminates only when the quotient is
// finite; bound it with ctx otherwise. On cancellation it returns Undefined
// and a non-nil error.
func (c *Congruence) ClassIndex(ctx context.Context, w Word) (int, error) {
	c.checkWords(w)
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.begin(ctx)()

	d := c.winner(nil)
	if d == nil {
		return api.Undefined, c.cancelErr(ctx)
	}
	return d.ClassIndex(w), nil
}

// NrClasses returns the total number of congruence classes. Like ClassIndex
// it requires a full enumeration.
func (c *Congruence) NrClasses(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.begin(ctx)()

	d := c.winner(nil)
	if d == nil {
		return api.Undefined, c.cancelErr(ctx)
	}
	return d.NrClasses(), nil
}

// Partition groups words by congruence class, in order of each class's
// first appearance in words. Like ClassIndex it needs a full enumeration, so
// it terminates only when the quotient is finite.
func (c *Congruence) Partition(ctx context.Context, words []Word) ([][]Word, error) {
	c.checkWords(words...)
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.begin(ctx)()

	d := c.winner(nil)
	if d == nil {
		return nil, c.cancelErr(ctx)
	}

	byClass := make(map[int]int)
	var classes [][]Word
	for _, w := range words {
		idx := d.ClassIndex(w)
		pos, ok := byClass[idx]
		if !ok {
			pos = len(classes)
			byClass[idx] = pos
			classes = append(classes, nil)
		}
		classes[pos] = append(classes[pos], w)
	}
	return classes, nil
}

// NonTrivialClasses is Partition restricted to the classes containing at
// least two of the given words.
func (c *Congruence) NonTrivialClasses(ctx context.Context, words []Word) ([][]Word, error) {
	classes, err := c.Partition(ctx, words)
	if err != nil {
		return nil, err
	}
	out := classes[:0]
	for _, class := range classes {
		if len(class) > 1 {
			out = append(out, class)
		}
	}
	return out, nil
}

// IsDone reports whether some strategy has fully enumerated the quotient.
func (c *Congruence) IsDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data != nil && c.data.IsDone()
}

func (c *Congruence) checkWords(words ...Word) {
	for _, w := range words {
		api.CheckLetters(c.pres.NrGenerators(), w)
	}
}

func (c *Congruence) cancelErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrCancelled
}

// begin prepares one query: it clears any cancellation left behind by the
// previous query and only then starts the ctx watcher, so a Cancel coming
// from this query's context can never be lost to the reset. The caller must
// hold c.mu.
func (c *Congruence) begin(ctx context.Context) func() {
	c.sig.Reset()
	return c.watch(ctx)
}

// watch forwards ctx cancellation to the shared signal for the duration of
// one query. The returned stop function releases the watcher goroutine.
func (c *Congruence) watch(ctx context.Context) func() {
	if ctx.Done() == nil {
		return func() {}
	}
	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			c.sig.Cancel()
		case <-stop:
		}
	}()
	return func() { close(stop) }
}

// winner drives the race until some strategy is done or satisfies goal, and
// returns that strategy; nil means the run was cancelled first. A nil goal
// demands full enumeration. The caller must hold c.mu and have prepared the
// signal through begin.
func (c *Congruence) winner(goal func(api.Strategy) bool) api.Strategy {
	// A previous race already crowned a winner: resume it alone rather
	// than restarting the losers.
	if c.data != nil {
		if satisfied(c.data, goal) {
			return c.data
		}
		strategy.RunUntil(c.data, goal, c.steps)
		if satisfied(c.data, goal) {
			return c.data
		}
		return nil
	}

	if c.cands == nil {
		c.cands = []api.Strategy{
			strategy.NewKBFP(c.pres, c.sig, strategy.Config{Observer: c.obs, RuleCache: c.cache}),
			strategy.NewToddCoxeter(c.pres, c.sig, strategy.Config{Observer: c.obs}),
		}
	}

	var wg sync.WaitGroup
	for _, s := range c.cands {
		wg.Add(1)
		go func(s api.Strategy) {
			defer wg.Done()
			c.obs.OnStrategyStart(s.ID(), s.Name())
			strategy.RunUntil(s, goal, c.steps)
			if satisfied(s, goal) {
				// Reached an answer: stop the siblings.
				c.sig.Cancel()
			}
		}(s)
	}
	wg.Wait()

	for _, s := range c.cands {
		if satisfied(s, goal) {
			c.obs.OnRaceWinner(s.ID(), s.Name())
			c.data = s
			return s
		}
	}
	return nil
}

// satisfied checks the race's finish line: fully done always counts, and a
// goal, when present, counts too. Checking the goal on a cancelled strategy
// is fine; goals are cheap once the strategy stops running.
func satisfied(s api.Strategy, goal func(api.Strategy) bool) bool {
	return s.IsDone() || (goal != nil && goal(s))
}
