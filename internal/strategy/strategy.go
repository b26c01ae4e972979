// Package strategy implements the decision strategies a scheduler can race
// against each other on one word problem: KBFP (Knuth-Bendix completion
// followed by closure enumeration) and Todd-Coxeter coset enumeration. Both
// satisfy api.Strategy; the set of variants is closed.
package strategy

import (
	"github.com/google/uuid"

	"github.com/petrijr/fpsemi/internal/persistence"
	"github.com/petrijr/fpsemi/pkg/api"
)

// Config carries the collaborators shared by every strategy variant.
// Zero values are usable: a nil Observer means no reporting, a nil RuleCache
// disables rule-set caching.
type Config struct {
	Observer  api.Observer
	RuleCache *persistence.RuleStore
}

func (c Config) observer() api.Observer {
	if c.Observer == nil {
		return api.NoopObserver{}
	}
	return c.Observer
}

func newID() string { return uuid.NewString() }

// maxSteps is the step budget used by the unbounded Run loops.
const maxSteps = int(^uint(0) >> 1)

// RunUntil drives s in bounded batches of the given step budget until goal
// reports true, s is done, or s is cancelled. A nil goal runs s to
// completion.
func RunUntil(s api.Strategy, goal func(api.Strategy) bool, steps int) {
	if s.IsDone() {
		return
	}
	if goal == nil {
		s.Run()
		return
	}
	for !s.IsCancelled() && !s.IsDone() && !goal(s) {
		s.RunSteps(steps)
	}
}
