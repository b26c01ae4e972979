package fpsemi

import (
	"database/sql"

	"github.com/petrijr/fpsemi/internal/persistence"
	"github.com/petrijr/fpsemi/internal/strategy"
	"github.com/petrijr/fpsemi/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Word                 = api.Word
	Relation             = api.Relation
	Presentation         = api.Presentation
	FinitePresentation   = api.FinitePresentation
	Strategy             = api.Strategy
	TriState             = api.TriState
	Signal               = api.Signal
	Observer             = api.Observer
	LoggingObserver      = api.LoggingObserver
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot
	CompositeObserver    = api.CompositeObserver
	NoopObserver         = api.NoopObserver
)

// Re-export common constructors and helpers.

var (
	W                    = api.W
	Rel                  = api.Rel
	NewPresentation      = api.NewPresentation
	NewSignal            = api.NewSignal
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
)

// Re-export tri-state values for convenience.

const (
	True    = api.True
	False   = api.False
	Unknown = api.Unknown
)

const (
	// Undefined is the class index of a word not yet discovered.
	Undefined = api.Undefined
	// MaxGenerators bounds the alphabet size a presentation may use.
	MaxGenerators = api.MaxGenerators
)

// Strategy constructors
// These wrap the internal/strategy package so external callers
// never need to import internal packages.

// NewKBFPStrategy returns a Strategy that completes the presentation's
// relations into a confluent rewriting system and then enumerates the
// quotient by closure over the generators.
func NewKBFPStrategy(pres Presentation, sig *Signal, obs Observer) Strategy {
	return strategy.NewKBFP(pres, sig, strategy.Config{Observer: obs})
}

// NewCachedKBFPStrategy is NewKBFPStrategy with a SQLite-backed rule-set
// cache: confluent rewriting systems are stored in db and reused across
// processes for presentations already seen.
func NewCachedKBFPStrategy(pres Presentation, sig *Signal, db *sql.DB, obs Observer) (Strategy, error) {
	store, err := persistence.NewRuleStore(db)
	if err != nil {
		return nil, err
	}
	return strategy.NewKBFP(pres, sig, strategy.Config{Observer: obs, RuleCache: store}), nil
}

// NewToddCoxeterStrategy returns a Strategy that enumerates the quotient's
// classes directly by coset enumeration.
func NewToddCoxeterStrategy(pres Presentation, sig *Signal, obs Observer) Strategy {
	return strategy.NewToddCoxeter(pres, sig, strategy.Config{Observer: obs})
}
