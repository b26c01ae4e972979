package api

import (
	"log/slog"
	"sync/atomic"
)

// Observer receives callbacks from strategies and the scheduler for logging
// and metrics. Reporting is factored out of the algorithms entirely: a
// strategy never logs, it only notifies its Observer at phase boundaries.
//
// Observers may be called from several goroutines at once while a race is in
// flight, so implementations must be safe for concurrent use. They should
// also be fast and non-blocking; heavy work should be done asynchronously so
// as not to delay the algorithms.
type Observer interface {
	// OnStrategyStart is called once per strategy instance when the
	// scheduler starts driving it.
	OnStrategyStart(id, name string)

	// OnCompletionStart is called before a strategy runs rewriting-system
	// completion.
	OnCompletionStart(id string)

	// OnCompletionFinished is called when completion stops, either because
	// the system became confluent or because the run was cancelled.
	OnCompletionFinished(id string, nrRules int, cancelled bool)

	// OnEnumerationProgress is called after each bounded enumeration run
	// with the current number of discovered classes.
	OnEnumerationProgress(id string, size int)

	// OnStrategyDone is called when a strategy has fully determined the
	// quotient.
	OnStrategyDone(id, name string, nrClasses int)

	// OnRaceWinner is called by the scheduler when one racing strategy
	// yields the answer and the others are cancelled.
	OnRaceWinner(id, name string)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnStrategyStart(id, name string)                     {}
func (NoopObserver) OnCompletionStart(id string)                         {}
func (NoopObserver) OnCompletionFinished(id string, nrRules int, c bool) {}
func (NoopObserver) OnEnumerationProgress(id string, size int)           {}
func (NoopObserver) OnStrategyDone(id, name string, nrClasses int)       {}
func (NoopObserver) OnRaceWinner(id, name string)                        {}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnStrategyStart(id, name string) {
	for _, o := range c.observers {
		o.OnStrategyStart(id, name)
	}
}

func (c *CompositeObserver) OnCompletionStart(id string) {
	for _, o := range c.observers {
		o.OnCompletionStart(id)
	}
}

func (c *CompositeObserver) OnCompletionFinished(id string, nrRules int, cancelled bool) {
	for _, o := range c.observers {
		o.OnCompletionFinished(id, nrRules, cancelled)
	}
}

func (c *CompositeObserver) OnEnumerationProgress(id string, size int) {
	for _, o := range c.observers {
		o.OnEnumerationProgress(id, size)
	}
}

func (c *CompositeObserver) OnStrategyDone(id, name string, nrClasses int) {
	for _, o := range c.observers {
		o.OnStrategyDone(id, name, nrClasses)
	}
}

func (c *CompositeObserver) OnRaceWinner(id, name string) {
	for _, o := range c.observers {
		o.OnRaceWinner(id, name)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs strategy lifecycle events
// using the provided slog.Logger. If logger is nil, slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnStrategyStart(id, name string) {
	o.Logger.Info("strategy_start",
		slog.String("strategy_id", id),
		slog.String("strategy", name),
	)
}

func (o *LoggingObserver) OnCompletionStart(id string) {
	o.Logger.Debug("completion_start",
		slog.String("strategy_id", id),
	)
}

func (o *LoggingObserver) OnCompletionFinished(id string, nrRules int, cancelled bool) {
	o.Logger.Debug("completion_finished",
		slog.String("strategy_id", id),
		slog.Int("nr_rules", nrRules),
		slog.Bool("cancelled", cancelled),
	)
}

func (o *LoggingObserver) OnEnumerationProgress(id string, size int) {
	o.Logger.Debug("enumeration_progress",
		slog.String("strategy_id", id),
		slog.Int("nr_elements", size),
	)
}

func (o *LoggingObserver) OnStrategyDone(id, name string, nrClasses int) {
	o.Logger.Info("strategy_done",
		slog.String("strategy_id", id),
		slog.String("strategy", name),
		slog.Int("nr_classes", nrClasses),
	)
}

func (o *LoggingObserver) OnRaceWinner(id, name string) {
	o.Logger.Info("race_winner",
		slog.String("strategy_id", id),
		slog.String("strategy", name),
	)
}

// BasicMetrics collects simple counters across strategies and races.
// It implements Observer, and can be combined with LoggingObserver via
// NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	strategiesStarted    atomic.Int64
	completionsFinished  atomic.Int64
	completionsCancelled atomic.Int64
	rulesDerived         atomic.Int64
	strategiesDone       atomic.Int64
	racesWon             atomic.Int64
	peakClasses          atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	StrategiesStarted    int64
	CompletionsFinished  int64
	CompletionsCancelled int64
	RulesDerived         int64
	StrategiesDone       int64
	RacesWon             int64
	PeakClasses          int64
}

func (m *BasicMetrics) OnStrategyStart(id, name string) {
	m.strategiesStarted.Add(1)
}

func (m *BasicMetrics) OnCompletionFinished(id string, nrRules int, cancelled bool) {
	if cancelled {
		m.completionsCancelled.Add(1)
		return
	}
	m.completionsFinished.Add(1)
	m.rulesDerived.Add(int64(nrRules))
}

func (m *BasicMetrics) OnEnumerationProgress(id string, size int) {
	for {
		cur := m.peakClasses.Load()
		if int64(size) <= cur || m.peakClasses.CompareAndSwap(cur, int64(size)) {
			return
		}
	}
}

func (m *BasicMetrics) OnStrategyDone(id, name string, nrClasses int) {
	m.strategiesDone.Add(1)
}

func (m *BasicMetrics) OnRaceWinner(id, name string) {
	m.racesWon.Add(1)
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	return BasicMetricsSnapshot{
		StrategiesStarted:    m.strategiesStarted.Load(),
		CompletionsFinished:  m.completionsFinished.Load(),
		CompletionsCancelled: m.completionsCancelled.Load(),
		RulesDerived:         m.rulesDerived.Load(),
		StrategiesDone:       m.strategiesDone.Load(),
		RacesWon:             m.racesWon.Load(),
		PeakClasses:          m.peakClasses.Load(),
	}
}
