package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes the work of one search call.
type SearchMetric struct {
	Strategy   string
	StartTime  time.Time
	Duration   time.Duration
	Nodes      int64   // Non-terminal states expanded, root included
	Terminals  int64   // Calls to EvaluateState
	Heuristics int64   // Calls to the cutoff evaluation function
	Prunes     int64   // Alpha-beta cutoffs that skipped sibling actions
	Value      float64 // Backed-up value of the chosen action
}

type Collector interface {
	Start(strategy string)
	AddNode()
	AddTerminal()
	AddHeuristic()
	AddPrune()
	Complete(value float64) SearchMetric
	// Metric returns the metric of the last completed search.
	Metric() SearchMetric
}

type collector struct {
	strategy   string
	startTime  time.Time
	nodes      atomic.Int64
	terminals  atomic.Int64
	heuristics atomic.Int64
	prunes     atomic.Int64
	last       SearchMetric
}

// NewCollector returns a collector for one search at a time. Start resets it,
// so it can be reused across sequential searches.
func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.heuristics.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddHeuristic() {
	m.heuristics.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete(value float64) SearchMetric {
	m.last = SearchMetric{
		Strategy:   m.strategy,
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Terminals:  m.terminals.Load(),
		Heuristics: m.heuristics.Load(),
		Prunes:     m.prunes.Load(),
		Value:      value,
	}
	return m.last
}

func (m *collector) Metric() SearchMetric {
	return m.last
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(strategy string)               {}
func (dummyCollector) AddNode()                            {}
func (dummyCollector) AddTerminal()                        {}
func (dummyCollector) AddHeuristic()                       {}
func (dummyCollector) AddPrune()                           {}
func (dummyCollector) Complete(value float64) SearchMetric { return SearchMetric{} }
func (dummyCollector) Metric() SearchMetric                { return SearchMetric{} }
