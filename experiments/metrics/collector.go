package metrics

import (
	"sync/atomic"
	"time"
)

// ResolveMetric summarizes a single call to the resolver.
type ResolveMetric struct {
	Goroutines    int
	Duration      time.Duration
	HexesExpanded int
	Candidates    int
	Branches      int
	AttackHexes   int
}

// Collector accumulates counters for one resolution.  Start must be called
// before the run and Complete after it.  The Add methods are safe to call
// from concurrent goroutines.
type Collector interface {
	Start(goroutines int)
	AddExpandedHexes(count int)
	AddCandidate()
	Complete(branches int, attackHexes int) ResolveMetric
}

type collector struct {
	goroutines    int
	startTime     time.Time
	hexesExpanded atomic.Int64
	candidates    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(goroutines int) {
	c.goroutines = goroutines
	c.startTime = time.Now()
	c.hexesExpanded.Store(0)
	c.candidates.Store(0)
}

func (c *collector) AddExpandedHexes(count int) {
	c.hexesExpanded.Add(int64(count))
}

func (c *collector) AddCandidate() {
	c.candidates.Add(1)
}

func (c *collector) Complete(branches int, attackHexes int) ResolveMetric {
	return ResolveMetric{
		Goroutines:    c.goroutines,
		Duration:      time.Since(c.startTime),
		HexesExpanded: int(c.hexesExpanded.Load()),
		Candidates:    int(c.candidates.Load()),
		Branches:      branches,
		AttackHexes:   attackHexes,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that discards everything, for
// callers that do not care about instrumentation.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(goroutines int) {}

func (c *dummyCollector) AddExpandedHexes(count int) {}

func (c *dummyCollector) AddCandidate() {}

func (c *dummyCollector) Complete(branches int, attackHexes int) ResolveMetric {
	return ResolveMetric{}
}
