package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one GenerateMove call.
type SearchMetric struct {
	Iterations   int
	Duration     time.Duration
	NodesCreated int
	NodeReuses   int
	FullPlayouts int // playouts that ended by resignation rather than the ply cap
}

// Collector accumulates search statistics. Counters are atomic so a future
// parallel search can share one collector.
type Collector interface {
	Start(iterations int)
	AddIteration()
	AddNode()
	AddReuse()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	iterations   int
	startTime    time.Time
	episodes     atomic.Int32
	nodes        atomic.Int32
	reuses       atomic.Int32
	fullPlayouts atomic.Int32
}

// NewCollector returns a collector that records real statistics.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(iterations int) {
	c.startTime = time.Now()
	c.iterations = iterations
}

func (c *collector) AddIteration() {
	c.episodes.Add(1)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddReuse() {
	c.reuses.Add(1)
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:   int(c.episodes.Load()),
		Duration:     time.Since(c.startTime),
		NodesCreated: int(c.nodes.Load()),
		NodeReuses:   int(c.reuses.Load()),
		FullPlayouts: int(c.fullPlayouts.Load()),
	}
}

// dummyCollector drops everything; the default when metrics are off.
type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int) {}

func (dummyCollector) AddIteration() {}

func (dummyCollector) AddNode() {}

func (dummyCollector) AddReuse() {}

func (dummyCollector) AddFullPlayout() {}

func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
