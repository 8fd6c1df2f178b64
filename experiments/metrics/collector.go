package metrics

import (
	"rowrace/game"
	"time"
)

type SearchMetric struct {
	Depth      int
	Duration   time.Duration
	Candidates int // Successors considered at the root
	Nodes      int // Search calls, leaves included
	Leaves     int // Static evaluations
	Cutoffs    int // Successor loops stopped early by pruning
	Score      int // Backed-up value of the chosen move
}

type MoveMetric struct {
	Step   int
	Player game.Player
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // game.NoWinner if the game stopped without one
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates the statistics of one move search. Implementations
// are not safe for concurrent use.
type Collector interface {
	Start(depth, candidates int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetScore(score int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, candidates int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Depth: depth, Candidates: candidates}
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddLeaf() {
	m.metric.Leaves++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) SetScore(score int) {
	m.metric.Score = score
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, candidates int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddLeaf()                    {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) SetScore(score int)          {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
