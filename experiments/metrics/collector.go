package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Evaluator  string
	Duration   time.Duration
	Nodes      int // Positions reached by playing a move
	Leaves     int // Positions scored by the evaluator
	Terminals  int // Positions where the game ended
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 for a draw, -1 if the turn limit was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	FinalCounts    [2]int // Cells owned by player 1 and 2 at the end
}

type Collector interface {
	Start(goroutines, depth int, evaluator string)
	AddNode()
	AddLeaf()
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	evaluator  string
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, evaluator string) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.evaluator = evaluator
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Evaluator:  m.evaluator,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Terminals:  int(m.terminals.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, evaluator string) {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) AddLeaf()                                      {}
func (m *dummyCollector) AddTerminal()                                  {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
