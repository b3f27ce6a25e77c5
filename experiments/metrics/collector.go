package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Pruning    bool
	Duration   time.Duration
	Nodes      int // Positions visited, leaves included
	Leaves     int // Positions scored by the heuristic
	Terminals  int // Decided or full positions
	Cutoffs    int // Pruned sibling loops
	TimedOut   bool
}

type MoveMetric struct {
	Step   int
	Player string // game.Piece name
	Column int
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string // game.Piece name
	Winner         string // game.Piece name, "empty" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddCutoff()
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
	cutoffs    atomic.Int64
	timedOut   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
	m.timedOut.Store(false)
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

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetTimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Terminals:  int(m.terminals.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		TimedOut:   m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddLeaf()                                  {}
func (m *dummyCollector) AddTerminal()                              {}
func (m *dummyCollector) AddCutoff()                                {}
func (m *dummyCollector) SetTimedOut()                              {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
