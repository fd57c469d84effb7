package search

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase names used by the search and the game evaluators.
const (
	PhaseSearch        = "search"
	PhaseGenerateMoves = "generate moves"
	PhaseCalcWorth     = "calc worth"
	PhaseMakeMove      = "make move"
	PhaseUndoMove      = "undo move"
)

type phase struct {
	name    string
	parent  string
	total   time.Duration
	count   int
	started time.Time
	running bool
}

// Profiler is a named hierarchical stopwatch. A nil *Profiler is a no-op.
type Profiler struct {
	mu     sync.Mutex
	phases map[string]*phase
	order  []string
}

// NewProfiler registers the search phases, with the work phases nested under "search".
func NewProfiler() *Profiler {
	p := &Profiler{phases: make(map[string]*phase)}
	p.AddPhase(PhaseSearch, "")

	for _, name := range []string{PhaseGenerateMoves, PhaseCalcWorth, PhaseMakeMove, PhaseUndoMove} {
		p.AddPhase(name, PhaseSearch)
	}

	return p
}

func (that *Profiler) AddPhase(name, parent string) {
	if that == nil {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.phases[name]; ok {
		return
	}

	that.phases[name] = &phase{name: name, parent: parent}
	that.order = append(that.order, name)
}

func (that *Profiler) Start(name string) {
	if that == nil {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	ph := that.lookup(name)
	ph.started = time.Now()
	ph.running = true
}

func (that *Profiler) Stop(name string) {
	if that == nil {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	ph := that.lookup(name)
	if !ph.running {
		return
	}

	ph.total += time.Since(ph.started)
	ph.count++
	ph.running = false
}

func (that *Profiler) Total(name string) time.Duration {
	if that == nil {
		return 0
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if ph, ok := that.phases[name]; ok {
		return ph.total
	}

	return 0
}

func (that *Profiler) Count(name string) int {
	if that == nil {
		return 0
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if ph, ok := that.phases[name]; ok {
		return ph.count
	}

	return 0
}

func (that *Profiler) Reset() {
	if that == nil {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for _, ph := range that.phases {
		ph.total, ph.count, ph.running = 0, 0, false
	}
}

// String renders phases indented under their parents.
func (that *Profiler) String() string {
	if that == nil {
		return ""
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	var sb strings.Builder
	for _, name := range that.order {
		ph := that.phases[name]
		if ph.parent != "" {
			continue
		}

		that.write(&sb, ph, 0)
	}

	return sb.String()
}

func (that *Profiler) write(sb *strings.Builder, ph *phase, level int) {
	fmt.Fprintf(sb, "%s%s: %v (%d)\n", strings.Repeat("  ", level), ph.name, ph.total.Round(time.Microsecond), ph.count)

	for _, name := range that.order {
		if child := that.phases[name]; child.parent == ph.name {
			that.write(sb, child, level+1)
		}
	}
}

// lookup auto-registers unknown phases at the top level.
func (that *Profiler) lookup(name string) *phase {
	ph, ok := that.phases[name]
	if !ok {
		ph = &phase{name: name}
		that.phases[name] = ph
		that.order = append(that.order, name)
	}

	return ph
}
