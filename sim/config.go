package sim

import (
	"math"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim/trace"
)

const (
	DefaultQuantum      int64 = 2 // Priority-RR slice length, also the MLFQ base when BaseQuantum is unset
	DefaultPriorityStep int64 = 2 // aging penalty added to a Priority-RR process each time it is requeued
	DefaultLevels             = 3 // MLFQ queue count
	MaxLevels                 = 16
)

// Params groups the algorithm tuning knobs. Out-of-range values are clamped by
// Normalize rather than rejected: they are simulation knobs, not correctness inputs.
type Params struct {
	// Priority-RR quantum (>= 1)
	Quantum int64 `json:"quantum" yaml:"quantum"`
	// Priority-RR aging step (>= 1)
	PriorityStep int64 `json:"priority_step" yaml:"priority_step"`
	// MLFQ level-0 quantum; 0 = use Quantum
	BaseQuantum int64 `json:"base_quantum" yaml:"base_quantum"`
	// MLFQ level count; 0 = DefaultLevels
	Levels int `json:"levels" yaml:"levels"`
	// Explicit per-level MLFQ quanta; overrides BaseQuantum and Levels when non-empty
	LevelQuanta []int64 `json:"level_quanta,omitempty" yaml:"level_quanta,omitempty"`
	// "none" (default) or "decisions"
	TraceLevel string `json:"trace_level,omitempty" yaml:"trace_level,omitempty"`
}

// DefaultParams returns the parameters used when the caller supplies none.
func DefaultParams() Params {
	return Params{
		Quantum:      DefaultQuantum,
		PriorityStep: DefaultPriorityStep,
		Levels:       DefaultLevels,
	}
}

// Normalize returns a copy of p with every field clamped into its valid range.
// Quantum and PriorityStep floor at 1; BaseQuantum falls back to Quantum, then floors at 1;
// Levels defaults to DefaultLevels and is capped at MaxLevels; each LevelQuanta entry floors at 1.
// Unknown trace levels become "none".
func (p Params) Normalize() Params {
	out := Params{
		Quantum:      max(p.Quantum, 1),
		PriorityStep: max(p.PriorityStep, 1),
		BaseQuantum:  p.BaseQuantum,
		Levels:       p.Levels,
		TraceLevel:   p.TraceLevel,
	}
	if out.BaseQuantum <= 0 {
		out.BaseQuantum = out.Quantum
	}
	if out.Levels <= 0 {
		out.Levels = DefaultLevels
	}
	out.Levels = min(out.Levels, MaxLevels)
	if len(p.LevelQuanta) > 0 {
		n := min(len(p.LevelQuanta), MaxLevels)
		out.LevelQuanta = make([]int64, n)
		for i := 0; i < n; i++ {
			out.LevelQuanta[i] = max(p.LevelQuanta[i], 1)
		}
		out.Levels = n
	}
	if !trace.IsValidTraceLevel(out.TraceLevel) || out.TraceLevel == "" {
		out.TraceLevel = string(trace.TraceLevelNone)
	}
	return out
}

// LevelQuantums returns the per-level MLFQ quanta: LevelQuanta when given,
// otherwise BaseQuantum doubled at every level (base x {1, 2, 4, ...}).
func (p Params) LevelQuantums() []int64 {
	n := p.Normalize()
	if len(n.LevelQuanta) > 0 {
		return n.LevelQuanta
	}
	quanta := make([]int64, n.Levels)
	for level := range quanta {
		q := n.BaseQuantum << uint(level)
		if q>>uint(level) != n.BaseQuantum {
			q = math.MaxInt64
		}
		quanta[level] = q
	}
	return quanta
}
