package workload

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

const (
	// MaxGeneratedProcesses bounds GeneratorSpec.Count.
	MaxGeneratedProcesses = 10000
	// MaxRangeValue bounds every Range.Max so sampled sums stay far from int64 overflow.
	MaxRangeValue int64 = 1 << 40
)

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int64 `json:"min" yaml:"min"`
	Max int64 `json:"max" yaml:"max"`
}

func (r Range) sample(rng *rand.Rand) int64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Int63n(r.Max-r.Min+1)
}

// GeneratorSpec describes a seeded random process list.
// A nil range falls back to the DefaultGeneratorSpec range; {0, 0} is the constant 0.
type GeneratorSpec struct {
	Count    int    `json:"count" yaml:"count"`
	Seed     int64  `json:"seed" yaml:"seed"`
	Arrival  *Range `json:"arrival,omitempty" yaml:"arrival,omitempty"`
	Burst    *Range `json:"burst,omitempty" yaml:"burst,omitempty"`
	Priority *Range `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// DefaultGeneratorSpec returns a five-process spec with small ranges.
func DefaultGeneratorSpec() GeneratorSpec {
	return GeneratorSpec{
		Count:    5,
		Seed:     42,
		Arrival:  &Range{Min: 0, Max: 10},
		Burst:    &Range{Min: 1, Max: 10},
		Priority: &Range{Min: 1, Max: 10},
	}
}

func (s GeneratorSpec) withDefaults() GeneratorSpec {
	d := DefaultGeneratorSpec()
	if s.Arrival == nil {
		s.Arrival = d.Arrival
	}
	if s.Burst == nil {
		s.Burst = d.Burst
	}
	if s.Priority == nil {
		s.Priority = d.Priority
	}
	return s
}

// Validate checks that every field in the spec is usable.
func (s GeneratorSpec) Validate() error {
	s = s.withDefaults()
	if s.Count <= 0 || s.Count > MaxGeneratedProcesses {
		return fmt.Errorf("count must be in [1, %d], got %d", MaxGeneratedProcesses, s.Count)
	}
	for _, r := range []struct {
		name   string
		rng    *Range
		minVal int64
	}{
		{"arrival", s.Arrival, 0},
		{"burst", s.Burst, 1},
		{"priority", s.Priority, 0},
	} {
		if r.rng.Min > r.rng.Max {
			return fmt.Errorf("%s range: min %d exceeds max %d", r.name, r.rng.Min, r.rng.Max)
		}
		if r.rng.Min < r.minVal {
			return fmt.Errorf("%s range: min must be >= %d, got %d", r.name, r.minVal, r.rng.Min)
		}
		if r.rng.Max > MaxRangeValue {
			return fmt.Errorf("%s range: max must be <= %d, got %d", r.name, MaxRangeValue, r.rng.Max)
		}
	}
	return nil
}

// Generate creates a random process list from spec.
// Deterministic given the same spec. Processes are sorted by arrival time and
// numbered P1..Pn in that order.
func Generate(spec GeneratorSpec) ([]sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	spec = spec.withDefaults()

	rng := NewPartitionedRNG(NewSimulationKey(spec.Seed))
	arrivalRNG := rng.ForSubsystem(SubsystemArrival)
	burstRNG := rng.ForSubsystem(SubsystemBurst)
	priorityRNG := rng.ForSubsystem(SubsystemPriority)

	procs := make([]sim.Process, spec.Count)
	for i := range procs {
		procs[i] = sim.Process{
			ArrivalTime: spec.Arrival.sample(arrivalRNG),
			BurstTime:   spec.Burst.sample(burstRNG),
			Priority:    spec.Priority.sample(priorityRNG),
		}
	}
	sort.SliceStable(procs, func(i, j int) bool { return procs[i].ArrivalTime < procs[j].ArrivalTime })
	for i := range procs {
		procs[i].ID = fmt.Sprintf("P%d", i+1)
		procs[i].Name = procs[i].ID
	}

	logrus.Debugf("generated %d processes (seed %d)", len(procs), spec.Seed)
	return procs, nil
}
