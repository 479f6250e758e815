package sim

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm is one scheduling policy. Run must not mutate procs and must return
// a fresh Result that shares no memory with the engine.
type Algorithm interface {
	Name() string
	Run(procs []Process, params Params) *Result
}

// Registered algorithm keys.
const (
	AlgorithmFCFS       = "fcfs"
	AlgorithmSJF        = "sjf"
	AlgorithmPriorityRR = "priority_rr"
	AlgorithmMLFQ       = "mlfq"
)

// ErrUnsupportedAlgorithm is returned (wrapped) for any key not in ValidAlgorithms.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// ValidAlgorithms is the set of recognized algorithm keys.
// Shared by IsValidAlgorithm() and NewAlgorithm() to avoid duplication.
var ValidAlgorithms = map[string]bool{
	AlgorithmFCFS:       true,
	AlgorithmSJF:        true,
	AlgorithmPriorityRR: true,
	AlgorithmMLFQ:       true,
}

// algorithmLabels holds display names for reports and the HTTP listing.
var algorithmLabels = map[string]string{
	AlgorithmFCFS:       "First-Come-First-Served",
	AlgorithmSJF:        "Shortest-Job-First",
	AlgorithmPriorityRR: "Priority Round-Robin",
	AlgorithmMLFQ:       "Multi-Level Feedback Queue",
}

// AlgorithmNames lists the registered keys in a fixed presentation order.
func AlgorithmNames() []string {
	return []string{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriorityRR, AlgorithmMLFQ}
}

// AlgorithmLabel returns the display name for key, or key itself when unknown.
func AlgorithmLabel(key string) string {
	if label, ok := algorithmLabels[key]; ok {
		return label
	}
	return key
}

// IsValidAlgorithm returns true if name is a registered algorithm key.
func IsValidAlgorithm(name string) bool {
	return ValidAlgorithms[name]
}

// NewAlgorithm creates an Algorithm by key.
// Valid keys: "fcfs", "sjf", "priority_rr", "mlfq".
// Unknown keys return an error wrapping ErrUnsupportedAlgorithm.
func NewAlgorithm(name string) (Algorithm, error) {
	if !IsValidAlgorithm(name) {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnsupportedAlgorithm, name, strings.Join(AlgorithmNames(), ", "))
	}
	switch name {
	case AlgorithmFCFS:
		return &FCFS{}, nil
	case AlgorithmSJF:
		return &SJF{}, nil
	case AlgorithmPriorityRR:
		return &PriorityRR{}, nil
	case AlgorithmMLFQ:
		return &MLFQ{}, nil
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", name))
	}
}

// Simulate runs the named algorithm over procs. It fails only on an unknown
// algorithm key, before any run state is built.
func Simulate(name string, procs []Process, params Params) (*Result, error) {
	alg, err := NewAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return alg.Run(procs, params), nil
}

// fcfsLess orders by arrival time (ascending), then by ID (ascending) for determinism.
func fcfsLess(a, b *processState) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.index < b.index
}

// sjfLess orders by burst time (ascending, shortest first), then by arrival time,
// then by ID.
// Warning: SJF can starve long processes under sustained arrivals.
func sjfLess(a, b *processState) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return fcfsLess(a, b)
}

// priorityLess orders by aged priority (ascending: lower value = more urgent),
// then by arrival time, then by ID.
func priorityLess(a, b *processState) bool {
	if a.agedPriority != b.agedPriority {
		return a.agedPriority < b.agedPriority
	}
	return fcfsLess(a, b)
}
