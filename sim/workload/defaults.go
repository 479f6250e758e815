package workload

import (
	"github.com/google/uuid"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

// Defaults applied by NewProcess to fields the caller leaves at zero.
const (
	DefaultArrivalTime int64 = 0
	DefaultBurstTime   int64 = 5
	DefaultPriority    int64 = 10
)

// DefaultProcesses returns the three-process set used when no input is given.
func DefaultProcesses() []sim.Process {
	return []sim.Process{
		{ID: "P1", Name: "P1", ArrivalTime: 0, BurstTime: 7, Priority: 8},
		{ID: "P2", Name: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 3},
		{ID: "P3", Name: "P3", ArrivalTime: 2, BurstTime: 6, Priority: 6},
	}
}

// NewProcess fills in a partially specified process: a random 8-character ID,
// a name derived from it, burst DefaultBurstTime and priority DefaultPriority.
// Arrival time defaults to 0, which is already the zero value.
func NewProcess(partial sim.Process) sim.Process {
	p := partial
	if p.ID == "" {
		p.ID = uuid.New().String()[:8]
	}
	if p.Name == "" {
		p.Name = "P" + p.ID[:min(4, len(p.ID))]
	}
	if p.BurstTime <= 0 {
		p.BurstTime = DefaultBurstTime
	}
	if p.Priority == 0 {
		p.Priority = DefaultPriority
	}
	if p.ArrivalTime < 0 {
		p.ArrivalTime = DefaultArrivalTime
	}
	return p
}
