// Defines the Process descriptor consumed by every algorithm and the private
// per-run state the engine mutates while simulating it.

package sim

import (
	"errors"
	"fmt"
)

// Process is the static, caller-owned description of one schedulable process.
// Lower Priority values are more urgent; Priority is only read by Priority-RR.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int64  `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int64  `json:"burst_time" yaml:"burst_time"`
	Priority    int64  `json:"priority" yaml:"priority"`
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, Arrival: %d, Burst: %d, Priority: %d)", p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// ErrInvalidProcess is wrapped by ValidateProcesses for every rejected descriptor.
var ErrInvalidProcess = errors.New("invalid process")

// ValidateProcesses checks the descriptor invariants the engine relies on:
// non-empty unique IDs, arrival_time >= 0 and burst_time > 0.
// The engine itself never fails on bad descriptors; loaders and the API call this first.
func ValidateProcesses(procs []Process) error {
	seen := make(map[string]int, len(procs))
	for i, p := range procs {
		if p.ID == "" {
			return fmt.Errorf("%w: process at index %d has an empty id", ErrInvalidProcess, i)
		}
		if j, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q at indexes %d and %d", ErrInvalidProcess, p.ID, j, i)
		}
		seen[p.ID] = i
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: %q has negative arrival_time %d", ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: %q has non-positive burst_time %d", ErrInvalidProcess, p.ID, p.BurstTime)
		}
	}
	return nil
}

// StateTag is the one-letter process state shown in a Snapshot.
type StateTag string

const (
	StateFinished  StateTag = "F"
	StateExecuting StateTag = "E"
	StateReady     StateTag = "R"
	StateWaiting   StateTag = "W"
)

// processState is the engine's private copy of a Process for the duration of one run.
// Invariant: used + remaining == max(0, BurstTime) after every slice.
type processState struct {
	Process
	index int // position in the caller's slice; last-resort tie-break

	remaining int64
	used      int64

	start    int64
	started  bool
	finish   int64
	finished bool

	agedPriority int64 // Priority plus accumulated aging; only Priority-RR changes it
	level        int   // current feedback queue level; 0 outside MLFQ
}

// newProcessStates clones the caller's descriptors into fresh run state.
func newProcessStates(procs []Process) []*processState {
	states := make([]*processState, len(procs))
	for i, p := range procs {
		burst := max(p.BurstTime, 0)
		// a zero-burst process finishes the moment it is dispatched
		states[i] = &processState{
			Process:      p,
			index:        i,
			remaining:    burst,
			agedPriority: p.Priority,
		}
	}
	return states
}

func (p *processState) arrived(clock int64) bool {
	return p.ArrivalTime <= clock
}

// execute runs the process for at most quantum ticks starting at clock and
// returns how long it actually ran.
func (p *processState) execute(clock, quantum int64) int64 {
	if !p.started {
		p.started = true
		p.start = clock
	}
	runFor := min(max(quantum, 0), p.remaining)
	p.remaining -= runFor
	p.used += runFor
	if p.remaining == 0 {
		p.finished = true
		p.finish = clock + runFor
	}
	return runFor
}

// tag reports the snapshot state of p at clock, given the ID of the process that just ran.
func (p *processState) tag(clock int64, running string) StateTag {
	switch {
	case p.finished:
		return StateFinished
	case p.ID == running:
		return StateExecuting
	case p.arrived(clock):
		return StateReady
	default:
		return StateWaiting
	}
}
