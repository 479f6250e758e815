// Package trace provides decision-trace recording for scheduling runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Outcome describes what happened to a process at the end of its slice.
type Outcome string

const (
	OutcomeFinished Outcome = "finished" // remaining time reached zero
	OutcomeRequeued Outcome = "requeued" // back into the same ready queue (Priority-RR, bottom MLFQ level)
	OutcomeDemoted  Outcome = "demoted"  // moved one MLFQ level down
)

// DispatchRecord captures a single dispatch decision and its result.
type DispatchRecord struct {
	ProcessID      string  `json:"process_id"`
	Start          int64   `json:"start"`
	End            int64   `json:"end"`
	QueueLevel     int     `json:"queue_level"`
	NextLevel      int     `json:"next_level"`
	Remaining      int64   `json:"remaining"`
	PriorityBefore int64   `json:"priority_before"`
	PriorityAfter  int64   `json:"priority_after"` // differs from PriorityBefore only when aging applied
	ReadyDepth     int     `json:"ready_depth"`    // processes left waiting in all ready queues
	Outcome        Outcome `json:"outcome"`
}

// IdleRecord captures a gap in which no arrived process had work left.
type IdleRecord struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}
