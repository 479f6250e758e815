package sim

import "github.com/cpu-sched-sim/cpu-sched-sim/sim/trace"

// TimelineEntry is a half-open CPU occupancy interval [Start, End) for one process.
type TimelineEntry struct {
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	ProcessID   string `json:"process_id"`
	ProcessName string `json:"process_name"`
	QueueLevel  int    `json:"queue_level"` // level the slice ran at; 0 outside MLFQ
}

// ProcessView is one process as seen in a Snapshot.
type ProcessView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	State         StateTag `json:"state"`
	RemainingTime int64    `json:"remaining_time"`
	UsedCPUTime   int64    `json:"used_cpu_time"`
	Priority      int64    `json:"priority"` // aged priority for Priority-RR
	QueueLevel    int      `json:"queue_level"`
}

// Snapshot reconstructs the whole system right after one dispatch decision completes.
// Events holds the events derived from the timeline up to and including this
// snapshot's slice as its own copy, so the last snapshot carries the full list.
type Snapshot struct {
	Time        int64         `json:"time"`
	Running     string        `json:"running"`
	ReadyQueues [][]string    `json:"ready_queues"`
	Processes   []ProcessView `json:"processes"`
	Events      []Event       `json:"events"`
}

// Result is the complete, caller-owned output of one simulation run.
type Result struct {
	Algorithm                     string                 `json:"algorithm"`
	Timeline                      []TimelineEntry        `json:"timeline"`
	Snapshots                     []Snapshot             `json:"snapshots"`
	Events                        []Event                `json:"events"`
	Metrics                       []ProcessMetric        `json:"metrics"`
	AverageTurnaroundTime         float64                `json:"average_turnaround_time"`
	AverageWeightedTurnaroundTime float64                `json:"average_weighted_turnaround_time"`
	AverageResponseTime           float64                `json:"average_response_time"`
	AverageWaitingTime            float64                `json:"average_waiting_time"`
	Throughput                    float64                `json:"throughput"`
	CPUUtilization                float64                `json:"cpu_utilization"`
	IdleTime                      int64                  `json:"idle_time"`
	TotalTime                     int64                  `json:"total_time"`
	Trace                         *trace.SimulationTrace `json:"trace,omitempty"`
}

// FinishOrder returns process IDs ordered by finish time (ties by timeline order).
func (r *Result) FinishOrder() []string {
	order := make([]string, 0, len(r.Metrics))
	done := make(map[string]bool, len(r.Metrics))
	finish := make(map[string]int64, len(r.Metrics))
	for _, m := range r.Metrics {
		finish[m.ID] = m.FinishTime
	}
	for _, entry := range r.Timeline {
		if entry.End == finish[entry.ProcessID] && !done[entry.ProcessID] {
			done[entry.ProcessID] = true
			order = append(order, entry.ProcessID)
		}
	}
	return order
}
