// Per-process and run-wide performance metrics computed once a run finishes.

package sim

// ProcessMetric holds the timing outcome of one process.
type ProcessMetric struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	StartTime              int64   `json:"start_time"`
	FinishTime             int64   `json:"finish_time"`
	TurnaroundTime         int64   `json:"turnaround_time"`          // finish - arrival
	WeightedTurnaroundTime float64 `json:"weighted_turnaround_time"` // turnaround / burst, 0 when burst is 0
	ResponseTime           int64   `json:"response_time"`            // start - arrival
	WaitingTime            int64   `json:"waiting_time"`             // turnaround - burst
}

// buildMetrics computes one ProcessMetric per process, in input order.
// A process that never finished (impossible in a correct run) is treated as
// finishing at totalTime; one that never started reports start 0 and response 0.
func buildMetrics(procs []*processState, totalTime int64) []ProcessMetric {
	metrics := make([]ProcessMetric, len(procs))
	for i, p := range procs {
		finish := totalTime
		if p.finished {
			finish = p.finish
		}
		responseStart := p.ArrivalTime
		var start int64
		if p.started {
			start = p.start
			responseStart = p.start
		}
		turnaround := finish - p.ArrivalTime
		var weighted float64
		if p.BurstTime > 0 {
			weighted = float64(turnaround) / float64(p.BurstTime)
		}
		metrics[i] = ProcessMetric{
			ID:                     p.ID,
			Name:                   p.Name,
			StartTime:              start,
			FinishTime:             finish,
			TurnaroundTime:         turnaround,
			WeightedTurnaroundTime: weighted,
			ResponseTime:           responseStart - p.ArrivalTime,
			WaitingTime:            turnaround - max(p.BurstTime, 0),
		}
	}
	return metrics
}

// aggregate fills the run-wide averages and rates on r from its metrics and timeline.
func (r *Result) aggregate() {
	n := len(r.Metrics)
	turnarounds := make([]int64, n)
	weighted := make([]float64, n)
	responses := make([]int64, n)
	waits := make([]int64, n)
	for i, m := range r.Metrics {
		turnarounds[i] = m.TurnaroundTime
		weighted[i] = m.WeightedTurnaroundTime
		responses[i] = m.ResponseTime
		waits[i] = m.WaitingTime
	}
	r.AverageTurnaroundTime = CalculateMean(turnarounds)
	r.AverageWeightedTurnaroundTime = CalculateMean(weighted)
	r.AverageResponseTime = CalculateMean(responses)
	r.AverageWaitingTime = CalculateMean(waits)

	var busy int64
	for _, entry := range r.Timeline {
		busy += max(entry.End-entry.Start, 0)
	}
	r.IdleTime = max(r.TotalTime-busy, 0)
	if r.TotalTime > 0 {
		r.Throughput = float64(n) / float64(r.TotalTime)
		r.CPUUtilization = float64(busy) / float64(r.TotalTime)
	}
}
