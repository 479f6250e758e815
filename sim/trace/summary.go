package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int
	FinishedCount        int
	RequeuedCount        int
	DemotedCount         int
	IdleGaps             int
	IdleTicks            int64
	MaxSlice             int64
	MeanSlice            float64
	DispatchDistribution map[string]int // process ID → number of slices it received
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	var totalSlice int64
	for _, d := range st.Dispatches {
		switch d.Outcome {
		case OutcomeFinished:
			summary.FinishedCount++
		case OutcomeRequeued:
			summary.RequeuedCount++
		case OutcomeDemoted:
			summary.DemotedCount++
		}
		summary.DispatchDistribution[d.ProcessID]++
		length := d.End - d.Start
		totalSlice += length
		if length > summary.MaxSlice {
			summary.MaxSlice = length
		}
	}
	if len(st.Dispatches) > 0 {
		summary.MeanSlice = float64(totalSlice) / float64(len(st.Dispatches))
	}

	summary.IdleGaps = len(st.Idles)
	for _, idle := range st.Idles {
		summary.IdleTicks += idle.To - idle.From
	}

	return summary
}
