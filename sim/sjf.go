package sim

import "sort"

// SJF is non-preemptive Shortest-Job-First with known burst times: at every
// decision point the shortest arrived process runs to completion.
type SJF struct{}

func (s *SJF) Name() string { return AlgorithmSJF }

func (s *SJF) Run(procs []Process, params Params) *Result {
	r := newRecorder(AlgorithmSJF, procs, params.Normalize())

	for !r.done() {
		ready := make([]*processState, 0, len(r.procs))
		for _, p := range r.procs {
			if !p.finished && p.arrived(r.clock) {
				ready = append(ready, p)
			}
		}
		if len(ready) == 0 {
			r.idle()
			continue
		}

		sort.SliceStable(ready, func(i, j int) bool { return sjfLess(ready[i], ready[j]) })
		next := ready[0]
		r.slice(next, 0, next.remaining)
		// the queue shown is what was waiting at the decision point
		r.snapshot(next, ready[1:])
	}
	return r.finalize()
}
