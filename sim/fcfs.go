package sim

import "sort"

// FCFS runs processes to completion in (arrival_time, id) order.
// Each process produces exactly one timeline entry and one snapshot.
type FCFS struct{}

func (f *FCFS) Name() string { return AlgorithmFCFS }

func (f *FCFS) Run(procs []Process, params Params) *Result {
	r := newRecorder(AlgorithmFCFS, procs, params.Normalize())

	order := append([]*processState(nil), r.procs...)
	sort.SliceStable(order, func(i, j int) bool { return fcfsLess(order[i], order[j]) })

	for _, p := range order {
		if r.clock < p.ArrivalTime {
			r.idleUntil(p.ArrivalTime)
		}
		r.slice(p, 0, p.remaining)

		// everything that has arrived by now and still has work, in FCFS order
		ready := make([]*processState, 0, len(order))
		for _, q := range order {
			if !q.finished && q.arrived(r.clock) {
				ready = append(ready, q)
			}
		}
		r.snapshot(p, ready)
	}
	return r.finalize()
}
