package sim

// PriorityRR is preemptive priority scheduling with a fixed quantum and aging:
// every time a process is requeued its priority value grows by PriorityStep, so
// processes that just ran lose ground to those still waiting. Growth is unbounded.
type PriorityRR struct{}

func (p *PriorityRR) Name() string { return AlgorithmPriorityRR }

func (p *PriorityRR) Run(procs []Process, params Params) *Result {
	params = params.Normalize()
	r := newRecorder(AlgorithmPriorityRR, procs, params)
	ready := NewPriorityQueue()

	for !r.done() {
		r.admit(ready.Schedule)
		if ready.Len() == 0 {
			r.idle()
			continue
		}

		current := ready.PopNext()
		// queue order as seen in snapshots: the processes left behind at this
		// decision in dispatch order, then everything enqueued after it
		waiting := ready.Ordered()
		enqueue := func(p *processState) {
			ready.Schedule(p)
			waiting = append(waiting, p)
		}

		r.slice(current, 0, params.Quantum)
		// arrivals during the slice are queued ahead of the requeue
		r.admit(enqueue)

		if !current.finished {
			current.agedPriority += params.PriorityStep
			enqueue(current)
		}
		r.snapshot(current, waiting)
	}
	return r.finalize()
}
