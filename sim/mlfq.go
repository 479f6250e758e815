package sim

// MLFQ is a multi-level feedback queue. Level 0 has the shortest quantum; a process
// that exhausts its quantum drops one level (never more, never back up). Arrivals
// always enter level 0. Within a level dispatch is FIFO.
type MLFQ struct{}

func (m *MLFQ) Name() string { return AlgorithmMLFQ }

func (m *MLFQ) Run(procs []Process, params Params) *Result {
	params = params.Normalize()
	quanta := params.LevelQuantums()
	r := newRecorder(AlgorithmMLFQ, procs, params)

	queues := make([]*ReadyQueue, len(quanta))
	for i := range queues {
		queues[i] = &ReadyQueue{}
	}
	last := len(queues) - 1

	for !r.done() {
		r.admit(queues[0].Enqueue)
		level, current := dequeueHighest(queues)
		if current == nil {
			r.idle()
			continue
		}

		current.level = level
		r.slice(current, level, quanta[level])
		r.admit(queues[0].Enqueue)

		if !current.finished {
			next := min(level+1, last)
			current.level = next
			queues[next].Enqueue(current)
		}

		levels := make([][]*processState, len(queues))
		for i, q := range queues {
			levels[i] = q.Items()
		}
		r.snapshot(current, levels...)
	}
	return r.finalize()
}
