// Shared per-run bookkeeping for all four algorithms: the clock, the admitted set,
// the timeline, snapshots and the optional decision trace. Algorithms only decide
// WHO runs and for HOW LONG; everything observable is produced here.

package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim/trace"
)

type recorder struct {
	algorithm string
	procs     []*processState // input order
	clock     int64
	admitted  []bool
	completed int

	timeline        []TimelineEntry
	snapshots       []Snapshot
	snapshotEntries []int // len(timeline) when each snapshot was taken

	trace          *trace.SimulationTrace
	priorityBefore int64
}

func newRecorder(algorithm string, procs []Process, params Params) *recorder {
	r := &recorder{
		algorithm: algorithm,
		procs:     newProcessStates(procs),
		admitted:  make([]bool, len(procs)),
		timeline:  make([]TimelineEntry, 0, len(procs)),
		snapshots: make([]Snapshot, 0, len(procs)),
	}
	if trace.TraceLevel(params.TraceLevel) == trace.TraceLevelDecisions {
		r.trace = trace.NewSimulationTrace(trace.TraceConfig{
			Level:     trace.TraceLevelDecisions,
			Algorithm: algorithm,
		})
	}
	return r
}

// done reports whether every process has finished.
func (r *recorder) done() bool {
	return r.completed == len(r.procs)
}

// admit hands every not-yet-admitted process with arrival_time <= clock to
// enqueue, in input order. Called before each decision and again after each
// slice, which admits exactly the arrivals in (start, end].
func (r *recorder) admit(enqueue func(*processState)) {
	for i, p := range r.procs {
		if !r.admitted[i] && p.arrived(r.clock) {
			r.admitted[i] = true
			enqueue(p)
		}
	}
}

// idle advances the clock to the next arrival among unfinished processes.
// The observable result is identical to repeated one-tick idle steps.
func (r *recorder) idle() {
	next := int64(math.MaxInt64)
	for _, p := range r.procs {
		if !p.finished && p.ArrivalTime > r.clock && p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	if next == math.MaxInt64 {
		// nothing left to arrive; fall back to a single idle tick
		next = r.clock + 1
	}
	r.idleUntil(next)
}

// idleUntil moves the clock forward to t without recording a timeline entry.
func (r *recorder) idleUntil(t int64) {
	if t <= r.clock {
		return
	}
	logrus.Debugf("[tick %07d] %s: cpu idle until %d", r.clock, r.algorithm, t)
	if r.trace != nil {
		r.trace.RecordIdle(trace.IdleRecord{From: r.clock, To: t})
	}
	r.clock = t
}

// slice dispatches p at the current clock for at most quantum ticks, appends the
// timeline entry and advances the clock.
func (r *recorder) slice(p *processState, level int, quantum int64) {
	start := r.clock
	r.priorityBefore = p.agedPriority
	ran := p.execute(start, quantum)
	r.clock = start + ran
	if p.finished {
		r.completed++
	}
	r.timeline = append(r.timeline, TimelineEntry{
		Start:       start,
		End:         r.clock,
		ProcessID:   p.ID,
		ProcessName: p.Name,
		QueueLevel:  level,
	})
	logrus.Debugf("[tick %07d] %s: dispatch %s level=%d ran=%d remaining=%d",
		start, r.algorithm, p.ID, level, ran, p.remaining)
}

// snapshot records the system state after the current decision completes:
// running is the process that just ran, queues the ready queues in dispatch order.
func (r *recorder) snapshot(running *processState, queues ...[]*processState) {
	ready := make([][]string, len(queues))
	depth := 0
	for level, q := range queues {
		ready[level] = make([]string, len(q))
		for i, p := range q {
			ready[level][i] = p.ID
		}
		depth += len(q)
	}

	views := make([]ProcessView, len(r.procs))
	for i, p := range r.procs {
		views[i] = ProcessView{
			ID:            p.ID,
			Name:          p.Name,
			State:         p.tag(r.clock, running.ID),
			RemainingTime: p.remaining,
			UsedCPUTime:   p.used,
			Priority:      p.agedPriority,
			QueueLevel:    p.level,
		}
	}

	r.snapshots = append(r.snapshots, Snapshot{
		Time:        r.clock,
		Running:     running.ID,
		ReadyQueues: ready,
		Processes:   views,
	})
	r.snapshotEntries = append(r.snapshotEntries, len(r.timeline))

	if r.trace != nil {
		last := r.timeline[len(r.timeline)-1]
		outcome := trace.OutcomeRequeued
		switch {
		case running.finished:
			outcome = trace.OutcomeFinished
		case running.level > last.QueueLevel:
			outcome = trace.OutcomeDemoted
		}
		r.trace.RecordDispatch(trace.DispatchRecord{
			ProcessID:      running.ID,
			Start:          last.Start,
			End:            last.End,
			QueueLevel:     last.QueueLevel,
			NextLevel:      running.level,
			Remaining:      running.remaining,
			PriorityBefore: r.priorityBefore,
			PriorityAfter:  running.agedPriority,
			ReadyDepth:     depth,
			Outcome:        outcome,
		})
	}
}

// finalize derives events and metrics and hands the caller an owned Result.
func (r *recorder) finalize() *Result {
	events := deriveEvents(r.timeline)
	for i := range r.snapshots {
		n := r.snapshotEntries[i]
		r.snapshots[i].Events = append(make([]Event, 0, n), events[:n]...)
	}

	res := &Result{
		Algorithm: r.algorithm,
		Timeline:  r.timeline,
		Snapshots: r.snapshots,
		Events:    events,
		Metrics:   buildMetrics(r.procs, r.clock),
		TotalTime: r.clock, // the clock only idles before a dispatch, so this is the last entry's end
		Trace:     r.trace,
	}
	res.aggregate()

	logrus.Debugf("[tick %07d] %s: simulation ended, %d slices, avg turnaround %.2f",
		res.TotalTime, r.algorithm, len(res.Timeline), res.AverageTurnaroundTime)
	return res
}
