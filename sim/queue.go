// Implements the FIFO ready queue used by each MLFQ level.
// Processes are enqueued on arrival or demotion and dispatched from the front.

package sim

import "strings"

// ReadyQueue is a FIFO queue of processes waiting for the CPU.
type ReadyQueue struct {
	queue []*processState
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(p *processState) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(p.ID)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *processState {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents in dispatch order.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (rq *ReadyQueue) Items() []*processState {
	return rq.queue
}

// Dequeue removes and returns the process at the front of the queue, or nil when empty.
func (rq *ReadyQueue) Dequeue() *processState {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return p
}

// dequeueHighest pops from the lowest-numbered non-empty queue.
// Returns (-1, nil) when every queue is empty.
func dequeueHighest(queues []*ReadyQueue) (int, *processState) {
	for level, q := range queues {
		if q.Len() > 0 {
			return level, q.Dequeue()
		}
	}
	return -1, nil
}

