package sim

import (
	"container/heap"
	"sort"
)

// PriorityQueue is the Priority-RR ready structure: a binary heap ordered by
// aged priority → arrival time → process ID → input position.
// Lower priority values are dispatched first.
type PriorityQueue struct {
	items []*processState
}

// NewPriorityQueue creates an empty priority ready queue.
func NewPriorityQueue() *PriorityQueue {
	pq := &PriorityQueue{
		items: make([]*processState, 0),
	}
	heap.Init(pq)
	return pq
}

// Len implements heap.Interface
func (pq *PriorityQueue) Len() int {
	return len(pq.items)
}

// Less implements heap.Interface with deterministic ordering
func (pq *PriorityQueue) Less(i, j int) bool {
	return priorityLess(pq.items[i], pq.items[j])
}

// Swap implements heap.Interface
func (pq *PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push implements heap.Interface
func (pq *PriorityQueue) Push(x interface{}) {
	pq.items = append(pq.items, x.(*processState))
}

// Pop implements heap.Interface
func (pq *PriorityQueue) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[0 : n-1]
	return item
}

// Schedule adds a process to the queue.
func (pq *PriorityQueue) Schedule(p *processState) {
	heap.Push(pq, p)
}

// PopNext removes and returns the most urgent process, or nil when empty.
func (pq *PriorityQueue) PopNext() *processState {
	if pq.Len() == 0 {
		return nil
	}
	return heap.Pop(pq).(*processState)
}

// Peek returns the most urgent process without removing it.
func (pq *PriorityQueue) Peek() *processState {
	if pq.Len() == 0 {
		return nil
	}
	return pq.items[0]
}

// Ordered returns the queued processes in the order they would be dispatched
// if nothing else changed. The heap itself is untouched.
func (pq *PriorityQueue) Ordered() []*processState {
	out := append([]*processState(nil), pq.items...)
	sort.Slice(out, func(i, j int) bool { return priorityLess(out[i], out[j]) })
	return out
}
