// Package sim provides the deterministic CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - process.go: Process descriptors and the per-run mutable process state
//   - recorder.go: the shared clock, timeline, snapshot and trace bookkeeping, plus finalization into events and metrics
//   - result.go: the Result, Snapshot and TimelineEntry types returned by every run
//
// Then read the four algorithms, each a short loop over the recorder:
//   - fcfs.go: First-Come-First-Served (non-preemptive)
//   - sjf.go: Shortest-Job-First (non-preemptive, clairvoyant burst)
//   - priority_rr.go: Priority Round-Robin with aging
//   - mlfq.go: Multi-Level Feedback Queue with per-level quanta
//
// # Determinism
//
// Time is an int64 tick counter starting at 0. Every ordering decision has a total
// tie-break (ending in process ID, then input position), so two runs over the same
// input and Params produce identical Results. Runs never mutate the caller's slice.
//
// # Sub-packages
//   - sim/trace/: optional per-dispatch decision trace
//   - sim/workload/: default, random and file-based process lists
//   - sim/backend/: local/remote compute backend selection with fallback
//   - sim/report/: text and Markdown rendering of Results
package sim
