package sim

import "fmt"

// threeProcesses is the canonical P1/P2/P3 set used across scenarios.
func threeProcesses() []Process {
	return []Process{
		{ID: "P1", Name: "P1", ArrivalTime: 0, BurstTime: 7, Priority: 8},
		{ID: "P2", Name: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 3},
		{ID: "P3", Name: "P3", ArrivalTime: 2, BurstTime: 6, Priority: 6},
	}
}

// spreadProcesses builds n processes with staggered arrivals, varied bursts and
// repeating priorities, including idle gaps. Deterministic for a given n.
func spreadProcesses(n int) []Process {
	procs := make([]Process, n)
	for i := 0; i < n; i++ {
		procs[i] = Process{
			ID:          fmt.Sprintf("p%02d", i),
			Name:        fmt.Sprintf("proc-%d", i),
			ArrivalTime: int64((i * 7) % 23),
			BurstTime:   int64(1 + (i*5)%9),
			Priority:    int64((i * 3) % 5),
		}
		if i%6 == 5 {
			procs[i].ArrivalTime += 40 // forces idle gaps
		}
	}
	return procs
}

func timelineSpans(r *Result) []string {
	spans := make([]string, len(r.Timeline))
	for i, e := range r.Timeline {
		spans[i] = fmt.Sprintf("%s %d-%d", e.ProcessID, e.Start, e.End)
	}
	return spans
}

func turnarounds(r *Result) []int64 {
	out := make([]int64, len(r.Metrics))
	for i, m := range r.Metrics {
		out[i] = m.TurnaroundTime
	}
	return out
}

func allAlgorithms(t interface{ Fatalf(string, ...any) }) []Algorithm {
	algs := make([]Algorithm, 0, len(AlgorithmNames()))
	for _, name := range AlgorithmNames() {
		alg, err := NewAlgorithm(name)
		if err != nil {
			t.Fatalf("NewAlgorithm(%q): %v", name, err)
		}
		algs = append(algs, alg)
	}
	return algs
}
