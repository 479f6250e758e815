package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMetrics_FinishedProcess(t *testing.T) {
	// GIVEN a process that arrived at 2, started at 5 and finished at 11 with burst 4
	p := &processState{Process: Process{ID: "x", Name: "X", ArrivalTime: 2, BurstTime: 4}, remaining: 4}
	p.execute(5, 2)
	p.execute(9, 2)

	metrics := buildMetrics([]*processState{p}, 20)

	require.Len(t, metrics, 1)
	assert.Equal(t, ProcessMetric{
		ID:                     "x",
		Name:                   "X",
		StartTime:              5,
		FinishTime:             11,
		TurnaroundTime:         9,
		WeightedTurnaroundTime: 2.25,
		ResponseTime:           3,
		WaitingTime:            5,
	}, metrics[0])
}

func TestBuildMetrics_NeverStarted_FallsBackToTotalTime(t *testing.T) {
	p := &processState{Process: Process{ID: "ghost", ArrivalTime: 4, BurstTime: 2}, remaining: 2}

	m := buildMetrics([]*processState{p}, 10)[0]

	assert.Equal(t, int64(0), m.StartTime)
	assert.Equal(t, int64(10), m.FinishTime)
	assert.Equal(t, int64(6), m.TurnaroundTime)
	assert.Equal(t, int64(0), m.ResponseTime)
}

func TestBuildMetrics_ZeroBurst_WeightedTurnaroundIsZero(t *testing.T) {
	p := &processState{Process: Process{ID: "z"}}
	p.execute(3, 1)

	m := buildMetrics([]*processState{p}, 3)[0]

	assert.Equal(t, 0.0, m.WeightedTurnaroundTime)
	assert.Equal(t, int64(3), m.FinishTime)
}

func TestResultAggregate_RatesAndIdle(t *testing.T) {
	r := &Result{
		Timeline: []TimelineEntry{{Start: 0, End: 2, ProcessID: "a"}, {Start: 6, End: 8, ProcessID: "b"}},
		Metrics: []ProcessMetric{
			{ID: "a", TurnaroundTime: 2, WeightedTurnaroundTime: 1, ResponseTime: 0, WaitingTime: 0},
			{ID: "b", TurnaroundTime: 4, WeightedTurnaroundTime: 2, ResponseTime: 2, WaitingTime: 2},
		},
		TotalTime: 8,
	}

	r.aggregate()

	assert.InDelta(t, 3.0, r.AverageTurnaroundTime, 1e-9)
	assert.InDelta(t, 1.5, r.AverageWeightedTurnaroundTime, 1e-9)
	assert.InDelta(t, 1.0, r.AverageResponseTime, 1e-9)
	assert.InDelta(t, 1.0, r.AverageWaitingTime, 1e-9)
	assert.Equal(t, int64(4), r.IdleTime)
	assert.InDelta(t, 0.25, r.Throughput, 1e-9)
	assert.InDelta(t, 0.5, r.CPUUtilization, 1e-9)
}

func TestResultAggregate_ZeroTotalTime_ZeroRates(t *testing.T) {
	r := &Result{Metrics: []ProcessMetric{}}
	r.aggregate()
	assert.Zero(t, r.Throughput)
	assert.Zero(t, r.CPUUtilization)
	assert.Zero(t, r.IdleTime)
}
