// Package testutil provides shared test infrastructure for the scheduling
// simulator: the golden dataset types and assertion helpers used across sim/
// and its sub-packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenProcess mirrors sim.Process without importing sim, so that sim's own
// tests can depend on this package.
type GoldenProcess struct {
	ID          string `json:"id"`
	ArrivalTime int64  `json:"arrival_time"`
	BurstTime   int64  `json:"burst_time"`
	Priority    int64  `json:"priority"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name         string          `json:"name"`
	Algorithm    string          `json:"algorithm"`
	Quantum      int64           `json:"quantum"`
	PriorityStep int64           `json:"priority_step"`
	BaseQuantum  int64           `json:"base_quantum"`
	Levels       int             `json:"levels"`
	Processes    []GoldenProcess `json:"processes"`
	Metrics      GoldenMetrics   `json:"metrics"`
}

// GoldenMetrics represents the expected outcome of a golden test case.
type GoldenMetrics struct {
	// Exact match: "ID start-end" per timeline entry
	Timeline    []string `json:"timeline"`
	Turnarounds []int64  `json:"turnarounds"`
	TotalTime   int64    `json:"total_time"`
	IdleTime    int64    `json:"idle_time"`

	// Derived floating-point metrics
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	CPUUtilization        float64 `json:"cpu_utilization"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
