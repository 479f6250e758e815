package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions, Algorithm: "mlfq"})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		ProcessID:  "P1",
		Start:      0,
		End:        2,
		QueueLevel: 0,
		NextLevel:  1,
		Remaining:  3,
		Outcome:    OutcomeDemoted,
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P1" {
		t.Errorf("expected process ID P1, got %s", st.Dispatches[0].ProcessID)
	}
	if st.Dispatches[0].Outcome != OutcomeDemoted {
		t.Errorf("expected outcome demoted, got %s", st.Dispatches[0].Outcome)
	}
}

func TestSimulationTrace_RecordIdle_AppendsRecord(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	st.RecordIdle(IdleRecord{From: 0, To: 5})

	if len(st.Idles) != 1 {
		t.Fatalf("expected 1 idle gap, got %d", len(st.Idles))
	}
	if st.Idles[0].To-st.Idles[0].From != 5 {
		t.Errorf("expected idle gap of 5 ticks, got %d", st.Idles[0].To-st.Idles[0].From)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{ProcessID: "P1", Start: 0, End: 2, Outcome: OutcomeRequeued})
	st.RecordDispatch(DispatchRecord{ProcessID: "P2", Start: 2, End: 4, Outcome: OutcomeFinished})
	st.RecordDispatch(DispatchRecord{ProcessID: "P1", Start: 4, End: 5, Outcome: OutcomeFinished})

	// THEN order is preserved
	want := []string{"P1", "P2", "P1"}
	for i, id := range want {
		if st.Dispatches[i].ProcessID != id {
			t.Errorf("dispatch %d: expected %s, got %s", i, id, st.Dispatches[i].ProcessID)
		}
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true},
		{"verbose", false},
		{"DECISIONS", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}
