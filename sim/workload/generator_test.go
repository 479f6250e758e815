package workload

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

func TestGenerate_Deterministic(t *testing.T) {
	spec := GeneratorSpec{Count: 20, Seed: 99}

	a, err := Generate(spec)
	require.NoError(t, err)
	b, err := Generate(spec)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different lists (-a +b):\n%s", diff)
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(GeneratorSpec{Count: 20, Seed: 1})
	require.NoError(t, err)
	b, err := Generate(GeneratorSpec{Count: 20, Seed: 2})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_RespectsRangesAndOrdering(t *testing.T) {
	spec := GeneratorSpec{
		Count:    200,
		Seed:     7,
		Arrival:  &Range{Min: 5, Max: 50},
		Burst:    &Range{Min: 2, Max: 3},
		Priority: &Range{Min: 0, Max: 4},
	}

	procs, err := Generate(spec)
	require.NoError(t, err)
	require.Len(t, procs, 200)
	require.NoError(t, sim.ValidateProcesses(procs))

	for i, p := range procs {
		assert.Equal(t, fmt.Sprintf("P%d", i+1), p.ID)
		assert.Equal(t, p.ID, p.Name)
		assert.GreaterOrEqual(t, p.ArrivalTime, int64(5))
		assert.LessOrEqual(t, p.ArrivalTime, int64(50))
		assert.Contains(t, []int64{2, 3}, p.BurstTime)
		assert.GreaterOrEqual(t, p.Priority, int64(0))
		assert.LessOrEqual(t, p.Priority, int64(4))
		if i > 0 {
			assert.LessOrEqual(t, procs[i-1].ArrivalTime, p.ArrivalTime)
		}
	}
}

func TestGenerate_BurstRangeChange_DoesNotPerturbPriorities(t *testing.T) {
	// GIVEN a fixed arrival range and two different burst ranges
	// (equal arrivals keep generation order)
	base := GeneratorSpec{Count: 30, Seed: 5, Arrival: &Range{Min: 3, Max: 3}, Priority: &Range{Min: 1, Max: 9}}
	wide := base
	wide.Burst = &Range{Min: 1, Max: 100}

	a, err := Generate(base)
	require.NoError(t, err)
	b, err := Generate(wide)
	require.NoError(t, err)

	// THEN priorities are identical; bursts come from an isolated stream
	for i := range a {
		assert.Equal(t, a[i].Priority, b[i].Priority, "index %d", i)
	}
}

func TestGeneratorSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    GeneratorSpec
		wantErr string
	}{
		{name: "defaults", spec: DefaultGeneratorSpec()},
		{name: "zero count", spec: GeneratorSpec{}, wantErr: "count"},
		{name: "too many", spec: GeneratorSpec{Count: MaxGeneratedProcesses + 1}, wantErr: "count"},
		{name: "inverted", spec: GeneratorSpec{Count: 1, Burst: &Range{Min: 5, Max: 2}}, wantErr: "burst range"},
		{name: "zero burst", spec: GeneratorSpec{Count: 1, Burst: &Range{Min: 0, Max: 2}}, wantErr: "burst range"},
		{name: "negative arrival", spec: GeneratorSpec{Count: 1, Arrival: &Range{Min: -1, Max: 2}}, wantErr: "arrival range"},
		{name: "max beyond limit", spec: GeneratorSpec{Count: 1, Arrival: &Range{Min: 0, Max: math.MaxInt64}}, wantErr: "arrival range: max"},
		{name: "max at limit", spec: GeneratorSpec{Count: 1, Burst: &Range{Min: 1, Max: MaxRangeValue}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestGenerate_ExplicitZeroRange_IsConstant(t *testing.T) {
	// GIVEN an arrival range pinned to {0, 0}
	spec := GeneratorSpec{Count: 25, Seed: 3, Arrival: &Range{Min: 0, Max: 0}}

	procs, err := Generate(spec)
	require.NoError(t, err)

	// THEN every process arrives at 0 instead of falling back to the default range
	for _, p := range procs {
		assert.Equal(t, int64(0), p.ArrivalTime, p.ID)
	}
}

func TestGenerate_WidestAllowedRange_DoesNotPanic(t *testing.T) {
	spec := GeneratorSpec{Count: 50, Seed: 8, Burst: &Range{Min: 1, Max: MaxRangeValue}}

	procs, err := Generate(spec)
	require.NoError(t, err)
	for _, p := range procs {
		assert.GreaterOrEqual(t, p.BurstTime, int64(1))
		assert.LessOrEqual(t, p.BurstTime, MaxRangeValue)
	}
}

func TestGenerate_RejectsOverflowingRange(t *testing.T) {
	_, err := Generate(GeneratorSpec{Count: 1, Priority: &Range{Min: 0, Max: math.MaxInt64}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority range: max")
}
