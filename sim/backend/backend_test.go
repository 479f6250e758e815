package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.PanicLevel)
	}
	os.Exit(m.Run())
}

func defaultRequest(algorithm string) Request {
	return Request{
		Algorithm: algorithm,
		Processes: []sim.Process{
			{ID: "P1", Name: "P1", ArrivalTime: 0, BurstTime: 7, Priority: 8},
			{ID: "P2", Name: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 3},
			{ID: "P3", Name: "P3", ArrivalTime: 2, BurstTime: 6, Priority: 6},
		},
		Params: sim.DefaultParams(),
	}
}

// fakeBackend is a scriptable Backend.
type fakeBackend struct {
	name        string
	unavailable error
	failFor     map[string]bool
	calls       atomic.Int32
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Available(context.Context) error { return f.unavailable }

func (f *fakeBackend) Simulate(ctx context.Context, req Request) (*sim.Result, error) {
	f.calls.Add(1)
	if f.failFor[req.Algorithm] {
		return nil, errors.New("scripted failure")
	}
	return Local{}.Simulate(ctx, req)
}

func TestLocal_Simulate(t *testing.T) {
	res, err := Local{}.Simulate(context.Background(), defaultRequest(sim.AlgorithmFCFS))
	require.NoError(t, err)
	assert.Equal(t, int64(17), res.TotalTime)
	assert.NoError(t, Local{}.Available(context.Background()))
}

func TestLocal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Local{}.Simulate(ctx, defaultRequest(sim.AlgorithmFCFS))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelector_NoPreferred_RunsLocally(t *testing.T) {
	resp, err := NewSelector(nil).Run(context.Background(), defaultRequest(sim.AlgorithmSJF))
	require.NoError(t, err)
	assert.Equal(t, NameLocal, resp.Backend)
	assert.Equal(t, sim.AlgorithmSJF, resp.Result.Algorithm)
}

func TestSelector_PreferredAvailable_UsesIt(t *testing.T) {
	fake := &fakeBackend{name: "fake"}
	resp, err := NewSelector(fake).Run(context.Background(), defaultRequest(sim.AlgorithmMLFQ))
	require.NoError(t, err)
	assert.Equal(t, "fake", resp.Backend)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestSelector_PreferredUnavailable_FallsBack(t *testing.T) {
	fake := &fakeBackend{name: "fake", unavailable: ErrBackendUnavailable}
	resp, err := NewSelector(fake).Run(context.Background(), defaultRequest(sim.AlgorithmMLFQ))
	require.NoError(t, err)
	assert.Equal(t, NameLocal, resp.Backend)
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestSelector_PreferredFails_FallsBackWithSameResult(t *testing.T) {
	fake := &fakeBackend{name: "fake", failFor: map[string]bool{sim.AlgorithmPriorityRR: true}}
	resp, err := NewSelector(fake).Run(context.Background(), defaultRequest(sim.AlgorithmPriorityRR))
	require.NoError(t, err)
	assert.Equal(t, NameLocal, resp.Backend)

	direct, err := sim.Simulate(sim.AlgorithmPriorityRR, defaultRequest("").Processes, sim.DefaultParams())
	require.NoError(t, err)
	if diff := cmp.Diff(direct, resp.Result); diff != "" {
		t.Errorf("fallback result differs from direct run (-direct +fallback):\n%s", diff)
	}
}

func TestSelector_UnsupportedAlgorithm_NeverDelegated(t *testing.T) {
	fake := &fakeBackend{name: "fake"}
	resp, err := NewSelector(fake).Run(context.Background(), defaultRequest("lottery"))
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, sim.ErrUnsupportedAlgorithm)
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestSelector_Compare_ResultsInRequestOrder(t *testing.T) {
	names := []string{sim.AlgorithmMLFQ, sim.AlgorithmFCFS, sim.AlgorithmPriorityRR}

	cmpResult, err := NewSelector(nil).Compare(context.Background(), names, defaultRequest(""))
	require.NoError(t, err)

	assert.Equal(t, NameLocal, cmpResult.Backend)
	require.Len(t, cmpResult.Results, 3)
	for i, name := range names {
		assert.Equal(t, name, cmpResult.Results[i].Result.Algorithm)
	}
}

func TestSelector_Compare_MixedBackends(t *testing.T) {
	fake := &fakeBackend{name: "fake", failFor: map[string]bool{sim.AlgorithmSJF: true}}

	cmpResult, err := NewSelector(fake).Compare(context.Background(), sim.AlgorithmNames(), defaultRequest(""))
	require.NoError(t, err)

	assert.Equal(t, NameMixed, cmpResult.Backend)
	assert.Equal(t, NameLocal, cmpResult.Results[1].Backend)
	assert.Equal(t, "fake", cmpResult.Results[0].Backend)
}

func TestSelector_Compare_Rejects(t *testing.T) {
	s := NewSelector(nil)

	_, err := s.Compare(context.Background(), nil, defaultRequest(""))
	assert.Error(t, err)

	_, err = s.Compare(context.Background(), []string{sim.AlgorithmFCFS, "bogus"}, defaultRequest(""))
	assert.ErrorIs(t, err, sim.ErrUnsupportedAlgorithm)
}

// newFakeServer serves the two endpoints Remote uses.
func newFakeServer(t *testing.T, healthy bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/api/v1/simulate", func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad body"}`))
			return
		}
		res, err := sim.Simulate(req.Algorithm, req.Processes, req.Params)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(Response{Backend: NameLocal, Result: res})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemote_Simulate_RoundTripsResult(t *testing.T) {
	srv := newFakeServer(t, true)
	remote := NewRemote(srv.URL+"/", time.Second)

	require.NoError(t, remote.Available(context.Background()))
	got, err := remote.Simulate(context.Background(), defaultRequest(sim.AlgorithmMLFQ))
	require.NoError(t, err)

	want, err := sim.Simulate(sim.AlgorithmMLFQ, defaultRequest("").Processes, sim.DefaultParams())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("remote result differs (-local +remote):\n%s", diff)
	}
}

func TestRemote_Unhealthy(t *testing.T) {
	srv := newFakeServer(t, false)
	err := NewRemote(srv.URL, 0).Available(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "503")
}

func TestRemote_ErrorBodySurfaced(t *testing.T) {
	srv := newFakeServer(t, true)
	_, err := NewRemote(srv.URL, 0).Simulate(context.Background(), defaultRequest("bogus"))
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "unsupported algorithm")
}

func TestRemote_Unreachable_SelectorFallsBack(t *testing.T) {
	srv := newFakeServer(t, true)
	url := srv.URL
	srv.Close()

	resp, err := NewSelector(NewRemote(url, time.Second)).Run(context.Background(), defaultRequest(sim.AlgorithmFCFS))
	require.NoError(t, err)
	assert.Equal(t, NameLocal, resp.Backend)
}

func TestSelector_RemoteHealthy_TaggedRemote(t *testing.T) {
	srv := newFakeServer(t, true)
	resp, err := NewSelector(NewRemote(srv.URL, time.Second)).Run(context.Background(), defaultRequest(sim.AlgorithmSJF))
	require.NoError(t, err)
	assert.Equal(t, NameRemote, resp.Backend)
}
