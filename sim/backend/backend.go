// Package backend decides where a simulation runs. Local runs in-process;
// Remote delegates to another cpu-sched-sim server over HTTP. A Selector tries
// its preferred backend and falls back to Local on any failure, tagging every
// Response with the backend that produced it.
package backend

import (
	"context"
	"errors"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

// Backend tags reported in Response.Backend.
const (
	NameLocal  = "local"
	NameRemote = "remote"
	NameMixed  = "mixed" // a comparison whose runs came from different backends
)

// ErrBackendUnavailable is wrapped by Available and Simulate when a backend
// cannot be reached or refuses the request.
var ErrBackendUnavailable = errors.New("backend unavailable")

// Request is one simulation job.
type Request struct {
	Algorithm string        `json:"algorithm"`
	Processes []sim.Process `json:"processes"`
	Params    sim.Params    `json:"params"`
}

// Response pairs a Result with the backend that computed it.
type Response struct {
	Backend string      `json:"backend"`
	Result  *sim.Result `json:"result"`
}

// Backend computes simulation results.
type Backend interface {
	Name() string
	// Available reports whether the backend can currently accept work.
	Available(ctx context.Context) error
	Simulate(ctx context.Context, req Request) (*sim.Result, error)
}

// Local runs the engine in-process. It is always available.
type Local struct{}

func (Local) Name() string { return NameLocal }

func (Local) Available(ctx context.Context) error { return ctx.Err() }

func (Local) Simulate(ctx context.Context, req Request) (*sim.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sim.Simulate(req.Algorithm, req.Processes, req.Params)
}
