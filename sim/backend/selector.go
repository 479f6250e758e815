package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

// Selector routes requests to a preferred backend with local fallback.
type Selector struct {
	preferred Backend // nil means local only
	local     Backend
}

// NewSelector creates a Selector. preferred may be nil.
func NewSelector(preferred Backend) *Selector {
	return &Selector{preferred: preferred, local: Local{}}
}

// Run validates the algorithm, then runs req on the preferred backend when it is
// available, falling back to the local engine on any preferred-backend failure.
// An unsupported algorithm is returned immediately and never delegated.
func (s *Selector) Run(ctx context.Context, req Request) (*Response, error) {
	if !sim.IsValidAlgorithm(req.Algorithm) {
		_, err := sim.NewAlgorithm(req.Algorithm)
		return nil, err
	}

	if s.preferred != nil {
		if err := s.preferred.Available(ctx); err != nil {
			logrus.Warnf("%s backend not available, falling back to %s: %v", s.preferred.Name(), s.local.Name(), err)
		} else if res, err := s.preferred.Simulate(ctx, req); err != nil {
			logrus.Warnf("%s backend failed for %s, falling back to %s: %v", s.preferred.Name(), req.Algorithm, s.local.Name(), err)
		} else {
			return &Response{Backend: s.preferred.Name(), Result: res}, nil
		}
	}

	res, err := s.local.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Response{Backend: s.local.Name(), Result: res}, nil
}

// Comparison is the outcome of running several algorithms on one input.
type Comparison struct {
	// Backend is the shared backend tag, or NameMixed when runs differ.
	Backend string `json:"backend"`
	// Results holds one entry per requested algorithm, in request order.
	Results []Response `json:"results"`
}

// Compare runs every named algorithm over the same processes and params
// concurrently. All names are validated before any run starts.
func (s *Selector) Compare(ctx context.Context, algorithms []string, req Request) (*Comparison, error) {
	if len(algorithms) == 0 {
		return nil, fmt.Errorf("compare: no algorithms given")
	}
	for _, name := range algorithms {
		if _, err := sim.NewAlgorithm(name); err != nil {
			return nil, err
		}
	}

	results := make([]Response, len(algorithms))
	errs := make([]error, len(algorithms))
	var wg sync.WaitGroup
	for i, name := range algorithms {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			r := req
			r.Algorithm = name
			resp, err := s.Run(ctx, r)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
				return
			}
			results[i] = *resp
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	tag := results[0].Backend
	for _, r := range results[1:] {
		if r.Backend != tag {
			tag = NameMixed
			break
		}
	}
	logrus.Debugf("compared %d algorithms on %s backend", len(algorithms), tag)
	return &Comparison{Backend: tag, Results: results}, nil
}
