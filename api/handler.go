package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/backend"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/trace"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/workload"
)

// SimulateRequest is the body of POST /api/v1/simulate.
// Params fields left out of the body keep their sim.DefaultParams values;
// Trace attaches the decision trace.
type SimulateRequest struct {
	Algorithm string        `json:"algorithm"`
	Processes []sim.Process `json:"processes"`
	Params    *sim.Params   `json:"params,omitempty"`
	Trace     bool          `json:"trace,omitempty"`
}

// CompareRequest is the body of POST /api/v1/compare. An empty Algorithms list
// compares every registered algorithm.
type CompareRequest struct {
	Algorithms []string      `json:"algorithms"`
	Processes  []sim.Process `json:"processes"`
	Params     *sim.Params   `json:"params,omitempty"`
	Trace      bool          `json:"trace,omitempty"`
}

// AlgorithmInfo is one entry of GET /api/v1/algorithms.
type AlgorithmInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DefaultsResponse is the body of GET /api/v1/defaults.
type DefaultsResponse struct {
	Algorithm string        `json:"algorithm"`
	Params    sim.Params    `json:"params"`
	Processes []sim.Process `json:"processes"`
}

type SchedulerHandler interface {
	Health(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Defaults(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	SimulateAlgorithm(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	selector *backend.Selector
}

func NewSchedulerHandlerImpl(selector *backend.Selector) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{selector: selector}
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	names := sim.AlgorithmNames()
	out := make([]AlgorithmInfo, len(names))
	for i, name := range names {
		out[i] = AlgorithmInfo{Key: name, Label: sim.AlgorithmLabel(name)}
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Defaults(ctx *fiber.Ctx) error {
	return ctx.JSON(DefaultsResponse{
		Algorithm: sim.AlgorithmPriorityRR,
		Params:    sim.DefaultParams(),
		Processes: workload.DefaultProcesses(),
	})
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request := SimulateRequest{Params: defaultParams()}
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	return s.simulate(ctx, request)
}

// SimulateAlgorithm takes the algorithm from the path; any algorithm in the body is ignored.
func (s *SchedulerHandlerImpl) SimulateAlgorithm(ctx *fiber.Ctx) error {
	request := SimulateRequest{Params: defaultParams()}
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	request.Algorithm = ctx.Params("algorithm")
	return s.simulate(ctx, request)
}

func (s *SchedulerHandlerImpl) simulate(ctx *fiber.Ctx, request SimulateRequest) error {
	if err := sim.ValidateProcesses(request.Processes); err != nil {
		return badRequest(ctx, err.Error())
	}
	response, err := s.selector.Run(ctx.UserContext(), backend.Request{
		Algorithm: request.Algorithm,
		Processes: request.Processes,
		Params:    resolveParams(request.Params, request.Trace),
	})
	if err != nil {
		return simulationError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	request := CompareRequest{Params: defaultParams()}
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if err := sim.ValidateProcesses(request.Processes); err != nil {
		return badRequest(ctx, err.Error())
	}
	algorithms := request.Algorithms
	if len(algorithms) == 0 {
		algorithms = sim.AlgorithmNames()
	}
	comparison, err := s.selector.Compare(ctx.UserContext(), algorithms, backend.Request{
		Processes: request.Processes,
		Params:    resolveParams(request.Params, request.Trace),
	})
	if err != nil {
		return simulationError(ctx, err)
	}
	return ctx.JSON(comparison)
}

// defaultParams seeds a request before decoding so a partial "params" object
// only overrides the fields it names.
func defaultParams() *sim.Params {
	p := sim.DefaultParams()
	return &p
}

func resolveParams(params *sim.Params, withTrace bool) sim.Params {
	p := sim.DefaultParams()
	if params != nil {
		p = *params
	}
	if withTrace {
		p.TraceLevel = string(trace.TraceLevelDecisions)
	}
	return p
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// simulationError maps engine errors to a status: unsupported algorithms are the
// caller's fault, anything else is ours.
func simulationError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, sim.ErrUnsupportedAlgorithm) {
		return badRequest(ctx, err.Error())
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
