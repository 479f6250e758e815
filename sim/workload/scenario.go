package workload

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

// Scenario is a complete simulation request stored on disk: which algorithm to
// run, its parameters, and either an explicit process list or a generator block.
// JSON files are accepted too, since JSON is a subset of YAML.
type Scenario struct {
	Version   string         `json:"version,omitempty" yaml:"version,omitempty"`
	Algorithm string         `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Params    *sim.Params    `json:"params,omitempty" yaml:"params,omitempty"`
	Processes []sim.Process  `json:"processes,omitempty" yaml:"processes,omitempty"`
	Generate  *GeneratorSpec `json:"generate,omitempty" yaml:"generate,omitempty"`
}

// LoadScenario reads and parses a YAML or JSON scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	// a partial params block only overrides the fields it names
	defaults := sim.DefaultParams()
	sc := Scenario{Params: &defaults}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the scenario is self-consistent. The process list itself is
// checked with sim.ValidateProcesses.
func (s *Scenario) Validate() error {
	if s.Algorithm != "" && !sim.IsValidAlgorithm(s.Algorithm) {
		return fmt.Errorf("%w: %q", sim.ErrUnsupportedAlgorithm, s.Algorithm)
	}
	if len(s.Processes) > 0 && s.Generate != nil {
		return errors.New("processes and generate are mutually exclusive")
	}
	if s.Generate != nil {
		if err := s.Generate.Validate(); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
	}
	return sim.ValidateProcesses(s.Processes)
}

// ResolveProcesses returns the scenario's process list: the explicit list when
// present, a generated one when a generator block is given, DefaultProcesses otherwise.
func (s *Scenario) ResolveProcesses() ([]sim.Process, error) {
	switch {
	case len(s.Processes) > 0:
		return append([]sim.Process(nil), s.Processes...), nil
	case s.Generate != nil:
		return Generate(*s.Generate)
	default:
		return DefaultProcesses(), nil
	}
}

// ResolveParams returns the scenario's params, or sim.DefaultParams when absent.
func (s *Scenario) ResolveParams() sim.Params {
	if s.Params == nil {
		return sim.DefaultParams()
	}
	return *s.Params
}
