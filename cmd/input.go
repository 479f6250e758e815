package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/trace"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/workload"
)

// inputFlags are the process-list and parameter flags shared by run and compare.
type inputFlags struct {
	scenarioPath  string  // Scenario file (YAML/JSON)
	processesPath string  // Process list file (CSV/YAML/JSON)
	generateCount int     // Number of random processes to generate
	seed          int64   // Seed for random process generation
	quantum       int64   // Priority-RR quantum, MLFQ base quantum fallback
	priorityStep  int64   // Priority-RR aging step
	baseQuantum   int64   // MLFQ level-0 quantum
	levels        int     // MLFQ level count
	levelQuanta   []int64 // Explicit MLFQ per-level quanta
	trace         bool    // Attach the decision trace
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.scenarioPath, "scenario", "", "Scenario file (YAML or JSON) with algorithm, params and processes")
	fs.StringVar(&f.processesPath, "processes", "", "Process list file (.csv, .yaml, .yml or .json)")
	fs.IntVar(&f.generateCount, "generate", 0, "Generate N random processes instead of reading a file")
	fs.Int64Var(&f.seed, "seed", 42, "Seed for random process generation")
	fs.Int64Var(&f.quantum, "quantum", sim.DefaultQuantum, "Priority-RR time quantum (also the MLFQ base quantum unless --base-quantum is set)")
	fs.Int64Var(&f.priorityStep, "priority-step", sim.DefaultPriorityStep, "Priority-RR aging step added on every requeue")
	fs.Int64Var(&f.baseQuantum, "base-quantum", 0, "MLFQ level-0 quantum; doubles at every level")
	fs.IntVar(&f.levels, "levels", sim.DefaultLevels, "MLFQ queue levels")
	fs.Int64SliceVar(&f.levelQuanta, "level-quanta", nil, "Explicit comma-separated MLFQ quanta, one per level")
	fs.BoolVar(&f.trace, "trace", false, "Attach the per-dispatch decision trace to the result")
}

// resolvedInput is everything a simulation needs, after scenario and flag merging.
type resolvedInput struct {
	algorithm string // empty unless a scenario named one
	processes []sim.Process
	params    sim.Params
}

// resolve merges the scenario file (if any) with explicitly set flags. Flags
// win over the scenario only when the user actually passed them.
func (f *inputFlags) resolve(cmd *cobra.Command) (*resolvedInput, error) {
	flags := cmd.Flags()
	if f.processesPath != "" && flags.Changed("generate") {
		return nil, errors.New("--processes and --generate are mutually exclusive")
	}

	in := &resolvedInput{params: sim.DefaultParams()}
	var err error
	if f.scenarioPath != "" {
		sc, err := workload.LoadScenario(f.scenarioPath)
		if err != nil {
			return nil, err
		}
		in.algorithm = sc.Algorithm
		in.params = sc.ResolveParams()
		if in.processes, err = sc.ResolveProcesses(); err != nil {
			return nil, err
		}
	}

	switch {
	case f.processesPath != "":
		if in.processes, err = workload.LoadProcesses(f.processesPath); err != nil {
			return nil, err
		}
	case flags.Changed("generate"):
		spec := workload.DefaultGeneratorSpec()
		spec.Count = f.generateCount
		spec.Seed = f.seed
		if in.processes, err = workload.Generate(spec); err != nil {
			return nil, err
		}
	case f.scenarioPath == "":
		in.processes = workload.DefaultProcesses()
	}

	if flags.Changed("quantum") {
		in.params.Quantum = f.quantum
	}
	if flags.Changed("priority-step") {
		in.params.PriorityStep = f.priorityStep
	}
	if flags.Changed("base-quantum") {
		in.params.BaseQuantum = f.baseQuantum
	}
	if flags.Changed("levels") {
		in.params.Levels = f.levels
	}
	if flags.Changed("level-quanta") {
		in.params.LevelQuanta = f.levelQuanta
	}
	if f.trace {
		in.params.TraceLevel = string(trace.TraceLevelDecisions)
	}

	if err := sim.ValidateProcesses(in.processes); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return in, nil
}
