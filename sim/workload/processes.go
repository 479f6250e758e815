package workload

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

// csvColumns is the header row written by WriteCSV.
var csvColumns = []string{"id", "name", "arrival_time", "burst_time", "priority"}

// processFile is the on-disk YAML/JSON layout of a process list. It is a valid
// Scenario on its own.
type processFile struct {
	Processes []sim.Process `json:"processes" yaml:"processes"`
}

// LoadProcesses reads a process list from path. The format follows the file
// extension: .csv, or .yaml/.yml/.json. The list is validated before returning.
func LoadProcesses(path string) ([]sim.Process, error) {
	var (
		procs []sim.Process
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		procs, err = loadCSV(path)
	case ".yaml", ".yml", ".json":
		procs, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported process file extension %q (want .csv, .yaml, .yml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if err := sim.ValidateProcesses(procs); err != nil {
		return nil, fmt.Errorf("process file %s: %w", path, err)
	}
	return procs, nil
}

func loadYAML(path string) ([]sim.Process, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading process file: %w", err)
	}
	var pf processFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parsing process file %s: %w", path, err)
	}
	return pf.Processes, nil
}

func loadCSV(path string) ([]sim.Process, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

// ReadCSV parses processes from r. Two layouts are accepted:
//   - with a header row naming the columns (id, name, arrival_time, burst_time,
//     priority; "arrival" and "burst" are accepted as aliases), in any order
//   - headerless rows of id,burst,arrival[,priority]
//
// Missing names default to the ID.
func ReadCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return []sim.Process{}, nil
	}

	for _, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), "id") {
			return parseHeaderedCSV(rows[0], rows[1:])
		}
	}
	procs := make([]sim.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("CSV row %d has %d columns, expected 3 or 4 (id,burst,arrival[,priority])", i+1, len(row))
		}
		p := sim.Process{ID: strings.TrimSpace(row[0])}
		if p.BurstTime, err = parseInt(row[1], i+1, "burst"); err != nil {
			return nil, err
		}
		if p.ArrivalTime, err = parseInt(row[2], i+1, "arrival"); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if p.Priority, err = parseInt(row[3], i+1, "priority"); err != nil {
				return nil, err
			}
		}
		p.Name = p.ID
		procs = append(procs, p)
	}
	return procs, nil
}

func parseHeaderedCSV(header []string, rows [][]string) ([]sim.Process, error) {
	col := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch name {
		case "arrival":
			name = "arrival_time"
		case "burst":
			name = "burst_time"
		}
		col[name] = i
	}
	for _, required := range []string{"id", "arrival_time", "burst_time"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	procs := make([]sim.Process, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		p := sim.Process{ID: field(row, "id"), Name: field(row, "name")}
		var err error
		if p.ArrivalTime, err = parseInt(field(row, "arrival_time"), line, "arrival_time"); err != nil {
			return nil, err
		}
		if p.BurstTime, err = parseInt(field(row, "burst_time"), line, "burst_time"); err != nil {
			return nil, err
		}
		if s := field(row, "priority"); s != "" {
			if p.Priority, err = parseInt(s, line, "priority"); err != nil {
				return nil, err
			}
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		procs = append(procs, p)
	}
	return procs, nil
}

func parseInt(s string, line int, column string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("CSV line %d column %s: %w", line, column, err)
	}
	return v, nil
}

// WriteCSV writes procs with a header row, in the layout ReadCSV accepts.
func WriteCSV(w io.Writer, procs []sim.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range procs {
		row := []string{
			p.ID,
			p.Name,
			strconv.FormatInt(p.ArrivalTime, 10),
			strconv.FormatInt(p.BurstTime, 10),
			strconv.FormatInt(p.Priority, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", p.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteYAML writes procs as a process file accepted by LoadProcesses and LoadScenario.
func WriteYAML(w io.Writer, procs []sim.Process) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(processFile{Processes: procs}); err != nil {
		return fmt.Errorf("encoding process file: %w", err)
	}
	return encoder.Close()
}

// SaveProcesses writes procs to path as CSV, JSON or YAML, chosen by extension
// (anything other than .csv and .json is written as YAML).
func SaveProcesses(path string, procs []sim.Process) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating process file: %w", err)
	}
	return writeAndClose(file, filepath.Ext(path), procs)
}

// writeAndClose encodes procs in the format for ext and closes wc. A close
// failure is reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, ext string, procs []sim.Process) error {
	var err error
	switch strings.ToLower(ext) {
	case ".csv":
		err = WriteCSV(wc, procs)
	case ".json":
		encoder := json.NewEncoder(wc)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(processFile{Processes: procs})
	default:
		err = WriteYAML(wc, procs)
	}
	if cerr := wc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing process file: %w", cerr)
	}
	return err
}
