// Package testutil provides shared test infrastructure for the scheduling simulator.
// It loads the golden trace dataset used by the sim tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/golden_traces.yaml.
type GoldenDataset struct {
	Cases []GoldenCase `yaml:"cases"`
}

// GoldenCase is one process list, one policy and its expected trace.
type GoldenCase struct {
	Name      string   `yaml:"name"`
	Policy    string   `yaml:"policy"`
	Processes []string `yaml:"processes"` // "name,duration,arrival,io" records
	Trace     string   `yaml:"trace"`
}

// GoldenProcess is a decoded process record from a GoldenCase.
type GoldenProcess struct {
	Name       string
	Burst      int64
	Arrival    int64
	IOInterval int64
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
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_traces.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Cases) == 0 {
		t.Fatal("golden dataset has no cases")
	}
	return &dataset
}

// DecodeProcesses converts the case's records. Fails the test on malformed records.
func (c GoldenCase) DecodeProcesses(t *testing.T) []GoldenProcess {
	t.Helper()
	out := make([]GoldenProcess, 0, len(c.Processes))
	for _, rec := range c.Processes {
		fields := strings.Split(rec, ",")
		if len(fields) != 4 {
			t.Fatalf("%s: malformed record %q", c.Name, rec)
		}
		var vals [3]int64
		for i := range vals {
			v, err := strconv.ParseInt(fields[i+1], 10, 64)
			if err != nil {
				t.Fatalf("%s: malformed record %q: %v", c.Name, rec, err)
			}
			vals[i] = v
		}
		out = append(out, GoldenProcess{Name: fields[0], Burst: vals[0], Arrival: vals[1], IOInterval: vals[2]})
	}
	return out
}

// FileContent renders the case's records in process list file format.
func (c GoldenCase) FileContent() string {
	return strconv.Itoa(len(c.Processes)) + "\n" + strings.Join(c.Processes, "\n") + "\n"
}
