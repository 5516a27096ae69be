package sim

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/inference-sim/schedsim/sim/internal/testutil"
)

// specs builds ProcessSpecs from "name,duration,arrival,io" records.
func specs(records ...string) []ProcessSpec {
	out := make([]ProcessSpec, 0, len(records))
	for _, rec := range records {
		f := strings.Split(rec, ",")
		if len(f) != 4 {
			panic(fmt.Sprintf("bad test record %q", rec))
		}
		out = append(out, ProcessSpec{Name: f[0], Burst: atoi(f[1]), Arrival: atoi(f[2]), IOInterval: atoi(f[3])})
	}
	return out
}

func atoi(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// goldenSpecs converts a golden case's records.
func goldenSpecs(t *testing.T, c testutil.GoldenCase) []ProcessSpec {
	t.Helper()
	var out []ProcessSpec
	for _, gp := range c.DecodeProcesses(t) {
		out = append(out, ProcessSpec{Name: gp.Name, Burst: gp.Burst, Arrival: gp.Arrival, IOInterval: gp.IOInterval})
	}
	return out
}

// selection is one dispatch observed by recordingPolicy.
type selection struct {
	name      string
	slice     int64
	tier      int
	traceFrom int // trace length when the slice started
}

// recordingPolicy wraps a Policy and records every dispatch decision.
type recordingPolicy struct {
	Policy
	sim        *Simulator
	selections []selection
	afterSlice func()
}

func (r *recordingPolicy) Select(prev *Process) (*Process, int64) {
	p, slice := r.Policy.Select(prev)
	if p != nil {
		r.selections = append(r.selections, selection{name: p.Name, slice: slice, tier: p.Tier, traceFrom: r.sim.Trace.Len()})
	}
	return p, slice
}

func (r *recordingPolicy) AfterSlice() {
	r.Policy.AfterSlice()
	if r.afterSlice != nil {
		r.afterSlice()
	}
}

// newRecordingSimulator builds a simulator whose policy records its decisions.
func newRecordingSimulator(sp []ProcessSpec, policy string) (*Simulator, *recordingPolicy) {
	s := NewSimulator(sp, NewSimConfig(policy, 0))
	rec := &recordingPolicy{Policy: s.Policy, sim: s}
	s.Policy = rec
	return s, rec
}
