// Defines the Process struct that models one simulated job.
// Tracks remaining burst, I/O cadence, MLFQ tier and the lifecycle state tag.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
// A process is in exactly one state at any instant.
type ProcessState string

const (
	StatePending    ProcessState = "pending" // not yet arrived
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateIOBlocked  ProcessState = "io-blocked"
	StateTerminated ProcessState = "terminated"
)

// TopTier is the highest MLFQ tier; new and I/O-returning processes enter here.
const TopTier = 3

// validTransitions lists the legal source states for every destination state.
var validTransitions = map[ProcessState]map[ProcessState]bool{
	StateReady:      {StatePending: true, StateRunning: true, StateIOBlocked: true},
	StateRunning:    {StateReady: true},
	StateIOBlocked:  {StateRunning: true},
	StateTerminated: {StateRunning: true},
}

// Process models a single job's lifecycle in the simulation.
type Process struct {
	Name       string // Unique identifier
	Burst      int64  // Total CPU ticks required
	Arrival    int64  // Tick at which the process becomes eligible to run
	IOInterval int64  // Executed ticks between I/O events; 0 = never
	Seq        int    // 0-based position in the input list, final tie-breaker

	Remaining    int64 // CPU ticks still required
	TicksSinceIO int64 // Executed ticks since the last I/O event

	// MLFQ only.
	Tier                int   // 0..3, 3 = highest
	LowestTierWaitUnits int64 // Ticks consumed at tier 0 since the last reset

	State ProcessState

	FirstRun   int64 // Tick of the first executed tick, -1 until dispatched
	Completion int64 // Clock value after the final tick, -1 until terminated
	IOEvents   int   // Number of I/O events fired
}

// NewProcess constructs a process in the pending state.
// Panics on an empty name, a non-positive burst, or negative arrival/interval;
// callers parsing external input must validate first.
func NewProcess(name string, burst, arrival, ioInterval int64, seq int) *Process {
	if name == "" {
		panic("NewProcess: name must not be empty")
	}
	if burst <= 0 {
		panic(fmt.Sprintf("NewProcess(%s): burst must be > 0, got %d", name, burst))
	}
	if arrival < 0 || ioInterval < 0 {
		panic(fmt.Sprintf("NewProcess(%s): arrival and ioInterval must be >= 0, got %d, %d", name, arrival, ioInterval))
	}
	return &Process{
		Name:       name,
		Burst:      burst,
		Arrival:    arrival,
		IOInterval: ioInterval,
		Seq:        seq,
		Remaining:  burst,
		Tier:       TopTier,
		State:      StatePending,
		FirstRun:   -1,
		Completion: -1,
	}
}

// transition moves the process to the given state.
// Panics if the move is not legal from the current state.
func (p *Process) transition(to ProcessState) {
	if !validTransitions[to][p.State] {
		panic(fmt.Sprintf("process %s: illegal transition %s -> %s", p.Name, p.State, to))
	}
	p.State = to
}

// execute runs one tick of work at the given clock.
func (p *Process) execute(clock int64) {
	if p.State != StateRunning {
		panic(fmt.Sprintf("process %s: execute in state %s", p.Name, p.State))
	}
	if p.FirstRun < 0 {
		p.FirstRun = clock
	}
	p.Remaining--
	p.TicksSinceIO++
}

// Done reports whether the process has no work left.
func (p *Process) Done() bool {
	return p.Remaining == 0
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (Name: %s, State: %s, Remaining: %d, Arrival: %d, Tier: %d)", p.Name, p.State, p.Remaining, p.Arrival, p.Tier)
}

// before reports whether a sorts ahead of b by arrival, then input order.
func before(a, b *Process) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Seq < b.Seq
}
