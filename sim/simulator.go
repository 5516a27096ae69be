// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// sliceOutcome records how a dispatched slice ended.
type sliceOutcome int

const (
	sliceExpired    sliceOutcome = iota // ran its full slice with work left
	sliceTerminated                     // finished its burst
	sliceBlocked                        // parked in the deferred I/O queue
	sliceBoosted                        // I/O under boost-requeue
)

// Simulator is the core object that holds simulation time, process state, and the tick loop.
type Simulator struct {
	Clock   int64
	Horizon int64
	Policy  Policy
	IO      *IOSubsystem
	// Arrivals holds processes whose arrival time has not been reached.
	Arrivals *ArrivalGate
	Trace    *trace.Trace

	// procs is the authoritative list of every process, in input order.
	// Ready containers and the I/O queue only order a subset of it; the
	// State tag on each process says where it is.
	procs   []*Process
	live    int
	lastRan *Process // process that ran the previous tick and is ready again
}

// NewSimulator builds a simulator over fresh processes created from specs.
// Panics on an unknown policy, duplicate names, or invalid specs.
func NewSimulator(specs []ProcessSpec, cfg SimConfig) *Simulator {
	if !IsValidPolicy(cfg.Policy) {
		panic(fmt.Sprintf("unknown policy %q", cfg.Policy))
	}
	if cfg.Horizon < 0 {
		panic(fmt.Sprintf("horizon must be >= 0, got %d", cfg.Horizon))
	}
	procs := make([]*Process, len(specs))
	seen := make(map[string]bool, len(specs))
	for i, sp := range specs {
		if seen[sp.Name] {
			panic(fmt.Sprintf("duplicate process name %q", sp.Name))
		}
		seen[sp.Name] = true
		procs[i] = NewProcess(sp.Name, sp.Burst, sp.Arrival, sp.IOInterval, i)
	}
	policy := NewPolicy(cfg.Policy)
	return &Simulator{
		Horizon:  cfg.Horizon,
		Policy:   policy,
		IO:       NewIOSubsystem(policy.Discipline()),
		Arrivals: NewArrivalGate(procs),
		Trace:    trace.NewTrace(),
		procs:    procs,
		live:     len(procs),
	}
}

// Simulate runs specs under cfg to completion and returns the execution trace.
// It is a pure function of its arguments.
func Simulate(specs []ProcessSpec, cfg SimConfig) *trace.Trace {
	s := NewSimulator(specs, cfg)
	s.Run()
	return s.Trace
}

// Run advances the clock until no process is pending, ready, running or
// I/O-blocked, or the horizon is reached.
func (sim *Simulator) Run() {
	logrus.Infof("Starting %s simulation with %d processes", sim.Policy.Name(), len(sim.procs))
	for !sim.Finished() {
		if sim.Horizon > 0 && sim.Clock >= sim.Horizon {
			logrus.Warnf("horizon %d reached with %d processes unfinished", sim.Horizon, sim.live)
			break
		}
		sim.Step()
	}
	logrus.Infof("Simulation ended at tick %d with %d tokens", sim.Clock, sim.Trace.Len())
}

// Finished reports whether every process has terminated.
func (sim *Simulator) Finished() bool {
	return sim.live == 0
}

// Step admits arrivals at the current clock, then dispatches one slice, or
// spends one tick servicing deferred I/O or idling.
func (sim *Simulator) Step() {
	for _, p := range sim.Arrivals.Admit(sim.Clock) {
		sim.Policy.Admit(p)
	}

	p, slice := sim.Policy.Select(sim.lastRan)
	if p == nil {
		sim.idle()
		return
	}
	sim.dispatch(p, slice)
	sim.Policy.AfterSlice()
}

// idle spends one tick with no process on the CPU. The longest-blocked
// process, if any, completes its I/O and becomes ready.
func (sim *Simulator) idle() {
	sim.lastRan = nil
	if p := sim.IO.Service(); p != nil {
		logrus.Debugf("I/O serviced: %s at %d ticks", p.Name, sim.Clock)
		sim.Trace.RecordIO(p.Name, sim.Clock)
		sim.Policy.Admit(p)
	}
	sim.Clock++
}

// dispatch runs p for up to slice ticks and routes it according to how the slice ended.
func (sim *Simulator) dispatch(p *Process, slice int64) {
	p.transition(StateRunning)
	logrus.Debugf("dispatch %s for %d ticks at %d (remaining=%d, tier=%d)", p.Name, slice, sim.Clock, p.Remaining, p.Tier)

	outcome := sliceExpired
	var ran int64
	for ran < slice && outcome == sliceExpired {
		p.execute(sim.Clock)
		sim.Trace.RecordExec(p.Name, sim.Clock)
		sim.Clock++
		ran++

		if sim.IO.Fired(p) {
			outcome = sim.handleIO(p)
		}
		if outcome == sliceExpired && p.Done() {
			sim.terminate(p)
			outcome = sliceTerminated
		}
	}

	sim.lastRan = nil
	if outcome == sliceExpired {
		p.transition(StateReady)
		sim.Policy.Yield(p, ran)
		sim.lastRan = p
	}
}

// handleIO applies the I/O discipline to a process whose I/O event just fired.
func (sim *Simulator) handleIO(p *Process) sliceOutcome {
	logrus.Debugf("I/O event: %s at %d ticks (%s)", p.Name, sim.Clock, sim.IO.Discipline)
	if !sim.IO.Yields() {
		sim.Trace.RecordIO(p.Name, sim.Clock)
		return sliceExpired
	}
	switch sim.IO.Discipline {
	case IODeferredQueue:
		sim.IO.Block(p)
		return sliceBlocked
	case IOBoostRequeue:
		sim.Trace.RecordIO(p.Name, sim.Clock)
		p.transition(StateReady)
		sim.Policy.Boost(p)
		return sliceBoosted
	default:
		panic(fmt.Sprintf("unhandled I/O discipline %q", sim.IO.Discipline))
	}
}

func (sim *Simulator) terminate(p *Process) {
	p.transition(StateTerminated)
	p.Completion = sim.Clock
	sim.live--
	logrus.Debugf(">> Terminated: %s at %d ticks", p.Name, sim.Clock)
}

// Processes returns every process in input order, including terminated ones.
func (sim *Simulator) Processes() []*Process {
	return sim.procs
}

// StateCounts returns how many processes are in each lifecycle state.
func (sim *Simulator) StateCounts() map[ProcessState]int {
	counts := make(map[ProcessState]int)
	for _, p := range sim.procs {
		counts[p.State]++
	}
	return counts
}

// Metrics computes per-process timing statistics at the current clock.
func (sim *Simulator) Metrics() *Metrics {
	return CollectMetrics(sim.procs, sim.Clock)
}
