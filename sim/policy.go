package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Policy names accepted by NewPolicy.
const (
	PolicyFCFS           = "fcfs"
	PolicySTCF           = "stcf"
	PolicySTCFDeferredIO = "stcf-deferred-io"
	PolicyMLFQ           = "mlfq"
)

// policyDisciplines is the named I/O discipline of every policy.
var policyDisciplines = map[string]IODiscipline{
	PolicyFCFS:           IOMarkerOnly,
	PolicySTCF:           IOMarkerOnly,
	PolicySTCFDeferredIO: IODeferredQueue,
	PolicyMLFQ:           IOBoostRequeue,
}

// Policy owns the ready container of one scheduling policy and decides which
// process runs next and for how long.
//
// The simulator calls Admit for arrivals and for processes returning from
// deferred I/O, Select once per dispatch, then exactly one of Yield (slice
// ended with work left and no I/O), Boost (I/O under IOBoostRequeue), or
// nothing (terminated or blocked). AfterSlice runs after every dispatch.
type Policy interface {
	Name() string
	Discipline() IODiscipline
	Admit(p *Process)
	// Select removes the next process from the ready container and returns
	// it with the number of ticks it may run. prev is the process that ran
	// the previous tick, if it is ready again. Returns (nil, 0) if nothing is ready.
	Select(prev *Process) (*Process, int64)
	Yield(p *Process, ran int64)
	Boost(p *Process)
	AfterSlice()
	Len() int
}

// IsValidPolicy returns true if name is a recognized policy name.
func IsValidPolicy(name string) bool {
	_, ok := policyDisciplines[name]
	return ok
}

// ValidPolicyNames returns the recognized policy names, sorted.
func ValidPolicyNames() []string {
	names := make([]string, 0, len(policyDisciplines))
	for n := range policyDisciplines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DisciplineOf returns the I/O discipline bound to a policy name.
// Panics on unrecognized names.
func DisciplineOf(name string) IODiscipline {
	d, ok := policyDisciplines[name]
	if !ok {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	return d
}

// NewPolicy creates a Policy by name.
// Panics on unrecognized names.
func NewPolicy(name string) Policy {
	switch name {
	case PolicyFCFS:
		return &FCFSPolicy{}
	case PolicySTCF, PolicySTCFDeferredIO:
		return &STCFPolicy{name: name, ready: NewShortestRemainingSet()}
	case PolicyMLFQ:
		return &MLFQPolicy{}
	default:
		panic(fmt.Sprintf("unknown policy %q", name))
	}
}

// FCFSPolicy runs processes to completion in arrival order.
// I/O events never take the process off the CPU.
type FCFSPolicy struct {
	ready FIFOQueue
}

func (f *FCFSPolicy) Name() string             { return PolicyFCFS }
func (f *FCFSPolicy) Discipline() IODiscipline { return policyDisciplines[PolicyFCFS] }
func (f *FCFSPolicy) Admit(p *Process)         { f.ready.Enqueue(p) }
func (f *FCFSPolicy) AfterSlice()              {}
func (f *FCFSPolicy) Len() int                 { return f.ready.Len() }

// Select returns the head of the queue with its whole remaining burst as the slice.
func (f *FCFSPolicy) Select(_ *Process) (*Process, int64) {
	p := f.ready.Dequeue()
	if p == nil {
		return nil, 0
	}
	return p, p.Remaining
}

func (f *FCFSPolicy) Yield(p *Process, _ int64) {
	panic(fmt.Sprintf("fcfs is non-preemptive: %s yielded with %d ticks left", p.Name, p.Remaining))
}

func (f *FCFSPolicy) Boost(p *Process) {
	panic(fmt.Sprintf("fcfs has no priority tiers: cannot boost %s", p.Name))
}

// STCFPolicy re-evaluates the ready set every tick and runs the process with
// the least remaining burst. Ties go to the process that ran the previous
// tick, then earliest arrival, then input order.
type STCFPolicy struct {
	name  string
	ready *ShortestRemainingSet
}

func (s *STCFPolicy) Name() string              { return s.name }
func (s *STCFPolicy) Discipline() IODiscipline  { return policyDisciplines[s.name] }
func (s *STCFPolicy) Admit(p *Process)          { s.ready.Insert(p) }
func (s *STCFPolicy) Yield(p *Process, _ int64) { s.ready.Insert(p) }
func (s *STCFPolicy) AfterSlice()               {}
func (s *STCFPolicy) Len() int                  { return s.ready.Len() }

func (s *STCFPolicy) Select(prev *Process) (*Process, int64) {
	if s.ready.Len() > 1 {
		logrus.Debugf("%s ready set: %v", s.name, s.ready.Names())
	}
	p := s.ready.PopShortest(prev)
	if p == nil {
		return nil, 0
	}
	return p, 1
}

func (s *STCFPolicy) Boost(p *Process) {
	panic(fmt.Sprintf("%s has no priority tiers: cannot boost %s", s.name, p.Name))
}

// MLFQPolicy runs the head of the highest non-empty tier for that tier's
// quantum, demotes on quantum expiry, boosts on I/O and ages tier 0.
type MLFQPolicy struct {
	tiers TierQueues
}

func (m *MLFQPolicy) Name() string                { return PolicyMLFQ }
func (m *MLFQPolicy) Discipline() IODiscipline    { return policyDisciplines[PolicyMLFQ] }
func (m *MLFQPolicy) Admit(p *Process)            { m.tiers.Enqueue(p) }
func (m *MLFQPolicy) Yield(p *Process, ran int64) { m.tiers.Demote(p, ran) }
func (m *MLFQPolicy) Boost(p *Process)            { m.tiers.Boost(p) }
func (m *MLFQPolicy) Len() int                    { return m.tiers.Len() }

func (m *MLFQPolicy) Select(_ *Process) (*Process, int64) {
	p := m.tiers.Dequeue()
	if p == nil {
		return nil, 0
	}
	return p, Quanta[p.Tier]
}

// AfterSlice runs the aging sweep over tier 0.
func (m *MLFQPolicy) AfterSlice() {
	m.tiers.Age()
}

// Tiers exposes the tier queues for inspection.
func (m *MLFQPolicy) Tiers() *TierQueues {
	return &m.tiers
}
