package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// IODiscipline names how a policy reacts when a running process fires an I/O event.
type IODiscipline string

const (
	// IOMarkerOnly records the I/O event and keeps the process on the CPU.
	IOMarkerOnly IODiscipline = "marker-only"
	// IODeferredQueue parks the process in the I/O queue. One queued process
	// is serviced per tick, only on ticks where no process is ready.
	IODeferredQueue IODiscipline = "deferred-queue"
	// IOBoostRequeue takes the process off the CPU and puts it at the tail of
	// the top tier with its aging counter cleared. No I/O delay elapses.
	IOBoostRequeue IODiscipline = "boost-requeue"
)

// IOSubsystem detects I/O events and owns the queue of I/O-blocked processes.
type IOSubsystem struct {
	Discipline IODiscipline
	blocked    *FIFOQueue
}

// NewIOSubsystem creates an IOSubsystem for the given discipline.
// Panics on an unrecognized discipline.
func NewIOSubsystem(d IODiscipline) *IOSubsystem {
	switch d {
	case IOMarkerOnly, IODeferredQueue, IOBoostRequeue:
	default:
		panic(fmt.Sprintf("unknown I/O discipline %q", d))
	}
	return &IOSubsystem{Discipline: d, blocked: &FIFOQueue{}}
}

// Fired reports whether p's last executed tick triggers an I/O event, and
// resets its counter if so. A process that just finished never fires.
func (s *IOSubsystem) Fired(p *Process) bool {
	if p.IOInterval <= 0 || p.TicksSinceIO != p.IOInterval || p.Done() {
		return false
	}
	p.TicksSinceIO = 0
	p.IOEvents++
	return true
}

// Yields reports whether the discipline takes the process off the CPU.
func (s *IOSubsystem) Yields() bool {
	return s.Discipline != IOMarkerOnly
}

// Block moves a running process into the I/O queue.
func (s *IOSubsystem) Block(p *Process) {
	p.transition(StateIOBlocked)
	s.blocked.Enqueue(p)
	logrus.Debugf("process %s blocked on I/O (%d queued)", p.Name, s.blocked.Len())
}

// Service completes the I/O of the longest-waiting blocked process and
// returns it in the ready state. Returns nil if nothing is blocked.
func (s *IOSubsystem) Service() *Process {
	p := s.blocked.Dequeue()
	if p == nil {
		return nil
	}
	p.transition(StateReady)
	return p
}

// Blocked returns the number of I/O-blocked processes.
func (s *IOSubsystem) Blocked() int {
	return s.blocked.Len()
}
