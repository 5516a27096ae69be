package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// ArrivalGate holds processes that have not arrived yet, ordered by
// arrival time then input order.
type ArrivalGate struct {
	pending []*Process
}

// NewArrivalGate sorts a copy of procs for admission. The input slice is not modified.
func NewArrivalGate(procs []*Process) *ArrivalGate {
	pending := make([]*Process, len(procs))
	copy(pending, procs)
	sort.SliceStable(pending, func(i, j int) bool {
		return before(pending[i], pending[j])
	})
	return &ArrivalGate{pending: pending}
}

// Admit removes and returns every pending process with Arrival <= clock,
// moving each into the ready state. Calling it twice for the same clock
// returns nothing the second time.
func (g *ArrivalGate) Admit(clock int64) []*Process {
	n := 0
	for n < len(g.pending) && g.pending[n].Arrival <= clock {
		n++
	}
	if n == 0 {
		return nil
	}
	arrived := g.pending[:n:n]
	g.pending = g.pending[n:]
	for _, p := range arrived {
		p.transition(StateReady)
		logrus.Debugf("<< Arrival: %s at %d ticks", p.Name, clock)
	}
	return arrived
}

// Len returns the number of processes still waiting to arrive.
func (g *ArrivalGate) Len() int {
	return len(g.pending)
}
