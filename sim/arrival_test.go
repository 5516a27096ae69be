package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(ps []*Process) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestArrivalGate_Admit_OrdersByArrivalThenInput(t *testing.T) {
	// GIVEN processes listed out of arrival order, with a tie at arrival 2
	procs := []*Process{
		NewProcess("late", 1, 5, 0, 0),
		NewProcess("tieB", 1, 2, 0, 1),
		NewProcess("early", 1, 0, 0, 2),
		NewProcess("tieA", 1, 2, 0, 3),
	}
	g := NewArrivalGate(procs)

	// WHEN admitting at clock 2
	got := g.Admit(2)

	// THEN earlier arrivals come first and ties keep input order
	assert.Equal(t, []string{"early", "tieB", "tieA"}, names(got))
	assert.Equal(t, 1, g.Len())
	for _, p := range got {
		assert.Equal(t, StateReady, p.State)
	}
}

func TestArrivalGate_Admit_SameTickTwice_AdmitsOnce(t *testing.T) {
	g := NewArrivalGate([]*Process{NewProcess("A", 1, 0, 0, 0)})

	first := g.Admit(0)
	second := g.Admit(0)

	require.Len(t, first, 1)
	assert.Empty(t, second)
}

func TestArrivalGate_Admit_CatchesUpOnSkippedTicks(t *testing.T) {
	// GIVEN an arrival at tick 3 and a clock that jumps from 1 to 5
	g := NewArrivalGate([]*Process{NewProcess("A", 1, 3, 0, 0)})
	assert.Empty(t, g.Admit(1))

	// WHEN admitting at 5
	// THEN the process is still admitted
	assert.Equal(t, []string{"A"}, names(g.Admit(5)))
}

func TestNewArrivalGate_DoesNotReorderInput(t *testing.T) {
	procs := []*Process{NewProcess("B", 1, 4, 0, 0), NewProcess("A", 1, 0, 0, 1)}
	_ = NewArrivalGate(procs)

	assert.Equal(t, "B", procs[0].Name)
}
