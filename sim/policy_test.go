package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyDisciplines_AreNamed(t *testing.T) {
	tests := []struct {
		policy string
		want   IODiscipline
	}{
		{PolicyFCFS, IOMarkerOnly},
		{PolicySTCF, IOMarkerOnly},
		{PolicySTCFDeferredIO, IODeferredQueue},
		{PolicyMLFQ, IOBoostRequeue},
	}
	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			assert.Equal(t, tt.want, DisciplineOf(tt.policy))
			assert.Equal(t, tt.want, NewPolicy(tt.policy).Discipline())
			assert.Equal(t, tt.policy, NewPolicy(tt.policy).Name())
		})
	}
}

func TestIsValidPolicy(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"fcfs", true},
		{"stcf", true},
		{"stcf-deferred-io", true},
		{"mlfq", true},
		{"", false},
		{"FCFS", false}, // case-sensitive
		{"round-robin", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPolicy(tt.name))
		})
	}
}

func TestValidPolicyNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"fcfs", "mlfq", "stcf", "stcf-deferred-io"}, ValidPolicyNames())
}

func TestNewPolicy_Unknown_Panics(t *testing.T) {
	assert.Panics(t, func() { NewPolicy("lottery") })
	assert.Panics(t, func() { DisciplineOf("lottery") })
}

func TestFCFSPolicy_Select_WholeBurst(t *testing.T) {
	f := NewPolicy(PolicyFCFS)
	p := NewProcess("A", 7, 0, 0, 0)
	f.Admit(p)

	got, slice := f.Select(nil)

	assert.Same(t, p, got)
	assert.Equal(t, int64(7), slice)
	assert.Panics(t, func() { f.Yield(p, 1) })
}

func TestMLFQPolicy_Select_SliceMatchesTier(t *testing.T) {
	m := NewPolicy(PolicyMLFQ)
	p := NewProcess("A", 7, 0, 0, 0)
	p.Tier = 1
	m.Admit(p)

	got, slice := m.Select(nil)

	assert.Same(t, p, got)
	assert.Equal(t, Quanta[1], slice)
}

func TestSTCFPolicy_Select_OneTick(t *testing.T) {
	s := NewPolicy(PolicySTCF)
	s.Admit(NewProcess("A", 7, 0, 0, 0))

	_, slice := s.Select(nil)

	assert.Equal(t, int64(1), slice)
	got, _ := s.Select(nil)
	assert.Nil(t, got)
}

func TestSTCFPolicy_Select_LeavesRestOrdered(t *testing.T) {
	// GIVEN three ready processes
	s := NewPolicy(PolicySTCF).(*STCFPolicy)
	s.Admit(NewProcess("A", 5, 0, 0, 0))
	s.Admit(NewProcess("B", 2, 0, 0, 1))
	s.Admit(NewProcess("C", 3, 0, 0, 2))

	// WHEN the shortest is selected
	got, _ := s.Select(nil)

	// THEN the others stay in remaining-burst order
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, []string{"C", "A"}, s.ready.Names())
}
