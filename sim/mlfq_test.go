package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuanta_PerTier(t *testing.T) {
	assert.Equal(t, int64(1), Quanta[3])
	assert.Equal(t, int64(2), Quanta[2])
	assert.Equal(t, int64(3), Quanta[1])
	assert.Equal(t, int64(4), Quanta[0])
}

func TestTierQueues_Dequeue_HighestNonEmptyTierFirst(t *testing.T) {
	// GIVEN processes at tiers 1, 3 and 1
	var tq TierQueues
	low1 := &Process{Name: "low1", Tier: 1}
	top := &Process{Name: "top", Tier: 3}
	low2 := &Process{Name: "low2", Tier: 1}
	tq.Enqueue(low1)
	tq.Enqueue(top)
	tq.Enqueue(low2)

	// THEN tier 3 drains first, then tier 1 in FIFO order
	assert.Same(t, top, tq.Dequeue())
	assert.Same(t, low1, tq.Dequeue())
	assert.Same(t, low2, tq.Dequeue())
	assert.Nil(t, tq.Dequeue())
}

func TestTierQueues_Demote_AboveFloor_ResetsWait(t *testing.T) {
	var tq TierQueues
	p := &Process{Name: "A", Tier: 1, LowestTierWaitUnits: 7}

	tq.Demote(p, 3)

	assert.Equal(t, 0, p.Tier)
	assert.Equal(t, int64(0), p.LowestTierWaitUnits)
	assert.Equal(t, 1, tq.Tier(0).Len())
}

func TestTierQueues_Demote_AtFloor_AccumulatesConsumedTicks(t *testing.T) {
	var tq TierQueues
	p := &Process{Name: "A", Tier: 0, LowestTierWaitUnits: 4}

	tq.Demote(p, 4)

	assert.Equal(t, 0, p.Tier)
	assert.Equal(t, int64(8), p.LowestTierWaitUnits)
}

func TestTierQueues_Age_BoostsAtThreshold(t *testing.T) {
	// GIVEN tier 0 with one process below and two at or above the threshold
	var tq TierQueues
	young := &Process{Name: "young", Tier: 0, LowestTierWaitUnits: AgingThreshold - 1}
	old1 := &Process{Name: "old1", Tier: 0, LowestTierWaitUnits: AgingThreshold}
	old2 := &Process{Name: "old2", Tier: 0, LowestTierWaitUnits: AgingThreshold + 1}
	for _, p := range []*Process{old1, young, old2} {
		tq.Enqueue(p)
	}

	// WHEN aging runs
	aged := tq.Age()

	// THEN old processes move to the top tier in order with counters cleared
	assert.Equal(t, []string{"old1", "old2"}, names(aged))
	assert.Equal(t, "[old1 old2]", tq.Tier(TopTier).String())
	assert.Equal(t, "[young]", tq.Tier(0).String())
	for _, p := range aged {
		assert.Equal(t, TopTier, p.Tier)
		assert.Equal(t, int64(0), p.LowestTierWaitUnits)
	}
}

func TestTierQueues_Boost_ClearsAging(t *testing.T) {
	var tq TierQueues
	p := &Process{Name: "A", Tier: 0, LowestTierWaitUnits: 8}

	tq.Boost(p)

	assert.Equal(t, TopTier, p.Tier)
	assert.Equal(t, int64(0), p.LowestTierWaitUnits)
	assert.Same(t, p, tq.Tier(TopTier).Peek())
}
