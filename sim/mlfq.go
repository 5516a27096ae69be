package sim

import (
	"github.com/sirupsen/logrus"
)

// Quanta maps each MLFQ tier to its time slice in ticks.
var Quanta = [TopTier + 1]int64{0: 4, 1: 3, 2: 2, 3: 1}

// AgingThreshold is the number of ticks consumed at tier 0 after which a
// process is boosted back to the top tier.
const AgingThreshold = 11

// TierQueues holds one FIFO queue per MLFQ tier.
type TierQueues struct {
	tiers [TopTier + 1]FIFOQueue
}

// Enqueue appends p to the tail of its current tier.
func (t *TierQueues) Enqueue(p *Process) {
	t.tiers[p.Tier].Enqueue(p)
}

// Dequeue removes the head of the highest non-empty tier.
// Returns nil if every tier is empty.
func (t *TierQueues) Dequeue() *Process {
	for tier := TopTier; tier >= 0; tier-- {
		if p := t.tiers[tier].Dequeue(); p != nil {
			return p
		}
	}
	return nil
}

// Len returns the number of processes across all tiers.
func (t *TierQueues) Len() int {
	n := 0
	for i := range t.tiers {
		n += t.tiers[i].Len()
	}
	return n
}

// Tier returns the queue for a single tier.
func (t *TierQueues) Tier(tier int) *FIFOQueue {
	return &t.tiers[tier]
}

// Demote applies quantum expiry to p: wait units grow by the ticks just
// consumed if p was already at tier 0 and reset otherwise, then the tier
// drops by one (floor 0) and p goes to the tail of its new tier.
func (t *TierQueues) Demote(p *Process, consumed int64) {
	if p.Tier == 0 {
		p.LowestTierWaitUnits += consumed
	} else {
		p.LowestTierWaitUnits = 0
		p.Tier--
	}
	t.Enqueue(p)
}

// Boost moves p to the tail of the top tier with its aging counter cleared.
func (t *TierQueues) Boost(p *Process) {
	p.Tier = TopTier
	p.LowestTierWaitUnits = 0
	t.Enqueue(p)
}

// Age boosts every tier-0 process whose wait units reached AgingThreshold,
// preserving their tier-0 order at the tail of the top tier.
func (t *TierQueues) Age() []*Process {
	aged := t.tiers[0].Extract(func(p *Process) bool {
		return p.LowestTierWaitUnits >= AgingThreshold
	})
	for _, p := range aged {
		logrus.Debugf("aging boost: %s after %d ticks at tier 0", p.Name, p.LowestTierWaitUnits)
		t.Boost(p)
	}
	return aged
}
