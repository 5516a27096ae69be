package sim

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// stcfKey orders the STCF ready set: remaining burst, then arrival, then input order.
type stcfKey struct {
	remaining int64
	arrival   int64
	seq       int
}

func keyOf(p *Process) stcfKey {
	return stcfKey{remaining: p.Remaining, arrival: p.Arrival, seq: p.Seq}
}

// stcfCmp implements the Comparator interface for red-black tree ordering.
func stcfCmp(a, b any) int {
	ka, kb := a.(stcfKey), b.(stcfKey)
	switch {
	case ka.remaining < kb.remaining:
		return -1
	case ka.remaining > kb.remaining:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// ShortestRemainingSet is the STCF ready set, kept in a red-black tree
// ordered by stcfKey. A process's key only changes while it is off the tree.
type ShortestRemainingSet struct {
	rbt *redblacktree.Tree
}

// NewShortestRemainingSet creates an empty ready set.
func NewShortestRemainingSet() *ShortestRemainingSet {
	return &ShortestRemainingSet{rbt: redblacktree.NewWith(stcfCmp)}
}

// Insert adds a ready process. Panics if it is already present.
func (s *ShortestRemainingSet) Insert(p *Process) {
	k := keyOf(p)
	if _, found := s.rbt.Get(k); found {
		panic(fmt.Sprintf("ShortestRemainingSet: %s already present", p.Name))
	}
	s.rbt.Put(k, p)
}

// PopShortest removes and returns the process with the least remaining burst.
// On a remaining-burst tie, prev (the process that ran the previous tick)
// wins if it is in the set; otherwise the tree order decides.
// Returns nil if the set is empty.
func (s *ShortestRemainingSet) PopShortest(prev *Process) *Process {
	node := s.rbt.Left()
	if node == nil {
		return nil
	}
	chosen := node.Value.(*Process)
	if prev != nil && prev != chosen && prev.Remaining == chosen.Remaining {
		if v, found := s.rbt.Get(keyOf(prev)); found && v.(*Process) == prev {
			chosen = prev
		}
	}
	s.rbt.Remove(keyOf(chosen))
	return chosen
}

// Len returns the number of processes in the set.
func (s *ShortestRemainingSet) Len() int {
	return s.rbt.Size()
}

// Names returns the process names in tree order.
func (s *ShortestRemainingSet) Names() []string {
	names := make([]string, 0, s.rbt.Size())
	for _, v := range s.rbt.Values() {
		names = append(names, v.(*Process).Name)
	}
	return names
}
