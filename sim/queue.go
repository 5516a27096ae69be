// Implements the FIFOQueue, which backs the FCFS ready queue, each MLFQ tier
// and the deferred I/O queue.

package sim

import (
	"strings"
)

// FIFOQueue is a first-in first-out queue of processes.
type FIFOQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the queue.
func (q *FIFOQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	q.queue = append(q.queue, p)
}

func (q *FIFOQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.queue {
		sb.WriteString(p.Name)
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (q *FIFOQueue) Len() int {
	return len(q.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *FIFOQueue) Peek() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Items returns the queue contents for iteration.
// Callers MUST NOT append to or reslice the returned slice.
func (q *FIFOQueue) Items() []*Process {
	return q.queue
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (q *FIFOQueue) Dequeue() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	p := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return p
}

// Extract removes and returns, in queue order, every process for which match
// returns true. The remaining processes keep their relative order.
func (q *FIFOQueue) Extract(match func(*Process) bool) []*Process {
	if match == nil {
		panic("Extract: match must not be nil")
	}
	var out []*Process
	kept := q.queue[:0]
	for _, p := range q.queue {
		if match(p) {
			out = append(out, p)
		} else {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(q.queue); i++ {
		q.queue[i] = nil
	}
	q.queue = kept
	return out
}
