// Package sim provides the discrete-time CPU scheduling simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (pending → ready → running → terminated, with io-blocked) and state machine
//   - policy.go: The Policy interface and the fcfs, stcf, stcf-deferred-io and mlfq policies
//   - simulator.go: The tick loop, slice dispatch and I/O handling
//
// # Architecture
//
// The simulator advances a logical clock one tick at a time. Each step admits
// arrivals, asks the policy for a process and a slice length, and runs the
// slice tick by tick, appending one token per tick to the trace. Supporting
// pieces:
//   - arrival.go: ArrivalGate releases pending processes once their arrival tick is reached
//   - io.go: IOSubsystem detects I/O events and holds I/O-blocked processes
//   - queue.go, stcf_queue.go, mlfq.go: ready containers (FIFO, shortest-remaining tree, tiered queues)
//   - metrics.go: per-process turnaround, waiting and response times
//
// Sub-packages:
//   - sim/trace/: Execution trace tokens and summaries
//   - sim/workload/: Process list parsing
//
// # Key Interfaces
//
//   - Policy: owns the ready container; Select picks the next process and its slice,
//     Yield and Boost return a preempted process to it
//
// Given the same process list and policy a run is fully deterministic.
package sim
