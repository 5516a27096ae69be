// Tracks per-process and simulation-wide scheduling metrics such as
// turnaround, waiting and response time.

package sim

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// ProcessMetrics holds the timing statistics of one process.
// Completion-derived fields are -1 when the process did not finish.
type ProcessMetrics struct {
	Name       string
	Arrival    int64
	Burst      int64
	FirstRun   int64 // tick of the first executed tick, -1 if never dispatched
	Completion int64 // clock after the final tick
	Turnaround int64 // Completion - Arrival
	Waiting    int64 // Turnaround - Burst
	Response   int64 // FirstRun - Arrival
	IOEvents   int
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	Processes          []ProcessMetrics // input order
	Makespan           int64            // clock when metrics were collected
	CompletedProcesses int
	TotalIOEvents      int

	AvgTurnaround float64
	AvgWaiting    float64
	AvgResponse   float64
	P90Turnaround float64
	Throughput    float64 // completed processes per tick
}

// CollectMetrics computes Metrics for procs at the given clock.
// Averages only include processes that completed (or, for response, ran at least once).
func CollectMetrics(procs []*Process, clock int64) *Metrics {
	m := &Metrics{
		Processes: make([]ProcessMetrics, 0, len(procs)),
		Makespan:  clock,
	}
	var turnarounds, waits, responses []int64
	for _, p := range procs {
		pm := ProcessMetrics{
			Name:       p.Name,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			FirstRun:   p.FirstRun,
			Completion: -1,
			Turnaround: -1,
			Waiting:    -1,
			Response:   -1,
			IOEvents:   p.IOEvents,
		}
		if p.FirstRun >= 0 {
			pm.Response = p.FirstRun - p.Arrival
			responses = append(responses, pm.Response)
		}
		if p.State == StateTerminated {
			pm.Completion = p.Completion
			pm.Turnaround = p.Completion - p.Arrival
			pm.Waiting = pm.Turnaround - p.Burst
			turnarounds = append(turnarounds, pm.Turnaround)
			waits = append(waits, pm.Waiting)
			m.CompletedProcesses++
		}
		m.TotalIOEvents += p.IOEvents
		m.Processes = append(m.Processes, pm)
	}
	m.AvgTurnaround = CalculateMean(turnarounds)
	m.AvgWaiting = CalculateMean(waits)
	m.AvgResponse = CalculateMean(responses)
	m.P90Turnaround = CalculatePercentile(turnarounds, 90)
	if clock > 0 {
		m.Throughput = float64(m.CompletedProcesses) / float64(clock)
	}
	return m
}

// Print renders the per-process table and averages to w.
func (m *Metrics) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Simulation Metrics ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Arrival", "Burst", "First Run", "Completion", "Turnaround", "Waiting", "Response", "I/O"})
	for _, pm := range m.Processes {
		table.Append([]string{
			pm.Name,
			strconv.FormatInt(pm.Arrival, 10),
			strconv.FormatInt(pm.Burst, 10),
			orDash(pm.FirstRun),
			orDash(pm.Completion),
			orDash(pm.Turnaround),
			orDash(pm.Waiting),
			orDash(pm.Response),
			strconv.Itoa(pm.IOEvents),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Makespan %d", m.Makespan),
		fmt.Sprintf("Avg %.2f", m.AvgTurnaround),
		fmt.Sprintf("Avg %.2f", m.AvgWaiting),
		fmt.Sprintf("Avg %.2f", m.AvgResponse),
		strconv.Itoa(m.TotalIOEvents)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Completed Processes : %d/%d\n", m.CompletedProcesses, len(m.Processes))
	_, _ = fmt.Fprintf(w, "P90 Turnaround      : %.2f ticks\n", m.P90Turnaround)
	_, _ = fmt.Fprintf(w, "Throughput          : %.4f processes/tick\n", m.Throughput)
}

func orDash(v int64) string {
	if v < 0 {
		return "-"
	}
	return strconv.FormatInt(v, 10)
}
