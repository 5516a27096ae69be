package trace

// TraceSummary aggregates token counts from a Trace.
type TraceSummary struct {
	TotalExec int
	TotalIO   int
	Exec      map[string]int // process name → executed ticks
	IO        map[string]int // process name → I/O events
	Processes []string       // process names in order of first appearance
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *TraceSummary {
	summary := &TraceSummary{
		Exec: make(map[string]int),
		IO:   make(map[string]int),
	}
	if t == nil {
		return summary
	}

	seen := make(map[string]bool)
	for _, tok := range t.Tokens {
		if !seen[tok.Process] {
			seen[tok.Process] = true
			summary.Processes = append(summary.Processes, tok.Process)
		}
		switch tok.Kind {
		case TokenExec:
			summary.TotalExec++
			summary.Exec[tok.Process]++
		case TokenIO:
			summary.TotalIO++
			summary.IO[tok.Process]++
		}
	}
	return summary
}
