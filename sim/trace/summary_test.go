package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	// GIVEN no trace
	// WHEN summarized
	summary := Summarize(nil)

	// THEN all counts are zero
	if summary.TotalExec != 0 || summary.TotalIO != 0 {
		t.Errorf("expected zero totals, got exec=%d io=%d", summary.TotalExec, summary.TotalIO)
	}
	if len(summary.Processes) != 0 {
		t.Error("expected no processes")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with exec and I/O tokens for two processes
	tr := NewTrace()
	tr.RecordExec("A", 0)
	tr.RecordIO("A", 1)
	tr.RecordExec("B", 1)
	tr.RecordExec("A", 2)
	tr.RecordExec("B", 3)
	tr.RecordIO("B", 4)

	// WHEN summarized
	summary := Summarize(tr)

	// THEN totals and per-process counts match
	if summary.TotalExec != 4 {
		t.Errorf("expected 4 exec tokens, got %d", summary.TotalExec)
	}
	if summary.TotalIO != 2 {
		t.Errorf("expected 2 I/O tokens, got %d", summary.TotalIO)
	}
	if summary.Exec["A"] != 2 || summary.Exec["B"] != 2 {
		t.Errorf("unexpected exec distribution %v", summary.Exec)
	}
	if summary.IO["A"] != 1 || summary.IO["B"] != 1 {
		t.Errorf("unexpected I/O distribution %v", summary.IO)
	}
}

func TestSummarize_Processes_FirstAppearanceOrder(t *testing.T) {
	// GIVEN a trace where B first appears as an I/O token
	tr := NewTrace()
	tr.RecordIO("B", 0)
	tr.RecordExec("A", 0)
	tr.RecordExec("B", 1)

	// WHEN summarized
	summary := Summarize(tr)

	// THEN processes are listed by first appearance
	if len(summary.Processes) != 2 || summary.Processes[0] != "B" || summary.Processes[1] != "A" {
		t.Errorf("expected [B A], got %v", summary.Processes)
	}
}
