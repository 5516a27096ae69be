package trace

import (
	"testing"
)

func TestTrace_RecordExec_AppendsToken(t *testing.T) {
	// GIVEN an empty trace
	tr := NewTrace()

	// WHEN an executed tick is recorded
	tr.RecordExec("A", 0)

	// THEN the trace contains one exec token with correct data
	if tr.Len() != 1 {
		t.Fatalf("expected 1 token, got %d", tr.Len())
	}
	if tr.Tokens[0].Kind != TokenExec || tr.Tokens[0].Process != "A" {
		t.Errorf("unexpected token %+v", tr.Tokens[0])
	}
}

func TestTrace_RecordIO_PrefixesName(t *testing.T) {
	// GIVEN a trace
	tr := NewTrace()

	// WHEN an I/O event is recorded
	tr.RecordIO("B", 3)

	// THEN its text form carries the I/O prefix
	if got := tr.Tokens[0].String(); got != "!B" {
		t.Errorf("expected !B, got %q", got)
	}
	if tr.Tokens[0].Tick != 3 {
		t.Errorf("expected tick 3, got %d", tr.Tokens[0].Tick)
	}
}

func TestTrace_String_JoinsWithSingleSpaces(t *testing.T) {
	// GIVEN a trace with mixed tokens
	tr := NewTrace()
	tr.RecordExec("A", 0)
	tr.RecordIO("A", 1)
	tr.RecordExec("B", 1)

	// WHEN rendered
	got := tr.String()

	// THEN order is preserved and tokens are single-space separated
	if got != "A !A B" {
		t.Errorf("expected %q, got %q", "A !A B", got)
	}
}

func TestTrace_String_Empty(t *testing.T) {
	if got := NewTrace().String(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
