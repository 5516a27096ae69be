// Package trace provides execution-trace recording for scheduling simulations.
// This package has no dependencies on sim/. It stores pure data types.
package trace

import "strings"

// TokenKind distinguishes executed ticks from I/O events.
type TokenKind string

const (
	// TokenExec marks one executed tick of a process.
	TokenExec TokenKind = "exec"
	// TokenIO marks one I/O event of a process.
	TokenIO TokenKind = "io"
)

// IOPrefix is prepended to the process name in the text form of an I/O token.
const IOPrefix = "!"

// Token is one unit of the execution trace.
type Token struct {
	Kind    TokenKind
	Process string
	Tick    int64 // clock value at which the token was emitted
}

// String returns the text form: the bare name for an executed tick, "!" + name for I/O.
func (t Token) String() string {
	if t.Kind == TokenIO {
		return IOPrefix + t.Process
	}
	return t.Process
}

// Trace accumulates tokens in emission order.
type Trace struct {
	Tokens []Token
}

// NewTrace creates a Trace ready for recording.
func NewTrace() *Trace {
	return &Trace{Tokens: make([]Token, 0)}
}

// RecordExec appends an executed-tick token.
func (t *Trace) RecordExec(process string, tick int64) {
	t.Tokens = append(t.Tokens, Token{Kind: TokenExec, Process: process, Tick: tick})
}

// RecordIO appends an I/O-event token.
func (t *Trace) RecordIO(process string, tick int64) {
	t.Tokens = append(t.Tokens, Token{Kind: TokenIO, Process: process, Tick: tick})
}

// Len returns the number of recorded tokens.
func (t *Trace) Len() int {
	return len(t.Tokens)
}

// Words returns the text form of every token.
func (t *Trace) Words() []string {
	words := make([]string, len(t.Tokens))
	for i, tok := range t.Tokens {
		words[i] = tok.String()
	}
	return words
}

// String joins the tokens with single spaces. This is the output file format.
func (t *Trace) String() string {
	return strings.Join(t.Words(), " ")
}
