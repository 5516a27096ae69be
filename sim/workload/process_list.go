// Package workload reads process lists for the scheduling simulator.
//
// A process list is a text file whose first line is the number of records N,
// followed by N CSV records of the form name,duration,arrivalTime,ioInterval.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
)

// Field names reported by ParseError.
const (
	FieldCount      = "count"
	FieldRecord     = "record"
	FieldName       = "name"
	FieldDuration   = "duration"
	FieldArrival    = "arrival"
	FieldIOInterval = "io_interval"
)

var (
	// ErrFieldCount is returned when a record does not have exactly four fields.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrTooFewRecords is returned when the file ends before N records were read.
	ErrTooFewRecords = errors.New("fewer records than declared")
	// ErrDuplicateName is returned when two records share a process name.
	ErrDuplicateName = errors.New("duplicate process name")
	// ErrOutOfRange is returned for negative values or a non-positive duration.
	ErrOutOfRange = errors.New("value out of range")
)

// maxSizeHint caps the preallocation taken from the declared record count.
const maxSizeHint = 1024

// ParseError describes a malformed process list. Line is 1-based.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("process list line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadProcessList reads and parses the process list at path.
func LoadProcessList(path string) ([]sim.ProcessSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process list: %w", err)
	}
	defer func() { _ = f.Close() }()

	specs, err := ParseProcessList(f)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("loaded %d processes from %s", len(specs), path)
	return specs, nil
}

// ParseProcessList parses a process list. Lines after the N declared records are ignored.
func ParseProcessList(r io.Reader) ([]sim.ProcessSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Field: FieldCount, Err: io.ErrUnexpectedEOF}
	}
	if err != nil {
		return nil, csvError(err, FieldCount)
	}
	line, _ := reader.FieldPos(0)
	if len(header) != 1 {
		return nil, &ParseError{Line: line, Field: FieldCount, Err: ErrFieldCount}
	}
	n, err := strconv.Atoi(strings.TrimSpace(header[0]))
	if err != nil {
		return nil, &ParseError{Line: line, Field: FieldCount, Err: err}
	}
	if n < 0 {
		return nil, &ParseError{Line: line, Field: FieldCount, Err: ErrOutOfRange}
	}

	// n is untrusted; it only bounds the loop, never an allocation.
	hint := min(n, maxSizeHint)
	specs := make([]sim.ProcessSpec, 0, hint)
	seen := make(map[string]bool, hint)
	for len(specs) < n {
		rec, err := reader.Read()
		if err == io.EOF {
			return nil, &ParseError{Line: line + 1, Field: FieldRecord, Err: ErrTooFewRecords}
		}
		if err != nil {
			return nil, csvError(err, FieldRecord)
		}
		line, _ = reader.FieldPos(0)
		spec, err := parseRecord(rec, line)
		if err != nil {
			return nil, err
		}
		if seen[spec.Name] {
			return nil, &ParseError{Line: line, Field: FieldName, Err: fmt.Errorf("%w: %q", ErrDuplicateName, spec.Name)}
		}
		seen[spec.Name] = true
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseRecord(rec []string, line int) (sim.ProcessSpec, error) {
	if len(rec) != 4 {
		return sim.ProcessSpec{}, &ParseError{Line: line, Field: FieldRecord,
			Err: fmt.Errorf("%w: got %d, want 4", ErrFieldCount, len(rec))}
	}
	name := strings.TrimSpace(rec[0])
	if name == "" {
		return sim.ProcessSpec{}, &ParseError{Line: line, Field: FieldName, Err: ErrOutOfRange}
	}
	// Trace tokens are space-separated and "!" marks I/O.
	if strings.ContainsFunc(name, unicode.IsSpace) || strings.HasPrefix(name, trace.IOPrefix) {
		return sim.ProcessSpec{}, &ParseError{Line: line, Field: FieldName,
			Err: fmt.Errorf("%w: %q is not a valid trace token", ErrOutOfRange, name)}
	}
	var vals [3]int64
	fields := [3]string{FieldDuration, FieldArrival, FieldIOInterval}
	for i := range vals {
		v, err := strconv.ParseInt(strings.TrimSpace(rec[i+1]), 10, 64)
		if err != nil {
			return sim.ProcessSpec{}, &ParseError{Line: line, Field: fields[i], Err: err}
		}
		if v < 0 || (i == 0 && v == 0) {
			return sim.ProcessSpec{}, &ParseError{Line: line, Field: fields[i],
				Err: fmt.Errorf("%w: %d", ErrOutOfRange, v)}
		}
		vals[i] = v
	}
	return sim.ProcessSpec{Name: name, Burst: vals[0], Arrival: vals[1], IOInterval: vals[2]}, nil
}

// csvError converts a csv.ParseError into a ParseError at the same line.
func csvError(err error, field string) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Field: field, Err: pe.Err}
	}
	return fmt.Errorf("reading process list: %w", err)
}
