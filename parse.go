package twosat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A ParseError describes a malformed header or clause line. Line is the
// 1-based line number of the offending line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a 2-CNF instance.
//
// The first line holds one or two whitespace-separated integers: the
// variable count and, optionally, the clause count. When the clause count
// is absent it is taken to equal the variable count. Every following
// non-blank line holds two signed integers u v denoting the disjunction
// u ∨ v, with a minus sign meaning negation. All clause lines through the
// end of the input are read; it is an error for the input to end before
// the declared clause count is reached.
func Parse(r io.Reader) (*Problem, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Line: 1, Err: errors.New("missing header line")}
	}
	line := 1
	fields := strings.Fields(s.Text())
	if len(fields) == 0 || len(fields) > 2 {
		return nil, &ParseError{Line: line, Err: fmt.Errorf("header has %d fields; want 1 or 2", len(fields))}
	}
	vars, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, &ParseError{Line: line, Err: fmt.Errorf("malformed variable count: %v", err)}
	}
	numClauses := vars
	if len(fields) == 2 {
		numClauses, err = strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("malformed clause count: %v", err)}
		}
	}
	if vars < 0 || numClauses < 0 {
		return nil, &ParseError{Line: line, Err: errors.New("negative count in header")}
	}
	pb := &Problem{Vars: vars, Clauses: make([][2]int, 0, numClauses)}
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("clause has %d fields; want 2", len(fields))}
		}
		var cls [2]int
		for i, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("malformed literal: %v", err)}
			}
			if n == 0 {
				return nil, &ParseError{Line: line, Err: errors.New("literal must be nonzero")}
			}
			cls[i] = n
		}
		pb.Clauses = append(pb.Clauses, cls)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(pb.Clauses) < numClauses {
		return nil, &ParseError{
			Line: line + 1,
			Err:  fmt.Errorf("header declares %d clauses but input ends after %d", numClauses, len(pb.Clauses)),
		}
	}
	return pb, nil
}

// Write emits pb in the format Parse reads, always with an explicit clause
// count in the header.
func Write(w io.Writer, pb *Problem) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", pb.Vars, len(pb.Clauses)); err != nil {
		return err
	}
	for _, cls := range pb.Clauses {
		if _, err := fmt.Fprintf(w, "%d %d\n", cls[0], cls[1]); err != nil {
			return err
		}
	}
	return nil
}
