package puzzle

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by queries that have nothing to reduce, such as a
// minimum over zero seeds or a zero-length seed range.
var ErrEmptyInput = errors.New("empty input")

// ErrNotImplemented is returned when a registered day has no solver for the requested part.
var ErrNotImplemented = errors.New("part not implemented")

// ParseError reports malformed or incomplete puzzle input.
type ParseError struct {
	Day  int
	Line int // 1-based; 0 when the error is not tied to a line
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	var prefix string
	switch {
	case e.Day > 0 && e.Line > 0:
		prefix = fmt.Sprintf("day %d: line %d: ", e.Day, e.Line)
	case e.Day > 0:
		prefix = fmt.Sprintf("day %d: ", e.Day)
	case e.Line > 0:
		prefix = fmt.Sprintf("line %d: ", e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s%s: %v", prefix, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse error: %s%s", prefix, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf builds a ParseError for the given day and line.
func Errorf(day, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Day: day, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// SampleMismatchError is returned by Day.Check when a worked example does not
// produce its published answer.
type SampleMismatchError struct {
	Day  int
	Part Part
	Got  Answer
	Want Answer
}

func (e *SampleMismatchError) Error() string {
	return fmt.Sprintf("day %d part %d sample: got %d, want %d", e.Day, e.Part, e.Got, e.Want)
}
