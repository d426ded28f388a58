package session

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is wrapped by every RangeError.
var ErrInvalidRange = errors.New("invalid question range")

// RangeError explains why a question range was rejected.
type RangeError struct {
	Reason string
	Total  int
}

func (e *RangeError) Error() string { return e.Reason }

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// ValidateRange checks a 1-based inclusive [start, end] range against a bank of total
// questions. Rules run in order and the first failure is returned. A single-question
// range is rejected.
func ValidateRange(start, end, total int) error {
	switch {
	case start < 1:
		return &RangeError{Reason: "start must be at least 1", Total: total}
	case end > total:
		return &RangeError{Reason: fmt.Sprintf("end cannot exceed total questions (%d)", total), Total: total}
	case start > end:
		return &RangeError{Reason: "start cannot be greater than end", Total: total}
	case start == end:
		return &RangeError{Reason: "range must include at least 2 questions", Total: total}
	}
	return nil
}
