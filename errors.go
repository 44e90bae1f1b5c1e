// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrValidation is matched, via errors.Is, by every *ValidationError.
var ErrValidation = errors.New("validation error")

// ErrorKind identifies the cause of a ValidationError.
type ErrorKind int

const (
	// NotAnInteger is used for values that cannot be converted to an integer.
	NotAnInteger ErrorKind = iota + 1
	// MonthOutOfRange is used for months outside of 1-12.
	MonthOutOfRange
	// DayOutOfRange is used for days that are not valid for their month and year.
	DayOutOfRange
	// MalformedText is used for text that is not in 'D.M.Y' format.
	MalformedText
	// NegativeDays is used for negative day counts.
	NegativeDays
	// ZeroDate is used for arithmetic on the zero Date.
	ZeroDate
)

func (k ErrorKind) String() string {
	switch k {
	case NotAnInteger:
		return "not-an-integer"
	case MonthOutOfRange:
		return "month-out-of-range"
	case DayOutOfRange:
		return "day-out-of-range"
	case MalformedText:
		return "malformed-text"
	case NegativeDays:
		return "negative-days"
	case ZeroDate:
		return "zero-date"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ValidationError represents malformed or out of range input.
type ValidationError struct {
	Kind  ErrorKind
	Field string // year, month, day, date or days.
	Value string // the offending value as supplied.
	Msg   string
}

func newError(kind ErrorKind, field, value, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value, Msg: msg}
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Msg, e.Value)
}

// Is supports errors.Is for ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
