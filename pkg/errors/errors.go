// Package errors provides structured error reporting for the Tide toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConstruct indicates a widget assembly failure.
	KindConstruct
	// KindConfig indicates a configuration load or parse failure.
	KindConfig
	// KindDOM indicates a document binding failure.
	KindDOM
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstruct:
		return "construct"
	case KindConfig:
		return "config"
	case KindDOM:
		return "dom"
	default:
		return "unknown"
	}
}

// TideError represents a structured error in the Tide toolkit.
type TideError struct {
	// Op is the operation that failed (e.g., "widgets.NewBadge").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TideError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TideError) Unwrap() error {
	return e.Err
}

// Construct wraps a pipeline failure at a widget factory boundary.
func Construct(op string, err error) *TideError {
	return &TideError{
		Op:   op,
		Kind: KindConstruct,
		Err:  fmt.Errorf("cannot construct widget: %w", err),
	}
}

// Config wraps a configuration failure.
func Config(op string, err error) *TideError {
	return &TideError{Op: op, Kind: KindConfig, Err: err}
}

// Warning describes recoverable misuse: the toolkit falls back to a safe
// default and reports what it adjusted.
type Warning struct {
	// Op is the operation that observed the problem.
	Op string
	// Message describes the problem and the fallback taken.
	Message string
	// Timestamp is when the warning occurred.
	Timestamp time.Time
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Op, w.Message)
}
