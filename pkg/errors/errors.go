// Package errors provides structured error handling for drift widgets.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a rejected argument at an API boundary.
	KindInvalidArgument
	// KindConfig indicates a style or configuration file error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrIndexOutOfRange is returned when a segment index is outside the valid range.
	ErrIndexOutOfRange = stderrors.New("segment index out of range")
	// ErrNoSegments is returned when a control is constructed without titles or icons.
	ErrNoSegments = stderrors.New("at least one title or icon is required")
)

// WidgetError represents a structured error raised by a widget operation.
type WidgetError struct {
	// Op is the operation that failed (e.g., "segmented.InsertSegment").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Index is the offending segment index, or -1 when not applicable.
	Index int
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// InvalidIndex builds the error returned for an out-of-range segment index.
func InvalidIndex(op string, index, limit int) *WidgetError {
	return &WidgetError{
		Op:    op,
		Kind:  KindInvalidArgument,
		Index: index,
		Err:   fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, limit),
	}
}

// Config wraps a style or configuration failure.
func Config(op string, err error) *WidgetError {
	return &WidgetError{Op: op, Kind: KindConfig, Index: -1, Err: err}
}

// KindOf returns the kind of err if it wraps a WidgetError, KindUnknown otherwise.
func KindOf(err error) ErrorKind {
	var we *WidgetError
	if stderrors.As(err, &we) {
		return we.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "segmented.notify").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by widgets.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WidgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
