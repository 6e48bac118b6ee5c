// Package errors provides structured error reporting for the hexagon view.
//
// Rendering never returns errors to its caller. Failures that happen while
// configuring, decoding, or painting are wrapped in a ViewError and sent to
// the global ErrorHandler, which logs them by default.
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
	// KindConfig indicates invalid or unreadable configuration.
	KindConfig
	// KindDecode indicates a source image that could not be decoded.
	KindDecode
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindIO indicates a failure reading or writing files.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDecode:
		return "decode"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// ViewError is a structured error with the operation that failed.
type ViewError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// Wrap returns err as a ViewError for op, or nil when err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &ViewError{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first ViewError in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var ve *ViewError
	if stderrors.As(err, &ve) {
		return ve.Kind
	}
	var pe *PanicError
	if stderrors.As(err, &pe) {
		return KindPanic
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.HexagonImage.Paint").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ViewError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
