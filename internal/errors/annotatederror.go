// Package errors provides error values that carry structured logging context.
//
// Errors created with Wrap remember the call site and any [slog.Attr] given to
// them. SlogError turns the whole chain into a single attribute suitable for
// slog log lines. The package also re-exports the standard library helpers so
// callers don't need two errors imports.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

type sentinelError string

func (e sentinelError) Error() string {
	return string(e)
}

// NewSentinel creates a comparable error value meant for package-level
// declarations. It carries no call site so it stays cheap to declare.
func NewSentinel(msg string) error {
	return sentinelError(msg)
}

// annotatedError wraps another error with a message, slog attributes, and the
// program counter of the Wrap call.
type annotatedError struct {
	msg   string
	err   error
	attrs []slog.Attr
	pc    uintptr
}

// Wrap annotates err with a message and optional [slog.Attr] values.
// The call site is recorded so SlogError can point at the wrapping location.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and Wrap.
	return &annotatedError{
		msg:   msg,
		err:   err,
		attrs: attrs,
		pc:    pcs[0],
	}
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the panic site rather than the recover site.
func DecoratePanic(excp any) error {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and DecoratePanic.
	return &annotatedError{
		msg: fmt.Sprintf("panic: %v", excp),
		pc:  panicSite(pcs[:n]),
	}
}

// panicSite finds the first frame after the runtime panic machinery.
func panicSite(pcs []uintptr) uintptr {
	frames := runtime.CallersFrames(pcs)
	var (
		sawRuntime bool
		fallback   uintptr
	)
	for {
		frame, more := frames.Next()
		isRuntime := strings.HasPrefix(frame.Function, "runtime.")
		if sawRuntime && !isRuntime {
			return frame.PC
		}
		if isRuntime {
			sawRuntime = true
		} else if fallback == 0 {
			fallback = frame.PC
		}
		if !more {
			return fallback
		}
	}
}

// SlogError flattens an error chain into a single slog attribute. The result
// groups the error message, every annotation found in the chain, and the
// source location of the innermost Wrap call.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{} //nolint:exhaustruct // empty attr is dropped by slog.
	}

	var (
		annotations []any
		pc          uintptr
	)
	// Breadth-first walk over the chain, including errors joined with Join.
	queue := []error{err}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}
		var annotated *annotatedError
		if stderrors.As(current, &annotated) {
			for _, attr := range annotated.attrs {
				annotations = append(annotations, attr)
			}
			if annotated.pc != 0 {
				pc = annotated.pc
			}
			queue = append(queue, annotated.err)
			continue
		}
		switch unwrapped := current.(type) { //nolint:errorlint // chain walk needs the direct interfaces.
		case interface{ Unwrap() error }:
			queue = append(queue, unwrapped.Unwrap())
		case interface{ Unwrap() []error }:
			queue = append(queue, unwrapped.Unwrap()...)
		}
	}

	attrs := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	if pc != 0 {
		frames := runtime.CallersFrames([]uintptr{pc})
		frame, _ := frames.Next()
		attrs = append(attrs, slog.String("source", fmt.Sprintf("%s:%d", frame.File, frame.Line)))
	}
	return slog.Group("error", attrs...)
}

// New re-exports [stderrors.New].
func New(msg string) error {
	return stderrors.New(msg)
}

// Is re-exports [stderrors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As re-exports [stderrors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join re-exports [stderrors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Unwrap re-exports [stderrors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}
