// Package errors contains helper functions for wrapping errors with stack traces, stack output, and panic recovery.
package errors

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
)

// New creates a new error with a stack trace. If `val` is already an error, it is wrapped
// unless it already carries a stack trace, in which case it is returned as is.
// If `val` is nil, New returns nil.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf creates a new error and wraps in an Error type that contains the stack trace.
func Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return goerrors.Wrap(err, 1)
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error already has a stack trace,
// it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	if ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(err, 1)
}

// ErrorStack returns an stack trace if available.
func ErrorStack(err error) string {
	var errStacks []string

	for _, err := range UnwrapMultiErrors(err) {
		for {
			if err, ok := err.(interface{ ErrorStack() string }); ok {
				errStacks = append(errStacks, err.ErrorStack())
			}

			if err = errors.Unwrap(err); err == nil {
				break
			}
		}
	}

	return strings.Join(errStacks, "\n")
}

// ContainsStackTrace returns true if the given error contain the stack trace.
// Useful to avoid creating a nested stack trace.
func ContainsStackTrace(err error) bool {
	for _, err := range UnwrapMultiErrors(err) {
		for {
			if _, ok := err.(interface{ ErrorStack() string }); ok {
				return true
			}

			if err = errors.Unwrap(err); err == nil {
				break
			}
		}
	}

	return false
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error that
// explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(New(err))
	}
}

// UnwrapMultiErrors unwraps all nested multierrors into error slice.
func UnwrapMultiErrors(err error) []error {
	errs := []error{err}

	for index := 0; index < len(errs); index++ {
		err := errs[index]

		for {
			if err, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs[:index], errs[index+1:]...)
				index--

				errs = append(errs, err.Unwrap()...)

				break
			}

			if err = errors.Unwrap(err); err == nil {
				break
			}
		}
	}

	return errs
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
