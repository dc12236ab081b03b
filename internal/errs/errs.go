// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package errs defines the structured error taxonomy shared by every
// datafixer package. Errors are returned, never logged internally;
// hosts decide how (or whether) to surface them.
package errs

import "fmt"

// Kind classifies an error without requiring callers to type-switch
// on concrete error structs.
type Kind string

const (
	KindPlanning     Kind = "planning"
	KindFrozen       Kind = "registry_frozen"
	KindLookup       Kind = "lookup_missing"
	KindDecode       Kind = "decode"
	KindPathFormat   Kind = "path_format"
	KindNumericRange Kind = "numeric_range"
	KindFixExecution Kind = "fix_execution"
	KindWarning      Kind = "warning"
)

// Error is the concrete structured error every datafixer package
// returns for a failure in its own taxonomy. It wraps an optional
// underlying cause for errors.Is/As support.
type Error struct {
	Kind    Kind
	Op      string // "package: operation"
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// IsKind reports whether e itself is of kind k; use Of to also search
// the errors e wraps.
func (e *Error) IsKind(k Kind) bool { return e.Kind == k }

func newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

func wrap(kind Kind, op string, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Planning constructs a PlanningError (no fix path, downgrade, missing schema).
func Planning(op, format string, args ...any) error { return newf(KindPlanning, op, format, args...) }

// Frozen constructs a RegistryFrozen error.
func Frozen(op, format string, args ...any) error { return newf(KindFrozen, op, format, args...) }

// Lookup constructs a LookupMissing error.
func Lookup(op, format string, args ...any) error { return newf(KindLookup, op, format, args...) }

// Decode constructs a DecodeError, optionally carrying a cause.
func Decode(op string, cause error, format string, args ...any) error {
	return wrap(KindDecode, op, cause, format, args...)
}

// PathFormat constructs a malformed-dot-path error.
func PathFormat(op, format string, args ...any) error {
	return newf(KindPathFormat, op, format, args...)
}

// NumericRange constructs a widening-checked narrowing failure.
func NumericRange(op, format string, args ...any) error {
	return newf(KindNumericRange, op, format, args...)
}

// FixExecution wraps a panic/error raised by user fix code with context.
func FixExecution(op string, cause error, format string, args ...any) error {
	return wrap(KindFixExecution, op, cause, format, args...)
}

// Warning constructs a non-fatal diagnostic error. Callers decide
// whether to escalate it (DiagnosticOptions.FailOnWarn).
func Warning(op, format string, args ...any) error { return newf(KindWarning, op, format, args...) }

// Of reports whether err (or any error it wraps) is a *Error of kind k.
func Of(err error, k Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == k {
				return true
			}
			err = e.Cause
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
