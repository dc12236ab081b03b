// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package dynamic

// Result is a fallible value with recoverable partial data, per the
// engine's §3 data model: either a success carrying A, or an error
// carrying a message and an optional partial A recovered before the
// failure occurred.
type Result[A any] struct {
	ok      bool
	value   A
	err     error
	partial *A
}

// Success constructs a successful Result.
func Success[A any](v A) Result[A] {
	return Result[A]{ok: true, value: v}
}

// Failure constructs a failed Result, optionally carrying partial data
// recovered before the failure (nil if none).
func Failure[A any](err error, partial *A) Result[A] {
	return Result[A]{ok: false, err: err, partial: partial}
}

// IsSuccess reports whether r holds a success value.
func (r Result[A]) IsSuccess() bool { return r.ok }

// IsError reports whether r holds an error.
func (r Result[A]) IsError() bool { return !r.ok }

// Value returns the success value and true, or the zero value and
// false if r is an error.
func (r Result[A]) Value() (A, bool) { return r.value, r.ok }

// Err returns the carried error, or nil on success.
func (r Result[A]) Err() error { return r.err }

// Partial returns the partial value recovered alongside an error, if
// any. Always nil on success.
func (r Result[A]) Partial() *A { return r.partial }

// Get returns the success value or panics with the carried error; use
// only at call sites that have already checked IsSuccess.
func (r Result[A]) Get() A {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// MapResult transforms a successful Result's value, passing errors
// (and their partial data) through unchanged.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.ok {
		return Result[B]{err: r.err, partial: mapPartial(r.partial, f)}
	}
	return Success(f(r.value))
}

// FlatMapResult chains a Result-producing function, short-circuiting
// on the first error. This is the monadic composition Codec/DynamicOps
// destructors are built from.
func FlatMapResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if !r.ok {
		return Result[B]{err: r.err, partial: mapPartial(r.partial, f2Value(f))}
	}
	return f(r.value)
}

// MapError replaces the error on a failed Result while preserving any
// partial data, used to add operation context without discarding
// recovered partial values.
func (r Result[A]) MapError(f func(error) error) Result[A] {
	if r.ok {
		return r
	}
	return Result[A]{err: f(r.err), partial: r.partial}
}

func mapPartial[A, B any](p *A, f func(A) B) *B {
	if p == nil {
		return nil
	}
	b := f(*p)
	return &b
}

// f2Value adapts a Result-producing function into a plain value
// function for partial propagation; only the value half of f's
// result, if any, is used since a partial is best-effort.
func f2Value[A, B any](f func(A) Result[B]) func(A) B {
	return func(a A) B {
		r := f(a)
		v, _ := r.Value()
		return v
	}
}
