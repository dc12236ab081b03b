// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package dynamic implements the format-agnostic tree algebra
// (DynamicOps/Dynamic) that every rewrite rule, optic, and fix speaks
// in terms of, plus the Result[A] fallible-value carrier.
package dynamic

import (
	"fmt"
	"math"

	"github.com/fixerlab/datafixer/internal/errs"
)

// Dynamic is the pair (ops, value) threaded through every rule: the
// sole vocabulary rules, codecs, and optics use to read and write a
// tree value, regardless of its concrete host encoding.
//
// Dynamic is immutable: every method that "mutates" returns a new
// Dynamic whose inner value is also newly constructed by Ops.
type Dynamic[T any] struct {
	Ops   Ops[T]
	Value T
}

// New wraps a host value in its Ops.
func New[T any](ops Ops[T], v T) Dynamic[T] {
	return Dynamic[T]{Ops: ops, Value: v}
}

// Empty returns ops' empty value wrapped as a Dynamic.
func Empty[T any](ops Ops[T]) Dynamic[T] {
	return Dynamic[T]{Ops: ops, Value: ops.Empty()}
}

// Type classifies the wrapped value.
func (d Dynamic[T]) Type() ValueType { return d.Ops.TypeOf(d.Value) }

// Get descends a dot-separated path into nested maps. A missing
// segment at any point yields ops' empty value, not an error; only a
// malformed path (see splitPath) fails.
func (d Dynamic[T]) Get(path string) Result[Dynamic[T]] {
	segs, err := splitPath("dynamic: Get", path)
	if err != nil {
		return Failure[Dynamic[T]](err, nil)
	}
	cur := d
	for _, seg := range segs {
		r := cur.Ops.Get(seg, cur.Value)
		v, ok := r.Value()
		if !ok {
			cur = Dynamic[T]{Ops: d.Ops, Value: d.Ops.Empty()}
			break
		}
		cur = Dynamic[T]{Ops: d.Ops, Value: v}
	}
	return Success(cur)
}

// AsBool narrows to a boolean.
func (d Dynamic[T]) AsBool() Result[bool] {
	return d.Ops.GetBoolean(d.Value).MapError(func(err error) error {
		return errs.Decode("dynamic: AsBool", err, "value is not a boolean")
	})
}

// AsString narrows to a string.
func (d Dynamic[T]) AsString() Result[string] {
	return d.Ops.GetStringValue(d.Value).MapError(func(err error) error {
		return errs.Decode("dynamic: AsString", err, "value is not a string")
	})
}

// AsByte, AsShort, AsInt, AsLong narrow the widest numeric
// representation to the named integer width, failing with a
// NumericRange error (never silently truncating) if the value is out
// of range or not integral.
func (d Dynamic[T]) AsByte() Result[int8] {
	return narrowInt[T, int8](d, math.MinInt8, math.MaxInt8)
}
func (d Dynamic[T]) AsShort() Result[int16] {
	return narrowInt[T, int16](d, math.MinInt16, math.MaxInt16)
}
func (d Dynamic[T]) AsInt() Result[int32] {
	return narrowInt[T, int32](d, math.MinInt32, math.MaxInt32)
}
func (d Dynamic[T]) AsLong() Result[int64] {
	return narrowInt[T, int64](d, math.MinInt64, math.MaxInt64)
}

// narrowInt implements widening-checked numeric narrowing: a value
// outside [lo, hi] or with a fractional part fails with NumericRange
// rather than silently truncating.
func narrowInt[T any, N int8 | int16 | int32 | int64](d Dynamic[T], lo, hi float64) Result[N] {
	f, ok := d.Ops.GetNumberValue(d.Value).Value()
	if !ok {
		r := d.Ops.GetNumberValue(d.Value)
		return Failure[N](errs.Decode("dynamic: AsInt", r.Err(), "value is not numeric"), nil)
	}
	if f != math.Trunc(f) {
		return Failure[N](errs.NumericRange("dynamic: AsInt", "value %v is not an integer", f), nil)
	}
	if f < lo || f > hi {
		return Failure[N](errs.NumericRange("dynamic: AsInt", "value %v out of range [%v, %v]", f, lo, hi), nil)
	}
	return Success(N(f))
}

// AsFloat, AsDouble narrow the widest numeric representation to a
// floating width.
func (d Dynamic[T]) AsFloat() Result[float32] {
	r := d.Ops.GetNumberValue(d.Value)
	return MapResult(r, func(f float64) float32 { return float32(f) })
}

func (d Dynamic[T]) AsDouble() Result[float64] {
	return d.Ops.GetNumberValue(d.Value).MapError(func(err error) error {
		return errs.Decode("dynamic: AsDouble", err, "value is not numeric")
	})
}

// AsList narrows to a list of Dynamics.
func (d Dynamic[T]) AsList() Result[[]Dynamic[T]] {
	r := d.Ops.GetStream(d.Value)
	return MapResult(r, func(items []T) []Dynamic[T] {
		out := make([]Dynamic[T], len(items))
		for i, it := range items {
			out[i] = Dynamic[T]{Ops: d.Ops, Value: it}
		}
		return out
	})
}

// AsMapEntries narrows to the map's entries as Dynamic/Dynamic pairs.
func (d Dynamic[T]) AsMapEntries() Result[[]MapEntry[Dynamic[T]]] {
	r := d.Ops.GetMapValues(d.Value)
	return MapResult(r, func(entries []MapEntry[T]) []MapEntry[Dynamic[T]] {
		out := make([]MapEntry[Dynamic[T]], len(entries))
		for i, e := range entries {
			out[i] = MapEntry[Dynamic[T]]{
				K: Dynamic[T]{Ops: d.Ops, Value: e.K},
				V: Dynamic[T]{Ops: d.Ops, Value: e.V},
			}
		}
		return out
	})
}

// Set rebinds key to value in a map-shaped Dynamic, returning a new
// Dynamic. d itself is unchanged.
func (d Dynamic[T]) Set(key string, value Dynamic[T]) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.Set(key, value.Value, d.Value)}
}

// Remove deletes key from a map-shaped Dynamic, returning a new
// Dynamic. No-op (new-but-equal value) if key is absent.
func (d Dynamic[T]) Remove(key string) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.Remove(key, d.Value)}
}

// Update applies f to the value currently bound to key (if any) and
// rebinds the result, returning a new Dynamic.
func (d Dynamic[T]) Update(key string, f func(Dynamic[T]) Dynamic[T]) Dynamic[T] {
	nv := d.Ops.Update(key, func(t T) T {
		return f(Dynamic[T]{Ops: d.Ops, Value: t}).Value
	}, d.Value)
	return Dynamic[T]{Ops: d.Ops, Value: nv}
}

// UpdateList applies f to the Dynamic's list items (if it is
// list-shaped), returning a new Dynamic. Non-list values pass through
// unchanged.
func (d Dynamic[T]) UpdateList(f func([]Dynamic[T]) []Dynamic[T]) Dynamic[T] {
	items, ok := d.AsList().Value()
	if !ok {
		return d
	}
	newItems := f(items)
	raw := make([]T, len(newItems))
	for i, it := range newItems {
		raw[i] = it.Value
	}
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateList(raw)}
}

// Merge merges two map-shaped Dynamics sharing the same Ops.
func (d Dynamic[T]) Merge(other Dynamic[T]) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.MergeMap(d.Value, other.Value)}
}

// Structural creators: sugar that wraps Ops' constructors as Dynamics
// sharing d's Ops.
func (d Dynamic[T]) CreateBoolean(b bool) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateBoolean(b)}
}
func (d Dynamic[T]) CreateByte(v int8) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateByte(v)}
}
func (d Dynamic[T]) CreateShort(v int16) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateShort(v)}
}
func (d Dynamic[T]) CreateInt(v int32) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateInt(v)}
}
func (d Dynamic[T]) CreateLong(v int64) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateLong(v)}
}
func (d Dynamic[T]) CreateFloat(v float32) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateFloat(v)}
}
func (d Dynamic[T]) CreateDouble(v float64) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateDouble(v)}
}
func (d Dynamic[T]) CreateString(v string) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateString(v)}
}
func (d Dynamic[T]) CreateList(items []Dynamic[T]) Dynamic[T] {
	raw := make([]T, len(items))
	for i, it := range items {
		raw[i] = it.Value
	}
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateList(raw)}
}
func (d Dynamic[T]) CreateMap(entries []MapEntry[Dynamic[T]]) Dynamic[T] {
	raw := make([]MapEntry[T], len(entries))
	for i, e := range entries {
		raw[i] = MapEntry[T]{K: e.K.Value, V: e.V.Value}
	}
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateMap(raw)}
}

func (d Dynamic[T]) String() string {
	return fmt.Sprintf("Dynamic(%s)", d.Type())
}
