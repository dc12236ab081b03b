// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package dynamic

// ValueType classifies a value produced or consumed by an Ops[T]
// implementation: seven value kinds, numeric widths kept distinct so
// no DynamicOps silently narrows.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeBool
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeF32
	TypeF64
	TypeString
	TypeList
	TypeMap
)

func (vt ValueType) String() string {
	switch vt {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeI8:
		return "i8"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeF32:
		return "f32"
	case TypeF64:
		return "f64"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	default:
		return "unknown"
	}
}

// MapEntry is a single (key, value) pair of a generic T-keyed map, as
// produced by CreateMap/GetMapValues.
type MapEntry[T any] struct {
	K T
	V T
}

// Ops is the capability set a host tree encoding must provide for the
// engine to operate on it as a Dynamic[T]. It is the sole contract
// between the format-agnostic core and any concrete encoding (JSON-like,
// NBT-like, a binary tagged union, an HCL cty.Value tree, ...).
//
// Every destructor returns a Result so callers can recover a partial
// value alongside a decode failure rather than losing context.
// Constructed values must round-trip through their matching destructor
// unchanged, modulo canonical numeric widening (checked, never silent).
type Ops[T any] interface {
	// TypeOf classifies t.
	TypeOf(t T) ValueType

	// Empty returns the host encoding's zero/empty value.
	Empty() T

	CreateBoolean(bool) T
	CreateByte(int8) T
	CreateShort(int16) T
	CreateInt(int32) T
	CreateLong(int64) T
	CreateFloat(float32) T
	CreateDouble(float64) T
	CreateString(string) T
	CreateList(items []T) T
	CreateMap(entries []MapEntry[T]) T

	GetBoolean(t T) Result[bool]
	// GetNumberValue returns the widest numeric representation (float64)
	// regardless of the value's original constructed width.
	GetNumberValue(t T) Result[float64]
	GetStringValue(t T) Result[string]
	GetMapValues(t T) Result[[]MapEntry[T]]
	GetStream(t T) Result[[]T]
	// GetMapEntry looks up key in a map-shaped m, returning the full
	// entry (its stored key representation alongside the value).
	GetMapEntry(key string, m T) Result[MapEntry[T]]
	// Get looks up key in a map-shaped m, returning only the value.
	Get(key string, m T) Result[T]

	// Set, Remove, Update, MergeMap are functional mutators: they
	// return a new T and never modify m in place.
	Set(key string, value T, m T) T
	Remove(key string, m T) T
	MergeMap(m1, m2 T) T
	Update(key string, f func(T) T, m T) T
}
