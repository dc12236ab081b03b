// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package codec

import (
	"github.com/fixerlab/datafixer/dynamic"
)

// Decoded is what Codec.Decode returns on success: the decoded value
// plus the remainder (whatever of the input tree the codec did not
// consume).
type Decoded[A, T any] struct {
	Value     A
	Remainder dynamic.Dynamic[T]
}

// Codec is a pair of encode/decode functions between a Go value A and
// a tree value of host type T.
type Codec[A, T any] struct {
	EncodeFunc func(A, dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]]
	DecodeFunc func(dynamic.Dynamic[T]) dynamic.Result[Decoded[A, T]]
}

func (c Codec[A, T]) Encode(a A, ops dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]] {
	return c.EncodeFunc(a, ops)
}

func (c Codec[A, T]) Decode(d dynamic.Dynamic[T]) dynamic.Result[Decoded[A, T]] {
	return c.DecodeFunc(d)
}

// Bool is the primitive codec for bool.
func Bool[T any]() Codec[bool, T] {
	return Codec[bool, T]{
		EncodeFunc: func(b bool, ops dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]] {
			return dynamic.Success(dynamic.New(ops, ops.CreateBoolean(b)))
		},
		DecodeFunc: func(d dynamic.Dynamic[T]) dynamic.Result[Decoded[bool, T]] {
			return dynamic.MapResult(d.AsBool(), func(b bool) Decoded[bool, T] {
				return Decoded[bool, T]{Value: b, Remainder: dynamic.Empty(d.Ops)}
			})
		},
	}
}

// Int is the primitive codec for int32.
func Int[T any]() Codec[int32, T] {
	return Codec[int32, T]{
		EncodeFunc: func(v int32, ops dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]] {
			return dynamic.Success(dynamic.New(ops, ops.CreateInt(v)))
		},
		DecodeFunc: func(d dynamic.Dynamic[T]) dynamic.Result[Decoded[int32, T]] {
			return dynamic.MapResult(d.AsInt(), func(v int32) Decoded[int32, T] {
				return Decoded[int32, T]{Value: v, Remainder: dynamic.Empty(d.Ops)}
			})
		},
	}
}

// Long is the primitive codec for int64.
func Long[T any]() Codec[int64, T] {
	return Codec[int64, T]{
		EncodeFunc: func(v int64, ops dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]] {
			return dynamic.Success(dynamic.New(ops, ops.CreateLong(v)))
		},
		DecodeFunc: func(d dynamic.Dynamic[T]) dynamic.Result[Decoded[int64, T]] {
			return dynamic.MapResult(d.AsLong(), func(v int64) Decoded[int64, T] {
				return Decoded[int64, T]{Value: v, Remainder: dynamic.Empty(d.Ops)}
			})
		},
	}
}

// String is the primitive codec for string.
func String[T any]() Codec[string, T] {
	return Codec[string, T]{
		EncodeFunc: func(v string, ops dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]] {
			return dynamic.Success(dynamic.New(ops, ops.CreateString(v)))
		},
		DecodeFunc: func(d dynamic.Dynamic[T]) dynamic.Result[Decoded[string, T]] {
			return dynamic.MapResult(d.AsString(), func(v string) Decoded[string, T] {
				return Decoded[string, T]{Value: v, Remainder: dynamic.Empty(d.Ops)}
			})
		},
	}
}
