// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package codec

import (
	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/internal/errs"
)

// BoundField pairs a named field codec with a getter extracting that
// field's value from a record R. It is the product of fieldOf (naming
// and typing a field) and forGetter (binding it to an accessor), the
// applicative record-composition primitives records are built from.
type BoundField[R, A, T any] struct {
	name string
	c    Codec[A, T]
	get  func(R) A
}

// Field names and types one field of a record codec.
func Field[A, T any](name string, c Codec[A, T]) FieldSpec[A, T] {
	return FieldSpec[A, T]{name: name, c: c}
}

// FieldSpec is a named, typed field awaiting a getter.
type FieldSpec[A, T any] struct {
	name string
	c    Codec[A, T]
}

// ForGetter binds a FieldSpec to the accessor that reads it out of R,
// producing the BoundField a RecordN combinator consumes.
func ForGetter[R, A, T any](f FieldSpec[A, T], get func(R) A) BoundField[R, A, T] {
	return BoundField[R, A, T]{name: f.name, c: f.c, get: get}
}

func encodeField[R, A, T any](f BoundField[R, A, T], r R, ops dynamic.Ops[T]) (string, dynamic.Result[T]) {
	res := f.c.Encode(f.get(r), ops)
	return f.name, dynamic.MapResult(res, func(d dynamic.Dynamic[T]) T { return d.Value })
}

func decodeField[R, A, T any](f BoundField[R, A, T], d dynamic.Dynamic[T]) dynamic.Result[A] {
	child := d.Get(f.name)
	cv, ok := child.Value()
	if !ok {
		return dynamic.Failure[A](child.Err(), nil)
	}
	return dynamic.MapResult(f.c.Decode(cv), func(dec Decoded[A, T]) A { return dec.Value })
}

// Record2 builds a Codec[R,T] out of two bound fields and a
// constructor, the two-arity instance of applicative record
// composition: encode builds a map from each field's own encoding,
// decode reads each field back out and folds the remainder down to
// whatever keys neither field consumed.
func Record2[R, A, B, T any](
	fa BoundField[R, A, T],
	fb BoundField[R, B, T],
	build func(A, B) R,
) Codec[R, T] {
	return Codec[R, T]{
		EncodeFunc: func(r R, ops dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]] {
			ka, ra := encodeField(fa, r, ops)
			va, ok := ra.Value()
			if !ok {
				return dynamic.Failure[dynamic.Dynamic[T]](ra.Err(), nil)
			}
			kb, rb := encodeField(fb, r, ops)
			vb, ok := rb.Value()
			if !ok {
				return dynamic.Failure[dynamic.Dynamic[T]](rb.Err(), nil)
			}
			m := ops.CreateMap([]dynamic.MapEntry[T]{
				{K: ops.CreateString(ka), V: va},
				{K: ops.CreateString(kb), V: vb},
			})
			return dynamic.Success(dynamic.New(ops, m))
		},
		DecodeFunc: func(d dynamic.Dynamic[T]) dynamic.Result[Decoded[R, T]] {
			va, ok := decodeField(fa, d).Value()
			if !ok {
				return dynamic.Failure[Decoded[R, T]](errs.Decode("codec: Record2", decodeField(fa, d).Err(), "field %q", fa.name), nil)
			}
			vb, ok := decodeField(fb, d).Value()
			if !ok {
				return dynamic.Failure[Decoded[R, T]](errs.Decode("codec: Record2", decodeField(fb, d).Err(), "field %q", fb.name), nil)
			}
			remainder := d.Remove(fa.name).Remove(fb.name)
			return dynamic.Success(Decoded[R, T]{Value: build(va, vb), Remainder: remainder})
		},
	}
}

// Record3 is the three-field instance of the same composition.
func Record3[R, A, B, C, T any](
	fa BoundField[R, A, T],
	fb BoundField[R, B, T],
	fc BoundField[R, C, T],
	build func(A, B, C) R,
) Codec[R, T] {
	return Codec[R, T]{
		EncodeFunc: func(r R, ops dynamic.Ops[T]) dynamic.Result[dynamic.Dynamic[T]] {
			ka, ra := encodeField(fa, r, ops)
			va, ok := ra.Value()
			if !ok {
				return dynamic.Failure[dynamic.Dynamic[T]](ra.Err(), nil)
			}
			kb, rb := encodeField(fb, r, ops)
			vb, ok := rb.Value()
			if !ok {
				return dynamic.Failure[dynamic.Dynamic[T]](rb.Err(), nil)
			}
			kc, rc := encodeField(fc, r, ops)
			vc, ok := rc.Value()
			if !ok {
				return dynamic.Failure[dynamic.Dynamic[T]](rc.Err(), nil)
			}
			m := ops.CreateMap([]dynamic.MapEntry[T]{
				{K: ops.CreateString(ka), V: va},
				{K: ops.CreateString(kb), V: vb},
				{K: ops.CreateString(kc), V: vc},
			})
			return dynamic.Success(dynamic.New(ops, m))
		},
		DecodeFunc: func(d dynamic.Dynamic[T]) dynamic.Result[Decoded[R, T]] {
			va, ok := decodeField(fa, d).Value()
			if !ok {
				return dynamic.Failure[Decoded[R, T]](errs.Decode("codec: Record3", decodeField(fa, d).Err(), "field %q", fa.name), nil)
			}
			vb, ok := decodeField(fb, d).Value()
			if !ok {
				return dynamic.Failure[Decoded[R, T]](errs.Decode("codec: Record3", decodeField(fb, d).Err(), "field %q", fb.name), nil)
			}
			vc, ok := decodeField(fc, d).Value()
			if !ok {
				return dynamic.Failure[Decoded[R, T]](errs.Decode("codec: Record3", decodeField(fc, d).Err(), "field %q", fc.name), nil)
			}
			remainder := d.Remove(fa.name).Remove(fb.name).Remove(fc.name)
			return dynamic.Success(Decoded[R, T]{Value: build(va, vb, vc), Remainder: remainder})
		},
	}
}
