// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package rewrite

import (
	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/dynamic"
)

// Selects reports whether r's selector accepts ref. Nop and the
// composite rules (Seq, Or) are total: their gating, if any, happens
// per sub-rule inside Apply.
func Selects[T any](r Rule[T], ref codec.TypeReference) bool {
	switch v := r.(type) {
	case Nop[T]:
		return true
	case Transform[T]:
		return v.Type.Equal(ref)
	case Selector[T]:
		return v.Sel(ref)
	case RenameField[T]:
		return v.Type.Equal(ref)
	case RemoveField[T]:
		return v.Type.Equal(ref)
	case Seq[T]:
		return true
	case Or[T]:
		return true
	default:
		return false
	}
}

// Apply runs r against d for query type ref, returning d unchanged if
// r's selector rejects ref.
func Apply[T any](r Rule[T], ref codec.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
	if !Selects(r, ref) {
		return d
	}
	switch v := r.(type) {
	case Nop[T]:
		return d
	case Transform[T]:
		return v.F(d)
	case Selector[T]:
		return v.F(d)
	case RenameField[T]:
		return applyRename(v, d)
	case RemoveField[T]:
		return d.Remove(v.Name)
	case Seq[T]:
		cur := d
		for _, sub := range v.Rules {
			cur = Apply(sub, ref, cur)
		}
		return cur
	case Or[T]:
		for _, sub := range v.Rules {
			if Selects(sub, ref) {
				return Apply(sub, ref, d)
			}
		}
		return d
	default:
		return d
	}
}

func applyRename[T any](v RenameField[T], d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
	if !hasField(d, v.From) {
		return d
	}
	old, _ := d.Get(v.From).Value()
	return d.Set(v.To, old).Remove(v.From)
}

func hasField[T any](d dynamic.Dynamic[T], name string) bool {
	entries, ok := d.AsMapEntries().Value()
	if !ok {
		return false
	}
	for _, e := range entries {
		if k, ok := e.K.AsString().Value(); ok && k == name {
			return true
		}
	}
	return false
}
